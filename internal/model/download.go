package model

import (
	"path/filepath"
	"strings"
	"time"
)

// DownloadRecord is the in-memory note kept for a download the user accepted
type DownloadRecord struct {
	ID         string
	URL        string         // source URL reported by the engine
	Path       string         // destination chosen by the user
	MimeType   string         // detected content type, may be empty
	Status     DownloadStatus // lifecycle of the transfer
	LastError  string         // last error message if any
	AcceptedAt time.Time      // when the user confirmed the destination
	FinishedAt time.Time      // when the engine finished writing
}

// GetDisplayTitle returns the file name, or the URL when no path is known
func (dr *DownloadRecord) GetDisplayTitle() string {
	if dr.Path != "" {
		// Support both / and \ separators regardless of the host OS
		parts := strings.FieldsFunc(dr.Path, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			return parts[len(parts)-1]
		}
	}
	return dr.URL
}

// Dir returns the directory that holds the downloaded file
func (dr *DownloadRecord) Dir() string {
	if dr.Path == "" {
		return ""
	}
	return filepath.Dir(dr.Path)
}
