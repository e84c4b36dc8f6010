package model

// DownloadStatus represents the state of an accepted download
type DownloadStatus string

const (
	// DownloadStatusAccepted means the user chose a destination and the engine is writing it
	DownloadStatusAccepted DownloadStatus = "Accepted"

	// DownloadStatusCompleted means the engine finished writing the file
	DownloadStatusCompleted DownloadStatus = "Completed"

	// DownloadStatusError means the transfer failed after it was accepted
	DownloadStatusError DownloadStatus = "Error"
)

// String returns the string representation of DownloadStatus
func (ds DownloadStatus) String() string {
	return string(ds)
}

// IsActive returns true while the engine is still writing the file
func (ds DownloadStatus) IsActive() bool {
	return ds == DownloadStatusAccepted
}

// IsFinished returns true if the transfer ended, successfully or not
func (ds DownloadStatus) IsFinished() bool {
	return ds == DownloadStatusCompleted || ds == DownloadStatusError
}
