package download

import (
	"github.com/ytget/wayang/internal/model"
)

// Recorder is the session's download record list.
type Recorder interface {
	SetUpdateCallback(func(*model.DownloadRecord))
	Add(url, path, mimeType string) *model.DownloadRecord
	Get(id string) (*model.DownloadRecord, bool)
	All() []*model.DownloadRecord
	Paths() []string
	MarkCompleted(id string) error
	MarkFailed(id string, cause error) error
	Len() int
}

var _ Recorder = (*Service)(nil)
