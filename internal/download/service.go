package download

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ytget/wayang/internal/model"
)

// Service is the in-memory download record list
type Service struct {
	records      []*model.DownloadRecord
	byID         map[string]*model.DownloadRecord
	recordsMutex sync.RWMutex
	onUpdate     func(*model.DownloadRecord) // callback for UI updates
	now          func() time.Time
}

// NewService creates an empty record list
func NewService() *Service {
	return &Service{
		byID: make(map[string]*model.DownloadRecord),
		now:  time.Now,
	}
}

// SetUpdateCallback sets the callback invoked after every change to a record
func (s *Service) SetUpdateCallback(callback func(*model.DownloadRecord)) {
	s.recordsMutex.Lock()
	s.onUpdate = callback
	s.recordsMutex.Unlock()
}

// Add appends an accepted download. Paths are not deduplicated: saving the
// same file twice yields two records.
func (s *Service) Add(url, path, mimeType string) *model.DownloadRecord {
	record := &model.DownloadRecord{
		ID:         uuid.NewString(),
		URL:        url,
		Path:       path,
		MimeType:   mimeType,
		Status:     model.DownloadStatusAccepted,
		AcceptedAt: s.now(),
	}

	s.recordsMutex.Lock()
	s.records = append(s.records, record)
	s.byID[record.ID] = record
	s.recordsMutex.Unlock()

	s.notifyUpdate(record)
	return record
}

// Get returns a record by ID
func (s *Service) Get(id string) (*model.DownloadRecord, bool) {
	s.recordsMutex.RLock()
	defer s.recordsMutex.RUnlock()
	record, exists := s.byID[id]
	return record, exists
}

// All returns the records in acceptance order
func (s *Service) All() []*model.DownloadRecord {
	s.recordsMutex.RLock()
	defer s.recordsMutex.RUnlock()

	records := make([]*model.DownloadRecord, len(s.records))
	copy(records, s.records)
	return records
}

// Paths returns the destination paths in acceptance order
func (s *Service) Paths() []string {
	s.recordsMutex.RLock()
	defer s.recordsMutex.RUnlock()

	paths := make([]string, 0, len(s.records))
	for _, record := range s.records {
		paths = append(paths, record.Path)
	}
	return paths
}

// Len returns the number of records
func (s *Service) Len() int {
	s.recordsMutex.RLock()
	defer s.recordsMutex.RUnlock()
	return len(s.records)
}

// MarkCompleted records that the engine finished writing the file
func (s *Service) MarkCompleted(id string) error {
	return s.finish(id, model.DownloadStatusCompleted, "")
}

// MarkFailed records that the transfer failed
func (s *Service) MarkFailed(id string, cause error) error {
	msg := "unknown error"
	if cause != nil {
		msg = cause.Error()
	}
	return s.finish(id, model.DownloadStatusError, msg)
}

func (s *Service) finish(id string, status model.DownloadStatus, lastError string) error {
	s.recordsMutex.Lock()
	record, exists := s.byID[id]
	if !exists {
		s.recordsMutex.Unlock()
		return fmt.Errorf("download not found: %s", id)
	}
	if record.Status.IsFinished() {
		s.recordsMutex.Unlock()
		return fmt.Errorf("download already finished: %s", record.Status)
	}
	record.Status = status
	record.LastError = lastError
	record.FinishedAt = s.now()
	s.recordsMutex.Unlock()

	s.notifyUpdate(record)
	return nil
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(record *model.DownloadRecord) {
	s.recordsMutex.RLock()
	callback := s.onUpdate
	s.recordsMutex.RUnlock()

	if callback != nil {
		callback(record)
	}
}
