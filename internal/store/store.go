// Package store persists bookmarks and history as one JSON document.
package store

import (
	"fmt"
	"os"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/ytget/wayang/internal/logging"
	"github.com/ytget/wayang/internal/model"
	"go.uber.org/zap"
)

// DefaultFileName is the data file used when no path is configured
const DefaultFileName = "browser_data.json"

// filePermissions for the data file
const filePermissions = 0644

const indent = "  "

// Store reads and writes the browser document at a fixed path.
type Store struct {
	path   string
	mu     sync.Mutex
	logger *logging.Logger
}

// New creates a store bound to path. A nil logger discards log output.
func New(path string, logger *logging.Logger) *Store {
	if path == "" {
		path = DefaultFileName
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the data file location
func (s *Store) Path() string {
	return s.path
}

// Load reads the document. A missing, unreadable or malformed file yields
// an empty document; Load never fails.
func (s *Store) Load() model.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Debug("data file not readable, starting empty", zap.String("path", s.path), zap.Error(err))
		return model.NewDocument()
	}

	var doc model.Document
	if err := sonic.ConfigStd.Unmarshal(data, &doc); err != nil {
		s.logger.Debug("data file not decodable, starting empty", zap.String("path", s.path), zap.Error(err))
		return model.NewDocument()
	}

	doc.Normalize()
	return doc
}

// Save overwrites the file with the whole document, indented by two spaces.
func (s *Store) Save(doc model.Document) error {
	doc.Normalize()

	data, err := sonic.ConfigStd.MarshalIndent(doc, "", indent)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path, data, filePermissions); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
