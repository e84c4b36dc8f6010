package download

import (
	"errors"
	"testing"
	"time"

	"github.com/ytget/wayang/internal/model"
)

func TestNewService(t *testing.T) {
	service := NewService()

	if service.Len() != 0 {
		t.Errorf("Expected empty record list, got %d items", service.Len())
	}

	if len(service.All()) != 0 {
		t.Error("Expected All() to be empty")
	}
}

func TestAdd(t *testing.T) {
	service := NewService()
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	record := service.Add("https://example.com/file.zip", "/tmp/file.zip", "application/zip")

	if record.ID == "" {
		t.Error("Expected record to have an ID")
	}
	if record.Status != model.DownloadStatusAccepted {
		t.Errorf("Expected status Accepted, got %s", record.Status)
	}
	if record.Path != "/tmp/file.zip" {
		t.Errorf("Expected path '/tmp/file.zip', got '%s'", record.Path)
	}
	if !record.AcceptedAt.Equal(fixed) {
		t.Errorf("Expected AcceptedAt %v, got %v", fixed, record.AcceptedAt)
	}

	retrieved, exists := service.Get(record.ID)
	if !exists || retrieved != record {
		t.Error("Expected record to be retrievable by ID")
	}

	if _, exists := service.Get("missing"); exists {
		t.Error("Expected missing ID to not exist")
	}
}

func TestAddKeepsOrderAndDuplicates(t *testing.T) {
	service := NewService()

	service.Add("https://a.example/x", "/tmp/a", "")
	service.Add("https://b.example/y", "/tmp/b", "")
	service.Add("https://a.example/x", "/tmp/a", "")

	paths := service.Paths()
	expected := []string{"/tmp/a", "/tmp/b", "/tmp/a"}
	if len(paths) != len(expected) {
		t.Fatalf("Expected %d paths, got %d", len(expected), len(paths))
	}
	for i := range expected {
		if paths[i] != expected[i] {
			t.Errorf("Path %d: expected %s, got %s", i, expected[i], paths[i])
		}
	}

	all := service.All()
	if all[0].ID == all[2].ID {
		t.Error("Duplicate paths should still get distinct IDs")
	}
}

func TestMarkCompleted(t *testing.T) {
	service := NewService()
	record := service.Add("https://example.com/f", "/tmp/f", "")

	if err := service.MarkCompleted(record.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if record.Status != model.DownloadStatusCompleted {
		t.Errorf("Expected status Completed, got %s", record.Status)
	}
	if record.FinishedAt.IsZero() {
		t.Error("Expected FinishedAt to be set")
	}

	// A finished record cannot change again
	if err := service.MarkFailed(record.ID, errors.New("late")); err == nil {
		t.Error("Expected error when failing a completed download")
	}
}

func TestMarkFailed(t *testing.T) {
	service := NewService()
	record := service.Add("https://example.com/f", "/tmp/f", "")

	if err := service.MarkFailed(record.ID, errors.New("disk full")); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if record.Status != model.DownloadStatusError {
		t.Errorf("Expected status Error, got %s", record.Status)
	}
	if record.LastError != "disk full" {
		t.Errorf("Expected LastError 'disk full', got '%s'", record.LastError)
	}

	if err := service.MarkCompleted("missing"); err == nil {
		t.Error("Expected error for unknown ID")
	}
}

func TestUpdateCallback(t *testing.T) {
	service := NewService()

	var updates []model.DownloadStatus
	service.SetUpdateCallback(func(record *model.DownloadRecord) {
		updates = append(updates, record.Status)
	})

	record := service.Add("https://example.com/f", "/tmp/f", "")
	_ = service.MarkCompleted(record.ID)

	if len(updates) != 2 {
		t.Fatalf("Expected 2 updates, got %d", len(updates))
	}
	if updates[0] != model.DownloadStatusAccepted || updates[1] != model.DownloadStatusCompleted {
		t.Errorf("Unexpected update sequence: %v", updates)
	}
}
