package model

import "testing"

func TestDownloadStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   DownloadStatus
		expected bool
	}{
		{DownloadStatusAccepted, true},
		{DownloadStatusCompleted, false},
		{DownloadStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("DownloadStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestDownloadStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   DownloadStatus
		expected bool
	}{
		{DownloadStatusAccepted, false},
		{DownloadStatusCompleted, true},
		{DownloadStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("DownloadStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestDownloadStatus_String(t *testing.T) {
	status := DownloadStatusCompleted
	expected := "Completed"
	result := status.String()

	if result != expected {
		t.Errorf("DownloadStatus.String() = %s, expected %s", result, expected)
	}
}
