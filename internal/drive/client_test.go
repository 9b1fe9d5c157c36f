package drive

import (
	"testing"
	"time"

	drive "google.golang.org/api/drive/v3"
)

func TestToFileInfo(t *testing.T) {
	f := &drive.File{
		Id:             "file123",
		Name:           "report.pdf",
		MimeType:       "application/pdf",
		Size:           1024,
		CreatedTime:    "2026-01-01T10:00:00Z",
		ModifiedTime:   "2026-01-02T15:30:00Z",
		WebViewLink:    "https://drive.google.com/file/d/file123/view",
		WebContentLink: "https://drive.google.com/uc?id=file123",
		Parents:        []string{"parent1"},
		Shared:         true,
		Trashed:        false,
		Owners: []*drive.User{
			{DisplayName: "Test User", EmailAddress: "test@example.com"},
		},
	}

	info := toFileInfo(f)

	if info.ID != "file123" {
		t.Errorf("expected ID file123, got %s", info.ID)
	}
	if info.Size != 1024 {
		t.Errorf("expected size 1024, got %d", info.Size)
	}
	wantCreated := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	if !info.CreatedTime.Equal(wantCreated) {
		t.Errorf("expected created time %v, got %v", wantCreated, info.CreatedTime)
	}
	if !info.Shared {
		t.Error("expected shared flag set")
	}
	if len(info.Owners) != 1 || info.Owners[0].EmailAddress != "test@example.com" {
		t.Errorf("unexpected owners: %+v", info.Owners)
	}
	if len(info.Parents) != 1 || info.Parents[0] != "parent1" {
		t.Errorf("unexpected parents: %v", info.Parents)
	}
}

func TestToFileInfoInvalidTimestamps(t *testing.T) {
	f := &drive.File{
		Id:           "file456",
		CreatedTime:  "not-a-time",
		ModifiedTime: "",
	}

	info := toFileInfo(f)

	if !info.CreatedTime.IsZero() {
		t.Error("expected zero created time for unparsable timestamp")
	}
	if !info.ModifiedTime.IsZero() {
		t.Error("expected zero modified time for empty timestamp")
	}
}

func TestExportMimeTypes(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		want     string
		exported bool
	}{
		{"google doc", "application/vnd.google-apps.document", "text/plain", true},
		{"google sheet", "application/vnd.google-apps.spreadsheet", "text/csv", true},
		{"google slides", "application/vnd.google-apps.presentation", "text/plain", true},
		{"pdf", "application/pdf", "", false},
		{"folder", FolderMimeType, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := exportMimeTypes[tt.mimeType]
			if ok != tt.exported {
				t.Fatalf("exportMimeTypes[%q] exported = %v, expected %v", tt.mimeType, ok, tt.exported)
			}
			if got != tt.want {
				t.Errorf("exportMimeTypes[%q] = %q, expected %q", tt.mimeType, got, tt.want)
			}
		})
	}
}
