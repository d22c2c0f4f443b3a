package social

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenMissingFile(t *testing.T) {
	t.Parallel()

	store := Open(filepath.Join(t.TempDir(), "data.json"), testLogger())
	store.View(func(doc *Document) {
		if doc.Users == nil || doc.Posts == nil || doc.Messages == nil || doc.Polls == nil ||
			doc.Blogs == nil || doc.Media == nil || doc.Groups == nil || doc.Events == nil {
			t.Fatalf("Open() missing collections: %+v", doc)
		}
		if len(doc.Users) != 0 || len(doc.Events) != 0 {
			t.Fatalf("Open() collections not empty: %+v", doc)
		}
	})
}

func TestOpenCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte("{definitely not json"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	store := Open(path, testLogger())
	store.View(func(doc *Document) {
		if len(doc.Users) != 0 || doc.Users == nil {
			t.Fatalf("Open() on corrupt file: users = %v", doc.Users)
		}
	})
}

func TestOpenFillsMissingCollections(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.json")
	partial := `{"users":[{"id":"1","email":"a@x.com"}]}`
	if err := os.WriteFile(path, []byte(partial), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	store := Open(path, testLogger())
	store.View(func(doc *Document) {
		if len(doc.Users) != 1 {
			t.Fatalf("Open() users = %d, want 1", len(doc.Users))
		}
		if doc.Messages == nil || doc.Events == nil || doc.Groups == nil {
			t.Fatalf("Open() did not fill missing collections")
		}
	})
}

func TestUpdatePersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.json")
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	store := Open(path, testLogger())
	err := store.Update(func(doc *Document) error {
		_, signupErr := Signup(doc, "a@x.com", "pw", "Ada", now)
		return signupErr
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	reopened := Open(path, testLogger())
	reopened.View(func(doc *Document) {
		if len(doc.Users) != 1 || doc.Users[0].Email != "a@x.com" {
			t.Fatalf("reopened users = %+v", doc.Users)
		}
	})
}

func TestUpdateSaveWritesAllCollections(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.json")
	store := Open(path, testLogger())
	if err := store.Update(func(doc *Document) error { return nil }); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	for _, key := range []string{"users", "posts", "messages", "polls", "blogs", "media", "groups", "events"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("saved document missing collection %q", key)
		}
	}
}

func TestUpdateErrorSkipsSave(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.json")
	store := Open(path, testLogger())

	wantErr := errors.New("validation failed")
	err := store.Update(func(doc *Document) error { return wantErr })
	if !errors.Is(err, wantErr) {
		t.Fatalf("Update() error = %v, want %v", err, wantErr)
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("Update() wrote the document despite the error")
	}
}

func TestUpdateSwallowsSaveFailure(t *testing.T) {
	t.Parallel()

	// Parent of the data path is a regular file, so every save fails.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	store := Open(filepath.Join(blocker, "data.json"), testLogger())

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	err := store.Update(func(doc *Document) error {
		_, signupErr := Signup(doc, "a@x.com", "pw", "Ada", now)
		return signupErr
	})
	if err != nil {
		t.Fatalf("Update() error = %v, want swallowed persistence failure", err)
	}

	// In-memory state stays authoritative.
	store.View(func(doc *Document) {
		if len(doc.Users) != 1 {
			t.Fatalf("in-memory users = %d, want 1", len(doc.Users))
		}
	})
}
