package social

import (
	"log/slog"
	"sync"

	"github.com/Chatternet1/Chatternet/internal/fsstore"
)

// Store owns the in-memory document and its durable mirror. Every operation
// runs the full read-mutate-save sequence under one mutex, the single
// serialization point for the whole document.
type Store struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
	doc    *Document
}

// Open loads durable state from path. Absence or a parse failure degrades
// to a fresh default document; Open never fails.
func Open(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{path: path, logger: logger}
	s.doc = s.load()
	return s
}

func (s *Store) Path() string { return s.path }

// View runs fn with the document held read-only by convention.
func (s *Store) View(fn func(doc *Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.doc)
}

// Update runs fn and persists the whole document afterwards unless fn
// returned an error, in which case nothing is written. A persistence
// failure is swallowed: it is logged at warn and the in-memory document
// stays authoritative.
func (s *Store) Update(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.doc); err != nil {
		return err
	}
	if err := fsstore.WriteJSONAtomic(s.path, s.doc); err != nil {
		s.logger.Warn("store_save_failed", "path", s.path, "error", err)
	}
	return nil
}

func (s *Store) load() *Document {
	doc := NewDocument()
	ok, err := fsstore.ReadJSON(s.path, doc)
	if err != nil {
		s.logger.Warn("store_load_failed", "path", s.path, "error", err)
		return NewDocument()
	}
	if !ok {
		return NewDocument()
	}
	doc.normalize()
	return doc
}
