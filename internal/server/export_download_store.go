package server

import (
	"sync"

	"github.com/google/uuid"
)

// exportDownloadStore maps one-time download ids to generated report files on
// disk. Entries are consumed on download.
type exportDownloadStore struct {
	mu    sync.Mutex
	files map[string]string // id -> path
}

func newExportDownloadStore() *exportDownloadStore {
	return &exportDownloadStore{
		files: make(map[string]string),
	}
}

// put registers a generated file and returns its download id
func (s *exportDownloadStore) put(path string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.files[id] = path
	return id
}

// take removes and returns the file path for an id
func (s *exportDownloadStore) take(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, ok := s.files[id]
	if ok {
		delete(s.files, id)
	}
	return path, ok
}
