package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/budgetmaster/budgetmaster/pkg/budget"
)

const (
	monthsFile  = "months.json"
	foldersFile = "folders.json"
)

// FileStore persists each collection as one JSON array on disk.
// Writes replace the whole file through a temp file and rename; the
// mutex only keeps concurrent HTTP requests from interleaving writes.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) LoadMonths(ctx context.Context) ([]budget.BudgetMonth, bool, error) {
	var months []budget.BudgetMonth
	found, err := s.readCollection(monthsFile, &months)
	return months, found, err
}

func (s *FileStore) SaveMonths(ctx context.Context, months []budget.BudgetMonth) error {
	return s.writeCollection(monthsFile, months)
}

func (s *FileStore) LoadFolders(ctx context.Context) ([]budget.Folder, bool, error) {
	var folders []budget.Folder
	found, err := s.readCollection(foldersFile, &folders)
	return folders, found, err
}

func (s *FileStore) SaveFolders(ctx context.Context, folders []budget.Folder) error {
	return s.writeCollection(foldersFile, folders)
}

// readCollection loads one collection file. A missing file means the
// collection was never stored. A file that no longer parses is treated
// the same way rather than wedging the whole app on startup.
func (s *FileStore) readCollection(name string, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		log.Warnf("Stored collection %s is not valid JSON, treating as absent: %v", name, err)
		return false, nil
	}
	return true, nil
}

func (s *FileStore) writeCollection(name string, collection any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file for %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}
