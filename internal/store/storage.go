package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage is a single string-keyed persistence slot for the serialized state.
type Storage interface {
	// Read returns the slot contents. The boolean is false when the slot
	// has never been written.
	Read() ([]byte, bool, error)
	// Write replaces the slot contents.
	Write(data []byte) error
}

// FileStorage persists the slot as one file on disk.
type FileStorage struct {
	path string
}

// NewFileStorage creates a FileStorage at the given path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Read implements Storage.
func (f *FileStorage) Read() ([]byte, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read state file: %w", err)
	}
	return data, true, nil
}

// Write implements Storage. The write goes through a temp file and rename so
// a crash mid-write cannot corrupt the slot.
func (f *FileStorage) Write(data []byte) error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".bank-agent-state-*")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close state file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

// MemoryStorage is an in-memory slot, used by tests.
type MemoryStorage struct {
	data    []byte
	written bool
	// FailWrites makes every Write return an error, to exercise the
	// degraded in-memory-only path.
	FailWrites bool
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Read implements Storage.
func (m *MemoryStorage) Read() ([]byte, bool, error) {
	if !m.written {
		return nil, false, nil
	}
	return m.data, true, nil
}

// Write implements Storage.
func (m *MemoryStorage) Write(data []byte) error {
	if m.FailWrites {
		return errors.New("storage quota exceeded")
	}
	m.data = append([]byte(nil), data...)
	m.written = true
	return nil
}
