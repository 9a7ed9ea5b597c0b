package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// JSONStore is a MemoryStore that writes the full data set to a JSON file
// after every committed mutation.
type JSONStore struct {
	*MemoryStore
	path string
}

var _ Provider = (*JSONStore)(nil)

func NewJSONStore(configPath string) *JSONStore {
	s := &JSONStore{
		MemoryStore: &MemoryStore{now: time.Now},
		path:        configPath,
	}
	s.persist = s.save
	return s
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	st := newMemoryState()
	if err := s.save(st); err != nil {
		return err
	}
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	return nil
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'tracker init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	st := &memoryState{}
	if err := json.Unmarshal(data, st); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	st.normalize()

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

// save writes st to a temporary file and renames it over the store file.
func (s *JSONStore) save(st *memoryState) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace storage: %w", err)
	}
	return nil
}
