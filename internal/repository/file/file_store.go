// Package file persists the snapshot as four JSON documents in a data
// directory, one file per document.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/defective-development/ehswellnessbingo/internal/domain"
	"github.com/defective-development/ehswellnessbingo/internal/repository"
)

var _ repository.Store = (*FileStore)(nil)

const (
	usersFile      = "users.json"
	teamsFile      = "teams.json"
	promptsFile    = "prompts.json"
	teamBoardsFile = "teamBoards.json"
)

// FileStore reads and writes the whole snapshot on every operation. A
// single mutex makes each load-modify-save cycle an uninterrupted unit, so
// no two operations can interleave between read and write.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore creates the data directory if needed and seeds any missing
// document with the default catalog.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &FileStore{dir: dir}

	defaults := repository.DefaultSnapshot()
	seeds := []struct {
		name string
		v    interface{}
	}{
		{usersFile, defaults.Users},
		{teamsFile, defaults.Teams},
		{promptsFile, defaults.Prompts},
		{teamBoardsFile, defaults.TeamBoards},
	}
	for _, seed := range seeds {
		path := filepath.Join(dir, seed.name)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return nil, err
		}
		if err := writeDoc(path, seed.v); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *FileStore) Load(ctx context.Context) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) Update(ctx context.Context, fn func(*domain.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(&snap); err != nil {
		return err
	}
	return s.save(snap)
}

func (s *FileStore) load() (domain.Snapshot, error) {
	var snap domain.Snapshot
	if err := readDoc(filepath.Join(s.dir, usersFile), &snap.Users); err != nil {
		return snap, err
	}
	if err := readDoc(filepath.Join(s.dir, teamsFile), &snap.Teams); err != nil {
		return snap, err
	}
	if err := readDoc(filepath.Join(s.dir, promptsFile), &snap.Prompts); err != nil {
		return snap, err
	}
	if err := readDoc(filepath.Join(s.dir, teamBoardsFile), &snap.TeamBoards); err != nil {
		return snap, err
	}
	if snap.Users == nil {
		snap.Users = map[string]domain.User{}
	}
	if snap.Teams == nil {
		snap.Teams = map[string]domain.TeamMeta{}
	}
	if snap.Prompts == nil {
		snap.Prompts = map[string][]string{}
	}
	if snap.TeamBoards == nil {
		snap.TeamBoards = map[string]map[string]domain.TeamBoard{}
	}
	return snap, nil
}

func (s *FileStore) save(snap domain.Snapshot) error {
	if err := writeDoc(filepath.Join(s.dir, usersFile), snap.Users); err != nil {
		return err
	}
	if err := writeDoc(filepath.Join(s.dir, teamsFile), snap.Teams); err != nil {
		return err
	}
	if err := writeDoc(filepath.Join(s.dir, promptsFile), snap.Prompts); err != nil {
		return err
	}
	return writeDoc(filepath.Join(s.dir, teamBoardsFile), snap.TeamBoards)
}

func readDoc(path string, v interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeDoc(path string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
