package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"teamboard/pkg/log"
)

// Settings is the user-editable dashboard configuration.
type Settings struct {
	ProjectKey     string   `json:"project_key"`
	AssigneeEmails []string `json:"assignee_emails"`
}

// Store persists dashboard settings.
type Store interface {
	Get(ctx context.Context) (Settings, error)
	Put(ctx context.Context, s Settings) error
}

type fileStore struct {
	l    log.Logger
	path string
	mu   sync.Mutex
}

// NewFileStore returns a Store backed by a JSON file. A missing file
// reads as empty settings.
func NewFileStore(l log.Logger, path string) Store {
	return &fileStore{l: l, path: path}
}

func (f *fileStore) Get(ctx context.Context) (Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}

func (f *fileStore) Put(ctx context.Context, s Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	// Write-then-rename so a crash mid-write never truncates the file.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}

	f.l.Infof(ctx, "settings saved to %s", filepath.Base(f.path))
	return nil
}
