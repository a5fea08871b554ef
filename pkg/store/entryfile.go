package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// EntryFile is one day's journal entry on disk.
type EntryFile struct {
	Path string
}

// Read returns the entry content. A missing file is not an error; exists
// reports whether there was one.
func (f EntryFile) Read() (content string, exists bool, err error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("store: read entry: %w", err)
	}
	return string(b), true, nil
}

// Write replaces the entry with content in one step, so an editor that
// already has the file open never sees it half written.
func (f EntryFile) Write(content string) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("store: ensure entry dir: %w", err)
	}
	if err := atomic.WriteFile(f.Path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("store: write entry: %w", err)
	}
	return nil
}
