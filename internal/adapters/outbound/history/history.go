// Package history persists validation runs to the user's home directory.
package history

import (
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/abdidvp/addonlint/internal/domain"
)

const historyFile = "history.json"

// FileHistory implements domain.ReportHistory using JSON file storage
// under ~/.addonlint.
type FileHistory struct {
	dir string
}

// New creates a FileHistory rooted at ~/.addonlint (or .addonlint in the
// working directory when the home directory cannot be resolved).
func New() *FileHistory {
	home, err := os.UserHomeDir()
	if err != nil {
		return &FileHistory{dir: ".addonlint"}
	}
	return &FileHistory{dir: filepath.Join(home, ".addonlint")}
}

// NewAt creates a FileHistory rooted at an explicit directory.
func NewAt(dir string) *FileHistory {
	return &FileHistory{dir: dir}
}

// Save appends an entry, assigning it an id when empty.
func (h *FileHistory) Save(entry domain.HistoryEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	entries, err := h.Load()
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	if err := os.MkdirAll(h.dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(h.dir, historyFile), data, 0644)
}

// Load returns all recorded entries, oldest first.
func (h *FileHistory) Load() ([]domain.HistoryEntry, error) {
	data, err := os.ReadFile(filepath.Join(h.dir, historyFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
