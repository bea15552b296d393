package journal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

const journalFile = "receipts.yaml"

// FileJournal appends confirmed receipts to a YAML file under the project
// data directory. The journal is advisory: it exists so operators can audit
// what this machine submitted, and a write failure never fails the
// operation that produced the receipt.
type FileJournal struct {
	path string
	log  *slog.Logger
	mu   sync.Mutex
}

// NewFileJournal creates a journal rooted at the configured data directory.
func NewFileJournal(cfg *config.RuntimeConfig, log *slog.Logger) *FileJournal {
	return &FileJournal{
		path: filepath.Join(cfg.DataDir, journalFile),
		log:  log.With("component", "journal"),
	}
}

// Append adds one entry to the journal, creating the file and its directory
// on first use.
func (j *FileJournal) Append(ctx context.Context, entry usecase.JournalEntry) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(j.path), 0755); err != nil {
		return fmt.Errorf("creating journal directory: %w", err)
	}

	entries, err := j.read()
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding journal: %w", err)
	}

	tmp := j.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing journal: %w", err)
	}
	if err := os.Rename(tmp, j.path); err != nil {
		return fmt.Errorf("replacing journal: %w", err)
	}

	j.log.Debug("journal entry appended", "action", entry.Action, "tx", entry.TxHash)
	return nil
}

// Entries returns the full journal, oldest first.
func (j *FileJournal) Entries() ([]usecase.JournalEntry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.read()
}

func (j *FileJournal) read() ([]usecase.JournalEntry, error) {
	data, err := os.ReadFile(j.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading journal: %w", err)
	}

	var entries []usecase.JournalEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding journal: %w", err)
	}
	return entries, nil
}

var _ usecase.ReceiptJournal = (*FileJournal)(nil)
