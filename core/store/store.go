package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Store defines the interface for record persistence.
type Store interface {
	// Load returns the full current record collection.
	Load(ctx context.Context) ([]Record, error)
	// Save atomically replaces the full record collection.
	Save(ctx context.Context, records []Record) error
}

// FileStore persists records as a single JSON array on disk.
type FileStore struct {
	path   string
	tmp    string
	logger *zap.Logger
}

// New creates a file-backed store. The backing file is created lazily on
// first Load or Save.
func New(cfg Config, logger *zap.Logger) *FileStore {
	return &FileStore{
		path:   cfg.Path,
		tmp:    cfg.Path + ".tmp",
		logger: logger,
	}
}

// Load re-reads the backing file and returns the full record collection.
// A missing file is initialized to an empty collection; a file that fails to
// parse is reset to an empty collection and the data loss is logged.
func (s *FileStore) Load(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ensureFile(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record store: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		s.logger.Warn("Record store is corrupted, resetting to empty",
			zap.String("path", s.path),
			zap.Error(err))
		if err := s.writeAtomic([]Record{}); err != nil {
			return nil, err
		}
		return []Record{}, nil
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// Save atomically replaces the backing file with the given collection.
// The write goes to a co-located temporary file first and is renamed over
// the primary file, so a concurrent Load never sees a partial write.
func (s *FileStore) Save(ctx context.Context, records []Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ensureDir(); err != nil {
		return err
	}
	return s.writeAtomic(records)
}

func (s *FileStore) ensureDir() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return nil
}

func (s *FileStore) ensureFile() error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat record store: %w", err)
	}
	return s.writeAtomic([]Record{})
}

func (s *FileStore) writeAtomic(records []Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	if err := os.WriteFile(s.tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write record store: %w", err)
	}
	if err := os.Rename(s.tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace record store: %w", err)
	}
	return nil
}
