package history

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
	"github.com/diegoclair/slack-doughnut-bot/internal/platform/logger"
)

// FileStore keeps one CSV file per channel in dir.
type FileStore struct {
	dir string
	log *logger.Logger
}

func NewFileStore(dir string, log *logger.Logger) *FileStore {
	return &FileStore{dir: dir, log: log}
}

func (s *FileStore) Path(channel entity.Channel) string {
	return filepath.Join(s.dir, channel.HistoryFileName())
}

// Load returns an empty history when the channel has no file yet.
func (s *FileStore) Load(ctx context.Context, channel entity.Channel) (*entity.PairingHistory, error) {
	path := s.Path(channel)

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Info("no history file found, starting fresh", "path", path)
		return entity.NewPairingHistory(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	records, rowErrs, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	for _, rowErr := range rowErrs {
		s.log.Warn("skipping malformed history row", "path", path, "error", rowErr)
	}

	return decode(records, s.log.With("path", path)), nil
}

// Save rewrites the channel file. The new content is written next to the old
// file and renamed over it so a failed write never truncates the history.
func (s *FileStore) Save(ctx context.Context, channel entity.Channel, history *entity.PairingHistory) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create history dir: %w", err)
	}

	path := s.Path(channel)
	tmp, err := os.CreateTemp(s.dir, channel.HistoryFileName()+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp history file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteRecords(tmp, encode(history)); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp history file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace history file: %w", err)
	}
	return nil
}
