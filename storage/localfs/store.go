// Package localfs stores asset attachments as files in a local upload directory.
package localfs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/poiesic/utamaduni/storage"
)

const tmpSuffix = ".upload"

// Store implements storage.AttachmentStore on a directory.
type Store struct {
	dir    string
	logger *slog.Logger
}

var _ storage.AttachmentStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New returns a store writing into dir, creating it if needed.
func New(dir string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	s := &Store{dir: dir, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Store writes data to the base name of suggestedName, replacing any file of that name.
func (s *Store) Store(ctx context.Context, data []byte, suggestedName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ref, err := storage.CleanReference(suggestedName)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(s.dir, "."+ref+".*"+tmpSuffix)
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, ref)); err != nil {
		return "", err
	}

	s.logger.Debug("stored attachment", "ref", ref, "bytes", len(data))
	return ref, nil
}

// Retrieve reads the file named ref.
func (s *Store) Retrieve(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := storage.ValidateReference(ref); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, ref))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: attachment %s", storage.ErrNotFound, ref)
	}
	return data, err
}

// Delete removes the file named ref.
func (s *Store) Delete(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := storage.ValidateReference(ref); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(s.dir, ref))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: attachment %s", storage.ErrNotFound, ref)
	}
	return err
}

// Count returns the number of stored files, ignoring uploads in progress.
func (s *Store) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || strings.HasSuffix(entry.Name(), tmpSuffix) {
			continue
		}
		count++
	}
	return count, nil
}
