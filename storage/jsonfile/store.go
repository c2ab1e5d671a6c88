package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/poiesic/utamaduni/core"
	"github.com/poiesic/utamaduni/storage"
)

// File names inside the data directory.
const (
	TribesFile = "tribes.json"
	AssetsFile = "assets.json"
)

// Store keeps each collection in its own indented JSON array.
// It implements both storage.TribeRepository and storage.AssetRepository.
type Store struct {
	dir    string
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

var (
	_ storage.TribeRepository = (*Store)(nil)
	_ storage.AssetRepository = (*Store)(nil)
)

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

// Open returns a store rooted at dir, creating the directory if needed.
func Open(dir string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	s := &Store{dir: dir, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close marks the store closed. Later calls return storage.ErrStorageClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// LoadTribes reads tribes.json, seeding it with core.DefaultTribes when missing or corrupt.
func (s *Store) LoadTribes(ctx context.Context) ([]core.Tribe, error) {
	var tribes []core.Tribe
	err := s.load(ctx, TribesFile, &tribes, func() any {
		tribes = core.DefaultTribes()
		return tribes
	})
	if err != nil {
		return nil, err
	}
	if tribes == nil {
		tribes = []core.Tribe{}
	}
	return tribes, nil
}

// SaveTribes replaces tribes.json.
func (s *Store) SaveTribes(ctx context.Context, tribes []core.Tribe) error {
	if tribes == nil {
		tribes = []core.Tribe{}
	}
	return s.save(ctx, TribesFile, tribes)
}

// LoadAssets reads assets.json, recreating it empty when missing or corrupt.
// Records whose timestamps cannot be read are skipped; the file as found is
// kept as a backup and rewritten with the remaining records.
func (s *Store) LoadAssets(ctx context.Context) ([]core.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, storage.ErrStorageClosed
	}

	var records []assetRecord
	err := s.loadLocked(AssetsFile, &records, func() any {
		records = []assetRecord{}
		return records
	})
	if err != nil {
		return nil, err
	}

	assets := make([]core.Asset, 0, len(records))
	kept := make([]assetRecord, 0, len(records))
	for i := range records {
		asset, err := records[i].toAsset()
		if err != nil {
			s.logger.Warn("skipping asset with unreadable timestamp", "file", AssetsFile, "id", records[i].ID, "err", err)
			continue
		}
		assets = append(assets, asset)
		kept = append(kept, records[i])
	}
	if len(kept) < len(records) {
		if err := s.replaceCorrupt(AssetsFile, kept); err != nil {
			return nil, err
		}
	}
	return assets, nil
}

// SaveAssets replaces assets.json.
func (s *Store) SaveAssets(ctx context.Context, assets []core.Asset) error {
	records := make([]assetRecord, 0, len(assets))
	for i := range assets {
		records = append(records, fromAsset(&assets[i]))
	}
	return s.save(ctx, AssetsFile, records)
}

// load decodes name into dst. When the file is missing or does not decode,
// defaults is called and its result written in place of the file.
func (s *Store) load(ctx context.Context, name string, dst any, defaults func() any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrStorageClosed
	}
	return s.loadLocked(name, dst, defaults)
}

// loadLocked is load with s.mu held.
func (s *Store) loadLocked(name string, dst any, defaults func() any) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		s.logger.Info("collection file not found, creating with defaults", "file", name)
		return s.writeFile(name, defaults())
	}

	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.Warn("corrupt collection file, recreating with defaults", "file", name, "err", err)
		return s.replaceCorrupt(name, defaults())
	}
	return nil
}

// replaceCorrupt moves name aside to a timestamped backup and writes value in
// its place. Called with s.mu held.
func (s *Store) replaceCorrupt(name string, value any) error {
	backup := fmt.Sprintf("%s.corrupt-%d", s.path(name), time.Now().UnixNano())
	if err := os.Rename(s.path(name), backup); err != nil {
		s.logger.Warn("could not keep corrupt collection file", "file", name, "err", err)
	} else {
		s.logger.Warn("kept corrupt collection file", "file", name, "backup", backup)
	}
	return s.writeFile(name, value)
}

func (s *Store) save(ctx context.Context, name string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrStorageClosed
	}
	return s.writeFile(name, value)
}

// writeFile encodes value to a temp file in the data directory and renames it
// over name, so readers see either the old or the new document.
func (s *Store) writeFile(name string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, s.path(name))
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}
