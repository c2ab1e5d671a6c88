// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package utamaduni wires configured storage backends into a cultural-heritage archive.
package utamaduni

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/poiesic/utamaduni/api"
	"github.com/poiesic/utamaduni/catalog"
	"github.com/poiesic/utamaduni/config"
	"github.com/poiesic/utamaduni/ingestion"
	"github.com/poiesic/utamaduni/search"
	"github.com/poiesic/utamaduni/storage"
	"github.com/poiesic/utamaduni/storage/badger"
	"github.com/poiesic/utamaduni/storage/jsonfile"
	"github.com/poiesic/utamaduni/storage/localfs"
	"github.com/poiesic/utamaduni/storage/minio"
)

// badgerDir is the Badger database directory under the data directory.
const badgerDir = "badger"

// Archive owns the storage backends and the catalog built on them.
type Archive struct {
	cfg         *config.Config
	backend     *badger.Backend // nil unless Storage is "badger"
	tribeRepo   storage.TribeRepository
	assetRepo   storage.AssetRepository
	attachments storage.AttachmentStore
	catalog     *catalog.Catalog
	logger      *slog.Logger
}

// ArchiveOption configures an Archive.
type ArchiveOption func(*archiveOptions)

type archiveOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger handed to every component.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) ArchiveOption {
	return func(o *archiveOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Open validates cfg and opens the configured record and attachment backends.
func Open(ctx context.Context, cfg *config.Config, opts ...ArchiveOption) (*Archive, error) {
	// Apply options
	options := &archiveOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Archive{cfg: cfg, logger: options.logger}

	if err := a.openRecords(); err != nil {
		return nil, err
	}

	if err := a.openAttachments(ctx); err != nil {
		a.Close()
		return nil, err
	}

	matcher, err := search.NewMatcher(search.WithThreshold(cfg.MatchThreshold))
	if err != nil {
		a.Close()
		return nil, err
	}

	a.catalog, err = catalog.New(a.tribeRepo, a.assetRepo, a.attachments,
		catalog.WithLogger(a.logger),
		catalog.WithMatcher(matcher))
	if err != nil {
		a.Close()
		return nil, err
	}

	a.logger.Info("archive opened",
		"storage", cfg.Storage,
		"dataDir", cfg.DataDir,
		"attachments", cfg.Attachments)
	return a, nil
}

func (a *Archive) openRecords() error {
	switch a.cfg.Storage {
	case config.StorageBadger:
		backend, err := badger.OpenBackend(filepath.Join(a.cfg.DataDir, badgerDir), false, badger.WithLogger(a.logger))
		if err != nil {
			return err
		}
		a.backend = backend
		a.tribeRepo = badger.NewTribeRepository(backend)
		a.assetRepo = badger.NewAssetRepository(backend)
	default:
		store, err := jsonfile.Open(a.cfg.DataDir, jsonfile.WithLogger(a.logger))
		if err != nil {
			return err
		}
		a.tribeRepo = store
		a.assetRepo = store
	}
	return nil
}

func (a *Archive) openAttachments(ctx context.Context) error {
	switch a.cfg.Attachments {
	case config.AttachmentsMinIO:
		store, err := minio.New(ctx, minio.Config{
			Endpoint:  a.cfg.MinIO.Endpoint,
			AccessKey: a.cfg.MinIO.AccessKey,
			SecretKey: a.cfg.MinIO.SecretKey,
			Bucket:    a.cfg.MinIO.Bucket,
			Prefix:    a.cfg.MinIO.Prefix,
			Secure:    a.cfg.MinIO.Secure,
		}, minio.WithLogger(a.logger))
		if err != nil {
			return fmt.Errorf("open attachment bucket: %w", err)
		}
		a.attachments = store
	default:
		store, err := localfs.New(a.cfg.UploadDir, localfs.WithLogger(a.logger))
		if err != nil {
			return err
		}
		a.attachments = store
	}
	return nil
}

// Close closes the record repositories and the Badger backend, if any.
func (a *Archive) Close() error {
	var errs []error

	// Close repositories
	if a.assetRepo != nil {
		if err := a.assetRepo.Close(); err != nil {
			a.logger.Error("error closing asset repository", "err", err)
			errs = append(errs, err)
		}
	}
	if a.tribeRepo != nil && any(a.tribeRepo) != any(a.assetRepo) {
		if err := a.tribeRepo.Close(); err != nil {
			a.logger.Error("error closing tribe repository", "err", err)
			errs = append(errs, err)
		}
	}

	// Close backend
	if a.backend != nil {
		if err := a.backend.Close(); err != nil {
			a.logger.Error("error closing backend storage", "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Config returns the validated configuration.
func (a *Archive) Config() *config.Config {
	return a.cfg
}

// Catalog returns the archive's catalog service.
func (a *Archive) Catalog() *catalog.Catalog {
	return a.catalog
}

// NewImportPipeline creates a bulk import pipeline sized by ImportWorkers.
// The caller must Release it.
func (a *Archive) NewImportPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	defaults := []ingestion.Option{ingestion.WithLogger(a.logger)}
	if a.cfg.ImportWorkers > 0 {
		defaults = append(defaults, ingestion.WithPoolSize(a.cfg.ImportWorkers))
	}
	return ingestion.NewPipeline(a.catalog, append(defaults, opts...)...)
}

// NewServer creates the HTTP API with the configured admin credentials.
func (a *Archive) NewServer(opts ...api.Option) (*api.Server, error) {
	defaults := []api.Option{
		api.WithLogger(a.logger),
		api.WithAdmin(a.cfg.AdminUser, a.cfg.AdminPassword),
	}
	return api.New(a.catalog, append(defaults, opts...)...)
}
