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


package catalog

import (
	"log/slog"
	"sync"
	"time"

	"github.com/poiesic/utamaduni/core"
	"github.com/poiesic/utamaduni/search"
	"github.com/poiesic/utamaduni/storage"
)

// Search fields for the two browse views.
var (
	assetSearchFields = []string{core.FieldTitle, core.FieldDescription, core.FieldNarrativeContext}
	tribeSearchFields = []string{core.FieldName, core.FieldAlternativeNames, core.FieldDescription}
)

// recentAssetLimit is the number of assets shown in a tribe overview.
const recentAssetLimit = 3

// unknownTribe labels assets without a tribe name in FilterOptions.
const unknownTribe = "Unknown"

// Catalog provides the archive operations over the storage collaborators.
type Catalog struct {
	tribes      storage.TribeRepository
	assets      storage.AssetRepository
	attachments storage.AttachmentStore

	assetEngine *search.Engine[core.Asset]
	tribeEngine *search.Engine[core.Tribe]
	matcher     *search.Matcher

	now    func() time.Time
	newID  func() string
	logger *slog.Logger

	// writeMu serializes read-modify-write cycles on the collections.
	writeMu sync.Mutex
}

// Option configures a Catalog.
type Option func(*Catalog) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// WithMatcher sets the matcher used by fuzzy search.
func WithMatcher(m *search.Matcher) Option {
	return func(c *Catalog) error {
		c.matcher = m
		return nil
	}
}

// WithClock sets the time source for DateAdded.
// Default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) error {
		if now != nil {
			c.now = now
		}
		return nil
	}
}

// WithIDGenerator sets the asset ID generator.
// Default is core.NewAssetID.
func WithIDGenerator(newID func() string) Option {
	return func(c *Catalog) error {
		if newID != nil {
			c.newID = newID
		}
		return nil
	}
}

// New creates a catalog.
func New(
	tribes storage.TribeRepository,
	assets storage.AssetRepository,
	attachments storage.AttachmentStore,
	opts ...Option,
) (*Catalog, error) {
	if tribes == nil {
		return nil, ErrTribeRepositoryRequired
	}
	if assets == nil {
		return nil, ErrAssetRepositoryRequired
	}
	if attachments == nil {
		return nil, ErrAttachmentStoreRequired
	}

	c := &Catalog{
		tribes:      tribes,
		assets:      assets,
		attachments: attachments,
		now:         time.Now,
		newID:       core.NewAssetID,
		logger:      slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	engineOpts := []search.Option{search.WithLogger(c.logger), search.WithMatcher(c.matcher)}
	var err error
	if c.assetEngine, err = search.NewEngine[core.Asset](engineOpts...); err != nil {
		return nil, err
	}
	if c.tribeEngine, err = search.NewEngine[core.Tribe](engineOpts...); err != nil {
		return nil, err
	}

	return c, nil
}
