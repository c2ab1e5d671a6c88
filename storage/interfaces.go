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


package storage

import (
	"context"

	"github.com/poiesic/utamaduni/core"
)

// TribeRepository persists the tribes collection as one ordered sequence.
type TribeRepository interface {
	// LoadTribes returns the full collection in insertion order.
	// Missing or unreadable data is replaced by the seed tribes and is not an error.
	// Returns ErrStorageClosed once the repository is closed.
	LoadTribes(ctx context.Context) ([]core.Tribe, error)

	// SaveTribes replaces the whole collection. Readers never observe a partial write.
	SaveTribes(ctx context.Context, tribes []core.Tribe) error

	// Close releases resources held by the repository.
	Close() error
}

// AssetRepository persists the assets collection as one ordered sequence.
type AssetRepository interface {
	// LoadAssets returns the full collection in insertion order.
	// Missing or unreadable data is replaced by an empty collection and is not an error.
	// Returns ErrStorageClosed once the repository is closed.
	LoadAssets(ctx context.Context) ([]core.Asset, error)

	// SaveAssets replaces the whole collection. Readers never observe a partial write.
	SaveAssets(ctx context.Context, assets []core.Asset) error

	// Close releases resources held by the repository.
	Close() error
}

// AttachmentStore holds the binary files attached to assets.
// References are opaque to callers.
type AttachmentStore interface {
	// Store writes data under a name derived from suggestedName and returns its reference.
	Store(ctx context.Context, data []byte, suggestedName string) (string, error)

	// Retrieve returns the bytes stored under ref.
	// Returns ErrNotFound if nothing is stored under ref.
	Retrieve(ctx context.Context, ref string) ([]byte, error)

	// Delete removes the file stored under ref.
	// Returns ErrNotFound if nothing is stored under ref.
	Delete(ctx context.Context, ref string) error

	// Count returns the number of stored files.
	Count(ctx context.Context) (int, error)
}
