package badger

import (
	"context"

	"github.com/poiesic/utamaduni/core"
	"github.com/poiesic/utamaduni/storage"
)

// TribeRepository implements storage.TribeRepository for BadgerDB.
type TribeRepository struct {
	tribes *collection[core.Tribe]
}

var _ storage.TribeRepository = (*TribeRepository)(nil)

// NewTribeRepository creates a tribe repository on backend.
// An empty database is seeded with core.DefaultTribes on first load.
func NewTribeRepository(backend *Backend) *TribeRepository {
	return &TribeRepository{
		tribes: &collection[core.Tribe]{
			backend:   backend,
			name:      "tribes",
			prefix:    tribePrefix,
			marker:    tribeMarker,
			marshal:   storage.MarshalTribe,
			unmarshal: storage.UnmarshalTribe,
			defaults:  core.DefaultTribes,
			logger:    backend.logger,
		},
	}
}

// LoadTribes returns every tribe in insertion order.
func (r *TribeRepository) LoadTribes(ctx context.Context) ([]core.Tribe, error) {
	return r.tribes.load(ctx)
}

// SaveTribes replaces the tribes collection.
func (r *TribeRepository) SaveTribes(ctx context.Context, tribes []core.Tribe) error {
	return r.tribes.save(ctx, tribes)
}

// Close is a no-op; the backend is owned by the caller.
func (r *TribeRepository) Close() error {
	return nil
}

// AssetRepository implements storage.AssetRepository for BadgerDB.
type AssetRepository struct {
	assets *collection[core.Asset]
}

var _ storage.AssetRepository = (*AssetRepository)(nil)

// NewAssetRepository creates an asset repository on backend.
func NewAssetRepository(backend *Backend) *AssetRepository {
	return &AssetRepository{
		assets: &collection[core.Asset]{
			backend:   backend,
			name:      "assets",
			prefix:    assetPrefix,
			marker:    assetMarker,
			marshal:   storage.MarshalAsset,
			unmarshal: storage.UnmarshalAsset,
			defaults:  func() []core.Asset { return []core.Asset{} },
			logger:    backend.logger,
		},
	}
}

// LoadAssets returns every asset in insertion order.
func (r *AssetRepository) LoadAssets(ctx context.Context) ([]core.Asset, error) {
	return r.assets.load(ctx)
}

// SaveAssets replaces the assets collection.
func (r *AssetRepository) SaveAssets(ctx context.Context, assets []core.Asset) error {
	return r.assets.save(ctx, assets)
}

// Close is a no-op; the backend is owned by the caller.
func (r *AssetRepository) Close() error {
	return nil
}
