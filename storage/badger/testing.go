package badger

import "github.com/poiesic/utamaduni/storage"

// NewMemoryRepositories creates in-memory tribe and asset repositories for testing.
// Returns tribeRepo, assetRepo, backend, and error.
// Caller must close the backend when done.
func NewMemoryRepositories() (storage.TribeRepository, storage.AssetRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, err
	}

	return NewTribeRepository(backend), NewAssetRepository(backend), backend, nil
}
