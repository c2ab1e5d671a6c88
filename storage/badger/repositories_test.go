package badger

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/utamaduni/core"
	"github.com/poiesic/utamaduni/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTribeRepository_SeedsOnFirstLoad(t *testing.T) {
	tribeRepo, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	tribes, err := tribeRepo.LoadTribes(ctx)
	require.NoError(t, err)
	assert.Equal(t, core.DefaultTribes(), tribes)

	// Second load reads what the first one wrote.
	again, err := tribeRepo.LoadTribes(ctx)
	require.NoError(t, err)
	assert.Equal(t, tribes, again)
}

func TestAssetRepository_EmptyOnFirstLoad(t *testing.T) {
	_, assetRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	assets, err := assetRepo.LoadAssets(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, assets)
	assert.Empty(t, assets)
}

func TestTribeRepository_SaveEmptyIsNotReseeded(t *testing.T) {
	tribeRepo, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	require.NoError(t, tribeRepo.SaveTribes(ctx, []core.Tribe{}))

	tribes, err := tribeRepo.LoadTribes(ctx)
	require.NoError(t, err)
	assert.Empty(t, tribes)
}

func TestAssetRepository_SaveLoadPreservesOrder(t *testing.T) {
	_, assetRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	// More than 256 records so ordering crosses a byte boundary in the key.
	assets := make([]core.Asset, 300)
	for i := range assets {
		assets[i] = core.Asset{
			ID:          fmt.Sprintf("%08d", 300-i),
			TribeID:     "luo",
			Title:       fmt.Sprintf("Story %d", i),
			AssetType:   core.AssetTypeOralHistoryAudio,
			LicenseType: core.LicenseCCByNCND,
			DateAdded:   now.Add(time.Duration(i) * time.Second),
		}
	}
	require.NoError(t, assetRepo.SaveAssets(ctx, assets))

	loaded, err := assetRepo.LoadAssets(ctx)
	require.NoError(t, err)
	assert.Equal(t, assets, loaded)
}

func TestAssetRepository_SaveReplacesCollection(t *testing.T) {
	_, assetRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	three := []core.Asset{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}, {ID: "3", Title: "c"}}
	require.NoError(t, assetRepo.SaveAssets(ctx, three))

	one := []core.Asset{{ID: "2", Title: "b"}}
	require.NoError(t, assetRepo.SaveAssets(ctx, one))

	loaded, err := assetRepo.LoadAssets(ctx)
	require.NoError(t, err)
	assert.Equal(t, one, loaded)
}

func TestCollections_AreIndependent(t *testing.T) {
	tribeRepo, assetRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	require.NoError(t, assetRepo.SaveAssets(ctx, []core.Asset{{ID: "x"}}))
	require.NoError(t, tribeRepo.SaveTribes(ctx, []core.Tribe{{ID: "pokot", Name: "Pokot"}}))

	assets, err := assetRepo.LoadAssets(ctx)
	require.NoError(t, err)
	assert.Len(t, assets, 1)

	tribes, err := tribeRepo.LoadTribes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []core.Tribe{{ID: "pokot", Name: "Pokot"}}, tribes)
}

func TestTribeRepository_CorruptDataIsRecreated(t *testing.T) {
	tribeRepo, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	require.NoError(t, tribeRepo.SaveTribes(ctx, []core.Tribe{{ID: "pokot", Name: "Pokot"}}))

	err = backend.WithTx(func(tx *badger.Txn) error {
		gen, ok, err := tribeRepo.(*TribeRepository).tribes.readGeneration(tx)
		require.NoError(t, err)
		require.True(t, ok)
		if err := tx.Set(makePositionKey(tribePrefix, gen, 1), []byte{0xff}); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	require.NoError(t, err)

	tribes, err := tribeRepo.LoadTribes(ctx)
	require.NoError(t, err)
	assert.Equal(t, core.DefaultTribes(), tribes)

	again, err := tribeRepo.LoadTribes(ctx)
	require.NoError(t, err)
	assert.Equal(t, core.DefaultTribes(), again)
}

func TestRepositories_Closed(t *testing.T) {
	tribeRepo, assetRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	ctx := context.Background()
	_, err = tribeRepo.LoadTribes(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = assetRepo.SaveAssets(ctx, nil)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestRepositories_CancelledContext(t *testing.T) {
	tribeRepo, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = tribeRepo.LoadTribes(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRepositories_PersistAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	backend, err := OpenBackend(dir, false)
	require.NoError(t, err)
	assets := []core.Asset{{ID: "abc", TribeID: "meru", Title: "Njuri Ncheke Oath", AssetType: core.AssetTypeRitualDescription}}
	require.NoError(t, NewAssetRepository(backend).SaveAssets(ctx, assets))
	require.NoError(t, backend.Close())

	backend, err = OpenBackend(dir, false)
	require.NoError(t, err)
	defer backend.Close()

	loaded, err := NewAssetRepository(backend).LoadAssets(ctx)
	require.NoError(t, err)
	assert.Equal(t, assets, loaded)
}

// recordKeys counts the keys stored under a collection prefix.
func recordKeys(t *testing.T, backend *Backend, prefix string) int {
	t.Helper()
	count := 0
	err := backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()
		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	require.NoError(t, err)
	return count
}

func TestAssetRepository_SaveBeyondTransactionLimit(t *testing.T) {
	_, assetRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	narrative := strings.Repeat("Told at the fireside by the elders of the clan. ", 200)
	assets := make([]core.Asset, 2000)
	for i := range assets {
		assets[i] = core.Asset{
			ID:               fmt.Sprintf("a%04d", i),
			Title:            fmt.Sprintf("Story %d", i),
			AssetType:        core.AssetTypeOralHistoryAudio,
			NarrativeContext: narrative,
			DateAdded:        time.Date(2025, 1, 1, 0, 0, i, 0, time.UTC),
		}
	}
	require.NoError(t, assetRepo.SaveAssets(ctx, assets))

	loaded, err := assetRepo.LoadAssets(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, len(assets))
	assert.Equal(t, assets[0], loaded[0])
	assert.Equal(t, assets[len(assets)-1], loaded[len(loaded)-1])
	assert.Equal(t, len(assets), recordKeys(t, backend, assetPrefix))

	// The previous generation is removed once the new one is live.
	small := []core.Asset{{ID: "only", Title: "Proverb"}}
	require.NoError(t, assetRepo.SaveAssets(ctx, small))
	loaded, err = assetRepo.LoadAssets(ctx)
	require.NoError(t, err)
	assert.Equal(t, small, loaded)
	assert.Equal(t, 1, recordKeys(t, backend, assetPrefix))
}

func TestAssetRepository_InterruptedSaveIsIgnored(t *testing.T) {
	_, assetRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	require.NoError(t, assetRepo.SaveAssets(ctx, []core.Asset{{ID: "1"}}))

	// Records staged for the next generation without the marker moving.
	var gen uint64
	err = backend.WithTx(func(tx *badger.Txn) error {
		var err error
		gen, _, err = assetRepo.(*AssetRepository).assets.readGeneration(tx)
		return err
	}, false)
	require.NoError(t, err)
	err = backend.WithBatch(func(wb *badger.WriteBatch) error {
		for i := 0; i < 3; i++ {
			if err := wb.Set(makePositionKey(assetPrefix, gen+1, i), storage.MarshalAsset(&core.Asset{ID: "stray"})); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	loaded, err := assetRepo.LoadAssets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []core.Asset{{ID: "1"}}, loaded)

	require.NoError(t, assetRepo.SaveAssets(ctx, []core.Asset{{ID: "2"}}))
	loaded, err = assetRepo.LoadAssets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []core.Asset{{ID: "2"}}, loaded)
	assert.Equal(t, 1, recordKeys(t, backend, assetPrefix))
}
