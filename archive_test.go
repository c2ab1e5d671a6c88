package utamaduni

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/utamaduni/catalog"
	"github.com/poiesic/utamaduni/config"
	"github.com/poiesic/utamaduni/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, storage string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Storage = storage
	cfg.DataDir = filepath.Join(dir, "data")
	cfg.UploadDir = filepath.Join(dir, "uploads")
	return cfg
}

func TestOpen(t *testing.T) {
	for _, storage := range []string{config.StorageJSON, config.StorageBadger} {
		t.Run(storage, func(t *testing.T) {
			archive, err := Open(context.Background(), testConfig(t, storage))
			require.NoError(t, err)
			require.NotNil(t, archive)
			defer archive.Close()

			assert.NotNil(t, archive.Catalog())
			assert.NotNil(t, archive.logger)
			assert.Equal(t, storage == config.StorageBadger, archive.backend != nil)

			tribes, err := archive.Catalog().ListTribes(context.Background())
			require.NoError(t, err)
			assert.Len(t, tribes, 8)
		})
	}
}

func TestOpen_Errors(t *testing.T) {
	t.Run("invalid config", func(t *testing.T) {
		cfg := testConfig(t, "sqlite")
		archive, err := Open(context.Background(), cfg)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.Nil(t, archive)
	})

	t.Run("data dir is a file", func(t *testing.T) {
		cfg := testConfig(t, config.StorageBadger)
		require.NoError(t, os.MkdirAll(cfg.DataDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(cfg.DataDir, badgerDir), []byte("test"), 0644))

		archive, err := Open(context.Background(), cfg)
		assert.Error(t, err)
		assert.Nil(t, archive)
	})
}

func TestArchive_PersistsAcrossReopen(t *testing.T) {
	for _, storage := range []string{config.StorageJSON, config.StorageBadger} {
		t.Run(storage, func(t *testing.T) {
			cfg := testConfig(t, storage)
			ctx := context.Background()

			archive, err := Open(ctx, cfg)
			require.NoError(t, err)
			asset, err := archive.Catalog().SubmitAsset(ctx, catalog.AssetSubmission{
				TribeID:          "kamba",
				Title:            "Carving a Stool",
				AssetType:        core.AssetTypeCraftInstructions,
				Description:      "Steps for carving a three-legged stool",
				NarrativeContext: "Taught in Wamunyu",
				LicenseType:      core.LicenseCCBySA,
				Attachment:       &catalog.File{Name: "stool.pdf", Data: []byte("%PDF")},
			})
			require.NoError(t, err)
			require.NoError(t, archive.Close())

			reopened, err := Open(ctx, cfg)
			require.NoError(t, err)
			defer reopened.Close()

			got, err := reopened.Catalog().GetAsset(ctx, asset.ID)
			require.NoError(t, err)
			assert.Equal(t, "Kamba", got.TribeName)

			att, err := reopened.Catalog().OpenAttachment(ctx, asset.ID)
			require.NoError(t, err)
			assert.Equal(t, []byte("%PDF"), att.Data)
		})
	}
}

func TestArchive_FactoryMethods(t *testing.T) {
	cfg := testConfig(t, config.StorageJSON)
	cfg.ImportWorkers = 2
	cfg.AdminPassword = "s3cret"

	archive, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer archive.Close()

	t.Run("can create import pipeline", func(t *testing.T) {
		pipeline, err := archive.NewImportPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("can create server", func(t *testing.T) {
		server, err := archive.NewServer()
		require.NoError(t, err)
		assert.True(t, server.AdminEnabled())

		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tribes", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
