package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/poiesic/utamaduni/core"
	"github.com/poiesic/utamaduni/search"
	"github.com/poiesic/utamaduni/storage"
	"github.com/poiesic/utamaduni/storage/badger"
	"github.com/poiesic/utamaduni/storage/localfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 9, 24, 7, 0, 0, 0, time.UTC)

type testEnv struct {
	catalog   *Catalog
	uploadDir string
}

// newTestCatalog returns a catalog over in-memory Badger repositories and a
// temporary upload directory. The clock advances one minute per asset and IDs
// are asset-001, asset-002, ...
func newTestCatalog(t *testing.T) *testEnv {
	t.Helper()

	tribes, assets, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	uploadDir := t.TempDir()
	attachments, err := localfs.New(uploadDir)
	require.NoError(t, err)

	var ticks, ids int
	c, err := New(tribes, assets, attachments,
		WithClock(func() time.Time {
			ticks++
			return baseTime.Add(time.Duration(ticks) * time.Minute)
		}),
		WithIDGenerator(func() string {
			ids++
			return fmt.Sprintf("asset-%03d", ids)
		}),
	)
	require.NoError(t, err)

	return &testEnv{catalog: c, uploadDir: uploadDir}
}

func submission(tribeID, title string, assetType core.AssetType) AssetSubmission {
	return AssetSubmission{
		TribeID:          tribeID,
		Title:            title,
		AssetType:        assetType,
		Description:      "Recorded for the archive",
		NarrativeContext: "Shared by an elder",
		LicenseType:      core.LicenseCCByNCSA,
	}
}

func mustSubmit(t *testing.T, c *Catalog, sub AssetSubmission) *core.Asset {
	t.Helper()
	asset, err := c.SubmitAsset(context.Background(), sub)
	require.NoError(t, err)
	return asset
}

func assetIDs(assets []core.Asset) []string {
	ids := make([]string, len(assets))
	for i, a := range assets {
		ids[i] = a.ID
	}
	return ids
}

func TestNew_RequiresCollaborators(t *testing.T) {
	tribes, assets, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()
	attachments, err := localfs.New(t.TempDir())
	require.NoError(t, err)

	_, err = New(nil, assets, attachments)
	assert.ErrorIs(t, err, ErrTribeRepositoryRequired)

	_, err = New(tribes, nil, attachments)
	assert.ErrorIs(t, err, ErrAssetRepositoryRequired)

	_, err = New(tribes, assets, nil)
	assert.ErrorIs(t, err, ErrAttachmentStoreRequired)
}

func TestListTribes_Seeded(t *testing.T) {
	env := newTestCatalog(t)

	tribes, err := env.catalog.ListTribes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, core.DefaultTribes(), tribes)
}

func TestSubmitTribe(t *testing.T) {
	env := newTestCatalog(t)
	ctx := context.Background()

	tribe, err := env.catalog.SubmitTribe(ctx, TribeSubmission{
		Name:        "  El Molo ",
		Region:      "Lake Turkana",
		Description: "Fishing community on the shores of Lake Turkana",
	})
	require.NoError(t, err)
	assert.Equal(t, "el_molo", tribe.ID)
	assert.Equal(t, "El Molo", tribe.Name)

	tribes, err := env.catalog.ListTribes(ctx)
	require.NoError(t, err)
	require.Len(t, tribes, 9)
	assert.Equal(t, *tribe, tribes[8])

	got, err := env.catalog.GetTribe(ctx, "el_molo")
	require.NoError(t, err)
	assert.Equal(t, "Lake Turkana", got.Region)
}

func TestSubmitTribe_Duplicate(t *testing.T) {
	env := newTestCatalog(t)

	_, err := env.catalog.SubmitTribe(context.Background(), TribeSubmission{
		Name:        "kikuyu",
		Region:      "Central Kenya",
		Description: "Duplicate of a seeded community",
	})
	assert.ErrorIs(t, err, ErrDuplicateTribe)

	tribes, err := env.catalog.ListTribes(context.Background())
	require.NoError(t, err)
	assert.Len(t, tribes, 8)
}

func TestSubmitTribe_Validation(t *testing.T) {
	env := newTestCatalog(t)

	_, err := env.catalog.SubmitTribe(context.Background(), TribeSubmission{
		Name:        "Pokot",
		Description: "Pastoralists of the north rift",
	})
	assert.ErrorIs(t, err, core.ErrInvalidTribe)
	assert.ErrorIs(t, err, core.ErrEmptyRegion)
}

func TestAddTribe(t *testing.T) {
	env := newTestCatalog(t)
	ctx := context.Background()

	tribe, err := env.catalog.AddTribe(ctx, "Mijikenda Giriama", "")
	require.NoError(t, err)
	assert.Equal(t, "mijikenda_giriama", tribe.ID)
	assert.Empty(t, tribe.Description)

	_, err = env.catalog.AddTribe(ctx, "MIJIKENDA GIRIAMA", "Coast")
	assert.ErrorIs(t, err, ErrDuplicateTribe)

	_, err = env.catalog.AddTribe(ctx, " ", "Coast")
	assert.ErrorIs(t, err, core.ErrEmptyName)
}

func TestDeleteTribe_OrphansAssets(t *testing.T) {
	env := newTestCatalog(t)
	ctx := context.Background()

	asset := mustSubmit(t, env.catalog, submission("luo", "Fishing Song", core.AssetTypeSong))

	require.NoError(t, env.catalog.DeleteTribe(ctx, "luo"))

	_, err := env.catalog.GetTribe(ctx, "luo")
	assert.ErrorIs(t, err, ErrTribeNotFound)

	kept, err := env.catalog.GetAsset(ctx, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, "luo", kept.TribeID)
	assert.Equal(t, "Luo", kept.TribeName)

	assert.ErrorIs(t, env.catalog.DeleteTribe(ctx, "luo"), ErrTribeNotFound)
}

func TestSearchAndSuggestTribes(t *testing.T) {
	env := newTestCatalog(t)
	ctx := context.Background()

	all, err := env.catalog.SearchTribes(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 8)

	found, err := env.catalog.SearchTribes(ctx, "Jaluo")
	require.NoError(t, err)
	require.NotEmpty(t, found)
	assert.Contains(t, found, core.DefaultTribes()[2])

	names, err := env.catalog.SuggestTribes(ctx, "kuy", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kikuyu"}, names)
}

func TestSubmitAsset_Denormalizes(t *testing.T) {
	env := newTestCatalog(t)

	sub := submission("kikuyu", "Harvest Song", core.AssetTypeSong)
	sub.DateRecorded = time.Date(1998, 3, 1, 0, 0, 0, 0, time.UTC)
	asset := mustSubmit(t, env.catalog, sub)

	assert.Equal(t, "asset-001", asset.ID)
	assert.Equal(t, "Kikuyu", asset.TribeName)
	assert.Equal(t, "Central Kenya", asset.Region)
	assert.Equal(t, baseTime.Add(time.Minute), asset.DateAdded)
	assert.False(t, asset.HasAttachment())

	stored, err := env.catalog.GetAsset(context.Background(), asset.ID)
	require.NoError(t, err)
	assert.Equal(t, *asset, *stored)
}

func TestSubmitAsset_Errors(t *testing.T) {
	env := newTestCatalog(t)

	_, err := env.catalog.SubmitAsset(context.Background(), submission("pokot", "Cattle Song", core.AssetTypeSong))
	assert.ErrorIs(t, err, ErrTribeNotFound)

	sub := submission("luo", "", core.AssetTypeSong)
	_, err = env.catalog.SubmitAsset(context.Background(), sub)
	assert.ErrorIs(t, err, core.ErrInvalidAsset)
	assert.ErrorIs(t, err, core.ErrEmptyTitle)

	sub = submission("luo", "Installer", core.AssetTypeOther)
	sub.Attachment = &File{Name: "setup.exe", Data: []byte("MZ")}
	_, err = env.catalog.SubmitAsset(context.Background(), sub)
	assert.ErrorIs(t, err, core.ErrUnsupportedAttachment)

	entries, err := os.ReadDir(env.uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSubmitAsset_WithAttachment(t *testing.T) {
	env := newTestCatalog(t)
	ctx := context.Background()
	data := []byte("ID3 nyatiti recording")

	sub := submission("luo", "Fishing Song", core.AssetTypeSong)
	sub.Attachment = &File{Name: "Lake Song.MP3", Data: data}
	asset := mustSubmit(t, env.catalog, sub)

	assert.Equal(t, "asset-001_luo.mp3", asset.AttachedFile)
	assert.Equal(t, "Lake Song.MP3", asset.OriginalFilename)
	assert.Equal(t, core.DigestContent(data), asset.AttachmentDigest)

	att, err := env.catalog.OpenAttachment(ctx, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, data, att.Data)
	assert.Equal(t, "Lake Song.MP3", att.Filename)
	assert.Equal(t, core.MediaAudio, att.Kind)
}

func TestOpenAttachment_Errors(t *testing.T) {
	env := newTestCatalog(t)
	ctx := context.Background()

	plain := mustSubmit(t, env.catalog, submission("luo", "Fishing Song", core.AssetTypeSong))
	_, err := env.catalog.OpenAttachment(ctx, plain.ID)
	assert.ErrorIs(t, err, ErrNoAttachment)

	_, err = env.catalog.OpenAttachment(ctx, "missing")
	assert.ErrorIs(t, err, ErrAssetNotFound)

	sub := submission("maasai", "Beadwork Patterns", core.AssetTypePhotograph)
	sub.Attachment = &File{Name: "beads.png", Data: []byte("original")}
	withFile := mustSubmit(t, env.catalog, sub)

	require.NoError(t, os.WriteFile(filepath.Join(env.uploadDir, withFile.AttachedFile), []byte("tampered"), 0644))
	_, err = env.catalog.OpenAttachment(ctx, withFile.ID)
	assert.ErrorIs(t, err, ErrAttachmentCorrupt)

	require.NoError(t, os.Remove(filepath.Join(env.uploadDir, withFile.AttachedFile)))
	_, err = env.catalog.OpenAttachment(ctx, withFile.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestBrowseAssets(t *testing.T) {
	env := newTestCatalog(t)
	ctx := context.Background()

	fishing := mustSubmit(t, env.catalog, submission("luo", "Fishing Song", core.AssetTypeSong))
	harvest := mustSubmit(t, env.catalog, submission("kikuyu", "Harvest Song", core.AssetTypeSong))
	lesson := mustSubmit(t, env.catalog, AssetSubmission{
		TribeID:          "luo",
		Title:            "Nyatiti Tuning",
		AssetType:        core.AssetTypeLanguageLesson,
		Description:      "Lyre tuning drill",
		NarrativeContext: "Taught by a Bondo elder",
		LicenseType:      core.LicenseCCBySA,
	})

	tests := []struct {
		name  string
		query BrowseQuery
		want  []string
	}{
		{
			name:  "everything newest first",
			query: BrowseQuery{},
			want:  []string{lesson.ID, harvest.ID, fishing.ID},
		},
		{
			name:  "oldest first",
			query: BrowseQuery{Sort: SortOldest},
			want:  []string{fishing.ID, harvest.ID, lesson.ID},
		},
		{
			name:  "sentinels mean any",
			query: BrowseQuery{Tribe: search.AllCommunities, Type: search.AllTypes, Sort: SortOldest},
			want:  []string{fishing.ID, harvest.ID, lesson.ID},
		},
		{
			name:  "tribe filter",
			query: BrowseQuery{Tribe: "Luo"},
			want:  []string{lesson.ID, fishing.ID},
		},
		{
			name:  "type filter",
			query: BrowseQuery{Type: string(core.AssetTypeSong), Sort: SortOldest},
			want:  []string{fishing.ID, harvest.ID},
		},
		{
			name:  "filter and search",
			query: BrowseQuery{Tribe: "Luo", Search: "Fishing Song"},
			want:  []string{fishing.ID},
		},
		{
			name:  "no match",
			query: BrowseQuery{Tribe: "Maasai"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := env.catalog.BrowseAssets(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, assetIDs(got))
		})
	}
}

func TestFilterOptions(t *testing.T) {
	env := newTestCatalog(t)
	ctx := context.Background()

	opts, err := env.catalog.FilterOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{search.AllCommunities}, opts.Tribes)
	assert.Equal(t, []string{search.AllTypes}, opts.Types)

	mustSubmit(t, env.catalog, submission("luo", "Fishing Song", core.AssetTypeSong))
	mustSubmit(t, env.catalog, submission("kikuyu", "Harvest Song", core.AssetTypeSong))
	mustSubmit(t, env.catalog, submission("luo", "Nyatiti Tuning", core.AssetTypeLanguageLesson))

	opts, err = env.catalog.FilterOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{search.AllCommunities, "Kikuyu", "Luo"}, opts.Tribes)
	assert.Equal(t, []string{search.AllTypes, "Language Lesson", "Song"}, opts.Types)
}

func TestFilterOptions_UnknownTribeName(t *testing.T) {
	tribes, assets, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()
	attachments, err := localfs.New(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, assets.SaveAssets(ctx, []core.Asset{
		{ID: "legacy", Title: "Untagged", AssetType: core.AssetTypeOther},
	}))

	c, err := New(tribes, assets, attachments)
	require.NoError(t, err)

	opts, err := c.FilterOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{search.AllCommunities, "Unknown"}, opts.Tribes)
}

func TestTribeOverview(t *testing.T) {
	env := newTestCatalog(t)
	ctx := context.Background()

	var luo []string
	for i := range 4 {
		a := mustSubmit(t, env.catalog, submission("luo", fmt.Sprintf("Song %d", i), core.AssetTypeSong))
		luo = append(luo, a.ID)
		mustSubmit(t, env.catalog, submission("kamba", fmt.Sprintf("Carving %d", i), core.AssetTypeCraftInstructions))
	}

	overview, err := env.catalog.TribeOverview(ctx, "luo")
	require.NoError(t, err)
	assert.Equal(t, "Luo", overview.Tribe.Name)
	assert.Equal(t, 4, overview.AssetCount)
	assert.Equal(t, luo[:3], assetIDs(overview.Recent))

	empty, err := env.catalog.TribeOverview(ctx, "meru")
	require.NoError(t, err)
	assert.Zero(t, empty.AssetCount)
	assert.Empty(t, empty.Recent)

	_, err = env.catalog.TribeOverview(ctx, "pokot")
	assert.ErrorIs(t, err, ErrTribeNotFound)
}

func TestDeleteAsset(t *testing.T) {
	env := newTestCatalog(t)
	ctx := context.Background()

	sub := submission("luo", "Fishing Song", core.AssetTypeSong)
	sub.Attachment = &File{Name: "song.ogg", Data: []byte("ogg")}
	doomed := mustSubmit(t, env.catalog, sub)
	kept := mustSubmit(t, env.catalog, submission("luo", "Fishing Song", core.AssetTypeSong))

	require.NoError(t, env.catalog.DeleteAsset(ctx, doomed.ID))

	_, err := env.catalog.GetAsset(ctx, doomed.ID)
	assert.ErrorIs(t, err, ErrAssetNotFound)
	_, err = env.catalog.GetAsset(ctx, kept.ID)
	assert.NoError(t, err, "assets sharing a title are not removed")

	_, err = os.Stat(filepath.Join(env.uploadDir, doomed.AttachedFile))
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.ErrorIs(t, env.catalog.DeleteAsset(ctx, doomed.ID), ErrAssetNotFound)
}

func TestAppendAssets_PreservesOrder(t *testing.T) {
	env := newTestCatalog(t)
	ctx := context.Background()

	var batch []core.Asset
	for _, title := range []string{"First", "Second", "Third"} {
		a, err := env.catalog.PrepareAsset(ctx, submission("samburu", title, core.AssetTypeProverb))
		require.NoError(t, err)
		batch = append(batch, a)
	}

	stored, err := env.catalog.BrowseAssets(ctx, BrowseQuery{})
	require.NoError(t, err)
	assert.Empty(t, stored, "prepare does not persist")

	require.NoError(t, env.catalog.AppendAssets(ctx, batch...))
	require.NoError(t, env.catalog.AppendAssets(ctx))

	stored, err = env.catalog.BrowseAssets(ctx, BrowseQuery{Sort: SortOldest})
	require.NoError(t, err)
	assert.Equal(t, []string{"asset-001", "asset-002", "asset-003"}, assetIDs(stored))
}

func TestStats(t *testing.T) {
	env := newTestCatalog(t)
	ctx := context.Background()

	sub := submission("meru", "Njuri Ncheke Gathering", core.AssetTypeCeremonyRecording)
	sub.Attachment = &File{Name: "gathering.mp4", Data: []byte("mp4")}
	mustSubmit(t, env.catalog, sub)
	mustSubmit(t, env.catalog, submission("meru", "Miraa Proverb", core.AssetTypeProverb))

	stats, err := env.catalog.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Stats{Tribes: 8, Assets: 2, Uploads: 1}, stats)
}
