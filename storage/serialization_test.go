package storage

import (
	"testing"
	"time"

	"github.com/poiesic/utamaduni/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalTribe(t *testing.T) {
	tests := []struct {
		name  string
		tribe *core.Tribe
	}{
		{"name only", &core.Tribe{ID: "pokot", Name: "Pokot"}},
		{"seed tribe", &core.DefaultTribes()[1]},
		{"empty tribe", &core.Tribe{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalTribe(tt.tribe)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalTribe(data)
			require.NoError(t, err)
			assert.Equal(t, tt.tribe, decoded)
		})
	}
}

func TestMarshalUnmarshalAsset(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name  string
		asset *core.Asset
	}{
		{
			name: "minimal asset",
			asset: &core.Asset{
				ID:          "0a1b2c3d",
				TribeID:     "luo",
				Title:       "Fishing Song",
				AssetType:   core.AssetTypeSong,
				LicenseType: core.LicenseCCBySA,
				DateAdded:   now,
			},
		},
		{
			name: "asset with attachment",
			asset: &core.Asset{
				ID:               "9f8e7d6c",
				TribeID:          "maasai",
				TribeName:        "Maasai",
				Region:           "Rift Valley",
				Title:            "Beadwork Colours",
				AssetType:        core.AssetTypePhotograph,
				Description:      "Necklace patterns",
				NarrativeContext: "Each colour carries meaning",
				DateRecorded:     now.Add(-48 * time.Hour),
				CustodianName:    "Naserian",
				LicenseType:      core.LicenseCustom,
				CustomTerms:      "Community use only",
				AttachedFile:     "9f8e7d6c_maasai.jpg",
				OriginalFilename: "beads.jpg",
				AttachmentDigest: core.DigestContent([]byte("beads")),
				ExternalURL:      "https://example.org/beads",
				DateAdded:        now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalAsset(tt.asset)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalAsset(data)
			require.NoError(t, err)
			assert.Equal(t, tt.asset, decoded)
		})
	}
}

func TestUnmarshal_Invalid(t *testing.T) {
	asset := MarshalAsset(&core.Asset{ID: "abc", Title: "Proverb"})

	tests := []struct {
		name string
		fn   func() error
	}{
		{"empty tribe", func() error { _, err := UnmarshalTribe([]byte{}); return err }},
		{"empty asset", func() error { _, err := UnmarshalAsset(nil); return err }},
		{"truncated asset", func() error { _, err := UnmarshalAsset(asset[:len(asset)-1]); return err }},
		{"trailing bytes", func() error { _, err := UnmarshalAsset(append(asset, 0x01)); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.fn(), ErrSerializationFailed)
		})
	}
}
