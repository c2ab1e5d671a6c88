package api

import (
	"github.com/poiesic/utamaduni/catalog"
	"github.com/poiesic/utamaduni/core"
)

// assetView adds the display fields the portal renders next to an asset.
type assetView struct {
	core.Asset
	License   string         `json:"license_text"`
	MediaKind core.MediaKind `json:"media_kind,omitempty"`
}

func newAssetView(a core.Asset) assetView {
	v := assetView{Asset: a, License: a.LicenseText()}
	if a.HasAttachment() {
		v.MediaKind = core.AttachmentKind(a.AttachedFile)
	}
	return v
}

func newAssetViews(assets []core.Asset) []assetView {
	views := make([]assetView, len(assets))
	for i, a := range assets {
		views[i] = newAssetView(a)
	}
	return views
}

type tribeOverviewView struct {
	Tribe      core.Tribe  `json:"tribe"`
	AssetCount int         `json:"asset_count"`
	Recent     []assetView `json:"recent"`
}

func newTribeOverviewView(o *catalog.TribeOverview) tribeOverviewView {
	return tribeOverviewView{
		Tribe:      o.Tribe,
		AssetCount: o.AssetCount,
		Recent:     newAssetViews(o.Recent),
	}
}

type licenseView struct {
	Code core.LicenseType `json:"code"`
	Text string           `json:"text"`
}

type quickAddRequest struct {
	Name   string `json:"name"`
	Region string `json:"region"`
}
