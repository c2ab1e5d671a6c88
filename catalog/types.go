package catalog

import (
	"time"

	"github.com/poiesic/utamaduni/core"
)

// SortOrder selects the date order of browse results.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// BrowseQuery selects assets for the exploration view.
type BrowseQuery struct {
	// Tribe is a tribe name as shown in FilterOptions. Empty or search.AllCommunities means any.
	Tribe string
	// Type is an asset type. Empty or search.AllTypes means any.
	Type string
	// Search is matched against title, description and narrative.
	Search string
	Sort   SortOrder
}

// TribeSubmission is a community registration.
type TribeSubmission struct {
	Name             string `json:"name"`
	AlternativeNames string `json:"alternative_names"`
	Region           string `json:"region"`
	Description      string `json:"description"`
	ContactCommunity string `json:"contact_community"`
}

// File is an uploaded attachment.
type File struct {
	Name string
	Data []byte
}

// AssetSubmission is a contribution to the archive. TribeID names an existing tribe.
type AssetSubmission struct {
	TribeID          string
	Title            string
	AssetType        core.AssetType
	Description      string
	NarrativeContext string
	DateRecorded     time.Time
	CustodianName    string
	CustodianContact string
	LicenseType      core.LicenseType
	CustomTerms      string
	ExternalURL      string
	// Attachment is optional.
	Attachment *File
}

// TribeOverview summarizes a tribe and its holdings.
type TribeOverview struct {
	Tribe      core.Tribe   `json:"tribe"`
	AssetCount int          `json:"asset_count"`
	Recent     []core.Asset `json:"recent"`
}

// FilterOptions lists the values offered by the browse filters, each led by its sentinel.
type FilterOptions struct {
	Tribes []string `json:"tribes"`
	Types  []string `json:"types"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	Tribes  int `json:"tribes"`
	Assets  int `json:"assets"`
	Uploads int `json:"uploads"`
}

// Attachment is a retrieved file with its display metadata.
type Attachment struct {
	Filename string
	Kind     core.MediaKind
	Data     []byte
}
