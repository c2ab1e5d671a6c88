package jsonfile

import (
	"strings"
	"time"

	"github.com/poiesic/utamaduni/core"
)

// dateRecordedLayout is the on-disk form of Asset.DateRecorded.
const dateRecordedLayout = time.DateOnly

// Layouts accepted when reading timestamps, most specific first. Files written
// by earlier tooling carry local ISO timestamps without a zone.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

// assetRecord is the JSON document form of core.Asset.
type assetRecord struct {
	ID               string `json:"id"`
	TribeID          string `json:"tribe_id"`
	TribeName        string `json:"tribe_name"`
	Region           string `json:"region"`
	Title            string `json:"title"`
	AssetType        string `json:"asset_type"`
	Description      string `json:"description"`
	NarrativeContext string `json:"narrative_context"`
	DateRecorded     string `json:"date_recorded"`
	CustodianName    string `json:"custodian_name"`
	CustodianContact string `json:"custodian_contact"`
	LicenseType      string `json:"license_type"`
	CustomTerms      string `json:"custom_terms"`
	AttachedFile     string `json:"attached_file,omitempty"`
	OriginalFilename string `json:"original_filename,omitempty"`
	AttachmentDigest string `json:"attachment_digest,omitempty"`
	ExternalURL      string `json:"external_url"`
	DateAdded        string `json:"date_added"`
}

func fromAsset(a *core.Asset) assetRecord {
	return assetRecord{
		ID:               a.ID,
		TribeID:          a.TribeID,
		TribeName:        a.TribeName,
		Region:           a.Region,
		Title:            a.Title,
		AssetType:        string(a.AssetType),
		Description:      a.Description,
		NarrativeContext: a.NarrativeContext,
		DateRecorded:     formatTime(a.DateRecorded, dateRecordedLayout),
		CustodianName:    a.CustodianName,
		CustodianContact: a.CustodianContact,
		LicenseType:      string(a.LicenseType),
		CustomTerms:      a.CustomTerms,
		AttachedFile:     a.AttachedFile,
		OriginalFilename: a.OriginalFilename,
		AttachmentDigest: a.AttachmentDigest,
		ExternalURL:      a.ExternalURL,
		DateAdded:        formatTime(a.DateAdded, time.RFC3339Nano),
	}
}

func (r *assetRecord) toAsset() (core.Asset, error) {
	recorded, err := parseTime(r.DateRecorded)
	if err != nil {
		return core.Asset{}, err
	}
	added, err := parseTime(r.DateAdded)
	if err != nil {
		return core.Asset{}, err
	}
	return core.Asset{
		ID:               r.ID,
		TribeID:          r.TribeID,
		TribeName:        r.TribeName,
		Region:           r.Region,
		Title:            r.Title,
		AssetType:        core.AssetType(r.AssetType),
		Description:      r.Description,
		NarrativeContext: r.NarrativeContext,
		DateRecorded:     recorded,
		CustodianName:    r.CustodianName,
		CustodianContact: r.CustodianContact,
		LicenseType:      core.LicenseType(r.LicenseType),
		CustomTerms:      r.CustomTerms,
		AttachedFile:     r.AttachedFile,
		OriginalFilename: r.OriginalFilename,
		AttachmentDigest: r.AttachmentDigest,
		ExternalURL:      r.ExternalURL,
		DateAdded:        added,
	}, nil
}

func formatTime(ts time.Time, layout string) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(layout)
}

// parseTime reads any of timeLayouts. Values without a zone are taken as UTC.
func parseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	var err error
	for _, layout := range timeLayouts {
		var ts time.Time
		ts, err = time.Parse(layout, value)
		if err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, err
}
