package core

//go:generate go run ../cmd/musgen

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
	"github.com/google/uuid"
)

// Field names shared by the catalog query engine, the JSON store and the HTTP API.
const (
	FieldID               = "id"
	FieldName             = "name"
	FieldAlternativeNames = "alternative_names"
	FieldRegion           = "region"
	FieldDescription      = "description"
	FieldContactCommunity = "contact_community"

	FieldTribeID          = "tribe_id"
	FieldTribeName        = "tribe_name"
	FieldTitle            = "title"
	FieldAssetType        = "asset_type"
	FieldNarrativeContext = "narrative_context"
	FieldDateRecorded     = "date_recorded"
	FieldCustodianName    = "custodian_name"
	FieldCustodianContact = "custodian_contact"
	FieldLicenseType      = "license_type"
	FieldCustomTerms      = "custom_terms"
	FieldAttachedFile     = "attached_file"
	FieldOriginalFilename = "original_filename"
	FieldAttachmentDigest = "attachment_digest"
	FieldExternalURL      = "external_url"
	FieldDateAdded        = "date_added"
)

// sortableTime is fixed width so lexical order equals chronological order for UTC values.
const sortableTime = "2006-01-02T15:04:05.000000Z"

// Tribe is a community entry in the archive.
type Tribe struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	AlternativeNames string `json:"alternative_names"`
	Region           string `json:"region"`
	Description      string `json:"description"`
	ContactCommunity string `json:"contact_community"`
}

// Field returns the named field as a string. ok is false for names a Tribe does not have.
func (t Tribe) Field(name string) (string, bool) {
	switch name {
	case FieldID:
		return t.ID, true
	case FieldName:
		return t.Name, true
	case FieldAlternativeNames:
		return t.AlternativeNames, true
	case FieldRegion:
		return t.Region, true
	case FieldDescription:
		return t.Description, true
	case FieldContactCommunity:
		return t.ContactCommunity, true
	}
	return "", false
}

// Asset is a single cultural artifact submitted for a tribe.
//
// TribeName and Region are copied from the tribe when the asset is submitted
// and are not updated if the tribe changes later.
type Asset struct {
	ID               string      `json:"id"`
	TribeID          string      `json:"tribe_id"`
	TribeName        string      `json:"tribe_name"`
	Region           string      `json:"region"`
	Title            string      `json:"title"`
	AssetType        AssetType   `json:"asset_type"`
	Description      string      `json:"description"`
	NarrativeContext string      `json:"narrative_context"`
	DateRecorded     time.Time   `json:"date_recorded"`
	CustodianName    string      `json:"custodian_name,omitempty"`
	CustodianContact string      `json:"custodian_contact,omitempty"`
	LicenseType      LicenseType `json:"license_type"`
	CustomTerms      string      `json:"custom_terms,omitempty"`
	AttachedFile     string      `json:"attached_file,omitempty"`     // Reference on the attachment store
	OriginalFilename string      `json:"original_filename,omitempty"` // Name supplied by the contributor
	AttachmentDigest string      `json:"attachment_digest,omitempty"` // BLAKE2b-256 of the stored bytes
	ExternalURL      string      `json:"external_url,omitempty"`
	DateAdded        time.Time   `json:"date_added"`
}

// Field returns the named field as a string. ok is false for names an Asset does not have.
// Timestamps render in a fixed-width UTC layout; zero times render as "".
func (a Asset) Field(name string) (string, bool) {
	switch name {
	case FieldID:
		return a.ID, true
	case FieldTribeID:
		return a.TribeID, true
	case FieldTribeName:
		return a.TribeName, true
	case FieldRegion:
		return a.Region, true
	case FieldTitle:
		return a.Title, true
	case FieldAssetType:
		return string(a.AssetType), true
	case FieldDescription:
		return a.Description, true
	case FieldNarrativeContext:
		return a.NarrativeContext, true
	case FieldDateRecorded:
		return formatSortable(a.DateRecorded), true
	case FieldCustodianName:
		return a.CustodianName, true
	case FieldCustodianContact:
		return a.CustodianContact, true
	case FieldLicenseType:
		return string(a.LicenseType), true
	case FieldCustomTerms:
		return a.CustomTerms, true
	case FieldAttachedFile:
		return a.AttachedFile, true
	case FieldOriginalFilename:
		return a.OriginalFilename, true
	case FieldAttachmentDigest:
		return a.AttachmentDigest, true
	case FieldExternalURL:
		return a.ExternalURL, true
	case FieldDateAdded:
		return formatSortable(a.DateAdded), true
	}
	return "", false
}

// HasAttachment reports whether the asset carries a stored file.
func (a Asset) HasAttachment() bool {
	return a.AttachedFile != ""
}

// LicenseText returns the usage terms shown for the asset.
func (a Asset) LicenseText() string {
	if a.LicenseType == LicenseCustom && a.CustomTerms != "" {
		return a.CustomTerms
	}
	return a.LicenseType.Text()
}

func formatSortable(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(sortableTime)
}

// TribeIDFromName derives the stable tribe identifier from its display name.
func TribeIDFromName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// NewAssetID returns a short random asset identifier.
func NewAssetID() string {
	return uuid.NewString()[:8]
}

// DigestContent returns the hex BLAKE2b-256 digest of data.
func DigestContent(data []byte) string {
	h, _ := blake2b.New(32, nil)
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
