package core

import (
	"mime"
	"path/filepath"
	"strings"
)

// AssetType categorizes an asset.
type AssetType string

const (
	AssetTypeOralHistoryAudio    AssetType = "Oral History (Audio)"
	AssetTypeOralHistoryVideo    AssetType = "Oral History (Video)"
	AssetTypePhotograph          AssetType = "Photograph"
	AssetTypeDocument            AssetType = "Document"
	AssetTypeArtifactDescription AssetType = "Artifact Description"
	AssetTypeSong                AssetType = "Song"
	AssetTypeProverb             AssetType = "Proverb"
	AssetTypeRitualDescription   AssetType = "Ritual Description"
	AssetTypeTraditionalRecipe   AssetType = "Traditional Recipe"
	AssetTypeCraftInstructions   AssetType = "Craft Instructions"
	AssetTypeDanceDescription    AssetType = "Dance Description"
	AssetTypeCeremonyRecording   AssetType = "Ceremony Recording"
	AssetTypeLanguageLesson      AssetType = "Language Lesson"
	AssetTypeOther               AssetType = "Other"
)

// AssetTypes lists every asset type in presentation order.
var AssetTypes = []AssetType{
	AssetTypeOralHistoryAudio,
	AssetTypeOralHistoryVideo,
	AssetTypePhotograph,
	AssetTypeDocument,
	AssetTypeArtifactDescription,
	AssetTypeSong,
	AssetTypeProverb,
	AssetTypeRitualDescription,
	AssetTypeTraditionalRecipe,
	AssetTypeCraftInstructions,
	AssetTypeDanceDescription,
	AssetTypeCeremonyRecording,
	AssetTypeLanguageLesson,
	AssetTypeOther,
}

// Valid reports whether t is a known asset type.
func (t AssetType) Valid() bool {
	for _, known := range AssetTypes {
		if t == known {
			return true
		}
	}
	return false
}

// LicenseType is the usage license attached to an asset.
type LicenseType string

const (
	LicenseAllRightsReserved LicenseType = "ALL_RIGHTS_RESERVED"
	LicenseCCByNCND          LicenseType = "CC_BY_NC_ND"
	LicenseCCByNCSA          LicenseType = "CC_BY_NC_SA"
	LicenseCCBySA            LicenseType = "CC_BY_SA"
	LicenseCustom            LicenseType = "CUSTOM"
)

// LicenseTypes lists every license in presentation order.
var LicenseTypes = []LicenseType{
	LicenseAllRightsReserved,
	LicenseCCByNCND,
	LicenseCCByNCSA,
	LicenseCCBySA,
	LicenseCustom,
}

var licenseText = map[LicenseType]string{
	LicenseAllRightsReserved: "© All Rights Reserved. No reuse without explicit permission.",
	LicenseCCByNCND:          "Creative Commons: Attribution-NonCommercial-NoDerivs",
	LicenseCCByNCSA:          "Creative Commons: Attribution-NonCommercial-ShareAlike",
	LicenseCCBySA:            "Creative Commons: Attribution-ShareAlike",
	LicenseCustom:            "Custom Terms (Specify in description)",
}

// Valid reports whether l is a known license code.
func (l LicenseType) Valid() bool {
	_, ok := licenseText[l]
	return ok
}

// Text returns the human readable license terms. Unknown codes render as themselves.
func (l LicenseType) Text() string {
	if text, ok := licenseText[l]; ok {
		return text
	}
	return string(l)
}

// MediaKind tells the presentation layer how to render an attachment.
type MediaKind string

const (
	MediaImage    MediaKind = "image"
	MediaAudio    MediaKind = "audio"
	MediaVideo    MediaKind = "video"
	MediaDocument MediaKind = "document"
)

var attachmentKinds = map[string]MediaKind{
	".png":  MediaImage,
	".jpg":  MediaImage,
	".jpeg": MediaImage,
	".gif":  MediaImage,
	".mp3":  MediaAudio,
	".wav":  MediaAudio,
	".ogg":  MediaAudio,
	".mp4":  MediaVideo,
	".mov":  MediaVideo,
	".avi":  MediaVideo,
	".pdf":  MediaDocument,
	".doc":  MediaDocument,
	".docx": MediaDocument,
	".txt":  MediaDocument,
}

// AttachmentExt returns the lowercased extension of filename, including the dot.
func AttachmentExt(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// IsAllowedAttachment reports whether filename has an accepted upload extension.
func IsAllowedAttachment(filename string) bool {
	_, ok := attachmentKinds[AttachmentExt(filename)]
	return ok
}

// AttachmentKind classifies a stored file by extension.
// Unknown extensions are offered as documents.
func AttachmentKind(filename string) MediaKind {
	if kind, ok := attachmentKinds[AttachmentExt(filename)]; ok {
		return kind
	}
	return MediaDocument
}

var attachmentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".ogg":  "audio/ogg",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain; charset=utf-8",
}

// ContentType returns the MIME type served for filename.
func ContentType(filename string) string {
	ext := AttachmentExt(filename)
	if t, ok := attachmentTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
