// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ingestion

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/poiesic/utamaduni/catalog"
	"github.com/poiesic/utamaduni/core"
)

// Bundle is the on-disk import format.
type Bundle struct {
	Assets []Entry `json:"assets"`
}

// Entry is one submission in a bundle.
type Entry struct {
	TribeID          string           `json:"tribe_id"`
	Title            string           `json:"title"`
	AssetType        core.AssetType   `json:"asset_type"`
	Description      string           `json:"description"`
	NarrativeContext string           `json:"narrative_context"`
	DateRecorded     string           `json:"date_recorded,omitempty"` // YYYY-MM-DD
	CustodianName    string           `json:"custodian_name,omitempty"`
	CustodianContact string           `json:"custodian_contact,omitempty"`
	LicenseType      core.LicenseType `json:"license_type"`
	CustomTerms      string           `json:"custom_terms,omitempty"`
	ExternalURL      string           `json:"external_url,omitempty"`
	File             string           `json:"file,omitempty"`
}

// LoadBundle reads a bundle file and resolves relative attachment paths
// against the bundle's directory.
func LoadBundle(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var bundle Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidBundle, path, err)
	}

	dir := filepath.Dir(path)
	for i := range bundle.Assets {
		e := &bundle.Assets[i]
		if _, err := e.recordedDate(); err != nil {
			return nil, fmt.Errorf("%w: entry %d (%q): %w", ErrInvalidBundle, i, e.Title, err)
		}
		if e.File != "" && !filepath.IsAbs(e.File) {
			e.File = filepath.Join(dir, e.File)
		}
	}
	return bundle.Assets, nil
}

func (e Entry) recordedDate() (time.Time, error) {
	s := strings.TrimSpace(e.DateRecorded)
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.DateOnly, s)
}

// submission converts the entry without reading its file. The attachment
// carries only its name so the extension can be validated up front.
func (e Entry) submission() (catalog.AssetSubmission, error) {
	recorded, err := e.recordedDate()
	if err != nil {
		return catalog.AssetSubmission{}, err
	}

	sub := catalog.AssetSubmission{
		TribeID:          e.TribeID,
		Title:            e.Title,
		AssetType:        e.AssetType,
		Description:      e.Description,
		NarrativeContext: e.NarrativeContext,
		DateRecorded:     recorded,
		CustodianName:    e.CustodianName,
		CustodianContact: e.CustodianContact,
		LicenseType:      e.LicenseType,
		CustomTerms:      e.CustomTerms,
		ExternalURL:      e.ExternalURL,
	}
	if e.File != "" {
		sub.Attachment = &catalog.File{Name: filepath.Base(e.File)}
	}
	return sub, nil
}
