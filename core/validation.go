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


package core

import (
	"fmt"
	"strings"
)

// ValidateTribe validates a Tribe according to domain rules.
//
// Validation rules:
//   - Name must not be blank
//
// NOT validated:
//   - ID (derived from Name by the catalog)
//   - Region, Description, AlternativeNames, ContactCommunity (free text)
func ValidateTribe(tribe *Tribe) error {
	if tribe == nil {
		return fmt.Errorf("%w: tribe is nil", ErrInvalidTribe)
	}

	if strings.TrimSpace(tribe.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTribe, ErrEmptyName)
	}

	return nil
}

// ValidateTribeSubmission applies the stricter rules for community-submitted tribes.
//
// Validation rules:
//   - everything ValidateTribe checks
//   - Region must not be blank
//   - Description must not be blank
func ValidateTribeSubmission(tribe *Tribe) error {
	if err := ValidateTribe(tribe); err != nil {
		return err
	}

	if strings.TrimSpace(tribe.Region) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTribe, ErrEmptyRegion)
	}

	if strings.TrimSpace(tribe.Description) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTribe, ErrEmptyDescription)
	}

	return nil
}

// ValidateAsset validates an Asset according to domain rules.
//
// Validation rules:
//   - TribeID, Title, Description and NarrativeContext must not be blank
//   - AssetType and LicenseType must be known values
//   - OriginalFilename, when set, must carry an accepted extension
//
// NOT validated (populated by the catalog):
//   - ID, TribeName, Region, DateAdded, AttachedFile, AttachmentDigest
func ValidateAsset(asset *Asset) error {
	if asset == nil {
		return fmt.Errorf("%w: asset is nil", ErrInvalidAsset)
	}

	if strings.TrimSpace(asset.TribeID) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAsset, ErrEmptyTribeRef)
	}

	if strings.TrimSpace(asset.Title) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAsset, ErrEmptyTitle)
	}

	if !asset.AssetType.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidAsset, ErrInvalidAssetType, asset.AssetType)
	}

	if strings.TrimSpace(asset.Description) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAsset, ErrEmptyDescription)
	}

	if strings.TrimSpace(asset.NarrativeContext) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAsset, ErrEmptyNarrative)
	}

	if !asset.LicenseType.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidAsset, ErrInvalidLicense, asset.LicenseType)
	}

	if asset.OriginalFilename != "" && !IsAllowedAttachment(asset.OriginalFilename) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidAsset, ErrUnsupportedAttachment, asset.OriginalFilename)
	}

	return nil
}
