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

import "errors"

// Domain validation errors
var (
	// ErrInvalidTribe indicates a Tribe failed validation.
	ErrInvalidTribe = errors.New("invalid tribe")

	// ErrInvalidAsset indicates an Asset failed validation.
	ErrInvalidAsset = errors.New("invalid asset")

	// ErrEmptyName indicates the tribe Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyRegion indicates the tribe Region field is empty.
	ErrEmptyRegion = errors.New("region cannot be empty")

	// ErrEmptyDescription indicates a Description field is empty.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrEmptyTribeRef indicates an asset does not name its tribe.
	ErrEmptyTribeRef = errors.New("tribe cannot be empty")

	// ErrEmptyTitle indicates the asset Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyNarrative indicates the asset NarrativeContext field is empty.
	ErrEmptyNarrative = errors.New("narrative cannot be empty")

	// ErrInvalidAssetType indicates an unknown AssetType value.
	ErrInvalidAssetType = errors.New("invalid asset type")

	// ErrInvalidLicense indicates an unknown LicenseType value.
	ErrInvalidLicense = errors.New("invalid license type")

	// ErrUnsupportedAttachment indicates an attachment extension outside the accepted set.
	ErrUnsupportedAttachment = errors.New("unsupported attachment type")
)
