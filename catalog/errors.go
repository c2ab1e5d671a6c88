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


package catalog

import "errors"

var (
	// ErrTribeRepositoryRequired is returned when a tribe repository is not provided.
	ErrTribeRepositoryRequired = errors.New("tribe repository required")

	// ErrAssetRepositoryRequired is returned when an asset repository is not provided.
	ErrAssetRepositoryRequired = errors.New("asset repository required")

	// ErrAttachmentStoreRequired is returned when an attachment store is not provided.
	ErrAttachmentStoreRequired = errors.New("attachment store required")

	// ErrDuplicateTribe indicates a tribe with the same name or ID already exists.
	ErrDuplicateTribe = errors.New("tribe already exists")

	// ErrTribeNotFound indicates no tribe has the requested ID.
	ErrTribeNotFound = errors.New("tribe not found")

	// ErrAssetNotFound indicates no asset has the requested ID.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrNoAttachment indicates the asset has no stored file.
	ErrNoAttachment = errors.New("asset has no attachment")

	// ErrAttachmentCorrupt indicates stored bytes no longer match the recorded digest.
	ErrAttachmentCorrupt = errors.New("attachment content does not match digest")
)
