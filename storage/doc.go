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


// Package storage provides the persistence layer for the archive.
//
// The archive keeps two collections, tribes and assets, each persisted as a
// single ordered sequence that is loaded and saved whole. Attachments live in a
// separate AttachmentStore and are referenced from assets by an opaque string.
//
// # Backends
//
//   - jsonfile: one JSON document per collection, written via temp file and rename
//   - badger: BadgerDB, one key per record under a collection prefix, saved in one transaction
//   - localfs: attachments in a local upload directory
//   - minio: attachments in an S3-compatible bucket
//
// # Load Semantics
//
// Loading never fails because data is missing or corrupt. The backend logs a
// warning, writes the collection default (the seed tribes, or no assets) and
// returns it. Errors are reserved for a closed or unusable backend.
//
// # Usage
//
//	tribes, assets, backend, err := badger.NewMemoryRepositories()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//
//	list, err := tribes.LoadTribes(ctx)
//
// # Thread Safety
//
// Repository implementations are safe for concurrent use. A Load that runs
// concurrently with a Save observes either the old or the new collection.
package storage
