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


// Package search provides the catalog query engine used to browse tribes and assets.
//
// A query runs in three stages over a full in-memory snapshot of a collection:
//   - Exact-match field filters, ANDed, skipping sentinel values such as "All Communities"
//   - Fuzzy free-text search over a set of fields, ORed, using a sequence-matching ratio
//   - Stable sort on a single field, ascending or descending
//
// The Engine never mutates its input and never returns an error. Fields a record
// does not have never satisfy a filter and read as "" for search and sort.
//
// Suggest ranks tribe names for typeahead using subsequence matching.
package search
