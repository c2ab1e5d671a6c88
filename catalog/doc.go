// Package catalog implements the archive's operations on top of the storage
// collaborators: community and asset submission, moderation, browsing and
// dashboard statistics.
//
// Every read loads a fresh snapshot of the collection and hands it to a
// search.Engine. Writes are read-modify-write cycles over the whole collection
// and are serialized by the Catalog.
//
// Assets copy their tribe's name and region when submitted. Later changes to a
// tribe do not reach existing assets, and deleting a tribe leaves its assets in
// place.
package catalog
