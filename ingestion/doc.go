// Package ingestion imports bundles of asset submissions into the archive.
//
// A bundle is a JSON file listing submissions. Attachment paths are resolved
// relative to the bundle's directory. The Pipeline:
//   - Validates every entry and resolves its tribe
//   - Stores attachments concurrently on a worker pool
//   - Appends the surviving assets in bundle order with a single save
//
// Entries that fail validation or whose file cannot be stored are skipped and
// listed in the Report. They never fail the rest of the import.
package ingestion
