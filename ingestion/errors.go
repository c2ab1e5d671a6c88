package ingestion

import "errors"

var (
	// ErrCatalogRequired is returned when a catalog is not provided.
	ErrCatalogRequired = errors.New("catalog required")

	// ErrInvalidBundle is returned when a bundle file cannot be parsed.
	ErrInvalidBundle = errors.New("invalid bundle")
)
