package api

import (
	"errors"
	"net/http"

	"github.com/poiesic/utamaduni/catalog"
	"github.com/poiesic/utamaduni/core"
	"github.com/poiesic/utamaduni/storage"
)

var (
	// ErrCatalogRequired is returned when a catalog is not provided.
	ErrCatalogRequired = errors.New("catalog required")

	// errBadRequest marks malformed request parameters.
	errBadRequest = errors.New("bad request")
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, core.ErrInvalidTribe),
		errors.Is(err, core.ErrInvalidAsset):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrDuplicateTribe):
		return http.StatusConflict
	case errors.Is(err, catalog.ErrTribeNotFound),
		errors.Is(err, catalog.ErrAssetNotFound),
		errors.Is(err, catalog.ErrNoAttachment),
		errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
