package api

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/poiesic/utamaduni/catalog"
	"github.com/poiesic/utamaduni/core"
)

// GET /api/v1/assets?tribe=&type=&q=&sort=
func (s *Server) browseAssets(c *gin.Context) {
	sort := catalog.SortOrder(c.DefaultQuery("sort", string(catalog.SortNewest)))
	if sort != catalog.SortNewest && sort != catalog.SortOldest {
		s.fail(c, fmt.Errorf("%w: sort must be %q or %q", errBadRequest, catalog.SortNewest, catalog.SortOldest))
		return
	}

	assets, err := s.catalog.BrowseAssets(c.Request.Context(), catalog.BrowseQuery{
		Tribe:  c.Query("tribe"),
		Type:   c.Query("type"),
		Search: c.Query("q"),
		Sort:   sort,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assets": newAssetViews(assets)})
}

// GET /api/v1/assets/filters
func (s *Server) filterOptions(c *gin.Context) {
	opts, err := s.catalog.FilterOptions(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, opts)
}

// GET /api/v1/assets/:id
func (s *Server) getAsset(c *gin.Context) {
	asset, err := s.catalog.GetAsset(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newAssetView(*asset))
}

// POST /api/v1/assets (multipart/form-data, optional "file" part)
func (s *Server) submitAsset(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUploadBytes)
	if err := c.Request.ParseMultipartForm(s.maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "submission too large"})
			return
		}
		s.fail(c, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	sub, err := s.readSubmission(c)
	if err != nil {
		s.fail(c, err)
		return
	}

	asset, err := s.catalog.SubmitAsset(c.Request.Context(), sub)
	if errors.Is(err, catalog.ErrTribeNotFound) {
		err = fmt.Errorf("%w: %w", errBadRequest, err)
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	s.metrics.submissions.WithLabelValues("asset").Inc()
	c.JSON(http.StatusCreated, newAssetView(*asset))
}

func (s *Server) readSubmission(c *gin.Context) (catalog.AssetSubmission, error) {
	sub := catalog.AssetSubmission{
		TribeID:          c.PostForm("tribe_id"),
		Title:            c.PostForm("title"),
		AssetType:        core.AssetType(c.PostForm("asset_type")),
		Description:      c.PostForm("description"),
		NarrativeContext: c.PostForm("narrative_context"),
		CustodianName:    c.PostForm("custodian_name"),
		CustodianContact: c.PostForm("custodian_contact"),
		LicenseType:      core.LicenseType(c.PostForm("license_type")),
		CustomTerms:      c.PostForm("custom_terms"),
		ExternalURL:      c.PostForm("external_url"),
	}

	if raw := strings.TrimSpace(c.PostForm("date_recorded")); raw != "" {
		recorded, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return sub, fmt.Errorf("%w: date_recorded must be YYYY-MM-DD", errBadRequest)
		}
		sub.DateRecorded = recorded
	}

	fh, err := c.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return sub, nil
	}
	if err != nil {
		return sub, fmt.Errorf("%w: %w", errBadRequest, err)
	}

	f, err := fh.Open()
	if err != nil {
		return sub, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return sub, err
	}
	sub.Attachment = &catalog.File{Name: fh.Filename, Data: data}
	return sub, nil
}

// GET /api/v1/assets/:id/attachment
func (s *Server) downloadAttachment(c *gin.Context) {
	att, err := s.catalog.OpenAttachment(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}

	disposition := "inline"
	if att.Kind == core.MediaDocument {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": att.Filename}))
	c.Data(http.StatusOK, core.ContentType(att.Filename), att.Data)
}

// GET /api/v1/licenses
func (s *Server) licenses(c *gin.Context) {
	views := make([]licenseView, len(core.LicenseTypes))
	for i, l := range core.LicenseTypes {
		views[i] = licenseView{Code: l, Text: l.Text()}
	}
	c.JSON(http.StatusOK, gin.H{"licenses": views})
}

// GET /api/v1/asset-types
func (s *Server) assetTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"asset_types": core.AssetTypes})
}
