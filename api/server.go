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


// Package api serves the archive over HTTP.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/poiesic/utamaduni/catalog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// DefaultMaxUploadSize bounds multipart submissions.
	DefaultMaxUploadSize = 64 << 20

	defaultSuggestLimit = 5
	shutdownTimeout     = 10 * time.Second
)

// Server exposes the catalog as a JSON API.
type Server struct {
	catalog  *catalog.Catalog
	router   *gin.Engine
	registry *prometheus.Registry
	metrics  *metrics

	adminUser      string
	adminPassword  string
	maxUploadBytes int64
	logger         *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithAdmin enables the moderation routes behind basic auth.
// An empty password leaves them disabled.
func WithAdmin(user, password string) Option {
	return func(s *Server) error {
		s.adminUser = user
		s.adminPassword = password
		return nil
	}
}

// WithRegistry sets the Prometheus registry metrics are registered with and served from.
// Default is a fresh registry.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(s *Server) error {
		if registry != nil {
			s.registry = registry
		}
		return nil
	}
}

// WithMaxUploadSize bounds the size of a multipart asset submission.
// Default is DefaultMaxUploadSize.
func WithMaxUploadSize(n int64) Option {
	return func(s *Server) error {
		if n > 0 {
			s.maxUploadBytes = n
		}
		return nil
	}
}

// New creates a server over c.
func New(c *catalog.Catalog, opts ...Option) (*Server, error) {
	if c == nil {
		return nil, ErrCatalogRequired
	}

	s := &Server{
		catalog:        c,
		registry:       prometheus.NewRegistry(),
		maxUploadBytes: DefaultMaxUploadSize,
		logger:         slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.metrics = newMetrics(s.registry)
	s.router = s.routes()
	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// AdminEnabled reports whether the moderation routes are served.
func (s *Server) AdminEnabled() bool {
	return s.adminPassword != ""
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.observe())
	r.MaxMultipartMemory = s.maxUploadBytes

	v1 := r.Group("/api/v1")
	{
		v1.GET("/tribes", s.searchTribes)
		v1.POST("/tribes", s.submitTribe)
		v1.GET("/tribes/suggest", s.suggestTribes)
		v1.GET("/tribes/:id", s.tribeOverview)

		v1.GET("/assets", s.browseAssets)
		v1.POST("/assets", s.submitAsset)
		v1.GET("/assets/filters", s.filterOptions)
		v1.GET("/assets/:id", s.getAsset)
		v1.GET("/assets/:id/attachment", s.downloadAttachment)

		v1.GET("/licenses", s.licenses)
		v1.GET("/asset-types", s.assetTypes)
	}

	if s.AdminEnabled() {
		admin := v1.Group("/admin", gin.BasicAuth(gin.Accounts{s.adminUser: s.adminPassword}))
		admin.GET("/stats", s.stats)
		admin.POST("/tribes", s.quickAddTribe)
		admin.DELETE("/tribes/:id", s.deleteTribe)
		admin.DELETE("/assets/:id", s.deleteAsset)
	} else {
		s.logger.Warn("admin password not set, moderation routes disabled")
	}

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	}
}

// fail writes err as a JSON error. Server errors are logged and hidden from the client.
func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "err", err)
		c.AbortWithStatusJSON(status, gin.H{"error": "internal error"})
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
