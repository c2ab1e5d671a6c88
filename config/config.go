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


// Package config loads archive settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. UTAMADUNI_DATA_DIR.
const EnvPrefix = "utamaduni"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Storage backends for tribe and asset records.
const (
	StorageJSON   = "json"
	StorageBadger = "badger"
)

// Attachment backends.
const (
	AttachmentsLocal = "local"
	AttachmentsMinIO = "minio"
)

// Config holds archive settings.
type Config struct {
	// DataDir holds tribes.json and assets.json, or the Badger database.
	DataDir string `yaml:"dataDir" split_words:"true"`

	// Storage selects the record backend: "json" or "badger".
	// Default: "json"
	Storage string `yaml:"storage"`

	// Attachments selects the attachment backend: "local" or "minio".
	// Default: "local"
	Attachments string `yaml:"attachments"`

	// UploadDir is the local attachment directory.
	UploadDir string `yaml:"uploadDir" split_words:"true"`

	MinIO MinIOConfig `yaml:"minio" envconfig:"minio"`

	// ListenAddr is the HTTP server address.
	ListenAddr string `yaml:"listenAddr" split_words:"true"`

	// AdminUser and AdminPassword guard the moderation routes.
	// Admin routes are disabled while AdminPassword is empty.
	AdminUser     string `yaml:"adminUser"     split_words:"true"`
	AdminPassword string `yaml:"adminPassword" split_words:"true"`

	// MatchThreshold is the fuzzy search threshold in [0, 1].
	// Default: 0.6
	MatchThreshold float64 `yaml:"matchThreshold" split_words:"true"`

	// ImportWorkers is the number of concurrent attachment uploads during bulk import.
	// Zero selects a default based on the CPU count.
	ImportWorkers int `yaml:"importWorkers" split_words:"true"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel" split_words:"true"`
}

// MinIOConfig locates the attachment bucket.
type MinIOConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey" split_words:"true"`
	SecretKey string `yaml:"secretKey" split_words:"true"`
	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix"`
	Secure    bool   `yaml:"secure"`
}

// DefaultConfig returns a Config for a local archive in the working directory.
func DefaultConfig() *Config {
	return &Config{
		DataDir:        "data",
		Storage:        StorageJSON,
		Attachments:    AttachmentsLocal,
		UploadDir:      "uploads",
		ListenAddr:     ":8080",
		AdminUser:      "admin",
		MatchThreshold: 0.6,
		LogLevel:       "info",
	}
}

// Load returns the defaults overlaid with the YAML file at path (if path is
// not empty) and then with UTAMADUNI_* environment variables. The result is
// validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(buf, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Normalize puts the configuration in canonical form.
func (c *Config) Normalize() {
	c.Storage = strings.ToLower(strings.TrimSpace(c.Storage))
	c.Attachments = strings.ToLower(strings.TrimSpace(c.Attachments))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.DataDir != "" {
		c.DataDir = filepath.Clean(c.DataDir)
	}
	if c.UploadDir != "" {
		c.UploadDir = filepath.Clean(c.UploadDir)
	}
	c.MinIO.Prefix = strings.Trim(c.MinIO.Prefix, "/")
}

// Validate checks that the configuration is valid and complete.
// It normalizes the configuration first.
func (c *Config) Validate() error {
	c.Normalize()

	if c.DataDir == "" {
		return fmt.Errorf("%w: dataDir is required", ErrInvalidConfig)
	}
	switch c.Storage {
	case StorageJSON, StorageBadger:
	default:
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalidConfig, c.Storage)
	}
	switch c.Attachments {
	case AttachmentsLocal:
		if c.UploadDir == "" {
			return fmt.Errorf("%w: uploadDir is required for local attachments", ErrInvalidConfig)
		}
	case AttachmentsMinIO:
		if c.MinIO.Endpoint == "" {
			return fmt.Errorf("%w: minio.endpoint is required", ErrInvalidConfig)
		}
		if c.MinIO.Bucket == "" {
			return fmt.Errorf("%w: minio.bucket is required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown attachment backend %q", ErrInvalidConfig, c.Attachments)
	}
	if c.MatchThreshold < 0 || c.MatchThreshold > 1 {
		return fmt.Errorf("%w: matchThreshold must be between 0 and 1", ErrInvalidConfig)
	}
	if c.ImportWorkers < 0 {
		return fmt.Errorf("%w: importWorkers cannot be negative", ErrInvalidConfig)
	}
	if c.AdminPassword != "" && c.AdminUser == "" {
		return fmt.Errorf("%w: adminUser is required when adminPassword is set", ErrInvalidConfig)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// AdminEnabled reports whether the moderation routes should be served.
func (c *Config) AdminEnabled() bool {
	return c.AdminPassword != ""
}
