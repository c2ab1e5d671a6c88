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


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/utamaduni"
	"github.com/poiesic/utamaduni/config"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "utamaduni",
		Usage: "Cultural heritage archive for community tribes and their assets",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
				EnvVars: []string{"UTAMADUNI_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:  "data-dir",
				Usage: "Directory holding the tribe and asset records (overrides config)",
			},
			&cli.StringFlag{
				Name:  "storage",
				Usage: "Record backend: json or badger (overrides config)",
			},
			&cli.StringFlag{
				Name:  "upload-dir",
				Usage: "Local attachment directory (overrides config)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			serveCommand(),
			tribesCommand(),
			assetsCommand(),
			importCommand(),
			statsCommand(),
		},
	}
}

// openArchive loads the configuration, applies command line overrides and opens the archive.
func openArchive(c *cli.Context) (*utamaduni.Archive, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("data-dir") {
		cfg.DataDir = c.String("data-dir")
	}
	if c.IsSet("storage") {
		cfg.Storage = c.String("storage")
	}
	if c.IsSet("upload-dir") {
		cfg.UploadDir = c.String("upload-dir")
	}

	// The configured level applies unless the flag was given.
	if !c.IsSet("log-level") && cfg.LogLevel != "" {
		logger, err := newLogger(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		slog.SetDefault(logger)
	}

	archive, err := utamaduni.Open(c.Context, cfg, utamaduni.WithLogger(slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	return archive, nil
}

func setupLogger(c *cli.Context) error {
	logger, err := newLogger(c.String("log-level"))
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

func newLogger(levelStr string) (*slog.Logger, error) {
	// Map string to slog.Level
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})), nil
}
