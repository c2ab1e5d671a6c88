package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the archive API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "listen",
				Usage: "Listen address (overrides config)",
			},
		},
		Action: serve,
	}
}

func serve(c *cli.Context) error {
	archive, err := openArchive(c)
	if err != nil {
		return err
	}
	defer archive.Close()

	addr := archive.Config().ListenAddr
	if c.IsSet("listen") {
		addr = c.String("listen")
	}
	if archive.Config().LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	server, err := archive.NewServer()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.Run(ctx, addr)
}

func importCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Import a JSON bundle of asset submissions",
		ArgsUsage: "<bundle.json>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Concurrent attachment uploads (overrides config)",
			},
		},
		Action: importBundle,
	}
}

func importBundle(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return errors.New("bundle path is required")
	}

	archive, err := openArchive(c)
	if err != nil {
		return err
	}
	defer archive.Close()

	if c.IsSet("workers") {
		if c.Int("workers") < 1 {
			return errors.New("workers must be greater than 0")
		}
		archive.Config().ImportWorkers = c.Int("workers")
	}

	pipeline, err := archive.NewImportPipeline()
	if err != nil {
		return err
	}
	defer pipeline.Release()

	report, err := pipeline.ImportBundle(c.Context, path)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	out := c.App.Writer
	for _, a := range report.Imported {
		fmt.Fprintf(out, "imported %s\t%s\t%s\n", a.ID, a.TribeName, a.Title)
	}
	for _, f := range report.Failed {
		fmt.Fprintf(out, "skipped %v\n", f)
	}
	fmt.Fprintf(out, "%d imported, %d skipped\n", len(report.Imported), len(report.Failed))
	return nil
}

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:   "stats",
		Usage:  "Show archive totals",
		Action: stats,
	}
}

func stats(c *cli.Context) error {
	archive, err := openArchive(c)
	if err != nil {
		return err
	}
	defer archive.Close()

	s, err := archive.Catalog().Stats(c.Context)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "tribes: %d\nassets: %d\nuploads: %d\n", s.Tribes, s.Assets, s.Uploads)
	return nil
}
