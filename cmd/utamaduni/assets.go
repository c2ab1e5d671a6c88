package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/poiesic/utamaduni/catalog"
	"github.com/poiesic/utamaduni/core"
	"github.com/urfave/cli/v2"
)

func assetsCommand() *cli.Command {
	return &cli.Command{
		Name:  "assets",
		Usage: "Browse, submit and moderate assets",
		Subcommands: []*cli.Command{
			{
				Name:  "browse",
				Usage: "Filter, search and sort assets",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "tribe", Usage: "Tribe name"},
					&cli.StringFlag{Name: "type", Usage: "Asset type"},
					&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Usage: "Fuzzy search over title, description and narrative"},
					&cli.StringFlag{Name: "sort", Usage: "newest or oldest", Value: string(catalog.SortNewest)},
				},
				Action: browseAssets,
			},
			{
				Name:  "submit",
				Usage: "Submit an asset",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "tribe", Usage: "Tribe ID", Required: true},
					&cli.StringFlag{Name: "title", Required: true},
					&cli.StringFlag{Name: "type", Usage: "Asset type", Required: true},
					&cli.StringFlag{Name: "description", Required: true},
					&cli.StringFlag{Name: "narrative", Usage: "Narrative context", Required: true},
					&cli.StringFlag{Name: "license", Usage: "License code", Value: string(core.LicenseAllRightsReserved)},
					&cli.StringFlag{Name: "terms", Usage: "Custom license terms"},
					&cli.StringFlag{Name: "date", Usage: "Date recorded (YYYY-MM-DD)"},
					&cli.StringFlag{Name: "custodian", Usage: "Custodian name"},
					&cli.StringFlag{Name: "contact", Usage: "Custodian contact"},
					&cli.StringFlag{Name: "url", Usage: "External URL"},
					&cli.StringFlag{Name: "file", Usage: "Attachment path"},
				},
				Action: submitAsset,
			},
			{
				Name:      "delete",
				Usage:     "Delete an asset and its attachment",
				ArgsUsage: "<asset-id>",
				Action:    deleteAsset,
			},
		},
	}
}

func browseAssets(c *cli.Context) error {
	sort := catalog.SortOrder(c.String("sort"))
	if sort != catalog.SortNewest && sort != catalog.SortOldest {
		return fmt.Errorf("sort must be %q or %q", catalog.SortNewest, catalog.SortOldest)
	}

	archive, err := openArchive(c)
	if err != nil {
		return err
	}
	defer archive.Close()

	assets, err := archive.Catalog().BrowseAssets(c.Context, catalog.BrowseQuery{
		Tribe:  c.String("tribe"),
		Type:   c.String("type"),
		Search: c.String("query"),
		Sort:   sort,
	})
	if err != nil {
		return err
	}
	for _, a := range assets {
		fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.DateAdded.Format(time.DateOnly), a.TribeName, a.AssetType, a.Title)
	}
	return nil
}

func submitAsset(c *cli.Context) error {
	sub := catalog.AssetSubmission{
		TribeID:          c.String("tribe"),
		Title:            c.String("title"),
		AssetType:        core.AssetType(c.String("type")),
		Description:      c.String("description"),
		NarrativeContext: c.String("narrative"),
		CustodianName:    c.String("custodian"),
		CustodianContact: c.String("contact"),
		LicenseType:      core.LicenseType(c.String("license")),
		CustomTerms:      c.String("terms"),
		ExternalURL:      c.String("url"),
	}
	if raw := c.String("date"); raw != "" {
		recorded, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
		}
		sub.DateRecorded = recorded
	}
	if path := c.String("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		sub.Attachment = &catalog.File{Name: filepath.Base(path), Data: data}
	}

	archive, err := openArchive(c)
	if err != nil {
		return err
	}
	defer archive.Close()

	asset, err := archive.Catalog().SubmitAsset(c.Context, sub)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "submitted %s\n", asset.ID)
	return nil
}

func deleteAsset(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return errors.New("asset id is required")
	}

	archive, err := openArchive(c)
	if err != nil {
		return err
	}
	defer archive.Close()

	if err := archive.Catalog().DeleteAsset(c.Context, id); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "deleted %s\n", id)
	return nil
}
