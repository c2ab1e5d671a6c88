package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/poiesic/utamaduni/core"
	"github.com/urfave/cli/v2"
)

func tribesCommand() *cli.Command {
	return &cli.Command{
		Name:  "tribes",
		Usage: "List, search and moderate tribes",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List every tribe",
				Action: listTribes,
			},
			{
				Name:      "search",
				Usage:     "Fuzzy search tribe names, alternative names and descriptions",
				ArgsUsage: "<query>",
				Action:    searchTribes,
			},
			{
				Name:  "add",
				Usage: "Add a tribe by name",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Tribe name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "region",
						Usage: "Region the tribe is associated with",
					},
				},
				Action: addTribe,
			},
			{
				Name:      "delete",
				Usage:     "Delete a tribe; its assets are kept",
				ArgsUsage: "<tribe-id>",
				Action:    deleteTribe,
			},
		},
	}
}

func printTribes(w io.Writer, tribes []core.Tribe) {
	for _, t := range tribes {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Name, t.Region)
	}
}

func listTribes(c *cli.Context) error {
	archive, err := openArchive(c)
	if err != nil {
		return err
	}
	defer archive.Close()

	tribes, err := archive.Catalog().ListTribes(c.Context)
	if err != nil {
		return err
	}
	printTribes(c.App.Writer, tribes)
	return nil
}

func searchTribes(c *cli.Context) error {
	archive, err := openArchive(c)
	if err != nil {
		return err
	}
	defer archive.Close()

	tribes, err := archive.Catalog().SearchTribes(c.Context, c.Args().First())
	if err != nil {
		return err
	}
	printTribes(c.App.Writer, tribes)
	return nil
}

func addTribe(c *cli.Context) error {
	archive, err := openArchive(c)
	if err != nil {
		return err
	}
	defer archive.Close()

	tribe, err := archive.Catalog().AddTribe(c.Context, c.String("name"), c.String("region"))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "added %s\n", tribe.ID)
	return nil
}

func deleteTribe(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return errors.New("tribe id is required")
	}

	archive, err := openArchive(c)
	if err != nil {
		return err
	}
	defer archive.Close()

	if err := archive.Catalog().DeleteTribe(c.Context, id); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "deleted %s\n", id)
	return nil
}
