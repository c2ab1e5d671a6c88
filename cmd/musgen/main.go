package main

import (
	"os"
	"reflect"
	"strings"

	musgen "github.com/mus-format/musgen-go/mus"
	genops "github.com/mus-format/musgen-go/options/generate"
	structops "github.com/mus-format/musgen-go/options/struct"
	typeops "github.com/mus-format/musgen-go/options/type"
	"github.com/poiesic/utamaduni/core"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	// If we're in the core subpackage, cd up to project root
	if strings.HasSuffix(cwd, "core") {
		if err := os.Chdir(".."); err != nil {
			panic(err)
		}
	}
	g, err := musgen.NewCodeGenerator(
		genops.WithPkgPath("github.com/poiesic/utamaduni/core"),
	)
	if err != nil {
		panic(err)
	}

	g.AddDefinedType(reflect.TypeFor[core.AssetType]())
	g.AddDefinedType(reflect.TypeFor[core.LicenseType]())

	err = g.AddStruct(reflect.TypeFor[core.Tribe](),
		structops.WithField(), // ID
		structops.WithField(), // Name
		structops.WithField(), // AlternativeNames
		structops.WithField(), // Region
		structops.WithField(), // Description
		structops.WithField()) // ContactCommunity
	if err != nil {
		panic(err)
	}

	// Unix micro timestamps, decoded as UTC so zero times survive the round trip.
	// Field order is the Badger wire layout; append new fields at the end only.
	opts := typeops.WithTimeUnit(typeops.MicroUTC)
	err = g.AddStruct(reflect.TypeFor[core.Asset](),
		structops.WithField(),     // ID
		structops.WithField(),     // TribeID
		structops.WithField(),     // TribeName
		structops.WithField(),     // Region
		structops.WithField(),     // Title
		structops.WithField(),     // AssetType
		structops.WithField(),     // Description
		structops.WithField(),     // NarrativeContext
		structops.WithField(opts), // DateRecorded
		structops.WithField(),     // CustodianName
		structops.WithField(),     // CustodianContact
		structops.WithField(),     // LicenseType
		structops.WithField(),     // CustomTerms
		structops.WithField(),     // AttachedFile
		structops.WithField(),     // OriginalFilename
		structops.WithField(),     // AttachmentDigest
		structops.WithField(),     // ExternalURL
		structops.WithField(opts)) // DateAdded
	if err != nil {
		panic(err)
	}

	bs, err := g.Generate()
	if err != nil {
		panic(err)
	}

	err = os.WriteFile("./core/records_mus.gen.go", bs, 0644)
	if err != nil {
		panic(err)
	}
}
