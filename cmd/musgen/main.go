package main

import (
	"os"
	"reflect"
	"strings"

	musgen "github.com/mus-format/musgen-go/mus"
	genops "github.com/mus-format/musgen-go/options/generate"
	structops "github.com/mus-format/musgen-go/options/struct"
	typeops "github.com/mus-format/musgen-go/options/type"
	"github.com/namankura/namankura/core"
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
		genops.WithPkgPath("github.com/namankura/namankura/core"),
	)
	if err != nil {
		panic(err)
	}

	g.AddDefinedType(reflect.TypeFor[core.ID]())
	g.AddDefinedType(reflect.TypeFor[core.Gender]())
	g.AddDefinedType(reflect.TypeFor[core.PopularityTier]())

	// Unix micro timestamps
	opts := typeops.WithTimeUnit(typeops.Micro)
	err = g.AddStruct(reflect.TypeFor[core.NameRecord](),
		structops.WithField(), // Id
		structops.WithField(), // Name
		structops.WithField(), // Gender
		structops.WithField(), // Spellings
		structops.WithField(), // Syllables
		structops.WithField(), // PhoneticStart
		structops.WithField(), // Deity
		structops.WithField(), // Sources
		structops.WithField(), // Meaning
		structops.WithField(), // Language
		structops.WithField(), // Regions
		structops.WithField(), // Modernity
		structops.WithField(), // GlobalEase
		structops.WithField(), // Nicknames
		structops.WithField(), // Related
		structops.WithField(), // Popularity
		structops.WithField(), // Vector
		structops.WithField(opts), // InsertedAt
		structops.WithField(opts)) // UpdatedAt
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
