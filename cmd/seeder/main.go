package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/namankura/namankura"
	"github.com/namankura/namankura/core"
	"github.com/namankura/namankura/corpus"
)

var (
	seedFileName = flag.String("src", "", "JSON file of seed records")
	dbPath       = flag.String("db", "./names_db", "database directory")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func main() {
	lib, err := namankura.OpenLibrary(*dbPath)
	if err != nil {
		panic(err)
	}
	defer lib.Close()

	pipeline, err := lib.NewSeedingPipeline()
	if err != nil {
		panic(err)
	}
	defer pipeline.Release()

	ctx := context.Background()

	var records []*core.NameRecord
	if *seedFileName != "" {
		records, err = corpus.LoadFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	} else {
		records = corpus.SeedRecords()
	}

	seeded, err := pipeline.SeedSync(ctx, records...)
	if err != nil {
		panic(err)
	}

	slog.Info("seeding complete", "records", len(seeded))
}
