// Copyright 2026 Namankura Authors
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
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/namankura/namankura"
	"github.com/namankura/namankura/ai"
	"github.com/namankura/namankura/ai/openai"
	"github.com/namankura/namankura/astro"
	"github.com/namankura/namankura/core"
	"github.com/namankura/namankura/corpus"
	"github.com/namankura/namankura/profile"
	"github.com/namankura/namankura/refresh"
	"github.com/namankura/namankura/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "namankura",
		Usage: "Baby name discovery from a corpus of Indian names",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "Path to profile.toml (default ~/.namankura/profile.toml)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "Load name records into the corpus database",
				Action: seedCommand,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "JSON corpus file (defaults to the built-in sample corpus)",
					},
				),
			},
			{
				Name:      "wish",
				Usage:     "Search the corpus for names matching a wish",
				ArgsUsage: "[wish text]",
				Action:    wishCommand,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:  "gender",
						Usage: "Gender filter (boy, girl, unisex)",
					},
					&cli.IntFlag{
						Name:  "syllables",
						Usage: "Exact syllable count",
					},
					&cli.StringSliceFlag{
						Name:  "source",
						Usage: "Source tradition (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "start-letter",
						Usage: "Starting letter or prefix (repeatable)",
					},
					&cli.StringFlag{
						Name:  "deity",
						Usage: "Deity association",
					},
					&cli.BoolFlag{
						Name:  "vedic",
						Usage: "Derive starting sounds from the birth nakshatra",
					},
					&cli.StringFlag{
						Name:  "birth-date",
						Usage: "Birth date (YYYY-MM-DD)",
					},
					&cli.StringFlag{
						Name:  "birth-time",
						Usage: "Birth time (HH:MM)",
					},
					&cli.StringFlag{
						Name:  "birth-place",
						Usage: "Birth place",
					},
				),
			},
			{
				Name:      "astro",
				Usage:     "Show the nakshatra reading for a birth moment",
				Action:    astroCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "birth-date",
						Usage:    "Birth date (YYYY-MM-DD)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "birth-time",
						Usage:    "Birth time (HH:MM)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "birth-place",
						Usage: "Birth place",
						Value: "unknown",
					},
				},
			},
			{
				Name:      "kindred",
				Usage:     "Find names whose meanings are similar to a query",
				ArgsUsage: "[query text]",
				Action:    kindredCommand,
				Flags: append(commonFlags(),
					&cli.IntFlag{
						Name:  "max",
						Usage: "Maximum number of hits",
						Value: 10,
					},
				),
			},
			{
				Name:   "refresh",
				Usage:  "Recompute meaning embeddings for all name records",
				Action: refreshCommand,
				Flags: append(commonFlags(),
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of records to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N records",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: refresh.DefaultConfig().RetryDelay,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// commonFlags returns the database and AI endpoint flags shared by the
// corpus-touching commands. Unset flags fall back to the profile.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to BadgerDB database directory",
		},
		&cli.StringFlag{
			Name:  "ai-host",
			Usage: "OpenAI-compatible service host URL",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
		},
		&cli.StringFlag{
			Name:  "parser-model",
			Usage: "Wish parser model name",
		},
	}
}

// loadProfile reads the profile named by the global flag, or the default
// profile path. A missing file yields the built-in defaults.
func loadProfile(c *cli.Context) (*profile.Profile, error) {
	path := c.String("profile")
	if path == "" {
		var err error
		path, err = profile.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolving profile path: %w", err)
		}
	}
	return profile.Load(path)
}

// openLibrary opens the corpus library using flags first, profile second.
func openLibrary(c *cli.Context, prof *profile.Profile) (*namankura.Library, error) {
	dbPath := c.String("db")
	if dbPath == "" {
		dbPath = prof.DatabasePath
	}
	if dbPath == "" {
		return nil, fmt.Errorf("database path is required (--db or profile)")
	}

	aiConfig := ai.DefaultConfig()
	if prof.AI.Host != "" {
		aiConfig.EmbeddingHost = prof.AI.Host
		aiConfig.ParserHost = prof.AI.Host
	}
	if prof.AI.EmbeddingModel != "" {
		aiConfig.EmbeddingModel = prof.AI.EmbeddingModel
	}
	if prof.AI.ParserModel != "" {
		aiConfig.ParserModel = prof.AI.ParserModel
	}
	if host := c.String("ai-host"); host != "" {
		aiConfig.EmbeddingHost = host
		aiConfig.ParserHost = host
	}
	if model := c.String("embedding-model"); model != "" {
		aiConfig.EmbeddingModel = model
	}
	if model := c.String("parser-model"); model != "" {
		aiConfig.ParserModel = model
	}

	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	return namankura.OpenLibrary(dbPath, namankura.WithAIConfig(aiConfig))
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	prof, err := loadProfile(c)
	if err != nil {
		return err
	}

	var records []*core.NameRecord
	if path := c.String("file"); path != "" {
		records, err = corpus.LoadFile(path)
		if err != nil {
			return err
		}
	} else {
		records = corpus.SeedRecords()
	}

	lib, err := openLibrary(c, prof)
	if err != nil {
		return err
	}
	defer lib.Close()

	pipeline, err := lib.NewSeedingPipeline()
	if err != nil {
		return fmt.Errorf("failed to create seeding pipeline: %w", err)
	}
	defer pipeline.Release()

	seeded, err := pipeline.SeedSync(ctx, records...)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Seeded %d name records\n", len(seeded))
	return nil
}

func wishCommand(c *cli.Context) error {
	ctx := context.Background()

	prof, err := loadProfile(c)
	if err != nil {
		return err
	}

	base := prof.BaseFilters()
	applyFilterFlags(c, base)

	lib, err := openLibrary(c, prof)
	if err != nil {
		return err
	}
	defer lib.Close()

	discoverer, err := lib.NewDiscoverer()
	if err != nil {
		return fmt.Errorf("failed to create discoverer: %w", err)
	}

	wish := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	results, err := discoverer.Discover(ctx, wish, base)
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No matching names.")
		return nil
	}

	for _, record := range results {
		fmt.Printf("%-12s %-8s %s\n", record.Name, record.Gender, record.Meaning)
	}
	return nil
}

// applyFilterFlags overlays command-line filter flags on the profile's
// baseline filters.
func applyFilterFlags(c *cli.Context, filters *core.WishFilters) {
	if gender := c.String("gender"); gender != "" {
		filters.Gender = core.Gender(gender)
	}
	if c.IsSet("syllables") {
		syllables := c.Int("syllables")
		filters.Syllables = &syllables
	}
	if sources := c.StringSlice("source"); len(sources) > 0 {
		filters.Sources = sources
	}
	if letters := c.StringSlice("start-letter"); len(letters) > 0 {
		filters.StartLetters = letters
	}
	if deity := c.String("deity"); deity != "" {
		filters.Deity = &deity
	}
	if c.IsSet("vedic") {
		filters.VedicMode = c.Bool("vedic")
	}

	date := c.String("birth-date")
	clock := c.String("birth-time")
	place := c.String("birth-place")
	if date != "" || clock != "" || place != "" {
		if filters.Birth == nil {
			filters.Birth = &core.BirthDetails{}
		}
		if date != "" {
			filters.Birth.Date = date
		}
		if clock != "" {
			filters.Birth.Time = clock
		}
		if place != "" {
			filters.Birth.Place = place
		}
	}
}

func astroCommand(c *cli.Context) error {
	ctx := context.Background()

	calc := astro.NewPanchanga()
	reading, err := calc.Reading(ctx, core.BirthDetails{
		Date:  c.String("birth-date"),
		Time:  c.String("birth-time"),
		Place: c.String("birth-place"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Nakshatra: %s\n", reading.Nakshatra)
	fmt.Printf("Pada:      %d\n", reading.Pada)
	fmt.Printf("Sounds:    %s\n", strings.Join(reading.StartSounds, ", "))
	return nil
}

func kindredCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query text is required")
	}

	prof, err := loadProfile(c)
	if err != nil {
		return err
	}

	lib, err := openLibrary(c, prof)
	if err != nil {
		return err
	}
	defer lib.Close()

	discoverer, err := lib.NewDiscoverer()
	if err != nil {
		return fmt.Errorf("failed to create discoverer: %w", err)
	}

	matches, err := discoverer.FindKindred(ctx, query, c.Int("max"))
	if err != nil {
		return fmt.Errorf("kindred search failed: %w", err)
	}

	if len(matches) == 0 {
		fmt.Println("No kindred names.")
		return nil
	}

	for _, match := range matches {
		fmt.Printf("%.3f  %-12s %s\n", match.Score, match.Record.Name, match.Record.Meaning)
	}
	return nil
}

func refreshCommand(c *cli.Context) error {
	ctx := context.Background()

	prof, err := loadProfile(c)
	if err != nil {
		return err
	}

	dbPath := c.String("db")
	if dbPath == "" {
		dbPath = prof.DatabasePath
	}
	if dbPath == "" {
		return fmt.Errorf("database path is required (--db or profile)")
	}

	// Open database
	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewNameRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	aiConfig := ai.DefaultConfig()
	if prof.AI.Host != "" {
		aiConfig.EmbeddingHost = prof.AI.Host
	}
	if prof.AI.EmbeddingModel != "" {
		aiConfig.EmbeddingModel = prof.AI.EmbeddingModel
	}
	if host := c.String("ai-host"); host != "" {
		aiConfig.EmbeddingHost = host
	}
	if model := c.String("embedding-model"); model != "" {
		aiConfig.EmbeddingModel = model
	}

	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	refreshConfig := &refresh.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	// Validate config
	if refreshConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if refreshConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if refreshConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	refresher := refresh.NewRefresher(repo, embedder, refreshConfig, os.Stderr)

	fmt.Fprintf(os.Stderr, "Database: %s\n", dbPath)
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", aiConfig.EmbeddingHost)
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", aiConfig.EmbeddingModel)
	fmt.Fprintln(os.Stderr)

	if err := refresher.Run(ctx); err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
