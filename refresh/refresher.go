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


package refresh

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/namankura/namankura/ai"
	"github.com/namankura/namankura/core"
	"github.com/namankura/namankura/storage"
)

// Config holds configuration for a corpus refresh.
type Config struct {
	// BatchSize is the number of records to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of records)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed operations
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Refresher regenerates the meaning embeddings of every record in the
// corpus, typically after switching to a new embedding model.
type Refresher struct {
	repo      storage.NameRepository
	embedder  ai.Embedder
	config    *Config
	progress  io.Writer
	processor *BatchProcessor
	iterator  *RecordIterator
}

// NewRefresher creates a new refresher.
// progress: where to write progress output (typically os.Stderr)
func NewRefresher(repo storage.NameRepository, embedder ai.Embedder, config *Config, progress io.Writer) *Refresher {
	if config == nil {
		config = DefaultConfig()
	}

	processor := NewBatchProcessor(repo, embedder, config.MaxRetries, config.RetryDelay)
	iterator := NewRecordIterator(repo, config.BatchSize)

	return &Refresher{
		repo:      repo,
		embedder:  embedder,
		config:    config,
		progress:  progress,
		processor: processor,
		iterator:  iterator,
	}
}

// Run executes the refresh. Every name record in the corpus is reembedded
// with the configured embedder. Progress is reported to the configured
// writer.
func (r *Refresher) Run(ctx context.Context) error {
	allRecords, err := r.repo.ListNames(ctx)
	if err != nil {
		return fmt.Errorf("failed to list corpus: %w", err)
	}

	totalRecords := len(allRecords)
	if totalRecords == 0 {
		fmt.Fprintf(r.progress, "No records found in corpus (0 records)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting refresh of %d records (batch size: %d)\n",
		totalRecords, r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, totalRecords, r.config.ReportInterval)
	tracker.Start()

	processed := 0

	err = r.iterator.ForEach(ctx, func(records []*core.NameRecord) error {
		if err := r.processor.Process(ctx, records); err != nil {
			return fmt.Errorf("failed to process batch: %w", err)
		}

		processed += len(records)
		tracker.Update(processed)

		return nil
	})

	if err != nil {
		return err
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Refresh complete. Processed %d records in %v (%.1f records/sec)\n",
		totalRecords, elapsed.Round(time.Second), float64(totalRecords)/elapsed.Seconds())

	return nil
}
