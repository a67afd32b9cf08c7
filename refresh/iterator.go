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

	"github.com/namankura/namankura/core"
	"github.com/namankura/namankura/storage"
)

const (
	// DefaultBatchSize is the default number of records to process in each batch
	DefaultBatchSize = 100
)

// RecordIterator walks the whole corpus in insertion order, in batches.
type RecordIterator struct {
	repo      storage.NameRepository
	batchSize int
}

// NewRecordIterator creates a new record iterator.
// batchSize: number of records per batch (must be > 0)
func NewRecordIterator(repo storage.NameRepository, batchSize int) *RecordIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &RecordIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach iterates over all name records, calling fn for each batch.
// Iteration stops on first error from fn or when all records are processed.
// Context cancellation is checked between batches.
func (it *RecordIterator) ForEach(ctx context.Context, fn func([]*core.NameRecord) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	records, err := it.repo.ListNames(ctx)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		return nil
	}

	for i := 0; i < len(records); i += it.batchSize {
		end := i + it.batchSize
		if end > len(records) {
			end = len(records)
		}

		if err := fn(records[i:end]); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	return nil
}
