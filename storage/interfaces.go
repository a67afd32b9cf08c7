package storage

import (
	"context"

	"github.com/namankura/namankura/core"
)

// NameRepository provides operations for managing the name corpus.
// Implementations must be thread-safe and support concurrent access.
type NameRepository interface {
	// AddNames adds one or more name records to storage.
	// IDs are derived from record content (IDFromContent of ContentKey),
	// so re-adding the same name overwrites rather than duplicates.
	// Corpus order is the order records were first added, and is preserved
	// across overwrites. Sets InsertedAt/UpdatedAt timestamps.
	// Returns the records with IDs and timestamps populated.
	AddNames(ctx context.Context, records ...*core.NameRecord) ([]*core.NameRecord, error)

	// UpdateNames updates existing name records.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any record doesn't exist.
	UpdateNames(ctx context.Context, records ...*core.NameRecord) ([]*core.NameRecord, error)

	// DeleteNames removes name records by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteNames(ctx context.Context, ids ...core.ID) error

	// GetName retrieves a single name record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetName(ctx context.Context, id core.ID) (*core.NameRecord, error)

	// GetNames retrieves multiple name records by their IDs.
	// Returns only the records that exist (no error for missing records).
	GetNames(ctx context.Context, ids ...core.ID) ([]*core.NameRecord, error)

	// ListNames retrieves every record in corpus order (the order records
	// were first added). This order is authoritative for match output.
	ListNames(ctx context.Context) ([]*core.NameRecord, error)

	// FindByName finds a record by display name (case-insensitive) and language.
	// Returns ErrNotFound if no matching record exists.
	FindByName(ctx context.Context, name, language string) (*core.NameRecord, error)

	// FindSimilar finds name records whose meaning vectors are similar to
	// the given vector. Returns records with similarity >= minSimilarity,
	// up to limit results, ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.NameMatch, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}
