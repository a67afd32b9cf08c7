package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/namankura/namankura/core"
	"github.com/namankura/namankura/storage"
)

// NameRepository implements storage.NameRepository for BadgerDB.
//
// Record IDs are derived from content (lowercased name + language), so
// re-adding the same name overwrites the stored record while keeping its
// original position in the corpus-order index.
type NameRepository struct {
	backend  *Backend
	orderSeq *badger.Sequence
}

var _ storage.NameRepository = (*NameRepository)(nil)

// NewNameRepository creates a new NameRepository.
func NewNameRepository(backend *Backend) (*NameRepository, error) {
	orderSeq, err := backend.GetSequence(nameOrderSeq)
	if err != nil {
		return nil, err
	}

	return &NameRepository{
		backend:  backend,
		orderSeq: orderSeq,
	}, nil
}

// Close releases the order sequence.
func (r *NameRepository) Close() error {
	return r.orderSeq.Release()
}

// FindSimilar delegates to the backend.
func (r *NameRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.NameMatch, error) {
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}

// WithTransaction delegates to the backend.
func (r *NameRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddNames adds one or more name records to storage.
// A record whose content key already exists overwrites the stored record
// and keeps its original corpus-order position.
func (r *NameRepository) AddNames(ctx context.Context, records ...*core.NameRecord) ([]*core.NameRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			record.Id = core.IDFromContent(record.ContentKey())
			key := makeNameRecordKey(record.Id)

			old, err := r.readNameRecord(tx, key)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			if old != nil {
				// Overwrite: keep the original insertion timestamp and
				// corpus-order position.
				record.InsertedAt = old.InsertedAt
				record.UpdatedAt = now
			} else {
				record.InsertedAt = now
				record.UpdatedAt = now

				// Append to the corpus-order index.
				seq, err := r.orderSeq.Next()
				if err != nil {
					return err
				}
				orderKey := makeNameOrderKey(seq, record.Id)
				if err := tx.Set(orderKey, storage.MarshalID(record.Id)); err != nil {
					return err
				}
				if err := tx.Set(makeNameSeqKey(record.Id), encodeSeq(seq)); err != nil {
					return err
				}

				// Lookup index for case-insensitive name+language queries.
				lookupKey := makeNameLookupKey(record.Name, record.Language)
				if err := tx.Set(lookupKey, storage.MarshalID(record.Id)); err != nil {
					return err
				}
			}

			value := storage.MarshalNameRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// UpdateNames updates existing name records.
func (r *NameRepository) UpdateNames(ctx context.Context, records ...*core.NameRecord) ([]*core.NameRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			key := makeNameRecordKey(record.Id)

			old, err := r.readNameRecord(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			record.InsertedAt = old.InsertedAt
			record.UpdatedAt = time.Now().UTC()

			value := storage.MarshalNameRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// DeleteNames removes name records by their IDs.
func (r *NameRepository) DeleteNames(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeNameRecordKey(id)

			// Read record to get metadata for index cleanup
			record, err := r.readNameRecord(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}

			// Delete from the corpus-order index
			seqKey := makeNameSeqKey(id)
			item, err := tx.Get(seqKey)
			if err == nil {
				var seq uint64
				if err := item.Value(func(val []byte) error {
					seq = decodeSeq(val)
					return nil
				}); err != nil {
					return err
				}
				if err := tx.Delete(makeNameOrderKey(seq, id)); err != nil {
					return err
				}
				if err := tx.Delete(seqKey); err != nil {
					return err
				}
			} else if err != badger.ErrKeyNotFound {
				return err
			}

			// Delete from the lookup index
			if err := tx.Delete(makeNameLookupKey(record.Name, record.Language)); err != nil {
				return err
			}

			// Delete primary record
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetName retrieves a single name record by ID.
func (r *NameRepository) GetName(ctx context.Context, id core.ID) (*core.NameRecord, error) {
	var result *core.NameRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeNameRecordKey(id)
		var err error
		result, err = r.readNameRecord(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetNames retrieves multiple name records by their IDs.
func (r *NameRepository) GetNames(ctx context.Context, ids ...core.ID) ([]*core.NameRecord, error) {
	var result []*core.NameRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeNameRecordKey(id)
			record, err := r.readNameRecord(tx, key)
			if err != nil {
				return err
			}
			if record != nil {
				result = append(result, record)
			}
		}
		return nil
	}, false)
	return result, err
}

// ListNames retrieves every record in corpus order by walking the
// insertion-sequence index.
func (r *NameRepository) ListNames(ctx context.Context) ([]*core.NameRecord, error) {
	var results []*core.NameRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(nameOrderPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var recordID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				recordID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			record, err := r.readNameRecord(tx, makeNameRecordKey(recordID))
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)

	return results, err
}

// FindByName finds a record by display name (case-insensitive) and language.
func (r *NameRepository) FindByName(ctx context.Context, name, language string) (*core.NameRecord, error) {
	var result *core.NameRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeNameLookupKey(name, language))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var recordID core.ID
		if err := item.Value(func(val []byte) error {
			var err error
			recordID, err = storage.UnmarshalID(val)
			return err
		}); err != nil {
			return err
		}

		result, err = r.readNameRecord(tx, makeNameRecordKey(recordID))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// readNameRecord reads a name record from the transaction.
func (r *NameRepository) readNameRecord(tx *badger.Txn, key []byte) (*core.NameRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.NameRecord
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		record, unmarshalErr = storage.UnmarshalNameRecord(val)
		return unmarshalErr
	})
	return record, err
}
