package badger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/utamaduni/storage"
)

// collection stores an ordered sequence of records, one key per position.
// Each save writes a new generation of keys; the marker names the live one.
type collection[T any] struct {
	backend   *Backend
	name      string
	prefix    string
	marker    string
	marshal   func(*T) []byte
	unmarshal func([]byte) (*T, error)
	defaults  func() []T
	logger    *slog.Logger

	// Serializes saves.
	mu sync.Mutex
}

// load reads the whole collection in position order. A missing or corrupt
// collection is replaced by its defaults.
func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	if c.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var records []T
	found := false
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		gen, ok, err := c.readGeneration(tx)
		if err != nil || !ok {
			return err
		}
		found = true

		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeGenerationPrefix(c.prefix, gen)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				record, err := c.unmarshal(val)
				if err != nil {
					return err
				}
				records = append(records, *record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	switch {
	case errors.Is(err, storage.ErrSerializationFailed):
		c.logger.Warn("corrupt collection, recreating with defaults", "collection", c.name, "err", err)
		return c.reset(ctx)
	case err != nil:
		return nil, err
	case !found:
		c.logger.Info("collection not found, creating with defaults", "collection", c.name)
		return c.reset(ctx)
	}

	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (c *collection[T]) reset(ctx context.Context) ([]T, error) {
	records := c.defaults()
	if err := c.save(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

// save replaces the whole collection. Records are staged under the next
// generation with a write batch, so the collection size is not bound by the
// transaction limit, and become visible at once when a single transaction
// moves the marker to that generation.
func (c *collection[T]) save(ctx context.Context, records []T) error {
	if c.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var current uint64
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		gen, _, err := c.readGeneration(tx)
		current = gen
		return err
	}, false)
	if err != nil && !errors.Is(err, storage.ErrSerializationFailed) {
		return err
	}

	next := current + 1
	staged := makeGenerationPrefix(c.prefix, next)

	// Leftovers of an interrupted save at the staged generation.
	if err := c.deleteKeys(func(key []byte) bool { return bytes.HasPrefix(key, staged) }); err != nil {
		return err
	}

	err = c.backend.WithBatch(func(wb *badger.WriteBatch) error {
		for i := range records {
			if err := wb.Set(makePositionKey(c.prefix, next, i), c.marshal(&records[i])); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	err = c.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set([]byte(c.marker), encodeGeneration(next)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return err
	}

	// Earlier generations are unreachable once the marker has moved.
	if err := c.deleteKeys(func(key []byte) bool { return !bytes.HasPrefix(key, staged) }); err != nil {
		c.logger.Warn("could not remove previous collection generation", "collection", c.name, "err", err)
	}
	return nil
}

// readGeneration returns the live generation. ok is false when the collection
// has never been saved.
func (c *collection[T]) readGeneration(tx *badger.Txn) (gen uint64, ok bool, err error) {
	item, err := tx.Get([]byte(c.marker))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	err = item.Value(func(val []byte) error {
		gen, err = decodeGeneration(val)
		return err
	})
	if err != nil {
		return 0, false, err
	}
	return gen, true, nil
}

// deleteKeys removes the record keys of the collection selected by match.
func (c *collection[T]) deleteKeys(match func(key []byte) bool) error {
	var keys [][]byte
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(c.prefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if key := iter.Item().Key(); match(key) {
				keys = append(keys, iter.Item().KeyCopy(nil))
			}
		}
		return nil
	}, false)
	if err != nil || len(keys) == 0 {
		return err
	}

	return c.backend.WithBatch(func(wb *badger.WriteBatch) error {
		for _, key := range keys {
			if err := wb.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}
