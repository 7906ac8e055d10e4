// Package store is a persistent registry of signing keys and their types,
// backed by LevelDB.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/edup2p/primitives/types"
	"github.com/edup2p/primitives/types/key"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// PrefixRegistry prefixes every registry record, reg:Key = Entry.
//
// Keys are stored raw, so LevelDB's bytewise ordering matches key.Compare.
const PrefixRegistry = "reg:"

type Store struct {
	db *leveldb.DB
}

// Open opens or creates a registry at path.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry at %s: %w", path, err)
	}

	slog.Info("opened key registry", "path", path)
	return &Store{db: db}, nil
}

// OpenMemory opens a registry that lives only in memory.
func OpenMemory() (*Store, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory registry: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func dbKey(k key.Key) []byte {
	return append([]byte(PrefixRegistry), k[:]...)
}

// Put registers k, replacing any previous entry.
func (s *Store) Put(k key.Key, e Entry) error {
	val, err := e.MarshalBinary()
	if err != nil {
		return fmt.Errorf("cannot encode entry for %s: %w", k.Debug(), err)
	}

	if err := s.db.Put(dbKey(k), val, nil); err != nil {
		return fmt.Errorf("cannot store %s: %w", k.Debug(), err)
	}

	slog.Log(context.Background(), types.LevelTrace, "registered key", "key", k.Debug(), "type", e.Type)
	return nil
}

// Get returns the entry for k, or ErrNotFound.
func (s *Store) Get(k key.Key) (Entry, error) {
	val, err := s.db.Get(dbKey(k), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return Entry{}, ErrNotFound
	} else if err != nil {
		return Entry{}, fmt.Errorf("cannot read %s: %w", k.Debug(), err)
	}

	var e Entry
	if err := e.UnmarshalBinary(val); err != nil {
		return Entry{}, fmt.Errorf("entry for %s: %w", k.Debug(), err)
	}
	return e, nil
}

func (s *Store) Has(k key.Key) (bool, error) {
	return s.db.Has(dbKey(k), nil)
}

// Delete removes k. Deleting an unregistered key is not an error.
func (s *Store) Delete(k key.Key) error {
	if err := s.db.Delete(dbKey(k), nil); err != nil {
		return fmt.Errorf("cannot delete %s: %w", k.Debug(), err)
	}

	slog.Log(context.Background(), types.LevelTrace, "unregistered key", "key", k.Debug())
	return nil
}

// List returns every record in ascending key order.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	var records []Record

	err := s.Iterate(ctx, func(r Record) bool {
		records = append(records, r)
		return true
	})

	return records, err
}

// Iterate calls fn for every record in ascending key order, until fn
// returns false or ctx is done.
func (s *Store) Iterate(ctx context.Context, fn func(Record) bool) error {
	iter := s.db.NewIterator(util.BytesPrefix([]byte(PrefixRegistry)), nil)
	defer iter.Release()

	for iter.Next() {
		if types.IsContextDone(ctx) {
			return context.Cause(ctx)
		}

		raw := iter.Key()[len(PrefixRegistry):]
		k, err := key.FromBytesStrict(raw)
		if err != nil {
			return fmt.Errorf("%w: record key: %w", ErrCorrupt, err)
		}

		var r Record
		r.Key = k
		if err := r.Entry.UnmarshalBinary(iter.Value()); err != nil {
			return fmt.Errorf("entry for %s: %w", k.Debug(), err)
		}

		if !fn(r) {
			break
		}
	}

	return iter.Error()
}
