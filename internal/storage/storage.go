package storage

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// ProbeKind distinguishes what a cached entry came from, so a miss in
// one collaborator is never served as a hit from the other.
type ProbeKind byte

const (
	ProbeBook ProbeKind = iota
	ProbeTablebase
)

// CachedProbe is the persisted form of an external probe result: a move
// (zero value if none was found), a flag recording the lookup outcome,
// and the raw evaluation the collaborator reported.
type CachedProbe struct {
	Found bool   `json:"found"`
	Move  uint32 `json:"move"` // board.Move, stored as its underlying integer
	Eval  int    `json:"eval"`
	DTZ   int    `json:"dtz"`
}

// Store is a BadgerDB-backed cache for book/tablebase probe results,
// keyed by Zobrist hash. It never holds transposition-table entries:
// those are scoped to a single search and are not persisted across runs.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the on-disk probe cache.
func Open() (*Store, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func probeKey(kind ProbeKind, hash uint64) []byte {
	return []byte(fmt.Sprintf("probe:%d:%016x", kind, hash))
}

// Get returns a previously cached probe result for hash, if any.
func (s *Store) Get(kind ProbeKind, hash uint64) (CachedProbe, bool) {
	var result CachedProbe
	found := false

	_ = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(probeKey(kind, hash))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &result); err != nil {
				return err
			}
			found = true
			return nil
		})
	})

	return result, found
}

// Put records a probe result for hash.
func (s *Store) Put(kind ProbeKind, hash uint64, result CachedProbe) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(probeKey(kind, hash), data)
	})
}
