// Package store persists ledger accounts in LevelDB, keyed by public key.
// It plays the account-provider role of the surrounding runtime: the
// program core never touches it.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/syndtr/goleveldb/leveldb"
	leveldbstorage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/ledgerlabs/abacus/prog"
)

// AccountStore wraps LevelDB for account persistence.
// Thread-safe: LevelDB handles its own synchronization.
type AccountStore struct {
	db *leveldb.DB
}

// Open opens or creates an account database at the given path.
// An empty path opens an in-memory database.
func Open(path string) (*AccountStore, error) {
	var db *leveldb.DB
	var err error

	if path == "" {
		db, err = leveldb.Open(leveldbstorage.NewMemStorage(), nil)
	} else {
		db, err = leveldb.OpenFile(path, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open account database at %q: %w", path, err)
	}

	return &AccountStore{db: db}, nil
}

// OpenMemory opens an in-memory AccountStore for testing.
func OpenMemory() (*AccountStore, error) {
	return Open("")
}

// Get retrieves an account by key. Returns (nil, false, nil) if not found.
func (s *AccountStore) Get(key solana.PublicKey) (*prog.Account, bool, error) {
	data, err := s.db.Get(key.Bytes(), nil)
	if err == leveldb.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	acc := new(prog.Account)
	if err := json.Unmarshal(data, acc); err != nil {
		return nil, false, fmt.Errorf("decode account %s: %w", key, err)
	}
	return acc, true, nil
}

// Put writes an account record under its own key.
func (s *AccountStore) Put(acc *prog.Account) error {
	data, err := json.Marshal(acc)
	if err != nil {
		return fmt.Errorf("encode account %s: %w", acc.Key, err)
	}
	return s.db.Put(acc.Key.Bytes(), data, nil)
}

// Delete removes an account record.
func (s *AccountStore) Delete(key solana.PublicKey) error {
	return s.db.Delete(key.Bytes(), nil)
}

func (s *AccountStore) Close() error {
	return s.db.Close()
}
