// Package database persists every bot document as JSON inside a single bolt
// file and exposes typed accessors over the well-known documents (guild
// configuration, reaction-role bindings, access requests, reminders,
// feature records).
package database

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"time"

	"github.com/rs/zerolog"
	bolt "go.etcd.io/bbolt"
)

// Logical document names. Each maps to one JSON value in the documents bucket.
const (
	docConfig        = "config"
	docReactionRoles = "reaction_roles"
	docWhitelist     = "whitelist"
	docReminders     = "reminders"
	docRecapState    = "recap_state"
	docMoods         = "humeurs"
	docPomodoro      = "pomodoro"
	docGoals         = "objectifs"
	docCitations     = "citations"
)

const documentsBucket = "documents"

// ErrNotFound - The addressed record does not exist or was already resolved.
var ErrNotFound = errors.New("database: not found")

// Store is the process-wide document store. It is created in main and
// threaded explicitly through handlers and scheduler loops.
type Store struct {
	db  *bolt.DB
	mu  sync.RWMutex
	log zerolog.Logger
}

// Open creates the data directory if needed and opens the bolt file in it.
func Open(dir string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(filepath.Join(dir, "atelier.db"), 0600, &bolt.Options{Timeout: 10 * time.Second})
	if err != nil {
		return nil, err
	}
	return &Store{db: db, log: log}, nil
}

// Close closes the underlying bolt file. Deferred in main.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load decodes the named document into v. An absent document leaves v at its
// zero value; a malformed document is logged and treated as empty so a later
// Save repairs it. Only bolt/filesystem failures are returned.
func (s *Store) Load(name string, v interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load(name, v)
}

// Save serialises v and replaces the named document. Bolt commits the write
// transaction with an fsync, so a successful Save survives a crash and is
// visible to every subsequent Load.
func (s *Store) Save(name string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(name, v)
}

func (s *Store) load(name string, v interface{}) error {
	return s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(documentsBucket))
		if b == nil {
			return nil
		}
		raw := b.Get([]byte(name))
		if raw == nil {
			return nil
		}
		if err := json.Unmarshal(raw, v); err != nil {
			s.log.Warn().Str("document", name).Err(err).Msg("malformed document, treating as empty")
			// Unmarshal keeps the fields it decoded before failing, so
			// reset the target to its zero value.
			if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && !rv.IsNil() {
				rv.Elem().Set(reflect.Zero(rv.Elem().Type()))
			}
		}
		return nil
	})
}

func (s *Store) save(name string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(documentsBucket))
		if err != nil {
			return err
		}
		return b.Put([]byte(name), raw)
	})
}

// mutate runs a load-modify-save cycle on the named document under the store
// mutex, so concurrent accessors never interleave their read and write.
func mutate[T any](s *Store, name string, apply func(*T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var doc T
	if err := s.load(name, &doc); err != nil {
		return err
	}
	if err := apply(&doc); err != nil {
		return err
	}
	return s.save(name, &doc)
}

// view loads the named document under the read lock and hands it to fn.
func view[T any](s *Store, name string, fn func(T) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var doc T
	if err := s.load(name, &doc); err != nil {
		return err
	}
	return fn(doc)
}
