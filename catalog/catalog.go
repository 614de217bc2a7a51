// SPDX-License-Identifier: MIT

// Package catalog stores canonical certificates in a BadgerDB so that
// isomorphic inputs are recognised across runs.
//
// Entries are keyed by the certificate hash. Adding a certificate that is
// already present returns the stored entry and marks the result as a
// duplicate; nothing is overwritten.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/canonlab/automorphism"
)

var (
	// ErrConfig indicates an unusable Config.
	ErrConfig = errors.New("catalog: invalid configuration")

	// ErrClosed indicates use of a closed catalog.
	ErrClosed = errors.New("catalog: closed")

	// ErrNotFound indicates that no entry has the requested certificate.
	ErrNotFound = errors.New("catalog: entry not found")

	// ErrCollision indicates two different certificates with one hash.
	ErrCollision = errors.New("catalog: certificate hash collision")
)

var entryPrefix = []byte("cert/")

// Config describes where and how the catalog is stored.
type Config struct {
	// Path is the database directory; ignored when InMemory is set.
	Path string `yaml:"path"`
	// InMemory keeps everything in RAM.
	InMemory bool `yaml:"in_memory"`
	// SyncWrites fsyncs every commit.
	SyncWrites bool `yaml:"sync_writes"`
	// ReadOnly opens an existing database without write access.
	ReadOnly bool `yaml:"read_only"`
	// Logger receives catalog and badger records; nil discards them.
	Logger *slog.Logger `yaml:"-"`
}

// DefaultConfig returns a persistent configuration at path.
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

// InMemoryConfig returns a configuration for tests.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// Entry is one catalogued structure.
type Entry struct {
	Name  string    `json:"name"`
	Hash  string    `json:"hash"`
	Order int       `json:"order"`
	Size  int       `json:"size"`
	Added time.Time `json:"added"`
}

// AddResult reports the outcome of Add.
type AddResult struct {
	// Entry is the stored entry: the new one, or the existing one for
	// duplicates.
	Entry Entry
	// Duplicate is set when an isomorphic structure was already present.
	Duplicate bool
}

type record struct {
	Entry       Entry                    `json:"entry"`
	Certificate automorphism.Certificate `json:"certificate"`
}

// Catalog is a certificate store. It is safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	db       *badger.DB
	logger   *slog.Logger
	inMemory bool
	now      func() time.Time
}

// badgerLogger adapts slog to badger.Logger.
type badgerLogger struct {
	logger *slog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Open opens or creates the catalog described by cfg.
func Open(cfg Config) (*Catalog, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var opts badger.Options
	switch {
	case cfg.InMemory && cfg.ReadOnly:
		return nil, fmt.Errorf("%w: read-only in-memory catalog", ErrConfig)
	case cfg.InMemory:
		opts = badger.DefaultOptions("").WithInMemory(true)
	case cfg.Path == "":
		return nil, fmt.Errorf("%w: path is required for a persistent catalog", ErrConfig)
	default:
		if !cfg.ReadOnly {
			if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
				return nil, fmt.Errorf("create catalog directory %s: %w", cfg.Path, err)
			}
		}
		opts = badger.DefaultOptions(cfg.Path)
		opts.ReadOnly = cfg.ReadOnly
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	opts.MetricsEnabled = false
	if cfg.Logger != nil {
		opts = opts.WithLogger(badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	logger.Debug("catalog opened", slog.String("path", cfg.Path), slog.Bool("in_memory", cfg.InMemory))

	return &Catalog{db: db, logger: logger, inMemory: cfg.InMemory, now: time.Now}, nil
}

func entryKey(hash string) []byte {
	return append(append([]byte(nil), entryPrefix...), hash...)
}

func readRecord(item *badger.Item) (record, error) {
	var rec record
	err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &rec)
	})
	if err != nil {
		return rec, fmt.Errorf("decode entry %s: %w", item.Key(), err)
	}

	return rec, nil
}

// Add stores cert under name unless an equal certificate is present.
func (c *Catalog) Add(name string, cert automorphism.Certificate) (AddResult, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.db == nil {
		return AddResult{}, ErrClosed
	}

	hash := cert.Hash()
	key := entryKey(hash)
	var res AddResult
	err := c.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		switch {
		case err == nil:
			rec, err := readRecord(item)
			if err != nil {
				return err
			}
			if !rec.Certificate.Equal(cert) {
				return fmt.Errorf("%w: %s", ErrCollision, hash)
			}
			res = AddResult{Entry: rec.Entry, Duplicate: true}
			return nil
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}

		rec := record{
			Entry: Entry{
				Name:  name,
				Hash:  hash,
				Order: cert.Order,
				Size:  len(cert.Edges),
				Added: c.now().UTC(),
			},
			Certificate: cert,
		}
		val, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode entry: %w", err)
		}
		res = AddResult{Entry: rec.Entry}
		return txn.Set(key, val)
	})
	if err != nil {
		return AddResult{}, fmt.Errorf("add %q: %w", name, err)
	}
	c.logger.Debug("catalog add",
		slog.String("name", name),
		slog.String("hash", hash),
		slog.Bool("duplicate", res.Duplicate))

	return res, nil
}

// Lookup returns the entry for an equal certificate, or ErrNotFound.
func (c *Catalog) Lookup(cert automorphism.Certificate) (Entry, error) {
	rec, err := c.get(cert.Hash())
	if err != nil {
		return Entry{}, err
	}
	if !rec.Certificate.Equal(cert) {
		return Entry{}, fmt.Errorf("%w: %s", ErrCollision, cert.Hash())
	}

	return rec.Entry, nil
}

// LookupHash returns the entry stored under a certificate hash.
func (c *Catalog) LookupHash(hash string) (Entry, error) {
	rec, err := c.get(hash)
	if err != nil {
		return Entry{}, err
	}

	return rec.Entry, nil
}

func (c *Catalog) get(hash string) (record, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.db == nil {
		return record{}, ErrClosed
	}

	var rec record
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(entryKey(hash))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, hash)
		}
		if err != nil {
			return err
		}
		rec, err = readRecord(item)
		return err
	})

	return rec, err
}

// Entries calls fn for every entry in hash order until fn returns false.
func (c *Catalog) Entries(fn func(Entry) bool) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.db == nil {
		return ErrClosed
	}

	return c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: entryPrefix, PrefetchValues: true, PrefetchSize: 64})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			rec, err := readRecord(it.Item())
			if err != nil {
				return err
			}
			if !fn(rec.Entry) {
				return nil
			}
		}
		return nil
	})
}

// Count returns the number of entries.
func (c *Catalog) Count() (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.db == nil {
		return 0, ErrClosed
	}

	n := 0
	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: entryPrefix})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})

	return n, err
}

// Compact runs value-log garbage collection until nothing is rewritten.
// It is a no-op for in-memory catalogs.
func (c *Catalog) Compact(discardRatio float64) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.db == nil {
		return ErrClosed
	}
	if discardRatio <= 0 || discardRatio >= 1 {
		return fmt.Errorf("%w: discard ratio %v not in (0,1)", ErrConfig, discardRatio)
	}
	if c.inMemory {
		return nil
	}
	for {
		err := c.db.RunValueLogGC(discardRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("compact: %w", err)
		}
		c.logger.Debug("catalog value log rewritten")
	}
}

// Close releases the database. Further calls return nil.
func (c *Catalog) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	c.logger.Debug("catalog closed")

	return err
}
