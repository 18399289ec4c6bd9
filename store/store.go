// SPDX-License-Identifier: MIT

// Package store caches solver answers in BadgerDB.
//
// Keys are SHA-256 digests of everything that determines an answer: the
// solver name, the graph, the grammar and the enabled settings. Values are
// matrix.Bool binary encodings.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/cflr/grammar"
	"github.com/katalvlaran/cflr/lgraph"
	"github.com/katalvlaran/cflr/matrix"
	"github.com/katalvlaran/cflr/setting"
)

// ErrNotFound is returned by Get for an absent key.
var ErrNotFound = errors.New("store: not found")

// keyPrefix namespaces answer keys inside the database.
const keyPrefix = "answer/"

// Store is an answer cache. Safe for concurrent use.
type Store struct {
	db  *badger.DB
	log *slog.Logger
}

// badgerLogger adapts slog to badger.Logger.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Open opens (creating if needed) a persistent cache in dir. A nil logger
// silences badger.
func Open(dir string, log *slog.Logger) (*Store, error) {
	if dir == "" {
		return nil, errors.New("store: directory is required")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("store: create %s: %w", dir, err)
	}

	return open(badger.DefaultOptions(dir).WithSyncWrites(true), log)
}

// InMemory opens a cache that lives only as long as the Store.
func InMemory(log *slog.Logger) (*Store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true), log)
}

func open(opts badger.Options, log *slog.Logger) (*Store, error) {
	opts = opts.WithNumVersionsToKeep(1)
	if log != nil {
		opts = opts.WithLogger(&badgerLogger{logger: log})
	} else {
		opts = opts.WithLogger(nil)
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger database: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the cached answer for key.
//
// Errors: ErrNotFound, matrix.ErrCorruptEncoding.
func (s *Store) Get(key string) (*matrix.Bool, error) {
	var m matrix.Bool
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if err != nil {
			return err
		}
		return item.Value(m.UnmarshalBinary)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", key, err)
	}
	s.log.Debug("cache hit", "key", key, "nvals", m.NVals())

	return &m, nil
}

// Put stores answer under key, replacing any previous value.
func (s *Store) Put(key string, answer *matrix.Bool) error {
	data, err := answer.MarshalBinary()
	if err != nil {
		return fmt.Errorf("store: put %s: %w", key, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+key), data)
	})
	if err != nil {
		return fmt.Errorf("store: put %s: %w", key, err)
	}
	s.log.Debug("cache put", "key", key, "bytes", len(data))

	return nil
}

// Key digests the inputs of a solve. Equal inputs give equal keys,
// independently of map order.
func Key(algo string, g *lgraph.Graph, gr *grammar.Template, list []setting.Setting) (string, error) {
	h := sha256.New()
	fmt.Fprintf(h, "algo %s\n", algo)

	var enabled []string
	for _, st := range list {
		if st.Enabled() {
			enabled = append(enabled, st.VarName())
		}
	}
	sort.Strings(enabled)
	fmt.Fprintf(h, "settings %v\n", enabled)

	if err := gr.Write(h, true); err != nil {
		return "", fmt.Errorf("store: key: %w", err)
	}
	fmt.Fprintf(h, "graph %d %d\n", g.VertexCount(), g.Space().BlockCount())
	edges, err := g.Edges()
	if err != nil {
		return "", fmt.Errorf("store: key: %w", err)
	}
	if err = lgraph.WriteEdges(h, edges); err != nil {
		return "", fmt.Errorf("store: key: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
