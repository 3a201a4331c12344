// Package storage provides the key-value persistence used for state that must
// survive a restart. Values are opaque strings; callers own their encoding.
package storage

import (
	"github.com/cockroachdb/errors"
)

// ErrNotFound is returned by Get when the key has never been set
var ErrNotFound = errors.New("storage: key not found")

// KeyValueStore is a minimal string key-value capability
type KeyValueStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Backend names accepted by Open
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Store is a KeyValueStore that holds resources until closed
type Store interface {
	KeyValueStore
	Close() error
}

// Open creates the store for the named backend
// path is ignored by the memory backend
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile:
		return NewFileStore(path)
	case BackendSQLite:
		return NewSQLiteStore(path)
	default:
		return nil, errors.Newf("storage: unknown backend %q", backend)
	}
}
