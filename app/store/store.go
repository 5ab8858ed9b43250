// Package store provides key-value storage implementations.
package store

import (
	"errors"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned when a key is not found in the store.
var ErrNotFound = errors.New("key not found")

// Entry describes a stored key with its value and modification time.
type Entry struct {
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// RWLocker is the subset of sync.RWMutex used by Store.
type RWLocker interface {
	sync.Locker
	RLock()
	RUnlock()
}

// noopLocker is used for databases serializing writes on their own.
type noopLocker struct{}

func (noopLocker) Lock()    {}
func (noopLocker) Unlock()  {}
func (noopLocker) RLock()   {}
func (noopLocker) RUnlock() {}

// NormalizeKey normalizes a key by trimming spaces, leading/trailing slashes,
// and replacing spaces with underscores.
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	key = strings.Trim(key, "/")
	key = strings.ReplaceAll(key, " ", "_")
	return key
}
