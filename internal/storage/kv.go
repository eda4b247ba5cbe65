// Package storage provides the byte-level key-value stores and codecs behind
// the record repository.
package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned by Get for a missing key
var ErrNotFound = errors.New("key not found")

// Entry is one value of an append-only list
type Entry struct {
	Value     []byte
	CreatedAt time.Time
}

// KV is a string-keyed byte store with append-only lists.
// Keys and lists live in separate namespaces.
type KV interface {
	// Get returns the latest value of key or ErrNotFound
	Get(key string) ([]byte, error)

	// Put replaces the value of key
	Put(key string, value []byte) error

	// Append adds value to the end of list
	Append(list string, value []byte) error

	// List returns every entry of list, oldest first
	List(list string) ([]Entry, error)

	// Record puts value under key and appends it to the list of the same
	// name as one atomic step
	Record(key string, value []byte) error
}
