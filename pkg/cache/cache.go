// Package cache stores computed pilings so repeated runs can skip work.
//
// Three backends implement [Cache]:
//   - [NullCache]: stores nothing (caching disabled)
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance
//
// Keys come from a [Keyer]. [DefaultKeyer] hashes the group presentation and
// the request options so that equal inputs always share an entry;
// [ScopedKeyer] adds a namespace prefix.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the lifetime of cached pilings. Results are pure functions
// of their inputs, so entries only expire to bound disk usage.
const DefaultTTL = 30 * 24 * time.Hour

// Cache is a byte-oriented key-value store with expiry.
type Cache interface {
	// Get returns the value and true on a hit, or nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// PilingKeyOpts are the request options that distinguish cache entries
// for the same group.
type PilingKeyOpts struct {
	Type  string `json:"type"`
	Word  string `json:"word"` // canonical word text
	Trace bool   `json:"trace,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// PilingKey returns the key for a piling of a word in the group whose
	// presentation hashes to groupHash.
	PilingKey(groupHash string, opts PilingKeyOpts) string
}

// DefaultKeyer produces unprefixed, content-addressed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// PilingKey implements Keyer.
func (DefaultKeyer) PilingKey(groupHash string, opts PilingKeyOpts) string {
	return hashKey("piling", groupHash, opts)
}
