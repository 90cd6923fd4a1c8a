// Package cache stores encoded boards so unchanged content is not re-encoded
// on every send.
//
// Three backends share the [Cache] interface: [NullCache] (caching off),
// [FileCache] for the CLI and [RedisCache] for the HTTP API when several
// processes serve the same boards. Keys come from a [Keyer] and are derived
// from content hashes, so any change to the board or its configuration is a
// miss.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// EncodeKey returns the key of an encoded board.
	EncodeKey(boardHash string, opts EncodeKeyOpts) string
}

// EncodeKeyOpts holds everything besides the board content that changes the
// encoded result.
type EncodeKeyOpts struct {
	Config string `json:"config"` // board.Config fingerprint
}

// DefaultKeyer produces "encode:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// EncodeKey implements Keyer.
func (DefaultKeyer) EncodeKey(boardHash string, opts EncodeKeyOpts) string {
	return hashKey("encode", boardHash, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
