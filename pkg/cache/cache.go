// Package cache provides the render cache used by the pipeline.
//
// Composed posters are deterministic functions of their request, so a
// request-keyed byte cache is safe: identical requests can be served from
// disk without re-rasterizing. Keys hash every input that influences the
// output (brand configuration, headline text, content image bytes, ratio,
// seed, topic, and logo flags).
package cache

import (
	"context"
	"time"
)

// TTLPoster is how long rendered posters stay cached. Renders are
// deterministic, but brand asset files (fonts, logos) can change on disk
// underneath a cached entry, so entries still expire.
const TTLPoster = 24 * time.Hour

// Cache stores opaque byte values by key.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// found and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value with the given TTL. Zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// PosterKeyOpts are the request inputs that influence a rendered poster.
type PosterKeyOpts struct {
	Headline  string
	Eyebrow   string
	Caption   string
	ImageHash string // content image bytes hash, empty when absent
	Ratio     string
	LogoPath  string
	NoLogo    bool
	Topic     string
	Seed      string
}

// Keyer builds cache keys.
type Keyer struct{}

// NewKeyer creates a Keyer.
func NewKeyer() *Keyer { return &Keyer{} }

// PosterKey builds the cache key for a rendered poster. brandHash must cover
// the brand's full visual configuration so brand edits invalidate entries.
func (k *Keyer) PosterKey(brandHash string, opts PosterKeyOpts) string {
	return hashKey("poster", brandHash, opts)
}
