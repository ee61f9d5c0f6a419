// Package cache provides pluggable result caching for plan generation.
// Generated buildings and rendered artifacts are keyed by the request
// parameters and seed, so repeated requests skip the layout engine entirely.
//
// Three stores are available:
//   - FileCache for CLI usage (entries under a cache directory)
//   - RedisCache for multi-instance server deployments
//   - NullCache to disable caching
package cache

import (
	"context"
	"time"
)

// TTLs per entry class. Plans are cheap to regenerate, artifacts less so.
const (
	TTLPlan     = 24 * time.Hour
	TTLArtifact = 72 * time.Hour
)

// Cache is the storage interface shared by all stores. Values are opaque
// byte slices; callers marshal their own documents.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a time-to-live. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases store resources.
	Close() error
}

// PlanKeyOpts captures everything that determines a generated building.
// Two requests with equal options produce byte-identical plans, so they
// share one cache entry.
type PlanKeyOpts struct {
	Width     float64        `json:"width"`
	Length    float64        `json:"length"`
	Rooms     map[string]int `json:"rooms"`
	Floors    int            `json:"floors"`
	Style     string         `json:"style"`
	Seed      uint64         `json:"seed"`
	Windows   bool           `json:"windows"`
	Furniture bool           `json:"furniture"`
}

// ArtifactKeyOpts captures the render settings of one exported artifact.
type ArtifactKeyOpts struct {
	Format    string  `json:"format"` // "svg", "png", "pdf", "json", "dot"
	Floor     int     `json:"floor"`  // 0 for whole-building artifacts
	Windows   bool    `json:"windows"`
	Furniture bool    `json:"furniture"`
	Scale     float64 `json:"scale,omitempty"`
}

// Keyer generates cache keys. Implementations must be deterministic:
// equal inputs yield equal keys across processes.
type Keyer interface {
	// PlanKey keys a generated building by its request parameters.
	PlanKey(opts PlanKeyOpts) string

	// ArtifactKey keys a rendered artifact by the plan it came from and
	// the render settings.
	ArtifactKey(planHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// PlanKey generates a key for a generated building.
func (k *DefaultKeyer) PlanKey(opts PlanKeyOpts) string {
	return hashKey("plan", opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", planHash, opts)
}
