package store

import (
	"context"
	"time"

	"github.com/unkn0wn-root/b64"
	c "github.com/unkn0wn-root/b64/codec"
	pr "github.com/unkn0wn-root/b64/provider"
)

type SetCostFunc func(storageKey string, armored []byte) int64

// Store keeps typed values in a byte provider as base64 text.
// V is the caller's value type. Serialization is handled by a pluggable Codec[V];
// the serialized bytes are framed, checksummed and armored before they reach
// the provider, so text-only backends can hold arbitrary payloads.
type Store[V any] interface {
	Enabled() bool
	Close(context.Context) error

	Get(ctx context.Context, key string) (v V, ok bool, err error)
	// Set stores value for ttl. ttl 0 means Options.DefaultTTL; a negative
	// ttl returns ErrNegativeTTL and writes nothing.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// GetMany is order-agnostic; missing follows the order of keys.
	GetMany(ctx context.Context, keys []string) (values map[string]V, missing []string, err error)
}

// Options tune the store.
// Namespace, Provider and Codec are required; others have sensible defaults.
type Options[V any] struct {
	// Required
	Namespace string // logical namespace to avoid collisions. e.g. "user", "session"
	Provider  pr.Provider
	Codec     c.Codec[V]

	Encoding       *b64.Codec    // nil => b64.StdEncoding.Strict()
	Logger         b64.Logger    // if nil, NopLogger is used
	Hooks          b64.Hooks     // if nil, NopHooks is used
	DefaultTTL     time.Duration // 0 => 10m; negative => ErrNegativeTTL
	Disabled       bool          // default false (enabled)
	ComputeSetCost SetCostFunc   // default 1
}

func New[V any](opts Options[V]) (Store[V], error) {
	return newStore[V](opts)
}
