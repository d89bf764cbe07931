package store

import (
	"context"
	"errors"
	"time"

	"github.com/unkn0wn-root/b64"
	c "github.com/unkn0wn-root/b64/codec"
	"github.com/unkn0wn-root/b64/internal/util"
	"github.com/unkn0wn-root/b64/internal/wire"
	pr "github.com/unkn0wn-root/b64/provider"
)

const (
	defaultTTL = 10 * time.Minute
	keyPrefix  = "armor"

	reasonArmor       = "armor"
	reasonFrame       = "frame"
	reasonValueDecode = "value_decode"
)

var (
	ErrNoProvider  = errors.New("store: provider is required")
	ErrNoCodec     = errors.New("store: codec is required")
	ErrNoNamespace = errors.New("store: namespace is required")
	ErrNegativeTTL = errors.New("store: negative ttl")
)

type store[V any] struct {
	ns             string
	provider       pr.Provider
	codec          c.Codec[V]
	enc            *b64.Codec
	log            b64.Logger
	hooks          b64.Hooks
	enabled        bool
	defaultTTL     time.Duration
	computeSetCost SetCostFunc
}

func newStore[V any](opts Options[V]) (*store[V], error) {
	if opts.Provider == nil {
		return nil, ErrNoProvider
	}
	if opts.Codec == nil {
		return nil, ErrNoCodec
	}
	if opts.Namespace == "" {
		return nil, ErrNoNamespace
	}
	if opts.DefaultTTL < 0 {
		return nil, ErrNegativeTTL
	}

	s := &store[V]{
		ns:       opts.Namespace,
		provider: opts.Provider,
		codec:    opts.Codec,
		enabled:  !opts.Disabled,
	}

	// defaults
	s.enc = coalesce(opts.Encoding, b64.StdEncoding.Strict())
	s.log = coalesce[b64.Logger](opts.Logger, b64.NopLogger{})
	s.hooks = coalesce[b64.Hooks](opts.Hooks, b64.NopHooks{})
	s.defaultTTL = coalesce(opts.DefaultTTL, defaultTTL)

	if opts.ComputeSetCost != nil {
		s.computeSetCost = opts.ComputeSetCost
	} else {
		s.computeSetCost = func(string, []byte) int64 { return 1 }
	}

	return s, nil
}

func (s *store[V]) Enabled() bool { return s.enabled }

func (s *store[V]) Close(ctx context.Context) error {
	return s.provider.Close(ctx)
}

func (s *store[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	if !s.enabled {
		return zero, false, nil
	}
	k := s.storageKey(key)
	text, ok, err := s.provider.Get(ctx, k)
	if err != nil {
		s.hooks.ProviderError("get", k, err)
		return zero, false, err
	}
	if !ok {
		return zero, false, nil
	}
	v, reason, err := s.unpack(text)
	if err != nil {
		s.heal(ctx, k, reason, err)
		return zero, false, nil
	}
	return v, true, nil
}

func (s *store[V]) GetMany(ctx context.Context, keys []string) (map[string]V, []string, error) {
	out := make(map[string]V, len(keys))
	if !s.enabled {
		missing := make([]string, 0, len(keys))
		missing = append(missing, keys...)
		return out, missing, nil
	}

	var missing []string
	for _, key := range keys {
		v, ok, err := s.Get(ctx, key)
		if err != nil {
			// degrade to a miss; Get already reported the provider error
			s.log.Warn("GetMany: provider read failed", b64.Fields{"key": key, "err": err})
		}
		if ok {
			out[key] = v
		} else {
			missing = append(missing, key)
		}
	}
	return out, missing, nil
}

func (s *store[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	if !s.enabled {
		return nil
	}
	if ttl < 0 {
		return ErrNegativeTTL
	}
	if ttl == 0 {
		ttl = s.defaultTTL
	}
	payload, err := s.codec.Encode(value)
	if err != nil {
		return err
	}
	k := s.storageKey(key)
	text := s.enc.Encode(wire.EncodeEntry(payload))

	ok, err := s.provider.Set(ctx, k, text, s.computeSetCost(k, text), ttl)
	if err != nil {
		s.hooks.ProviderError("set", k, err)
		return err
	}
	if !ok {
		s.hooks.ProviderSetRejected(k)
		s.log.Debug("Set rejected by provider (pressure)", b64.Fields{"key": key})
	}
	return nil
}

func (s *store[V]) Delete(ctx context.Context, key string) error {
	if !s.enabled {
		return nil
	}
	k := s.storageKey(key)
	if err := s.provider.Del(ctx, k); err != nil {
		s.hooks.ProviderError("del", k, err)
		return err
	}
	return nil
}

// unpack reverses Set: base64 text -> frame -> value.
func (s *store[V]) unpack(text []byte) (V, string, error) {
	var zero V
	framed, err := s.enc.Decode(text)
	if err != nil {
		return zero, reasonArmor, err
	}
	payload, err := wire.DecodeEntry(framed)
	if err != nil {
		return zero, reasonFrame, err
	}
	v, err := s.codec.Decode(payload)
	if err != nil {
		return zero, reasonValueDecode, err
	}
	return v, "", nil
}

func (s *store[V]) heal(ctx context.Context, storageKey, reason string, cause error) {
	s.hooks.CorruptEntry(storageKey, reason)
	s.log.Warn("dropping unreadable entry", b64.Fields{"key": storageKey, "reason": reason, "err": cause})
	if err := s.provider.Del(ctx, storageKey); err != nil {
		s.hooks.ProviderError("del", storageKey, err)
	}
}

func (s *store[V]) storageKey(userKey string) string {
	// isolate by namespace
	return util.StorageKey(keyPrefix+":"+s.ns, userKey)
}
