// usage:
//
// import (
//
//	"log/slog"
//
//	"github.com/unkn0wn-root/b64/codec"
//	"github.com/unkn0wn-root/b64/hooks/async"
//	"github.com/unkn0wn-root/b64/sloghooks"
//	"github.com/unkn0wn-root/b64/store"
//
// )
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    CorruptEvery: 10, // sample logs: ~every 10th corrupt entry
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	users, _ := store.New[User](store.Options[User]{
//	    Namespace: "app:prod:user",
//	    Provider:  provider,
//	    Codec:     codec.JSON[User]{},
//	    Hooks:     hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/b64"
)

type Hooks struct {
	inner  b64.Hooks
	q      chan func()
	wg     sync.WaitGroup
	once   sync.Once
	mu     sync.RWMutex
	closed bool
}

var _ b64.Hooks = (*Hooks)(nil)

func New(inner b64.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Events fired after Close
// are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) CorruptEntry(k, r string)     { h.try(func() { h.inner.CorruptEntry(k, r) }) }
func (h *Hooks) ProviderSetRejected(k string) { h.try(func() { h.inner.ProviderSetRejected(k) }) }
func (h *Hooks) ProviderError(op, k string, err error) {
	h.try(func() { h.inner.ProviderError(op, k, err) })
}
