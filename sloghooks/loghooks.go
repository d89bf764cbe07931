package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/b64"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	CorruptEvery uint64
	RejectEvery  uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	corruptCtr atomic.Uint64
	rejectCtr  atomic.Uint64
}

var _ b64.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) CorruptEntry(storageKey, reason string) {
	if h.l == nil || !sample(h.opts.CorruptEvery, &h.corruptCtr) {
		return
	}
	h.l.Warn("b64.corrupt_entry",
		"key", h.redact(storageKey),
		"reason", reason)
}

func (h *Hooks) ProviderSetRejected(storageKey string) {
	if h.l == nil || !sample(h.opts.RejectEvery, &h.rejectCtr) {
		return
	}
	h.l.Info("b64.provider_set_rejected",
		"key", h.redact(storageKey))
}

func (h *Hooks) ProviderError(op, storageKey string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("b64.provider_error",
		"op", op,
		"key", h.redact(storageKey),
		"err", err)
}
