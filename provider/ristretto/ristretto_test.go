package ristretto

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	p, err := New(Config{NumCounters: 1e4, MaxCost: 1 << 20, BufferItems: 64, SyncWrites: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close(context.Background()) })
	return p
}

func TestInvalidConfig(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSetGetDel(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	ok, err := p.Set(ctx, "armor:t:k", []byte("Zm9v"), 1, time.Minute)
	if err != nil || !ok {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	b, hit, err := p.Get(ctx, "armor:t:k")
	if err != nil || !hit || string(b) != "Zm9v" {
		t.Fatalf("Get: %q hit=%v err=%v", b, hit, err)
	}

	if err := p.Del(ctx, "armor:t:k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, hit, _ := p.Get(ctx, "armor:t:k"); hit {
		t.Fatalf("expected miss after Del")
	}
}

func TestMiss(t *testing.T) {
	p := newTestProvider(t)
	b, hit, err := p.Get(context.Background(), "absent")
	if b != nil || hit || err != nil {
		t.Fatalf("expected clean miss, got %q %v %v", b, hit, err)
	}
}
