package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestProvider(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	p, err := New(Config{
		Client:      goredis.NewClient(&goredis.Options{Addr: mr.Addr()}),
		CloseClient: true,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close(context.Background()) })
	return p, mr
}

func TestNilClient(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrNilClient) {
		t.Fatalf("expected ErrNilClient, got %v", err)
	}
}

func TestSetGetDel(t *testing.T) {
	ctx := context.Background()
	p, mr := newTestProvider(t)

	if _, hit, err := p.Get(ctx, "armor:t:k"); hit || err != nil {
		t.Fatalf("expected clean miss, got hit=%v err=%v", hit, err)
	}
	ok, err := p.Set(ctx, "armor:t:k", []byte("Zm9vYmFy"), 1, time.Minute)
	if err != nil || !ok {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	if got, _ := mr.Get("armor:t:k"); got != "Zm9vYmFy" {
		t.Fatalf("stored value %q", got)
	}
	b, hit, err := p.Get(ctx, "armor:t:k")
	if err != nil || !hit || string(b) != "Zm9vYmFy" {
		t.Fatalf("Get: %q hit=%v err=%v", b, hit, err)
	}
	if err := p.Del(ctx, "armor:t:k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if mr.Exists("armor:t:k") {
		t.Fatalf("key still present after Del")
	}
}

func TestTTLExpires(t *testing.T) {
	ctx := context.Background()
	p, mr := newTestProvider(t)

	if _, err := p.Set(ctx, "armor:t:ttl", []byte("Zg=="), 1, 10*time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if ttl := mr.TTL("armor:t:ttl"); ttl != 10*time.Second {
		t.Fatalf("ttl %v", ttl)
	}
	mr.FastForward(11 * time.Second)
	if _, hit, err := p.Get(ctx, "armor:t:ttl"); hit || err != nil {
		t.Fatalf("expected expiry, got hit=%v err=%v", hit, err)
	}
}

func TestServerError(t *testing.T) {
	ctx := context.Background()
	p, mr := newTestProvider(t)
	mr.SetError("LOADING")
	if _, _, err := p.Get(ctx, "armor:t:k"); err == nil {
		t.Fatalf("expected transport error")
	}
	mr.SetError("")
}

func TestCloseIsIdempotent(t *testing.T) {
	p, _ := newTestProvider(t)
	if err := p.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := p.Close(context.Background()); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
