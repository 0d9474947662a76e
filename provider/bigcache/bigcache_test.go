package bigcache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestProviderRoundTrip(t *testing.T) {
	ctx := context.Background()
	p, err := New(ctx, Config{LifeWindow: time.Minute, Shards: 4, MaxEntriesInWindow: 16, MaxEntrySize: 64})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close(ctx)

	if _, ok, err := p.Get(ctx, "result:ns:abc"); err != nil || ok {
		t.Fatalf("miss expected: ok=%v err=%v", ok, err)
	}
	val := []byte{0, 1, 2, 3}
	if ok, err := p.Set(ctx, "result:ns:abc", val, 1, 0); err != nil || !ok {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	got, ok, err := p.Get(ctx, "result:ns:abc")
	if err != nil || !ok || !bytes.Equal(got, val) {
		t.Fatalf("Get: got=%x ok=%v err=%v", got, ok, err)
	}
	if err := p.Del(ctx, "result:ns:abc"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if err := p.Del(ctx, "result:ns:abc"); err != nil {
		t.Fatalf("Del of missing key: %v", err)
	}
}

func TestNewRequiresLifeWindow(t *testing.T) {
	if _, err := New(context.Background(), Config{}); err == nil {
		t.Fatalf("expected error without LifeWindow")
	}
}
