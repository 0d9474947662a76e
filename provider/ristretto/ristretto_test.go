package ristretto

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestProviderSyncWrites(t *testing.T) {
	ctx := context.Background()
	p, err := New(Config{NumCounters: 1000, MaxCost: 100, BufferItems: 64, SyncWrites: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close(ctx)

	val := []byte("entry")
	if ok, err := p.Set(ctx, "k", val, 1, time.Minute); err != nil || !ok {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	got, ok, err := p.Get(ctx, "k")
	if err != nil || !ok || !bytes.Equal(got, val) {
		t.Fatalf("Get: got=%q ok=%v err=%v", got, ok, err)
	}
	_ = p.Del(ctx, "k")
	p.c.Wait()
	if _, ok, _ := p.Get(ctx, "k"); ok {
		t.Fatalf("expected miss after Del")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(Config{NumCounters: 10}); err == nil {
		t.Fatalf("expected invalid config error")
	}
}
