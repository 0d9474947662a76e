package genstore

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestLocalMissingIsZeroAndBumpIncrements(t *testing.T) {
	ctx := context.Background()
	s := NewLocalGenStore(0, 0)
	t.Cleanup(func() { _ = s.Close(ctx) })

	if g, err := s.Snapshot(ctx, "catalog:a"); err != nil || g != 0 {
		t.Fatalf("missing: g=%d err=%v", g, err)
	}
	for want := uint64(1); want <= 3; want++ {
		g, err := s.Bump(ctx, "catalog:a")
		if err != nil || g != want {
			t.Fatalf("Bump: g=%d err=%v want %d", g, err, want)
		}
	}
	if g, _ := s.Snapshot(ctx, "catalog:b"); g != 0 {
		t.Fatalf("keys must be independent, got %d", g)
	}
}

func TestLocalConcurrentBumps(t *testing.T) {
	ctx := context.Background()
	s := NewLocalGenStore(0, 0)
	t.Cleanup(func() { _ = s.Close(ctx) })

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Bump(ctx, "k")
		}()
	}
	wg.Wait()
	if g, _ := s.Snapshot(ctx, "k"); g != 50 {
		t.Fatalf("g=%d want 50", g)
	}
}

func TestLocalCleanupPrunesOld(t *testing.T) {
	ctx := context.Background()
	s := NewLocalGenStore(0, 0)
	t.Cleanup(func() { _ = s.Close(ctx) })

	if _, err := s.Bump(ctx, "old"); err != nil {
		t.Fatal(err)
	}
	time.Sleep(50 * time.Millisecond)
	if _, err := s.Bump(ctx, "fresh"); err != nil {
		t.Fatal(err)
	}
	s.Cleanup(25 * time.Millisecond)

	if g, _ := s.Snapshot(ctx, "old"); g != 0 {
		t.Fatalf("expected pruned -> 0, got %d", g)
	}
	if g, _ := s.Snapshot(ctx, "fresh"); g != 1 {
		t.Fatalf("fresh key pruned, got %d", g)
	}
}

func TestLocalCloseTwiceWithLoop(t *testing.T) {
	s := NewLocalGenStore(time.Millisecond, time.Hour)
	if err := s.Close(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatal(err)
	}
}
