// Package asynchook moves Hooks calls off the Recommend path.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{SelfHealEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	rec, _ := recwindow.New(recwindow.Options{
//	    ModelName: "recommendations",
//	    Models:    loader,
//	    Runtime:   runtime,
//	    Catalog:   movies,
//	    Hooks:     hooks, // or `raw` if you don't want async
//	})
//
// Events are dropped when the queue is full.
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/recwindow"
)

type Hooks struct {
	inner recwindow.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ recwindow.Hooks = (*Hooks)(nil)

func New(inner recwindow.Hooks, workers, qlen int) *Hooks {
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

// Close drains queued events. Hooks must not be called after Close.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) SelfHeal(k, r string)         { h.try(func() { h.inner.SelfHeal(k, r) }) }
func (h *Hooks) ProviderSetRejected(k string) { h.try(func() { h.inner.ProviderSetRejected(k) }) }
func (h *Hooks) GenSnapshotError(err error)   { h.try(func() { h.inner.GenSnapshotError(err) }) }
func (h *Hooks) GenBumpError(err error)       { h.try(func() { h.inner.GenBumpError(err) }) }
func (h *Hooks) ModelFetchFailed(m string, err error) {
	h.try(func() { h.inner.ModelFetchFailed(m, err) })
}
func (h *Hooks) CatalogMismatch(m string, i int, id recwindow.ID) {
	h.try(func() { h.inner.CatalogMismatch(m, i, id) })
}
