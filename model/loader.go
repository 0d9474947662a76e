package model

import (
	"context"
	"sync"
)

// Loader coordinates Store and Source. The zero value has neither and
// returns ErrNotInitialized.
type Loader struct {
	source Source
	store  Store

	mu       sync.Mutex
	inFlight bool
}

func NewLoader(source Source, store Store) *Loader {
	return &Loader{source: source, store: store}
}

// Fetch returns the local model when the Store has it, otherwise downloads it.
func (l *Loader) Fetch(ctx context.Context, name string) (Model, error) {
	if l.store != nil {
		m, ok, err := l.store.Latest(ctx, name)
		if err != nil {
			return Model{}, err
		}
		if ok {
			return m, nil
		}
	}
	return l.Download(ctx, name)
}

// Download always goes to the Source.
func (l *Loader) Download(ctx context.Context, name string) (Model, error) {
	if l.source == nil {
		return Model{}, ErrNotInitialized
	}
	if !l.acquire() {
		return Model{}, ErrDownloadInProgress
	}
	defer l.release()

	m, err := l.source.Download(ctx, name)
	if err != nil {
		return Model{}, &DownloadError{Name: name, Err: err}
	}
	if m.Path == "" {
		return Model{}, ErrEmptyModel
	}
	if m.Name != name {
		return Model{}, ErrWrongModel
	}
	return m, nil
}

func (l *Loader) acquire() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inFlight {
		return false
	}
	l.inFlight = true
	return true
}

func (l *Loader) release() {
	l.mu.Lock()
	l.inFlight = false
	l.mu.Unlock()
}
