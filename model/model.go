// Package model resolves a model name to a local model file.
//
// Loader prefers a model already on disk (Store) and otherwise downloads it
// (Source). Only one download runs at a time per Loader; a concurrent
// Download fails fast with ErrDownloadInProgress instead of queueing.
// Failed downloads are not retried.
package model

import (
	"context"
	"errors"
	"fmt"
)

// Model is a downloaded model file.
type Model struct {
	Name string
	Path string
}

var (
	ErrNotInitialized     = errors.New("model: no download source configured")
	ErrDownloadInProgress = errors.New("model: download already in progress")
	ErrDownloadFailed     = errors.New("model: download failed")
	ErrEmptyModel         = errors.New("model: download returned no model file")
	ErrWrongModel         = errors.New("model: download returned a different model")
)

// DownloadError wraps the Source failure for a named model.
type DownloadError struct {
	Name string
	Err  error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("model: download %q failed: %v", e.Name, e.Err)
}

func (e *DownloadError) Is(target error) bool { return target == ErrDownloadFailed }
func (e *DownloadError) Unwrap() error        { return e.Err }

// Source fetches a model from a remote distribution point.
type Source interface {
	Download(ctx context.Context, name string) (Model, error)
}

// Store reports models already present locally.
type Store interface {
	// Latest returns (model, true, nil) when present, (Model{}, false, nil) otherwise.
	Latest(ctx context.Context, name string) (Model, bool, error)
}
