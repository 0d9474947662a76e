package recwindow

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedOutput = errors.New("recwindow: malformed model output")
	ErrCatalogMismatch = errors.New("recwindow: output id not in catalog")
	ErrNilCatalog      = errors.New("recwindow: nil catalog")
)

// MalformedOutputError reports output tensors that cannot be paired.
// Either the element counts differ or a raw tensor was misaligned (Err).
type MalformedOutputError struct {
	IDs         int
	Confidences int
	Err         error
}

func (e *MalformedOutputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("recwindow: malformed model output: %v", e.Err)
	}
	return fmt.Sprintf("recwindow: malformed model output: %d ids vs %d confidences", e.IDs, e.Confidences)
}

func (e *MalformedOutputError) Is(target error) bool { return target == ErrMalformedOutput }
func (e *MalformedOutputError) Unwrap() error        { return e.Err }

// CatalogMismatchError names the first output slot whose id did not resolve.
type CatalogMismatchError struct {
	Index int
	ID    ID
}

func (e *CatalogMismatchError) Error() string {
	return fmt.Sprintf("recwindow: output slot %d: id %d not in catalog", e.Index, e.ID)
}

func (e *CatalogMismatchError) Is(target error) bool { return target == ErrCatalogMismatch }

// Stage names for StageError.
const (
	StageModel  = "model"
	StageLoad   = "load"
	StageInvoke = "invoke"
	StageDecode = "decode"
)

// StageError wraps a pipeline failure with the stage that produced it.
type StageError struct {
	Stage string
	Model string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("recwindow: %s %q: %v", e.Stage, e.Model, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
