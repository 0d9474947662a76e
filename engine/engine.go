// Package engine is the boundary to an on-device inference runtime.
//
// A Runtime loads a model file into an Interpreter; an Interpreter takes the
// 40-byte input window and returns the raw output tensors. Output index 0
// carries float32 confidences, index 1 carries int32 candidate ids, both
// little-endian and positionally aligned.
package engine

import (
	"context"

	"github.com/unkn0wn-root/recwindow/internal/wire"
)

// Output holds raw output tensor bytes.
type Output struct {
	Confidences []byte // output 0
	IDs         []byte // output 1
}

type Interpreter interface {
	Invoke(ctx context.Context, input []byte) (Output, error)
	Close() error
}

type Runtime interface {
	Load(ctx context.Context, modelPath string) (Interpreter, error)
}

type RuntimeFunc func(ctx context.Context, modelPath string) (Interpreter, error)

func (f RuntimeFunc) Load(ctx context.Context, modelPath string) (Interpreter, error) {
	return f(ctx, modelPath)
}

// InterpreterFunc adapts a plain function; Close is a no-op.
type InterpreterFunc func(ctx context.Context, input []byte) (Output, error)

func (f InterpreterFunc) Invoke(ctx context.Context, input []byte) (Output, error) {
	return f(ctx, input)
}

func (InterpreterFunc) Close() error { return nil }

// Pack lays out ids and confidences the way a runtime returns them.
func Pack(ids []int32, confidences []float32) Output {
	return Output{
		Confidences: wire.EncodeFloat32s(confidences),
		IDs:         wire.EncodeInt32s(ids),
	}
}
