package recwindow

import (
	"context"
	"time"

	c "github.com/unkn0wn-root/recwindow/codec"
	"github.com/unkn0wn-root/recwindow/engine"
	gen "github.com/unkn0wn-root/recwindow/genstore"
	"github.com/unkn0wn-root/recwindow/model"
	pr "github.com/unkn0wn-root/recwindow/provider"
)

// SetCostFunc sizes a cached result for cost-aware providers (Ristretto).
type SetCostFunc func(key string, raw []byte, count int) int64

// ModelFetcher resolves a model name to a local file. *model.Loader implements it.
type ModelFetcher interface {
	Fetch(ctx context.Context, name string) (model.Model, error)
}

// Recommender runs the full encode -> infer -> decode cycle.
type Recommender interface {
	// Recommend returns one Recommendation per model output slot, in model order.
	Recommend(ctx context.Context, liked []ID) ([]Recommendation, error)

	// Invalidate marks every cached result stale. Call it after the catalog
	// or the model changes.
	Invalidate(ctx context.Context) error

	Close(context.Context) error
}

// Options configure New. ModelName, Models, Runtime and Catalog are required;
// everything else has a usable default.
type Options struct {
	// Required
	ModelName string
	Models    ModelFetcher
	Runtime   engine.Runtime
	Catalog   Catalog

	// Result cache. Provider nil => every call runs inference.
	Provider       pr.Provider
	Codec          c.Codec[[]Recommendation] // nil => Msgpack
	MaxEntryBytes  int                       // >0 wraps Codec in codec.Limit
	GenStore       gen.GenStore              // nil => in-process
	Namespace      string                    // "" => "recwindow"
	TTL            time.Duration             // 0 => 10m
	ComputeSetCost SetCostFunc               // default 1

	Logger Logger // if nil, NopLogger is used
	Hooks  Hooks  // if nil, NopHooks is used
}

func New(opts Options) (Recommender, error) {
	return newRecommender(opts)
}
