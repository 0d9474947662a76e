package recwindow

import (
	"context"
	"errors"
	"fmt"
	"time"

	c "github.com/unkn0wn-root/recwindow/codec"
	"github.com/unkn0wn-root/recwindow/engine"
	gen "github.com/unkn0wn-root/recwindow/genstore"
	"github.com/unkn0wn-root/recwindow/internal/util"
	"github.com/unkn0wn-root/recwindow/internal/wire"
	pr "github.com/unkn0wn-root/recwindow/provider"
)

type recommender struct {
	modelName string
	models    ModelFetcher
	runtime   engine.Runtime
	catalog   Catalog

	ns             string
	provider       pr.Provider
	codec          c.Codec[[]Recommendation]
	gen            gen.GenStore
	ttl            time.Duration
	computeSetCost SetCostFunc

	log   Logger
	hooks Hooks
}

func newRecommender(opts Options) (*recommender, error) {
	if opts.ModelName == "" {
		return nil, fmt.Errorf("recwindow: model name is required")
	}
	if opts.Models == nil {
		return nil, fmt.Errorf("recwindow: model fetcher is required")
	}
	if opts.Runtime == nil {
		return nil, fmt.Errorf("recwindow: runtime is required")
	}
	if opts.Catalog == nil {
		return nil, ErrNilCatalog
	}

	r := &recommender{
		modelName: opts.ModelName,
		models:    opts.Models,
		runtime:   opts.Runtime,
		catalog:   opts.Catalog,
		provider:  opts.Provider,
	}

	r.log = coalesce[Logger](opts.Logger, NopLogger{})
	r.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	r.ns = coalesce(opts.Namespace, defaultNamespace)
	r.ttl = coalesce(opts.TTL, defaultTTL)

	if opts.Codec != nil {
		r.codec = opts.Codec
	} else {
		r.codec = c.Msgpack[[]Recommendation]{}
	}
	if opts.MaxEntryBytes > 0 {
		r.codec = c.Limit[[]Recommendation]{Inner: r.codec, MaxDecode: opts.MaxEntryBytes}
	}

	if opts.ComputeSetCost != nil {
		r.computeSetCost = opts.ComputeSetCost
	} else {
		r.computeSetCost = func(_ string, _ []byte, _ int) int64 { return 1 }
	}

	if opts.GenStore != nil {
		r.gen = opts.GenStore
	} else {
		// no retention sweep: a pruned generation would fall back to 0 and
		// revive entries written before the first Invalidate
		r.gen = gen.NewLocalGenStore(0, 0)
	}

	return r, nil
}

func (r *recommender) Recommend(ctx context.Context, liked []ID) ([]Recommendation, error) {
	input := Encode(liked)
	if r.provider == nil {
		return r.infer(ctx, input)
	}

	k := r.resultKey(input)
	obs, genOK := r.snapshotGen(ctx)
	if genOK {
		if recs, ok := r.get(ctx, k, obs); ok {
			return recs, nil
		}
	}

	recs, err := r.infer(ctx, input)
	if err != nil {
		return nil, err
	}
	if genOK {
		r.setWithGen(ctx, k, recs, obs)
	}
	return recs, nil
}

func (r *recommender) Invalidate(ctx context.Context) error {
	g, err := r.gen.Bump(ctx, r.genKey())
	if err != nil {
		r.hooks.GenBumpError(err)
		r.log.Error("catalog generation bump failed", Fields{"ns": r.ns, "err": err})
		return err
	}
	r.log.Debug("invalidated cached results", Fields{"ns": r.ns, "newGen": g})
	return nil
}

func (r *recommender) Close(ctx context.Context) error {
	// best effort on the gen store
	if r.gen != nil {
		_ = r.gen.Close(ctx)
	}
	if r.provider != nil {
		return r.provider.Close(ctx)
	}
	return nil
}

func (r *recommender) infer(ctx context.Context, input []byte) ([]Recommendation, error) {
	m, err := r.models.Fetch(ctx, r.modelName)
	if err != nil {
		r.hooks.ModelFetchFailed(r.modelName, err)
		return nil, &StageError{Stage: StageModel, Model: r.modelName, Err: err}
	}

	interp, err := r.runtime.Load(ctx, m.Path)
	if err != nil {
		return nil, &StageError{Stage: StageLoad, Model: r.modelName, Err: err}
	}
	defer func() {
		if err := interp.Close(); err != nil {
			r.log.Warn("interpreter close failed", Fields{"model": r.modelName, "err": err})
		}
	}()

	out, err := interp.Invoke(ctx, input)
	if err != nil {
		return nil, &StageError{Stage: StageInvoke, Model: r.modelName, Err: err}
	}

	ids, confs, err := DecodeTensors(out.IDs, out.Confidences)
	if err != nil {
		return nil, &StageError{Stage: StageDecode, Model: r.modelName, Err: err}
	}
	recs, err := Decode(ids, confs, r.catalog)
	if err != nil {
		var mm *CatalogMismatchError
		if errors.As(err, &mm) {
			r.hooks.CatalogMismatch(r.modelName, mm.Index, mm.ID)
		}
		return nil, &StageError{Stage: StageDecode, Model: r.modelName, Err: err}
	}

	r.log.Debug("inference complete", Fields{"model": r.modelName, "path": m.Path, "results": len(recs)})
	return recs, nil
}

func (r *recommender) get(ctx context.Context, k string, obs uint64) ([]Recommendation, bool) {
	raw, ok, err := r.provider.Get(ctx, k)
	if err != nil {
		r.log.Warn("result cache read failed", Fields{"key": k, "err": err})
		return nil, false
	}
	if !ok {
		return nil, false
	}
	g, payload, err := wire.DecodeEntry(raw)
	if err != nil {
		r.selfHeal(ctx, k, "corrupt")
		return nil, false
	}
	if g != obs {
		r.selfHeal(ctx, k, "gen_mismatch")
		return nil, false
	}
	recs, err := r.codec.Decode(payload)
	if err != nil {
		r.selfHeal(ctx, k, "value_decode")
		return nil, false
	}
	return recs, true
}

func (r *recommender) setWithGen(ctx context.Context, k string, recs []Recommendation, obs uint64) {
	if cur, ok := r.snapshotGen(ctx); !ok || cur != obs {
		// generation moved while inferring; skip stale write
		r.log.Debug("result write skipped (gen mismatch)", Fields{"key": k, "obs": obs})
		return
	}
	payload, err := r.codec.Encode(recs)
	if err != nil {
		r.log.Warn("result encode failed", Fields{"key": k, "err": err})
		return
	}
	wireb := wire.EncodeEntry(obs, payload)
	ok, err := r.provider.Set(ctx, k, wireb, r.computeSetCost(k, wireb, len(recs)), r.ttl)
	if err != nil {
		r.log.Warn("result cache write failed", Fields{"key": k, "err": err})
		return
	}
	if !ok {
		r.hooks.ProviderSetRejected(k)
		r.log.Debug("result write rejected by provider (pressure)", Fields{"key": k})
	}
}

func (r *recommender) selfHeal(ctx context.Context, k, reason string) {
	_ = r.provider.Del(ctx, k)
	r.hooks.SelfHeal(k, reason)
}

func (r *recommender) snapshotGen(ctx context.Context) (uint64, bool) {
	g, err := r.gen.Snapshot(ctx, r.genKey())
	if err != nil {
		// unknown generation: bypass the cache both ways
		r.hooks.GenSnapshotError(err)
		r.log.Warn("gen snapshot error", Fields{"ns": r.ns, "err": err})
		return 0, false
	}
	return g, true
}

func (r *recommender) genKey() string { return "catalog:" + r.ns }

func (r *recommender) resultKey(window []byte) string {
	return util.WindowKey("result:"+r.ns, window)
}
