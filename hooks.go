package recwindow

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking; the pipeline calls them
// inline on every Recommend.
type Hooks interface {
	// A cached result was deleted on read.
	// reason ∈ {"corrupt", "gen_mismatch", "value_decode"}
	SelfHeal(storageKey, reason string)

	// Provider returned ok=false on Set (backpressure/eviction).
	ProviderSetRejected(storageKey string)

	// GenStore errors (snapshot or bump) for the catalog generation key.
	GenSnapshotError(err error)
	GenBumpError(err error)

	// Model fetch failed; the request returned a StageError.
	ModelFetchFailed(model string, err error)

	// Model output named an id the catalog does not know.
	CatalogMismatch(model string, index int, id ID)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) SelfHeal(string, string)         {}
func (NopHooks) ProviderSetRejected(string)      {}
func (NopHooks) GenSnapshotError(error)          {}
func (NopHooks) GenBumpError(error)              {}
func (NopHooks) ModelFetchFailed(string, error)  {}
func (NopHooks) CatalogMismatch(string, int, ID) {}
