package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/recwindow"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	SelfHealEvery uint64
	MismatchEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	selfHealCtr atomic.Uint64
	mismatchCtr atomic.Uint64
}

var _ recwindow.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) SelfHeal(storageKey, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("recwindow.self_heal",
		"key", h.redact(storageKey),
		"reason", reason)
}

func (h *Hooks) ProviderSetRejected(storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Warn("recwindow.provider_set_rejected",
		"key", h.redact(storageKey))
}

func (h *Hooks) GenSnapshotError(err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("recwindow.gen_snapshot_error", "err", err)
}

func (h *Hooks) GenBumpError(err error) {
	if h.l == nil {
		return
	}
	h.l.Error("recwindow.gen_bump_error", "err", err)
}

func (h *Hooks) ModelFetchFailed(model string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("recwindow.model_fetch_failed",
		"model", model,
		"err", err)
}

func (h *Hooks) CatalogMismatch(model string, index int, id recwindow.ID) {
	if h.l == nil || !sample(h.opts.MismatchEvery, &h.mismatchCtr) {
		return
	}
	h.l.Warn("recwindow.catalog_mismatch",
		"model", model,
		"index", index,
		"id", int32(id))
}
