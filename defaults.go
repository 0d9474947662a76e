package recwindow

import "time"

const (
	defaultNamespace = "recwindow"
	defaultTTL       = 10 * time.Minute
)

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
