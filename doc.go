// Package recwindow turns a user's liked items into fixed-window model input
// and model output tensors back into ranked recommendations.
//
// Codec:
//   - Encode: first WindowSize liked ids as little-endian int32 slots, zero
//     padded to InputSize (40) bytes. Never fails.
//   - Decode: aligned (ids, confidences) -> []Recommendation in model order.
//     Any id missing from the Catalog fails the whole decode with a
//     *CatalogMismatchError; nothing is skipped.
//
// Pipeline (optional):
//   - ModelFetcher: resolves a model name to a local file (see package model).
//   - engine.Runtime: loads the file and runs inference.
//   - Provider + GenStore: caches results per input window; entries are tagged
//     with the catalog generation and go stale on Invalidate.
//
// Keys:
//
//	result:<ns>:<hash>  - cached recommendations (hash over the 40-byte window)
//	catalog:<ns>        - generation counter in the GenStore
package recwindow
