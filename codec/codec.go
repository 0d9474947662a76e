// Package codec holds the serializers used for cached recommendation lists
// and catalog files. Every codec is a plain value; most are ready to use at
// their zero value.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
