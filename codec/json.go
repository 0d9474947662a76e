package codec

import "encoding/json"

// JSON is the catalog file format most tools emit.
type JSON[V any] struct{}

var _ Codec[[]string] = JSON[[]string]{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
