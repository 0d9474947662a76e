package codec

import "gopkg.in/yaml.v3"

// YAML reads hand-maintained catalog files. Use `yaml:"name"` tags
// for explicit field names; yaml.v3 lowercases untagged fields.
type YAML[V any] struct{}

var _ Codec[[]string] = YAML[[]string]{}

func (YAML[V]) Encode(v V) ([]byte, error) { return yaml.Marshal(v) }
func (YAML[V]) Decode(b []byte) (V, error) {
	var v V
	err := yaml.Unmarshal(b, &v)
	return v, err
}
