package recwindow

import "github.com/unkn0wn-root/recwindow/internal/wire"

const (
	WindowSize = wire.WindowSize
	InputSize  = wire.InputSize
)

// ID names a catalog item. 0 is window padding and never a real item.
type ID int32

// Recommendation is one ranked model output slot.
type Recommendation struct {
	ID         ID      `json:"id" msgpack:"id" cbor:"id"`
	Title      string  `json:"title" msgpack:"title" cbor:"title"`
	Confidence float32 `json:"confidence" msgpack:"confidence" cbor:"confidence"`
}

// Catalog resolves ids to titles.
type Catalog interface {
	Title(id ID) (string, bool)
}

type CatalogFunc func(id ID) (string, bool)

func (f CatalogFunc) Title(id ID) (string, bool) { return f(id) }

// Window returns the ids Encode actually places in the input buffer.
func Window(liked []ID) []ID {
	n := min(len(liked), WindowSize)
	out := make([]ID, n)
	copy(out, liked[:n])
	return out
}

// Encode packs the first WindowSize liked ids into an InputSize buffer.
func Encode(liked []ID) []byte {
	return wire.EncodeWindow(toInt32s(Window(liked)))
}

// Decode pairs ids[i] with confidences[i] and resolves each title through cat.
// Order is preserved; the model output is already ranked.
func Decode(ids []ID, confidences []float32, cat Catalog) ([]Recommendation, error) {
	if len(ids) != len(confidences) {
		return nil, &MalformedOutputError{IDs: len(ids), Confidences: len(confidences)}
	}
	if cat == nil {
		return nil, ErrNilCatalog
	}
	out := make([]Recommendation, len(ids))
	for i, id := range ids {
		title, ok := cat.Title(id)
		if !ok {
			return nil, &CatalogMismatchError{Index: i, ID: id}
		}
		out[i] = Recommendation{ID: id, Title: title, Confidence: confidences[i]}
	}
	return out, nil
}

// DecodeTensors reads raw output tensors: little-endian int32 ids and
// little-endian float32 confidences.
func DecodeTensors(idBytes, confidenceBytes []byte) ([]ID, []float32, error) {
	raw, err := wire.DecodeInt32s(idBytes)
	if err != nil {
		return nil, nil, &MalformedOutputError{Err: err}
	}
	confs, err := wire.DecodeFloat32s(confidenceBytes)
	if err != nil {
		return nil, nil, &MalformedOutputError{Err: err}
	}
	if len(raw) != len(confs) {
		return nil, nil, &MalformedOutputError{IDs: len(raw), Confidences: len(confs)}
	}
	ids := make([]ID, len(raw))
	for i, v := range raw {
		ids[i] = ID(v)
	}
	return ids, confs, nil
}

func toInt32s(ids []ID) []int32 {
	out := make([]int32, len(ids))
	for i, id := range ids {
		out[i] = int32(id)
	}
	return out
}
