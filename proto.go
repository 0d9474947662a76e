package recwindow

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	c "github.com/unkn0wn-root/recwindow/codec"
)

// ProtoCodec stores recommendation lists as a protobuf ListValue of
// {id, title, confidence} structs, for caches shared with non-Go readers.
type ProtoCodec struct {
	pb c.Protobuf[*structpb.ListValue]
}

var _ c.Codec[[]Recommendation] = ProtoCodec{}

func NewProtoCodec() ProtoCodec {
	return ProtoCodec{pb: c.NewProtobuf(func() *structpb.ListValue { return &structpb.ListValue{} })}
}

func (p ProtoCodec) Encode(recs []Recommendation) ([]byte, error) {
	lv := &structpb.ListValue{Values: make([]*structpb.Value, len(recs))}
	for i, r := range recs {
		lv.Values[i] = structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			"id":         structpb.NewNumberValue(float64(r.ID)),
			"title":      structpb.NewStringValue(r.Title),
			"confidence": structpb.NewNumberValue(float64(r.Confidence)),
		}})
	}
	return p.pb.Encode(lv)
}

func (p ProtoCodec) Decode(b []byte) ([]Recommendation, error) {
	lv, err := p.pb.Decode(b)
	if err != nil {
		return nil, err
	}
	out := make([]Recommendation, len(lv.GetValues()))
	for i, v := range lv.GetValues() {
		f := v.GetStructValue().GetFields()
		id, okID := f["id"].GetKind().(*structpb.Value_NumberValue)
		title, okTitle := f["title"].GetKind().(*structpb.Value_StringValue)
		conf, okConf := f["confidence"].GetKind().(*structpb.Value_NumberValue)
		if !okID || !okTitle || !okConf {
			return nil, fmt.Errorf("recwindow: proto entry %d: missing field", i)
		}
		out[i] = Recommendation{
			ID:         ID(id.NumberValue),
			Title:      title.StringValue,
			Confidence: float32(conf.NumberValue),
		}
	}
	return out, nil
}
