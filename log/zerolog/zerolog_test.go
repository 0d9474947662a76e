package zerolog

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"

	"github.com/unkn0wn-root/recwindow"
)

func TestFieldsAreTopLevel(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{L: zerolog.New(&buf)}

	l.Warn("gen snapshot error", recwindow.Fields{"ns": "recwindow", "count": 2})

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	if got["level"] != "warn" || got["message"] != "gen snapshot error" || got["ns"] != "recwindow" {
		t.Fatalf("unexpected line %v", got)
	}
	if got["count"] != float64(2) {
		t.Fatalf("count=%v", got["count"])
	}
}
