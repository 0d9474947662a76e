package zerolog

import (
	"github.com/rs/zerolog"

	"github.com/unkn0wn-root/recwindow"
)

var _ recwindow.Logger = Logger{}

// Logger writes through a zerolog.Logger; Fields become top-level keys.
type Logger struct{ L zerolog.Logger }

func (z Logger) Debug(msg string, f recwindow.Fields) { z.L.Debug().Fields(map[string]any(f)).Msg(msg) }
func (z Logger) Info(msg string, f recwindow.Fields)  { z.L.Info().Fields(map[string]any(f)).Msg(msg) }
func (z Logger) Warn(msg string, f recwindow.Fields)  { z.L.Warn().Fields(map[string]any(f)).Msg(msg) }
func (z Logger) Error(msg string, f recwindow.Fields) { z.L.Error().Fields(map[string]any(f)).Msg(msg) }
