package tween

import (
	"github.com/rs/zerolog"
)

// logger receives engine traces. Silent until SetLogger is called.
var logger = zerolog.Nop()

// debugMode gates the per-transition traces so that the hot path costs a
// single branch when it is off.
var debugMode bool

// SetLogger installs the logger used for engine traces and warnings.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// SetDebugMode enables or disables tracing of playback transitions (play,
// stop, wrap, completion and rejected arguments) at debug level.
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

func (e *Engine) trace(event string) *zerolog.Event {
	return logger.Debug().
		Str("tween", e.Name).
		Str("event", event).
		Float64("progress", e.progress).
		Stringer("direction", e.direction)
}

func debugRejected(e *Engine, err error) {
	if !debugMode {
		return
	}
	logger.Debug().Str("tween", e.Name).Err(err).Msg("tween_rejected")
}
