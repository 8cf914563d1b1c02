package tween

import (
	"errors"
	"fmt"
	"strings"
)

// MinDuration is the shortest duration, in seconds, an Engine accepts.
const MinDuration = 0.1

// DefaultDuration is the duration of a newly created Engine, in seconds.
const DefaultDuration = 1.0

// ErrInvalidArgument is wrapped by every error returned for a rejected
// setting or tick. Test for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default node tint.
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions and scales.
type Vec2 struct {
	X, Y float64
}

// PlayMode tells the host integration when to start an Engine on its own.
// The Engine itself never reads it; see Component.
type PlayMode uint8

const (
	PlayNone     PlayMode = iota // only play when asked
	PlayOnStart                  // play once, the first time the component becomes active
	PlayOnEnable                 // play every time the component becomes active
)

// WrapMode selects what happens when progress crosses 0 or 1.
type WrapMode uint8

const (
	WrapOnce     WrapMode = iota // clamp and stop
	WrapLoop                     // jump to the opposite end and keep playing
	WrapPingPong                 // reflect and reverse direction, forever
)

// Direction is the sign applied to progress on every tick.
type Direction int8

const (
	Forward  Direction = 1
	Backward Direction = -1
)

var playModeNames = [...]string{
	PlayNone:     "none",
	PlayOnStart:  "start",
	PlayOnEnable: "onenable",
}

var wrapModeNames = [...]string{
	WrapOnce:     "once",
	WrapLoop:     "loop",
	WrapPingPong: "pingpong",
}

func (m PlayMode) valid() bool { return int(m) < len(playModeNames) }
func (m WrapMode) valid() bool { return int(m) < len(wrapModeNames) }

func (m PlayMode) String() string {
	if !m.valid() {
		return fmt.Sprintf("PlayMode(%d)", uint8(m))
	}
	return playModeNames[m]
}

func (m WrapMode) String() string {
	if !m.valid() {
		return fmt.Sprintf("WrapMode(%d)", uint8(m))
	}
	return wrapModeNames[m]
}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int8(d))
	}
}

// ParsePlayMode parses a play mode name such as "start" or "OnEnable".
// Matching ignores case, dashes and underscores; the empty string is PlayNone.
func ParsePlayMode(s string) (PlayMode, error) {
	key := normalizeName(s)
	if key == "" {
		return PlayNone, nil
	}
	for i, name := range playModeNames {
		if key == name {
			return PlayMode(i), nil
		}
	}
	return 0, fmt.Errorf("tween: unknown play mode %q: %w", s, ErrInvalidArgument)
}

// ParseWrapMode parses a wrap mode name such as "loop" or "ping-pong".
// Matching ignores case, dashes and underscores; the empty string is WrapOnce.
func ParseWrapMode(s string) (WrapMode, error) {
	key := normalizeName(s)
	if key == "" {
		return WrapOnce, nil
	}
	for i, name := range wrapModeNames {
		if key == name {
			return WrapMode(i), nil
		}
	}
	return 0, fmt.Errorf("tween: unknown wrap mode %q: %w", s, ErrInvalidArgument)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}
