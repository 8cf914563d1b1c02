package ease

import (
	gease "github.com/tanema/gween/ease"
)

// FromPenner adapts a gween easing function, which uses Robert Penner's
// (t, begin, change, duration) signature, to a Func over [0, 1]. The result is
// pinned to 0 and 1 at the endpoints, since some Penner functions (the
// exponential ones) only approach them.
func FromPenner(fn gease.TweenFunc) Func {
	return func(t float64) float64 {
		if t == 0 {
			return 0
		}
		if t == 1 {
			return 1
		}
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Families not written out by hand are borrowed from gween.
var (
	InSine       = FromPenner(gease.InSine)
	OutSine      = FromPenner(gease.OutSine)
	InOutSine    = FromPenner(gease.InOutSine)
	InExpo       = FromPenner(gease.InExpo)
	OutExpo      = FromPenner(gease.OutExpo)
	InOutExpo    = FromPenner(gease.InOutExpo)
	InCirc       = FromPenner(gease.InCirc)
	OutCirc      = FromPenner(gease.OutCirc)
	InOutCirc    = FromPenner(gease.InOutCirc)
	InElastic    = FromPenner(gease.InElastic)
	OutElastic   = FromPenner(gease.OutElastic)
	InOutElastic = FromPenner(gease.InOutElastic)
)
