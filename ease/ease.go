// Package ease provides the easing functions used by the tween engine.
//
// Every function maps a progress value t, normally in [0, 1], to an eased
// factor. Functions are pure and safe to call from any goroutine. All
// families return exactly 0 at t=0 and exactly 1 at t=1; Back and Elastic
// overshoot [0, 1] in between.
package ease

// Func maps progress to an eased factor.
type Func func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return t
}

// Reverse returns the mirror of fn: 1 - fn(1 - t). Reverse of an In function
// is the matching Out function and vice versa.
func Reverse(fn Func) Func {
	return func(t float64) float64 {
		return 1 - fn(1-t)
	}
}

// InOut joins in and out at t=0.5, each compressed to half the range.
func InOut(in, out Func) Func {
	return func(t float64) float64 {
		if t < 0.5 {
			return in(t*2) * 0.5
		}
		return out(t*2-1)*0.5 + 0.5
	}
}
