package tween

import (
	"math"
	"sort"
)

// Curve is a sampled function used by EaseCustomCurve. The engine treats it
// as opaque and only calls Evaluate with the current progress.
type Curve interface {
	Evaluate(x float64) float64
}

// CurveFunc adapts an ordinary function, such as any ease.Func, to Curve.
type CurveFunc func(x float64) float64

// Evaluate calls f(x).
func (f CurveFunc) Evaluate(x float64) float64 { return f(x) }

// Keyframe is one authored point of a KeyframeCurve. Tangents are slopes
// (dValue/dTime) on either side of the key.
type Keyframe struct {
	Time       float64
	Value      float64
	InTangent  float64
	OutTangent float64
}

// KeyframeCurve interpolates keyframes with cubic Hermite segments. Outside
// the first and last key it holds the end value.
type KeyframeCurve struct {
	keys []Keyframe
}

// NewKeyframeCurve returns a curve through keys. Keys are copied and sorted
// by time.
func NewKeyframeCurve(keys ...Keyframe) *KeyframeCurve {
	k := append([]Keyframe(nil), keys...)
	sort.SliceStable(k, func(i, j int) bool { return k[i].Time < k[j].Time })
	return &KeyframeCurve{keys: k}
}

// LinearCurve returns a straight keyframe curve from (0, from) to (1, to).
func LinearCurve(from, to float64) *KeyframeCurve {
	slope := to - from
	return NewKeyframeCurve(
		Keyframe{Time: 0, Value: from, OutTangent: slope},
		Keyframe{Time: 1, Value: to, InTangent: slope},
	)
}

// Keys returns the curve's keyframes. The returned slice MUST NOT be mutated.
func (c *KeyframeCurve) Keys() []Keyframe {
	return c.keys
}

// Evaluate samples the curve at x.
func (c *KeyframeCurve) Evaluate(x float64) float64 {
	n := len(c.keys)
	switch {
	case n == 0:
		return 0
	case x <= c.keys[0].Time:
		return c.keys[0].Value
	case x >= c.keys[n-1].Time:
		return c.keys[n-1].Value
	}

	// First key strictly after x; x lies in [keys[i-1], keys[i]).
	i := sort.Search(n, func(i int) bool { return c.keys[i].Time > x })
	k0, k1 := c.keys[i-1], c.keys[i]
	dt := k1.Time - k0.Time
	if dt <= 0 {
		return k1.Value
	}
	t := (x - k0.Time) / dt
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return h00*k0.Value + h10*dt*k0.OutTangent + h01*k1.Value + h11*dt*k1.InTangent
}

// BezierCurve returns a curve matching CSS cubic-bezier(x1, y1, x2, y2). The
// curve runs from (0, 0) to (1, 1); inputs outside [0, 1] are clamped.
func BezierCurve(x1, y1, x2, y2 float64) CurveFunc {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := bezierSample(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezierSample(y1, y2, clamp01(u))
			}
			dx := bezierDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Bisection fallback for flat regions.
		lo, hi := 0.0, 1.0
		u = clamp01(u)
		for range 20 {
			x := bezierSample(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}
		return bezierSample(y1, y2, u)
	}
}

func bezierSample(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}
