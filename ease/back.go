package ease

// BackOvershoot is the overshoot amount used by the Back family (about 10%).
const BackOvershoot = 1.70158

// backInOutScale widens the overshoot for InOutBack.
const backInOutScale = 1.525

// The Back family is written as t³ + s·t²(t-1), which expands to
// t²((s+1)t - s) but evaluates to exactly 0 and 1 at the endpoints.

// InBack pulls back below 0 before accelerating toward 1.
func InBack(t float64) float64 {
	s := BackOvershoot
	return t*t*t + s*t*t*(t-1)
}

// OutBack overshoots past 1 before settling.
func OutBack(t float64) float64 {
	s := BackOvershoot
	t--
	return t*t*t + s*t*t*(t+1) + 1
}

// InOutBack pulls back at the start and overshoots at the end.
func InOutBack(t float64) float64 {
	s := BackOvershoot * backInOutScale
	t *= 2
	if t < 1 {
		return 0.5 * (t*t*t + s*t*t*(t-1))
	}
	t -= 2
	return 0.5 * (t*t*t + s*t*t*(t+1) + 2)
}
