package ease

const bounceCoeff = 7.5625

// OutBounce decelerates through three shrinking bounces before settling on 1.
func OutBounce(t float64) float64 {
	switch {
	case t < 1/2.75:
		return bounceCoeff * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return bounceCoeff*t*t + 0.75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return bounceCoeff*t*t + 0.9375
	default:
		t -= 2.625 / 2.75
		return bounceCoeff*t*t + 0.984375
	}
}

// InBounce is OutBounce mirrored in time: 1 - OutBounce(1-t).
func InBounce(t float64) float64 {
	return 1 - OutBounce(1-t)
}

// InOutBounce bounces into the midpoint and back out of it.
func InOutBounce(t float64) float64 {
	if t < 0.5 {
		return InBounce(t*2) * 0.5
	}
	return OutBounce(t*2-1)*0.5 + 0.5
}
