package ease

// InQuad accelerates from zero velocity.
func InQuad(t float64) float64 {
	return t * t
}

// OutQuad decelerates to zero velocity.
func OutQuad(t float64) float64 {
	return -t * (t - 2)
}

// InOutQuad accelerates until halfway, then decelerates.
func InOutQuad(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t
	}
	t--
	return -0.5 * (t*(t-2) - 1)
}

// InCubic accelerates from zero velocity.
func InCubic(t float64) float64 {
	return t * t * t
}

// OutCubic decelerates to zero velocity.
func OutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

// InOutCubic accelerates until halfway, then decelerates.
func InOutCubic(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t + 2)
}

// InQuart accelerates from zero velocity.
func InQuart(t float64) float64 {
	return t * t * t * t
}

// OutQuart decelerates to zero velocity.
func OutQuart(t float64) float64 {
	t--
	return -(t*t*t*t - 1)
}

// InOutQuart accelerates until halfway, then decelerates.
func InOutQuart(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t * t
	}
	t -= 2
	return -0.5 * (t*t*t*t - 2)
}

// InQuint accelerates from zero velocity.
func InQuint(t float64) float64 {
	return t * t * t * t * t
}

// OutQuint decelerates to zero velocity.
func OutQuint(t float64) float64 {
	t--
	return t*t*t*t*t + 1
}

// InOutQuint accelerates until halfway, then decelerates.
func InOutQuint(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t*t*t + 2)
}
