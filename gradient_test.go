package tween

import "testing"

func assertColorNear(t *testing.T, name string, got, want Color) {
	t.Helper()
	assertNear(t, name+".R", got.R, want.R)
	assertNear(t, name+".G", got.G, want.G)
	assertNear(t, name+".B", got.B, want.B)
	assertNear(t, name+".A", got.A, want.A)
}

func TestGradientRGBMidpoint(t *testing.T) {
	g := NewGradient(Color{0, 0, 0, 0}, Color{1, 0.5, 0, 1})
	assertColorNear(t, "mid", g.Evaluate(0.5), Color{0.5, 0.25, 0, 0.5})
}

func TestGradientEndpointsAreExact(t *testing.T) {
	from := Color{0.2, 0.4, 0.6, 1}
	to := Color{0.9, 0.1, 0.3, 0.5}
	for _, space := range []BlendSpace{BlendRGB, BlendHCL, BlendLab} {
		g := NewGradient(from, to)
		g.Space = space
		if got := g.Evaluate(0); got != from {
			t.Errorf("space %d: Evaluate(0) = %v, want %v", space, got, from)
		}
		if got := g.Evaluate(1); got != to {
			t.Errorf("space %d: Evaluate(1) = %v, want %v", space, got, to)
		}
	}
}

func TestGradientClampsFactor(t *testing.T) {
	g := NewGradient(Color{0, 0, 0, 1}, Color{1, 1, 1, 1})
	if got := g.Evaluate(1.4); got != (Color{1, 1, 1, 1}) {
		t.Errorf("Evaluate(1.4) = %v", got)
	}
	if got := g.Evaluate(-0.4); got != (Color{0, 0, 0, 1}) {
		t.Errorf("Evaluate(-0.4) = %v", got)
	}
}

func TestGradientPerceptualStaysInGamut(t *testing.T) {
	for _, space := range []BlendSpace{BlendHCL, BlendLab} {
		g := &Gradient{
			Stops: []GradientStop{{0, Color{1, 0, 0, 1}}, {1, Color{0, 0, 1, 1}}},
			Space: space,
		}
		for i := 0; i <= 20; i++ {
			c := g.Evaluate(float64(i) / 20)
			for _, v := range []float64{c.R, c.G, c.B} {
				if v < 0 || v > 1 {
					t.Fatalf("space %d: component %v out of range at %d", space, v, i)
				}
			}
		}
	}
}

func TestGradientMultipleStops(t *testing.T) {
	g := &Gradient{Stops: []GradientStop{
		{1, Color{0, 0, 1, 1}},
		{0, Color{1, 0, 0, 1}},
		{0.5, Color{0, 1, 0, 1}},
	}}
	g.Sort()
	assertColorNear(t, "0.5", g.Evaluate(0.5), Color{0, 1, 0, 1})
	assertColorNear(t, "0.25", g.Evaluate(0.25), Color{0.5, 0.5, 0, 1})
	assertColorNear(t, "0.75", g.Evaluate(0.75), Color{0, 0.5, 0.5, 1})
}

func TestGradientEmpty(t *testing.T) {
	var g Gradient
	if got := g.Evaluate(0.5); got != ColorWhite {
		t.Errorf("Evaluate = %v, want white", got)
	}
	g.SetLast(Color{0, 0, 0, 1})
	if len(g.Stops) != 1 {
		t.Fatalf("SetLast on empty gradient should add a stop")
	}
}

func TestGradientSetFirstLast(t *testing.T) {
	g := &Gradient{Stops: []GradientStop{
		{0, Color{}}, {0.5, Color{0, 1, 0, 1}}, {1, Color{}},
	}}
	g.SetFirst(Color{1, 0, 0, 1})
	g.SetLast(Color{0, 0, 1, 1})
	if g.Stops[0].Color != (Color{1, 0, 0, 1}) || g.Stops[2].Color != (Color{0, 0, 1, 1}) {
		t.Errorf("stops = %v", g.Stops)
	}
	if g.Stops[1].Color != (Color{0, 1, 0, 1}) {
		t.Error("middle stop should be untouched")
	}
}
