package tween

import (
	"math"
	"testing"
)

func TestNodeGeoMMatchesWorldTransform(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)
	parent.X = 40
	parent.Rotation = math.Pi / 2
	child.X = 10
	child.ScaleY = 2

	m := child.WorldTransform()
	g := nodeGeoM(m)
	x, y := g.Apply(3, 4)
	wx, wy := child.LocalToWorld(3, 4)
	assertNear(t, "x", x, wx)
	assertNear(t, "y", y, wy)
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	c := Color{1, 0.5, 0, 0.5}.toRGBA()
	if c.A != 127 || c.R != 127 || c.G != 63 || c.B != 0 {
		t.Errorf("toRGBA = %+v", c)
	}
	r, _, _, a := c.RGBA()
	if r != 127*0x101 || a != 127*0x101 {
		t.Errorf("RGBA() = %d, %d", r, a)
	}
}
