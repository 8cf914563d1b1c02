package tween

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- computeLocalTransform ---

func TestLocalTransformIdentity(t *testing.T) {
	n := NewNode("test")
	assertMatrix(t, "identity", computeLocalTransform(n), identityTransform)
}

func TestLocalTransformTranslation(t *testing.T) {
	n := NewNode("test")
	n.X = 10
	n.Y = 20
	assertMatrix(t, "translate", computeLocalTransform(n), [6]float64{1, 0, 0, 1, 10, 20})
}

func TestLocalTransformScale(t *testing.T) {
	n := NewNode("test")
	n.ScaleX = 2
	n.ScaleY = 3
	assertMatrix(t, "scale", computeLocalTransform(n), [6]float64{2, 0, 0, 3, 0, 0})
}

func TestLocalTransformRotation90(t *testing.T) {
	n := NewNode("test")
	n.Rotation = math.Pi / 2
	assertMatrix(t, "rot90", computeLocalTransform(n), [6]float64{0, 1, -1, 0, 0, 0})
}

func TestLocalTransformPivot(t *testing.T) {
	n := NewNode("test")
	n.PivotX = 5
	n.PivotY = 5
	n.X = 10
	n.Y = 10
	// Pivot shifts the origin: tx = X - PivotX*ScaleX
	assertMatrix(t, "pivot", computeLocalTransform(n), [6]float64{1, 0, 0, 1, 5, 5})
}

func TestLocalTransformCombined(t *testing.T) {
	n := NewNode("test")
	n.X = 50
	n.Y = 100
	n.ScaleX = 2
	n.ScaleY = 2
	n.Rotation = math.Pi / 2
	assertMatrix(t, "combined", computeLocalTransform(n), [6]float64{0, 2, -2, 0, 50, 100})
}

// --- multiplyAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	id := identityTransform
	m := [6]float64{2, 1, 3, 4, 5, 6}
	assertMatrix(t, "id*m", multiplyAffine(id, m), m)
	assertMatrix(t, "m*id", multiplyAffine(m, id), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, 3}
	assertMatrix(t, "translations", multiplyAffine(a, b), [6]float64{1, 0, 0, 1, 15, 23})
}

// --- invertAffine ---

func TestInvertAffine(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	assertMatrix(t, "m*inv=id", multiplyAffine(m, invertAffine(m)), identityTransform)
}

func TestInvertAffineComplex(t *testing.T) {
	n := NewNode("test")
	n.ScaleX = 2
	n.Rotation = math.Pi / 3
	m := computeLocalTransform(n)
	assertMatrix(t, "m*inv=id", multiplyAffine(m, invertAffine(m)), identityTransform)
}

func TestInvertAffineSingularReturnsIdentity(t *testing.T) {
	m := [6]float64{0, 0, 0, 0, 10, 20}
	assertMatrix(t, "singular", invertAffine(m), identityTransform)
}

// --- World transform ---

func TestWorldTransformParentChild(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)
	parent.X = 100
	child.X = 10

	assertNear(t, "parent.tx", parent.WorldTransform()[4], 100)
	assertNear(t, "child.tx", child.WorldTransform()[4], 110)
}

func TestDeepHierarchy(t *testing.T) {
	nodes := make([]*Node, 10)
	for i := range nodes {
		nodes[i] = NewNode("")
		nodes[i].X = 10
		if i > 0 {
			nodes[i-1].AddChild(nodes[i])
		}
	}
	assertNear(t, "deep.tx", nodes[9].WorldTransform()[4], 100)
}

func TestWorldToLocalRoundtrip(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)
	parent.X = 100
	parent.Y = 50
	child.X = 10
	child.Y = 20
	child.ScaleX = 2
	child.ScaleY = 3
	child.Rotation = math.Pi / 6

	wx, wy := 150.0, 80.0
	lx, ly := child.WorldToLocal(wx, wy)
	wx2, wy2 := child.LocalToWorld(lx, ly)
	assertNear(t, "roundtrip.x", wx2, wx)
	assertNear(t, "roundtrip.y", wy2, wy)
}

func TestLocalToWorldIdentity(t *testing.T) {
	n := NewNode("test")
	n.X = 50
	n.Y = 100
	wx, wy := n.LocalToWorld(0, 0)
	assertNear(t, "origin.x", wx, 50)
	assertNear(t, "origin.y", wy, 100)
}

// --- World position and rotation ---

func TestWorldPositionUnderScaledParent(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)
	parent.X = 100
	parent.ScaleX = 2
	parent.ScaleY = 2
	child.X = 10
	child.Y = 5

	p := child.WorldPosition()
	assertNear(t, "world.x", p.X, 120)
	assertNear(t, "world.y", p.Y, 10)
}

func TestSetWorldPositionRoundtrip(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)
	parent.X = -30
	parent.Y = 12
	parent.Rotation = math.Pi / 4
	parent.ScaleX = 0.5

	child.SetWorldPosition(Vec2{7, 9})
	p := child.WorldPosition()
	assertNear(t, "x", p.X, 7)
	assertNear(t, "y", p.Y, 9)
}

func TestSetWorldPositionRoot(t *testing.T) {
	n := NewNode("root")
	n.SetWorldPosition(Vec2{3, 4})
	if n.X != 3 || n.Y != 4 {
		t.Errorf("position = (%v, %v), want (3, 4)", n.X, n.Y)
	}
}

func TestWorldRotationSumsAncestors(t *testing.T) {
	root := NewNode("root")
	mid := NewNode("mid")
	leaf := NewNode("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)
	root.Rotation = 0.5
	mid.Rotation = 0.25

	assertNear(t, "world", leaf.WorldRotation(), 0.75)

	leaf.SetWorldRotation(1)
	assertNear(t, "local", leaf.Rotation, 0.25)
	assertNear(t, "world", leaf.WorldRotation(), 1)
}

// --- Setters ---

func TestSetters(t *testing.T) {
	n := NewNode("test")
	n.SetPosition(1, 2)
	n.SetScale(3, 4)
	n.SetRotation(5)
	if n.X != 1 || n.Y != 2 || n.ScaleX != 3 || n.ScaleY != 4 || n.Rotation != 5 {
		t.Errorf("setters did not write fields: %+v", n)
	}
}
