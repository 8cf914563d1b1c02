package tween

import (
	"math"
	"testing"
)

func TestPositionTargetLocal(t *testing.T) {
	n := NewNode("n")
	pt := NewPositionTarget(n, false)
	pt.End = Vec2{100, -50}

	pt.UpdateValue(0.5)
	assertNear(t, "x", n.X, 50)
	assertNear(t, "y", n.Y, -25)

	pt.UpdateValue(1.25)
	assertNear(t, "overshoot.x", n.X, 125)
}

func TestPositionTargetWorldSpace(t *testing.T) {
	parent := NewNode("parent")
	parent.X = 100
	parent.ScaleX = 2
	parent.ScaleY = 2
	n := NewNode("n")
	parent.AddChild(n)

	pt := NewPositionTarget(n, true)
	if pt.Start != (Vec2{100, 0}) {
		t.Fatalf("Start = %v, want world position (100, 0)", pt.Start)
	}
	pt.End = Vec2{140, 20}
	pt.UpdateValue(1)

	assertNear(t, "local.x", n.X, 20)
	assertNear(t, "local.y", n.Y, 10)
	p := n.WorldPosition()
	assertNear(t, "world.x", p.X, 140)
	assertNear(t, "world.y", p.Y, 20)
}

func TestPositionTargetRecord(t *testing.T) {
	n := NewNode("n")
	pt := NewPositionTarget(n, false)
	n.SetPosition(3, 4)
	pt.RecordStart()
	n.SetPosition(7, 8)
	pt.RecordEnd()
	if pt.Start != (Vec2{3, 4}) || pt.End != (Vec2{7, 8}) {
		t.Errorf("Start = %v End = %v", pt.Start, pt.End)
	}
}

func TestRotationTargetWorldSpace(t *testing.T) {
	parent := NewNode("parent")
	parent.Rotation = math.Pi / 2
	n := NewNode("n")
	parent.AddChild(n)

	rt := NewRotationTarget(n, true)
	assertNear(t, "start", rt.Start, math.Pi/2)
	rt.End = math.Pi
	rt.UpdateValue(1)
	assertNear(t, "local", n.Rotation, math.Pi/2)
	assertNear(t, "world", n.WorldRotation(), math.Pi)
}

func TestRotationTargetLocal(t *testing.T) {
	n := NewNode("n")
	rt := &RotationTarget{Node: n, Start: 0, End: 2}
	rt.UpdateValue(0.25)
	assertNear(t, "rotation", n.Rotation, 0.5)
}

func TestScaleTarget(t *testing.T) {
	n := NewNode("n")
	st := NewScaleTarget(n)
	if st.Start != (Vec2{1, 1}) {
		t.Fatalf("Start = %v, want (1, 1)", st.Start)
	}
	st.End = Vec2{3, 0}
	st.UpdateValue(0.5)
	assertNear(t, "sx", n.ScaleX, 2)
	assertNear(t, "sy", n.ScaleY, 0.5)
}

func TestAlphaTargetClamps(t *testing.T) {
	n := NewNode("n")
	n.Alpha = 0
	at := NewAlphaTarget(n)
	if at.Start != 0 || at.End != 1 {
		t.Fatalf("Start = %v End = %v, want 0 1", at.Start, at.End)
	}

	at.UpdateValue(0.5)
	assertNear(t, "mid", n.Alpha, 0.5)
	at.UpdateValue(1.3)
	assertNear(t, "overshoot", n.Alpha, 1)
	at.UpdateValue(-0.2)
	assertNear(t, "undershoot", n.Alpha, 0)
}

func TestColorTarget(t *testing.T) {
	n := NewNode("n")
	n.Color = Color{0, 0, 0, 1}
	ct := NewColorTarget(n)
	n.Color = Color{1, 1, 1, 0}
	ct.RecordEnd()

	ct.UpdateValue(0.5)
	assertNear(t, "r", n.Color.R, 0.5)
	assertNear(t, "a", n.Color.A, 0.5)

	ct.UpdateValue(0)
	if n.Color != (Color{0, 0, 0, 1}) {
		t.Errorf("Color at 0 = %v, want black", n.Color)
	}
}

func TestColorTargetWithoutGradient(t *testing.T) {
	n := NewNode("n")
	n.Color = Color{0.5, 0.5, 0.5, 1}
	ct := &ColorTarget{Node: n}

	e := New(ct)
	e.RecordStart()
	e.RecordEnd()
	e.Apply()
	if n.Color != (Color{0.5, 0.5, 0.5, 1}) {
		t.Errorf("Color = %v, want it untouched", n.Color)
	}
}

func TestTargetsSkipDisposedNode(t *testing.T) {
	n := NewNode("n")
	pt := &PositionTarget{Node: n, End: Vec2{10, 10}}
	at := &AlphaTarget{Node: n, Start: 1, End: 0}
	n.Dispose()

	pt.UpdateValue(1)
	at.UpdateValue(1)
	if n.X != 0 || n.Alpha != 1 {
		t.Errorf("disposed node was written: X=%v Alpha=%v", n.X, n.Alpha)
	}
}

func TestFloatTarget(t *testing.T) {
	v := 4.0
	ft := &FloatTarget{Value: &v}
	ft.RecordStart()
	v = 8
	ft.RecordEnd()

	ft.UpdateValue(0.25)
	if v != 5 {
		t.Errorf("value = %v, want 5", v)
	}
}

func TestEngineDrivesNodeThroughScheduler(t *testing.T) {
	s := NewScheduler()
	n := NewNode("n")
	pt := NewPositionTarget(n, false)
	pt.End = Vec2{200, 0}

	e := New(pt)
	_ = e.SetEasingMode(EaseInOutQuad)
	s.Attach(e)
	e.Play()
	mustAdvance(t, s, 0.5)
	assertNear(t, "mid", n.X, 100)
	mustAdvance(t, s, 0.5)
	assertNear(t, "end", n.X, 200)
}
