package tween

// lerp interpolates without clamping. It returns a exactly at t=0 and b
// exactly at t=1.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func lerpVec(a, b Vec2, t float64) Vec2 {
	return Vec2{lerp(a.X, b.X, t), lerp(a.Y, b.Y, t)}
}

func writable(n *Node) bool {
	return n != nil && !n.disposed
}

// PositionTarget moves a node between two positions. WorldSpace selects
// whether Start and End are world or parent-local coordinates.
type PositionTarget struct {
	Node       *Node
	Start, End Vec2
	WorldSpace bool
}

// NewPositionTarget returns a target whose start and end are the node's
// current position.
func NewPositionTarget(node *Node, worldSpace bool) *PositionTarget {
	t := &PositionTarget{Node: node, WorldSpace: worldSpace}
	t.Start = t.current()
	t.End = t.Start
	return t
}

func (t *PositionTarget) current() Vec2 {
	if t.WorldSpace {
		return t.Node.WorldPosition()
	}
	return Vec2{t.Node.X, t.Node.Y}
}

func (t *PositionTarget) RecordStart() { t.Start = t.current() }
func (t *PositionTarget) RecordEnd()   { t.End = t.current() }

// UpdateValue writes the interpolated position. Overshoot is preserved.
func (t *PositionTarget) UpdateValue(smoothed float64) {
	if !writable(t.Node) {
		return
	}
	p := lerpVec(t.Start, t.End, smoothed)
	if t.WorldSpace {
		t.Node.SetWorldPosition(p)
		return
	}
	t.Node.SetPosition(p.X, p.Y)
}

// RotationTarget turns a node between two angles in radians.
type RotationTarget struct {
	Node       *Node
	Start, End float64
	WorldSpace bool
}

// NewRotationTarget returns a target whose start and end are the node's
// current rotation.
func NewRotationTarget(node *Node, worldSpace bool) *RotationTarget {
	t := &RotationTarget{Node: node, WorldSpace: worldSpace}
	t.Start = t.current()
	t.End = t.Start
	return t
}

func (t *RotationTarget) current() float64 {
	if t.WorldSpace {
		return t.Node.WorldRotation()
	}
	return t.Node.Rotation
}

func (t *RotationTarget) RecordStart() { t.Start = t.current() }
func (t *RotationTarget) RecordEnd()   { t.End = t.current() }

func (t *RotationTarget) UpdateValue(smoothed float64) {
	if !writable(t.Node) {
		return
	}
	r := lerp(t.Start, t.End, smoothed)
	if t.WorldSpace {
		t.Node.SetWorldRotation(r)
		return
	}
	t.Node.SetRotation(r)
}

// ScaleTarget scales a node between two local scales.
type ScaleTarget struct {
	Node       *Node
	Start, End Vec2
}

// NewScaleTarget returns a target whose start and end are the node's current
// scale.
func NewScaleTarget(node *Node) *ScaleTarget {
	s := Vec2{node.ScaleX, node.ScaleY}
	return &ScaleTarget{Node: node, Start: s, End: s}
}

func (t *ScaleTarget) RecordStart() { t.Start = Vec2{t.Node.ScaleX, t.Node.ScaleY} }
func (t *ScaleTarget) RecordEnd()   { t.End = Vec2{t.Node.ScaleX, t.Node.ScaleY} }

func (t *ScaleTarget) UpdateValue(smoothed float64) {
	if !writable(t.Node) {
		return
	}
	s := lerpVec(t.Start, t.End, smoothed)
	t.Node.SetScale(s.X, s.Y)
}

// AlphaTarget fades a node between two alpha values. Unlike the other
// targets it clamps the factor, since alpha has no meaning outside [0, 1].
type AlphaTarget struct {
	Node       *Node
	Start, End float64
}

// NewAlphaTarget returns a target from the node's current alpha to fully
// opaque.
func NewAlphaTarget(node *Node) *AlphaTarget {
	return &AlphaTarget{Node: node, Start: node.Alpha, End: 1}
}

func (t *AlphaTarget) RecordStart() { t.Start = t.Node.Alpha }
func (t *AlphaTarget) RecordEnd()   { t.End = t.Node.Alpha }

func (t *AlphaTarget) UpdateValue(smoothed float64) {
	if !writable(t.Node) {
		return
	}
	t.Node.Alpha = lerp(t.Start, t.End, clamp01(smoothed))
}

// ColorTarget tints a node by sampling a Gradient.
type ColorTarget struct {
	Node     *Node
	Gradient *Gradient
}

// NewColorTarget returns a target whose gradient starts and ends at the
// node's current color.
func NewColorTarget(node *Node) *ColorTarget {
	return &ColorTarget{Node: node, Gradient: NewGradient(node.Color, node.Color)}
}

// RecordStart and RecordEnd do nothing without a Gradient or a node.
func (t *ColorTarget) RecordStart() {
	if t.Gradient != nil && t.Node != nil {
		t.Gradient.SetFirst(t.Node.Color)
	}
}

func (t *ColorTarget) RecordEnd() {
	if t.Gradient != nil && t.Node != nil {
		t.Gradient.SetLast(t.Node.Color)
	}
}

func (t *ColorTarget) UpdateValue(smoothed float64) {
	if !writable(t.Node) || t.Gradient == nil {
		return
	}
	t.Node.Color = t.Gradient.Evaluate(smoothed)
}

// FloatTarget tweens a plain float64 owned by the caller.
type FloatTarget struct {
	Value      *float64
	Start, End float64
}

func (t *FloatTarget) RecordStart() { t.Start = *t.Value }
func (t *FloatTarget) RecordEnd()   { t.End = *t.Value }

func (t *FloatTarget) UpdateValue(smoothed float64) {
	*t.Value = lerp(t.Start, t.End, smoothed)
}
