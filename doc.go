// Package tween drives eased, direction- and wrap-aware playback of a single
// progress value and writes the result into scene nodes every frame.
//
// # Engine
//
// An [Engine] owns a progress value in [0, 1]. [Engine.Tick] advances it by
// an elapsed time, wraps it at the boundaries according to the [WrapMode],
// eases it with the [EasingMode] and hands the result to a [Target]:
//
//	node := tween.NewNode("hero")
//	target := tween.NewPositionTarget(node, false)
//	target.End = tween.Vec2{X: 200, Y: 0}
//
//	e := tween.New(target)
//	e.SetDuration(0.5)
//	e.SetEasingMode(tween.EaseOutBack)
//	e.Play()
//
//	e.Tick(1.0 / 60) // once per frame
//
// Engines are fully steppable: nothing runs unless the host calls Tick. For
// frame-driven playback with delays, attach the engine to a [Scheduler] and
// call [Scheduler.Update] from your game's Update, or let [Run] open an
// ebiten window that does it for you.
//
// # Wrap modes
//
// [WrapOnce] clamps at the boundary and stops. [WrapLoop] jumps to the other
// end and keeps playing. [WrapPingPong] reflects progress and reverses
// direction, forever. Every boundary crossing runs the observers registered
// with [Engine.OnComplete], after the wrapped value has been applied.
//
// # Easing
//
// The easing functions live in the [github.com/phanxgames/tween/ease]
// package. [EaseCustomCurve] evaluates any [Curve], such as a
// [KeyframeCurve] or a [BezierCurve].
//
// # Targets and lifecycle
//
// Built-in targets animate a [Node]'s position, rotation, scale, alpha and
// color. [Attach] binds an engine to a node as a [Component], which plays it
// according to its [PlayMode] when the node or component is switched on and
// stops it when they are switched off.
//
// Engines can also be configured from YAML with [ParseSettings]; see the
// preset package for files of named settings.
package tween
