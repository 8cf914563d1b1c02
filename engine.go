package tween

import (
	"fmt"
	"math"
)

// Target receives the smoothed factor each time an Engine applies its
// progress, and can capture the host's current value as its start or end.
// One implementation exists per animated property; see PositionTarget and
// friends.
type Target interface {
	RecordStart()
	RecordEnd()
	UpdateValue(smoothed float64)
}

// Runner drives playing engines once per frame. Play hands the engine to its
// Runner every time playback starts; the Runner is expected to honor the
// engine's delay and then call Tick until IsPlaying reports false.
type Runner interface {
	Start(e *Engine)
}

// Engine is the playback state machine. It owns a progress value in [0, 1]
// that advances on Tick, wraps according to its WrapMode, is eased according
// to its EasingMode and is written to its Target on every Apply.
//
// An Engine is not safe for concurrent use; one playback context owns it.
type Engine struct {
	// Name identifies the engine in log output.
	Name string

	target Target
	curve  Curve
	gate   func() bool
	runner Runner

	delay    float64
	duration float64
	playMode PlayMode
	wrapMode WrapMode
	easing   EasingMode

	progress  float64
	direction Direction
	playing   bool
	run       uint64 // bumped each time playback starts

	observers      []observer
	nextObserverID int
}

type observer struct {
	id int
	fn func()
}

// New creates an idle engine at progress 0, moving forward, with the default
// duration, linear easing and WrapOnce. target may be nil.
func New(target Target) *Engine {
	return &Engine{
		target:    target,
		duration:  DefaultDuration,
		direction: Forward,
	}
}

// --- Configuration ---

// Target returns the engine's target.
func (e *Engine) Target() Target { return e.target }

// SetTarget replaces the engine's target. It does not apply.
func (e *Engine) SetTarget(t Target) { e.target = t }

// Delay returns the pause, in seconds, before each Play starts advancing.
func (e *Engine) Delay() float64 { return e.delay }

// SetDelay sets the pre-roll delay. Negative or non-finite values are
// rejected and the previous delay is kept.
func (e *Engine) SetDelay(d float64) error {
	if err := validateDelay(d); err != nil {
		debugRejected(e, err)
		return err
	}
	e.delay = d
	return nil
}

// Duration returns the time, in seconds, to cross progress 0 to 1.
func (e *Engine) Duration() float64 { return e.duration }

// SetDuration sets the duration. Values below MinDuration or non-finite are
// rejected and the previous duration is kept. A change mid-playback only
// affects the rate of later ticks.
func (e *Engine) SetDuration(d float64) error {
	if err := validateDuration(d); err != nil {
		debugRejected(e, err)
		return err
	}
	e.duration = d
	return nil
}

// PlayMode returns the auto-play policy read by Component.
func (e *Engine) PlayMode() PlayMode { return e.playMode }

// SetPlayMode sets the auto-play policy.
func (e *Engine) SetPlayMode(m PlayMode) error {
	if !m.valid() {
		err := fmt.Errorf("tween: play mode %d: %w", uint8(m), ErrInvalidArgument)
		debugRejected(e, err)
		return err
	}
	e.playMode = m
	return nil
}

// WrapMode returns the boundary policy.
func (e *Engine) WrapMode() WrapMode { return e.wrapMode }

// SetWrapMode sets the boundary policy.
func (e *Engine) SetWrapMode(m WrapMode) error {
	if !m.valid() {
		err := fmt.Errorf("tween: wrap mode %d: %w", uint8(m), ErrInvalidArgument)
		debugRejected(e, err)
		return err
	}
	e.wrapMode = m
	return nil
}

// EasingMode returns the easing in use.
func (e *Engine) EasingMode() EasingMode { return e.easing }

// SetEasingMode selects the easing. EaseCustomCurve reads the Curve set with
// SetCurve.
func (e *Engine) SetEasingMode(m EasingMode) error {
	if !m.valid() {
		err := fmt.Errorf("tween: easing mode %d: %w", uint8(m), ErrInvalidArgument)
		debugRejected(e, err)
		return err
	}
	e.easing = m
	return nil
}

// Curve returns the custom curve, or nil.
func (e *Engine) Curve() Curve { return e.curve }

// SetCurve sets the curve evaluated in EaseCustomCurve mode.
func (e *Engine) SetCurve(c Curve) { e.curve = c }

// SetGate installs the host's CanPlay check. Play, Replay and Toggle do
// nothing while the gate returns false. A nil gate always allows playback.
func (e *Engine) SetGate(gate func() bool) { e.gate = gate }

// SetRunner sets the Runner that drives the engine once it plays. With no
// runner the caller is expected to call Tick itself.
func (e *Engine) SetRunner(r Runner) { e.runner = r }

// ApplySettings validates s as a whole and only then writes every field, so
// a rejected Settings leaves the engine untouched.
func (e *Engine) ApplySettings(s Settings) error {
	if err := s.Validate(); err != nil {
		debugRejected(e, err)
		return err
	}
	e.delay = s.Delay
	e.duration = s.Duration
	e.playMode = s.PlayMode
	e.wrapMode = s.WrapMode
	e.easing = s.Easing
	return nil
}

// Settings returns the engine's current configuration.
func (e *Engine) Settings() Settings {
	return Settings{
		Delay:    e.delay,
		Duration: e.duration,
		PlayMode: e.playMode,
		WrapMode: e.wrapMode,
		Easing:   e.easing,
	}
}

// --- Playback state ---

// Progress returns the raw, un-eased progress in [0, 1].
func (e *Engine) Progress() float64 { return e.progress }

// SetProgress moves the playhead without applying it, for scrubbing.
// Values outside [0, 1] are rejected.
func (e *Engine) SetProgress(p float64) error {
	if !(p >= 0 && p <= 1) {
		err := fmt.Errorf("tween: progress %v outside [0, 1]: %w", p, ErrInvalidArgument)
		debugRejected(e, err)
		return err
	}
	e.progress = p
	return nil
}

// Direction returns Forward or Backward.
func (e *Engine) Direction() Direction { return e.direction }

// SetDirection sets the direction of the next ticks. Only Forward and
// Backward are accepted.
func (e *Engine) SetDirection(d Direction) error {
	if d != Forward && d != Backward {
		err := fmt.Errorf("tween: direction %d: %w", int8(d), ErrInvalidArgument)
		debugRejected(e, err)
		return err
	}
	e.direction = d
	return nil
}

// IsPlaying reports whether the engine is in the playing state.
func (e *Engine) IsPlaying() bool { return e.playing }

// CanPlay reports whether the host currently allows playback.
func (e *Engine) CanPlay() bool {
	return e.gate == nil || e.gate()
}

// --- Observers ---

// OnComplete registers fn to run after every boundary crossing, once the
// wrapped value has been applied. Observers run in registration order. The
// returned function removes fn; calling it more than once is harmless.
func (e *Engine) OnComplete(fn func()) (remove func()) {
	id := e.nextObserverID
	e.nextObserverID++
	e.observers = append(e.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range e.observers {
			if o.id == id {
				e.observers = append(e.observers[:i:i], e.observers[i+1:]...)
				return
			}
		}
	}
}

// ClearOnComplete removes every completion observer.
func (e *Engine) ClearOnComplete() {
	e.observers = nil
}

func (e *Engine) notifyComplete() {
	if len(e.observers) == 0 {
		return
	}
	// Observers may register or remove observers while running.
	snapshot := append([]observer(nil), e.observers...)
	for _, o := range snapshot {
		o.fn()
	}
}

// --- Operations ---

// Smoothed returns the eased factor for the current progress.
func (e *Engine) Smoothed() float64 {
	if e.easing == EaseCustomCurve {
		if e.curve == nil {
			if debugMode {
				logger.Warn().Str("tween", e.Name).Msg("tween_curve_missing")
			}
			return e.progress
		}
		return e.curve.Evaluate(e.progress)
	}
	return easings[e.easing].fn(e.progress)
}

// Apply writes the eased value of the current progress to the target. It
// changes no state and may be called while idle, for previews.
func (e *Engine) Apply() {
	if e.target == nil {
		return
	}
	e.target.UpdateValue(e.Smoothed())
}

// RecordStart captures the target's current value as its start.
func (e *Engine) RecordStart() {
	if e.target != nil {
		e.target.RecordStart()
	}
}

// RecordEnd captures the target's current value as its end.
func (e *Engine) RecordEnd() {
	if e.target != nil {
		e.target.RecordEnd()
	}
}

// Play applies the current sample immediately and, if the engine is idle,
// starts playback. Calling Play while playing only re-applies. Does nothing
// when the host gate refuses.
func (e *Engine) Play() {
	if !e.CanPlay() {
		return
	}
	e.Apply()
	if e.playing {
		return
	}
	e.playing = true
	e.run++
	if debugMode {
		e.trace("play").Float64("delay", e.delay).Msg("tween_play")
	}
	if e.runner != nil {
		e.runner.Start(e)
	}
}

// Stop leaves the playing state. Progress and direction are kept, so a later
// Play resumes from the same point.
func (e *Engine) Stop() {
	if e.playing && debugMode {
		e.trace("stop").Msg("tween_stop")
	}
	e.playing = false
}

// Replay rewinds to progress 0, forward, and plays. No completion observer
// runs.
func (e *Engine) Replay() {
	if !e.CanPlay() {
		return
	}
	e.progress = 0
	e.direction = Forward
	e.Play()
}

// Toggle reverses the direction and plays. At the ends the direction points
// back into the range instead of flipping. Progress is kept.
func (e *Engine) Toggle() {
	if !e.CanPlay() {
		return
	}
	switch {
	case e.progress <= 0:
		e.direction = Forward
	case e.progress >= 1:
		e.direction = Backward
	default:
		e.direction = -e.direction
	}
	e.Play()
}

// Tick advances progress by dt seconds in the current direction, wraps it if
// it reached 0 or 1, applies it, and then runs the completion observers for
// each boundary crossed. dt must be positive and finite; otherwise nothing
// changes and an error wrapping ErrInvalidArgument is returned.
func (e *Engine) Tick(dt float64) error {
	if !(dt > 0) || math.IsInf(dt, 1) {
		err := fmt.Errorf("tween: tick delta %v must be positive: %w", dt, ErrInvalidArgument)
		debugRejected(e, err)
		return err
	}
	e.advance(dt)
	return nil
}

// boundaryEpsilon is how close progress must come to the boundary it is
// heading for to count as reaching it. Summing frame deltas such as 1/60
// leaves progress a few ulps short of 1 at the end of a cycle.
const boundaryEpsilon = 1e-9

// maxCrossings caps the observer calls a single tick can make.
const maxCrossings = 1 << 16

// advance is Tick without argument checks.
func (e *Engine) advance(dt float64) {
	e.progress += dt / e.duration * float64(e.direction)
	if !e.reachedBoundary() {
		e.Apply()
		return
	}

	crossings := e.handleWrapping()
	e.Apply()
	if debugMode {
		e.trace("wrap").Int("crossings", crossings).Bool("playing", e.playing).Msg("tween_complete")
	}
	for i := 0; i < crossings; i++ {
		e.notifyComplete()
	}
}

// reachedBoundary reports whether progress has left [0, 1] or landed on the
// boundary it is moving towards. Progress within boundaryEpsilon of that
// boundary is snapped onto it.
func (e *Engine) reachedBoundary() bool {
	p := e.progress
	if p < 0 || p > 1 {
		return true
	}
	if e.direction == Forward {
		if p >= 1-boundaryEpsilon {
			e.progress = 1
			return true
		}
		return false
	}
	if p <= boundaryEpsilon {
		e.progress = 0
		return true
	}
	return false
}

// handleWrapping brings progress back into [0, 1] according to the wrap mode
// and returns how many boundaries were crossed. A tick shorter than the
// duration crosses exactly one.
func (e *Engine) handleWrapping() int {
	p := e.progress
	switch e.wrapMode {
	case WrapLoop:
		e.progress = p - math.Floor(p)
		if p <= 0 && e.progress == 0 {
			// Going down, a cycle ends on 0 and the next starts from the top.
			e.progress = 1
		}
		return countCrossings(p)

	case WrapPingPong:
		// Unfolded, progress is a triangle wave with period 2.
		m := math.Mod(p, 2)
		if m < 0 {
			m += 2
		}
		if m >= 2 {
			m = 0
		}
		switch {
		case m == 0:
			e.direction = Forward
		case m == 1:
			e.direction = Backward
		case m > 1:
			e.direction = -e.direction
		}
		if m > 1 {
			m = 2 - m
		}
		e.progress = m
		return countCrossings(p)

	default:
		e.playing = false
		e.progress = clamp01(p)
		return 1
	}
}

// countCrossings returns how many integer boundaries lie between the range
// [0, 1] and p, counting a landing on 0 or 1 as one.
func countCrossings(p float64) int {
	var n float64
	if p >= 1 {
		n = math.Floor(p)
	} else {
		n = math.Floor(-p) + 1
	}
	if n > maxCrossings {
		return maxCrossings
	}
	return int(n)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func validateDelay(d float64) error {
	if !(d >= 0) || math.IsInf(d, 1) {
		return fmt.Errorf("tween: delay %v must be a finite value >= 0: %w", d, ErrInvalidArgument)
	}
	return nil
}

func validateDuration(d float64) error {
	if !(d >= MinDuration) || math.IsInf(d, 1) {
		return fmt.Errorf("tween: duration %v must be a finite value >= %v: %w", d, MinDuration, ErrInvalidArgument)
	}
	return nil
}
