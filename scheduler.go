package tween

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scheduler is the frame loop that drives playing engines. Each time an
// attached engine starts playing, the scheduler waits out the engine's delay
// and then calls Tick once per frame until the engine stops.
//
// There is no global scheduler; the host calls Update (or Advance) itself
// once per frame.
type Scheduler struct {
	runs  []scheduledRun
	spare []scheduledRun
}

// scheduledRun is one Play of one engine. It goes stale when the engine stops
// or starts a newer run.
type scheduledRun struct {
	engine *Engine
	id     uint64
	delay  float64
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Attach makes the scheduler the engine's Runner. If the engine is already
// playing it is picked up from the next frame, without a delay. Runs recorded
// for e by any scheduler before the call go stale, so e is ticked once per
// frame by the scheduler it was attached to last.
func (s *Scheduler) Attach(e *Engine) {
	e.SetRunner(s)
	if e.playing {
		e.run++
		s.runs = append(s.runs, scheduledRun{engine: e, id: e.run})
	}
}

// Start records a new run for e. Engines call it from Play.
func (s *Scheduler) Start(e *Engine) {
	s.runs = append(s.runs, scheduledRun{engine: e, id: e.run, delay: e.delay})
}

// Len returns the number of runs that have not yet been dropped. Runs of
// stopped engines are dropped on the next frame.
func (s *Scheduler) Len() int {
	return len(s.runs)
}

// StopAll stops every engine with a pending run.
func (s *Scheduler) StopAll() {
	for _, r := range s.runs {
		if r.live() {
			r.engine.Stop()
		}
	}
}

// Update advances one frame at the fixed tick rate of the ebiten game loop.
func (s *Scheduler) Update() error {
	return s.Advance(1.0 / float64(ebiten.TPS()))
}

// Advance advances every live run by dt seconds. Runs still in their delay
// consume dt without ticking; a run whose delay ends this frame ticks from
// the next one. Engines started while advancing are first ticked on the next
// call.
func (s *Scheduler) Advance(dt float64) error {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return fmt.Errorf("tween: frame delta %v must be positive: %w", dt, ErrInvalidArgument)
	}

	current := s.runs
	s.runs = s.spare[:0]
	for i := range current {
		r := current[i]
		if !r.live() {
			continue
		}
		if r.delay > 0 {
			r.delay -= dt
			s.runs = append(s.runs, r)
			continue
		}
		r.engine.advance(dt)
		if r.live() {
			s.runs = append(s.runs, r)
		}
	}
	clear(current)
	s.spare = current[:0]
	return nil
}

func (r scheduledRun) live() bool {
	return r.engine.playing && r.engine.run == r.id
}
