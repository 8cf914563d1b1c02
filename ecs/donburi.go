package ecs

import (
	"github.com/phanxgames/tween"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Tween is the component data stored on each tween entity.
type Tween struct {
	Engine *tween.Engine

	unsubscribe func()
}

// TweenComponent is the Donburi component type holding a Tween.
var TweenComponent = donburi.NewComponentType[Tween]()

// Completed is published once per boundary crossing of a tween entity's
// engine.
type Completed struct {
	Entity donburi.Entity
	Name   string
	// Playing is false when the crossing ended playback (WrapOnce).
	Playing bool
}

// CompletedEventType is the Donburi event type for tween completions.
// Events are queued and delivered by System.Update.
var CompletedEventType = events.NewEventType[Completed]()

// System drives every tween entity of one world.
type System struct {
	world donburi.World
	sched *tween.Scheduler
}

// NewSystem creates a system with its own scheduler.
func NewSystem(world donburi.World) *System {
	return &System{world: world, sched: tween.NewScheduler()}
}

// Scheduler returns the scheduler that ticks the system's engines.
func (s *System) Scheduler() *tween.Scheduler {
	return s.sched
}

// Add creates an entity for e, attaches e to the system's scheduler and
// forwards its completions to CompletedEventType.
func (s *System) Add(e *tween.Engine) donburi.Entity {
	entity := s.world.Create(TweenComponent)
	entry := s.world.Entry(entity)

	s.sched.Attach(e)
	unsubscribe := e.OnComplete(func() {
		CompletedEventType.Publish(s.world, Completed{
			Entity:  entity,
			Name:    e.Name,
			Playing: e.IsPlaying(),
		})
	})
	TweenComponent.SetValue(entry, Tween{Engine: e, unsubscribe: unsubscribe})
	return entity
}

// Engine returns the engine of a tween entity, or nil if entity is not a
// live tween entity.
func (s *System) Engine(entity donburi.Entity) *tween.Engine {
	if !s.world.Valid(entity) {
		return nil
	}
	entry := s.world.Entry(entity)
	if !entry.HasComponent(TweenComponent) {
		return nil
	}
	return TweenComponent.Get(entry).Engine
}

// Remove stops the entity's engine, detaches it from the scheduler and from
// completion forwarding, and deletes the entity. Unknown entities are ignored.
func (s *System) Remove(entity donburi.Entity) {
	if !s.world.Valid(entity) {
		return
	}
	entry := s.world.Entry(entity)
	if entry.HasComponent(TweenComponent) {
		t := TweenComponent.Get(entry)
		t.Engine.Stop()
		t.Engine.SetRunner(nil)
		if t.unsubscribe != nil {
			t.unsubscribe()
		}
	}
	s.world.Remove(entity)
}

// Each calls fn for every tween entity.
func (s *System) Each(fn func(entity donburi.Entity, e *tween.Engine)) {
	TweenComponent.Each(s.world, func(entry *donburi.Entry) {
		fn(entry.Entity(), TweenComponent.Get(entry).Engine)
	})
}

// Update advances every playing engine by dt seconds and then delivers the
// completion events raised during the frame.
func (s *System) Update(dt float64) error {
	if err := s.sched.Advance(dt); err != nil {
		return err
	}
	CompletedEventType.ProcessEvents(s.world)
	return nil
}
