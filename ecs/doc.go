// Package ecs runs tweens inside a [Donburi] world.
//
// Each engine added to a [System] becomes an entity carrying a
// [TweenComponent]. The system owns the tween.Scheduler that ticks the
// engines and republishes every completion as a [CompletedEventType] event,
// so ECS systems can react to finished or wrapped tweens without holding
// callbacks of their own.
//
// Usage:
//
//	world := donburi.NewWorld()
//	sys := ecs.NewSystem(world)
//	entity := sys.Add(engine)
//	ecs.CompletedEventType.Subscribe(world, onTweenDone)
//	engine.Play()
//
//	// once per frame
//	sys.Update(dt)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
