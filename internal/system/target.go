// internal/system/target.go
package system

import (
	"go-aim-trainer/internal/entity"
	"go-aim-trainer/internal/event"
)

// TargetSystem двигает жизненный цикл мишеней. Сжавшиеся до нуля убираются
// из ECS, каждая публикуется как TargetMissed.
type TargetSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewTargetSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *TargetSystem {
	return &TargetSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *TargetSystem) Update(deltaTime float64) {
	for id, target := range s.ecs.Targets {
		target.Update(deltaTime)
		if target.Expired() {
			s.ecs.RemoveEntity(id)
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.TargetMissed,
				Data: event.TargetPayload{ID: id, X: target.X, Y: target.Y},
			})
		}
	}
}
