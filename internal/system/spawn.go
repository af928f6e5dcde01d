// internal/system/spawn.go
package system

import (
	"go-aim-trainer/internal/component"
	"go-aim-trainer/internal/config"
	"go-aim-trainer/internal/entity"
	"go-aim-trainer/internal/event"
	"go-aim-trainer/internal/utils"
)

// SpawnSystem выпускает новую мишень каждые SpawnInterval секунд.
// Точка спавна выбирается равномерно внутри поля с отступом Padding от краёв
// и от нижней кромки верхней панели.
type SpawnSystem struct {
	ecs             *entity.ECS
	cfg             config.Config
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	spawnTimer      float64
}

func NewSpawnSystem(ecs *entity.ECS, cfg config.Config, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		cfg:             cfg,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

func (s *SpawnSystem) Update(deltaTime float64) {
	s.spawnTimer += deltaTime
	if s.spawnTimer >= s.cfg.Targets.SpawnInterval {
		s.spawnTarget()
		s.spawnTimer = 0
	}
}

func (s *SpawnSystem) spawnTarget() {
	pad := s.cfg.Targets.Padding
	x := s.rng.FloatRange(pad, float64(s.cfg.Window.Width)-pad)
	y := s.rng.FloatRange(float64(s.cfg.Window.TopBarHeight)+pad, float64(s.cfg.Window.Height)-pad)

	id := s.ecs.NewEntity()
	s.ecs.Targets[id] = component.NewTarget(x, y, s.cfg.Targets.MaxRadius, s.cfg.Targets.GrowthRate)
	s.ecs.Renderables[id] = &component.Renderable{
		Primary:   s.cfg.Colors.TargetPrimary.Color(),
		Secondary: s.cfg.Colors.TargetSecondary.Color(),
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.TargetSpawned,
		Data: event.TargetPayload{ID: id, X: x, Y: y},
	})
}
