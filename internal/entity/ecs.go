// internal/entity/ecs.go
package entity

import (
	"go-aim-trainer/internal/component"
	"go-aim-trainer/internal/types"
)

// ECS — хранилища компонентов по идентификатору сущности. Мишень собирается
// из Target (центр и жизненный цикл) и Renderable (цвета колец) под одним id.
type ECS struct {
	NextID      types.EntityID
	Targets     map[types.EntityID]*component.Target
	Renderables map[types.EntityID]*component.Renderable
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Targets:     make(map[types.EntityID]*component.Target),
		Renderables: make(map[types.EntityID]*component.Renderable),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Targets, id)
	delete(ecs.Renderables, id)
}
