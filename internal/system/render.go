// internal/system/render.go
package system

import (
	"go-aim-trainer/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует мишени
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

// Draw отрисовывает каждую мишень четырьмя концентрическими кругами:
// полный радиус, 0.8, 0.6 и 0.4 с чередованием цветов.
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for id, target := range s.ecs.Targets {
		render, hasRender := s.ecs.Renderables[id]
		if !hasRender {
			continue
		}
		x := float32(target.X)
		y := float32(target.Y)
		r := float32(target.Radius)
		vector.DrawFilledCircle(screen, x, y, r, render.Primary, true)
		vector.DrawFilledCircle(screen, x, y, r*0.8, render.Secondary, true)
		vector.DrawFilledCircle(screen, x, y, r*0.6, render.Primary, true)
		vector.DrawFilledCircle(screen, x, y, r*0.4, render.Secondary, true)
	}
}
