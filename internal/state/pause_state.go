// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-aim-trainer/pkg/render"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState — пауза поверх игрового состояния. Пока она активна,
// игровой тик не вызывается и сессия не стареет.
type PauseState struct {
	sm       *StateMachine
	deps     Deps
	previous State
}

func NewPauseState(sm *StateMachine, deps Deps, prevState State) *PauseState {
	return &PauseState{
		sm:       sm,
		deps:     deps,
		previous: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.RequestQuit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previous != nil {
		s.previous.Draw(screen)
	}

	w := s.deps.Cfg.Window.Width
	h := s.deps.Cfg.Window.Height
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 128}, false)
	render.DrawCenteredText(screen, s.deps.Fonts.Title, "PAUSED", w/2, h/2-20, s.deps.Palette.TextLight)
	render.DrawCenteredText(screen, s.deps.Fonts.Regular, "Press P or Space to resume", w/2, h/2+40, s.deps.Palette.TextLight)
}

func (s *PauseState) Exit() {}
