// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-aim-trainer/pkg/render"
)

// MenuState — стартовый экран
type MenuState struct {
	sm   *StateMachine
	deps Deps
}

var _ State = (*MenuState)(nil)

func NewMenuState(sm *StateMachine, deps Deps) *MenuState {
	return &MenuState{sm: sm, deps: deps}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.sm.RequestQuit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewGameState(m.sm, m.deps))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(m.deps.Palette.Background)

	w := m.deps.Cfg.Window.Width
	h := m.deps.Cfg.Window.Height
	render.DrawCenteredText(screen, m.deps.Fonts.Title, m.deps.Cfg.Window.Title, w/2, h/3, m.deps.Palette.TextLight)
	render.DrawCenteredText(screen, m.deps.Fonts.Regular, "Press Space or click to start", w/2, h/2, m.deps.Palette.TextLight)
	render.DrawCenteredText(screen, m.deps.Fonts.Regular, "Hit the targets before they shrink away", w/2, h/2+40, m.deps.Palette.TextLight)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
