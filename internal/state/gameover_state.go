// internal/state/gameover_state.go
package state

import (
	"fmt"

	game "go-aim-trainer/internal/app"
	"go-aim-trainer/internal/ui"
	"go-aim-trainer/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState — итоговый экран завершённой сессии
type GameOverState struct {
	sm    *StateMachine
	deps  Deps
	game  *game.Game
	panel *ui.SummaryPanel
	keys  []ebiten.Key
}

var _ State = (*GameOverState)(nil)

func NewGameOverState(sm *StateMachine, deps Deps, finished *game.Game) *GameOverState {
	return &GameOverState{
		sm:    sm,
		deps:  deps,
		game:  finished,
		panel: ui.NewSummaryPanel(deps.Cfg.Window.Width, deps.Fonts.Regular, deps.Palette),
	}
}

func (s *GameOverState) Enter() {
	sess := s.game.Session()
	s.deps.Log.Info("session ended",
		"session", sess.ID,
		"time", utils.FormatDuration(sess.Elapsed),
		"hits", sess.Hits,
		"clicks", sess.Clicks,
		"misses", sess.Misses,
		"accuracy", fmt.Sprintf("%.1f%%", sess.Accuracy()),
	)
}

func (s *GameOverState) Update(deltaTime float64) {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	if len(s.keys) > 0 || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.sm.RequestQuit()
		return
	}
	s.panel.Update(deltaTime)
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(s.deps.Palette.Background)
	s.panel.Draw(screen, s.game.Session())
}

func (s *GameOverState) Exit() {
	// Ничего не делаем при выходе
}
