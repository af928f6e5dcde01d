// internal/state/game_state.go
package state

import (
	game "go-aim-trainer/internal/app"
	"go-aim-trainer/internal/event"
	"go-aim-trainer/internal/system"
	"go-aim-trainer/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры
type GameState struct {
	sm           *StateMachine
	deps         Deps
	game         *game.Game
	renderSystem *system.RenderSystem
	topBar       *ui.TopBar
}

var _ State = (*GameState)(nil)

func NewGameState(sm *StateMachine, deps Deps) *GameState {
	gameLogic := game.NewGame(deps.Cfg, deps.Rng)

	// Звук слушает те же события, что и статистика сессии
	if deps.Sound != nil {
		gameLogic.EventDispatcher.Subscribe(event.TargetHit, deps.Sound)
		gameLogic.EventDispatcher.Subscribe(event.TargetMissed, deps.Sound)
		gameLogic.EventDispatcher.Subscribe(event.SessionEnded, deps.Sound)
	}

	deps.Log.Info("session started",
		"session", gameLogic.Session().ID,
		"lives", deps.Cfg.Session.Lives,
		"spawn_interval", deps.Cfg.Targets.SpawnInterval,
	)

	return &GameState{
		sm:           sm,
		deps:         deps,
		game:         gameLogic,
		renderSystem: system.NewRenderSystem(gameLogic.ECS),
		topBar:       ui.NewTopBar(deps.Cfg, deps.Fonts.Regular, deps.Palette),
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.RequestQuit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g.deps, g))
		return
	}

	// Клик запоминается до тика и разрешается внутри game.Update
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.game.HandleClick(float64(x), float64(y))
	}

	g.game.Update(deltaTime)

	if g.game.Phase() == game.PhaseEnded {
		g.sm.SetState(NewGameOverState(g.sm, g.deps, g.game))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(g.deps.Palette.Background)
	g.renderSystem.Draw(screen)
	g.topBar.Draw(screen, g.game.Session())
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
