// internal/app/game.go
package app

import (
	"go-aim-trainer/internal/config"
	"go-aim-trainer/internal/entity"
	"go-aim-trainer/internal/event"
	"go-aim-trainer/internal/system"
	"go-aim-trainer/internal/utils"
)

// Phase — фаза игрового цикла. Ended терминальна: из неё нет возврата,
// экран итогов висит до выхода.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseEnded
)

// Game holds the main game state and logic.
type Game struct {
	Cfg             config.Config
	ECS             *entity.ECS
	SpawnSystem     *system.SpawnSystem
	TargetSystem    *system.TargetSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	session *Session
	phase   Phase

	// Клик текущего тика. Ставится в HandleClick, гасится при разрешении
	// попаданий внутри Update.
	clickPending bool
	clickX       float64
	clickY       float64
}

// NewGame initializes a new game instance.
func NewGame(cfg config.Config, rng *utils.PRNGService) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Cfg:             cfg,
		ECS:             ecs,
		SpawnSystem:     system.NewSpawnSystem(ecs, cfg, rng, eventDispatcher),
		TargetSystem:    system.NewTargetSystem(ecs, eventDispatcher),
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		session:         NewSession(cfg.Session.Lives),
		phase:           PhaseRunning,
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.TargetHit, listener)
	eventDispatcher.Subscribe(event.TargetMissed, listener)

	return g
}

// Update — один тик симуляции. Порядок фиксированный: часы и спавн, рост
// мишеней, снятие истёкших, затем разрешение клика этого тика.
func (g *Game) Update(deltaTime float64) {
	if g.phase != PhaseRunning {
		g.clickPending = false
		return
	}

	g.session.Advance(deltaTime)
	g.SpawnSystem.Update(deltaTime)
	g.TargetSystem.Update(deltaTime)
	g.resolveClick()

	if g.session.Over() {
		g.finishSession()
	}
}

// HandleClick принимает клик от слоя ввода. Клик учитывается в статистике
// сразу, а попадания разрешаются на ближайшем тике после роста мишеней.
func (g *Game) HandleClick(x, y float64) {
	if g.phase != PhaseRunning {
		return
	}
	g.session.RecordClick()
	g.clickPending = true
	g.clickX = x
	g.clickY = y
}

// resolveClick снимает все мишени, накрывающие точку клика. Несколько
// пересекающихся мишеней под одним кликом дают несколько попаданий.
func (g *Game) resolveClick() {
	if !g.clickPending {
		return
	}
	g.clickPending = false

	for id, target := range g.ECS.Targets {
		if !target.Collide(g.clickX, g.clickY) {
			continue
		}
		g.ECS.RemoveEntity(id)
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.TargetHit,
			Data: event.TargetPayload{ID: id, X: target.X, Y: target.Y},
		})
	}
}

func (g *Game) finishSession() {
	g.phase = PhaseEnded
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.SessionEnded,
		Data: event.SessionSummary{
			Elapsed:  g.session.Elapsed,
			Hits:     g.session.Hits,
			Clicks:   g.session.Clicks,
			Misses:   g.session.Misses,
			Accuracy: g.session.Accuracy(),
		},
	})
}

// --- Public Accessors ---

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Session() *Session {
	return g.session
}

// GameEventListener — подписчик игры на собственные события: счёт попаданий
// и промахов идёт через диспетчер.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.TargetHit:
		l.game.session.RecordHit()
	case event.TargetMissed:
		l.game.session.RecordMiss()
	}
}
