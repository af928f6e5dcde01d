// internal/app/game_test.go
package app

import (
	"testing"

	"go-aim-trainer/internal/component"
	"go-aim-trainer/internal/config"
	"go-aim-trainer/internal/event"
	"go-aim-trainer/internal/utils"
)

const tick = 1.0 / 60.0

func newTestGame(seed int64) *Game {
	return NewGame(config.DefaultConfig(), utils.NewPRNGService(seed))
}

// run прокручивает n тиков без кликов.
func run(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Update(tick)
	}
}

// spawnRecorder копит payload'ы TargetSpawned.
type spawnRecorder struct {
	spawns []event.TargetPayload
}

func (r *spawnRecorder) OnEvent(e event.Event) {
	if p, ok := e.Data.(event.TargetPayload); ok {
		r.spawns = append(r.spawns, p)
	}
}

func TestNewGame(t *testing.T) {
	g := newTestGame(1)

	if g.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v, want PhaseRunning", g.Phase())
	}
	if len(g.ECS.Targets) != 0 {
		t.Errorf("new game has %d targets, want 0", len(g.ECS.Targets))
	}
	if g.Session().Lives != 3 {
		t.Errorf("Lives = %d, want 3", g.Session().Lives)
	}
}

func TestGame_SpawnsOnInterval(t *testing.T) {
	g := newTestGame(1)
	rec := &spawnRecorder{}
	g.EventDispatcher.Subscribe(event.TargetSpawned, rec)

	// 10 секунд при интервале в 3: мишени появляются на ~3, ~6 и ~9.
	run(g, 600)

	if len(rec.spawns) != 3 {
		t.Errorf("spawned %d targets in 10s, want 3", len(rec.spawns))
	}
}

func TestGame_SpawnsInsidePaddedField(t *testing.T) {
	g := newTestGame(7)
	rec := &spawnRecorder{}
	g.EventDispatcher.Subscribe(event.TargetSpawned, rec)

	run(g, 600)

	cfg := g.Cfg
	minX := cfg.Targets.Padding
	maxX := float64(cfg.Window.Width) - cfg.Targets.Padding
	minY := float64(cfg.Window.TopBarHeight) + cfg.Targets.Padding
	maxY := float64(cfg.Window.Height) - cfg.Targets.Padding
	if len(rec.spawns) == 0 {
		t.Fatal("no spawns recorded")
	}
	for i, p := range rec.spawns {
		if p.X < minX || p.X >= maxX || p.Y < minY || p.Y >= maxY {
			t.Errorf("spawn %d at (%g, %g), outside [%g, %g)x[%g, %g)", i, p.X, p.Y, minX, maxX, minY, maxY)
		}
	}
}

func TestGame_ExpiredTargetCountsMiss(t *testing.T) {
	g := newTestGame(1)

	// Первая мишень появляется на ~3-й секунде и живёт ~5 секунд.
	run(g, 600)

	s := g.Session()
	if s.Misses != 1 {
		t.Errorf("Misses = %d, want 1 (first target expires around 8s)", s.Misses)
	}
	if s.Clicks != 0 || s.Hits != 0 {
		t.Errorf("Clicks, Hits = %d, %d, want 0, 0", s.Clicks, s.Hits)
	}
}

func TestGame_EndsAfterLivesExhausted(t *testing.T) {
	g := newTestGame(1)

	// Без кликов мишени истекают на ~8, ~11 и ~14 секундах. Третий промах
	// исчерпывает три жизни.
	run(g, 20 * 60)

	if g.Phase() != PhaseEnded {
		t.Fatalf("Phase() = %v, want PhaseEnded", g.Phase())
	}
	s := g.Session()
	if s.Misses != 3 {
		t.Errorf("Misses = %d, want exactly 3", s.Misses)
	}
	if !s.Over() {
		t.Error("session should be over")
	}
	// Часы остановились на тике конца игры, а не на 20 секундах.
	if s.Elapsed < 13.5 || s.Elapsed > 14.5 {
		t.Errorf("Elapsed = %g, want ~14.0", s.Elapsed)
	}
}

func TestGame_EndedIsTerminal(t *testing.T) {
	g := newTestGame(1)
	run(g, 20*60)
	if g.Phase() != PhaseEnded {
		t.Fatal("game should have ended")
	}

	s := g.Session()
	elapsed, misses := s.Elapsed, s.Misses

	g.HandleClick(500, 400)
	run(g, 120)

	if g.Phase() != PhaseEnded {
		t.Error("phase left PhaseEnded")
	}
	if s.Clicks != 0 {
		t.Errorf("Clicks = %d after end, want 0", s.Clicks)
	}
	if s.Elapsed != elapsed || s.Misses != misses {
		t.Errorf("stats moved after end: Elapsed %g -> %g, Misses %d -> %d", elapsed, s.Elapsed, misses, s.Misses)
	}
}

func TestGame_SessionEndedFiresOnce(t *testing.T) {
	g := newTestGame(1)
	ended := 0
	g.EventDispatcher.Subscribe(event.SessionEnded, listenerFunc(func(event.Event) { ended++ }))

	run(g, 30*60)

	if ended != 1 {
		t.Errorf("SessionEnded fired %d times, want 1", ended)
	}
}

func TestGame_HitRemovesTarget(t *testing.T) {
	g := newTestGame(1)

	// Даём первой мишени подрасти: ~3.5 секунды от старта.
	run(g, 210)
	if len(g.ECS.Targets) != 1 {
		t.Fatalf("targets on field = %d, want 1", len(g.ECS.Targets))
	}

	var cx, cy float64
	for _, target := range g.ECS.Targets {
		cx, cy = target.X, target.Y
	}
	g.HandleClick(cx, cy)
	g.Update(tick)

	s := g.Session()
	if len(g.ECS.Targets) != 0 {
		t.Errorf("targets on field = %d after hit, want 0", len(g.ECS.Targets))
	}
	if s.Hits != 1 || s.Clicks != 1 {
		t.Errorf("Hits, Clicks = %d, %d, want 1, 1", s.Hits, s.Clicks)
	}
	if s.Misses != 0 {
		t.Errorf("Misses = %d, want 0", s.Misses)
	}
	if got := s.Accuracy(); got != 100 {
		t.Errorf("Accuracy() = %g, want 100", got)
	}
}

func TestGame_MissedClickOnlyCountsClick(t *testing.T) {
	g := newTestGame(1)

	// Кликаем в пустое поле до первого спавна.
	run(g, 60)
	g.HandleClick(500, 400)
	g.Update(tick)

	s := g.Session()
	if s.Clicks != 1 {
		t.Errorf("Clicks = %d, want 1", s.Clicks)
	}
	if s.Hits != 0 {
		t.Errorf("Hits = %d, want 0", s.Hits)
	}
	// Промахи считаются только по истёкшим мишеням, не по пустым кликам.
	if s.Misses != 0 {
		t.Errorf("Misses = %d, want 0", s.Misses)
	}
}

func TestGame_OverlappingTargetsAllHit(t *testing.T) {
	g := newTestGame(1)

	// Две мишени в одной точке, одним кликом снимаются обе.
	for i := 0; i < 2; i++ {
		id := g.ECS.NewEntity()
		tg := component.NewTarget(500, 400, 30, 12)
		tg.Radius = 20
		g.ECS.Targets[id] = tg
	}

	g.HandleClick(505, 398)
	g.Update(tick)

	s := g.Session()
	if len(g.ECS.Targets) != 0 {
		t.Errorf("targets on field = %d, want 0", len(g.ECS.Targets))
	}
	if s.Hits != 2 || s.Clicks != 1 {
		t.Errorf("Hits, Clicks = %d, %d, want 2, 1", s.Hits, s.Clicks)
	}
}

func TestGame_Deterministic(t *testing.T) {
	a := newTestGame(42)
	b := newTestGame(42)
	recA := &spawnRecorder{}
	recB := &spawnRecorder{}
	a.EventDispatcher.Subscribe(event.TargetSpawned, recA)
	b.EventDispatcher.Subscribe(event.TargetSpawned, recB)

	run(a, 1000)
	run(b, 1000)

	if len(recA.spawns) != len(recB.spawns) {
		t.Fatalf("spawn counts diverged: %d vs %d", len(recA.spawns), len(recB.spawns))
	}
	for i := range recA.spawns {
		if recA.spawns[i] != recB.spawns[i] {
			t.Errorf("spawn %d diverged: %+v vs %+v", i, recA.spawns[i], recB.spawns[i])
		}
	}
	if a.Session().Misses != b.Session().Misses {
		t.Errorf("misses diverged: %d vs %d", a.Session().Misses, b.Session().Misses)
	}
}

// listenerFunc адаптирует функцию к интерфейсу event.Listener.
type listenerFunc func(event.Event)

func (f listenerFunc) OnEvent(e event.Event) { f(e) }
