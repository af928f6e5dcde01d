// internal/state/state.go
package state

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"go-aim-trainer/internal/audio"
	"go-aim-trainer/internal/config"
	"go-aim-trainer/internal/utils"
	"go-aim-trainer/pkg/render"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Deps — общие зависимости состояний, собираются один раз при запуске.
type Deps struct {
	Cfg     config.Config
	Fonts   *render.FontSet
	Palette render.Palette
	Rng     *utils.PRNGService
	Sound   *audio.SoundManager
	Log     *log.Logger
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	quit    bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// RequestQuit помечает, что приложение пора закрывать.
func (sm *StateMachine) RequestQuit() {
	sm.quit = true
}

// QuitRequested сообщает, запрошен ли выход из приложения.
func (sm *StateMachine) QuitRequested() bool {
	return sm.quit
}
