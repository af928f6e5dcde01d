// internal/audio/sound_manager.go
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-aim-trainer/internal/event"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager владеет микшером и проигрывает короткие сигналы игры.
// Пока Initialize не вызван (или не удался), все Play-методы молчат.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

var _ event.Listener = (*SoundManager)(nil)

// NewSoundManager создаёт менеджер звука без запуска динамика.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize открывает динамик и подключает к нему микшер.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup останавливает воспроизведение и закрывает динамик.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Close()
	sm.initialized = false
}

// OnEvent проигрывает сигнал, соответствующий игровому событию.
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.TargetHit:
		sm.PlayHit()
	case event.TargetMissed:
		sm.PlayMiss()
	case event.SessionEnded:
		sm.PlayGameOver()
	}
}

// PlayHit — звон попадания.
func (sm *SoundManager) PlayHit() {
	sm.play(HitSound(sampleRate))
}

// PlayMiss — сигнал потерянной мишени.
func (sm *SoundManager) PlayMiss() {
	sm.play(MissSound(sampleRate))
}

// PlayGameOver — финальный аккорд сессии.
func (sm *SoundManager) PlayGameOver() {
	sm.play(GameOverSound(sampleRate))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// Микшер читается горутиной динамика, менять его можно только под его замком.
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
