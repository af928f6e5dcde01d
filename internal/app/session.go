// internal/app/session.go
package app

import "github.com/google/uuid"

// Session — счётчики одной игровой сессии: время, клики, попадания, промахи.
type Session struct {
	ID      string
	Elapsed float64
	Hits    int
	Clicks  int
	Misses  int
	Lives   int
}

// NewSession создаёт сессию с полным запасом жизней и свежим id.
func NewSession(lives int) *Session {
	return &Session{
		ID:    uuid.New().String(),
		Lives: lives,
	}
}

// Advance двигает часы сессии.
func (s *Session) Advance(deltaTime float64) {
	s.Elapsed += deltaTime
}

func (s *Session) RecordClick() { s.Clicks++ }

func (s *Session) RecordHit() { s.Hits++ }

func (s *Session) RecordMiss() { s.Misses++ }

// Accuracy — точность в процентах: попадания к кликам. Ноль кликов даёт ноль.
func (s *Session) Accuracy() float64 {
	if s.Clicks == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Clicks) * 100
}

// Speed — попаданий в секунду за всю сессию.
func (s *Session) Speed() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Hits) / s.Elapsed
}

// LivesLeft — сколько промахов ещё допустимо.
func (s *Session) LivesLeft() int {
	left := s.Lives - s.Misses
	if left < 0 {
		return 0
	}
	return left
}

// Over — жизни исчерпаны.
func (s *Session) Over() bool {
	return s.Misses >= s.Lives
}
