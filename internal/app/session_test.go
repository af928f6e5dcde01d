// internal/app/session_test.go
package app

import "testing"

func TestNewSession(t *testing.T) {
	s := NewSession(3)

	if s.ID == "" {
		t.Error("session ID should not be empty")
	}
	if s.Lives != 3 {
		t.Errorf("Lives = %d, want 3", s.Lives)
	}
	if s.Hits != 0 || s.Clicks != 0 || s.Misses != 0 || s.Elapsed != 0 {
		t.Errorf("new session counters = %+v, want zeroes", s)
	}
	if s.Over() {
		t.Error("new session should not be over")
	}
}

func TestSession_Accuracy(t *testing.T) {
	cases := []struct {
		name   string
		hits   int
		clicks int
		want   float64
	}{
		{"no clicks", 0, 0, 0},
		{"all misses", 0, 10, 0},
		{"half", 5, 10, 50},
		{"perfect", 10, 10, 100},
		{"quarter", 1, 4, 25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(3)
			s.Hits = tc.hits
			s.Clicks = tc.clicks
			got := s.Accuracy()
			if got != tc.want {
				t.Errorf("Accuracy() = %g, want %g", got, tc.want)
			}
			if tc.clicks >= tc.hits && (got < 0 || got > 100) {
				t.Errorf("Accuracy() = %g, out of [0, 100]", got)
			}
		})
	}
}

func TestSession_Speed(t *testing.T) {
	s := NewSession(3)

	if got := s.Speed(); got != 0 {
		t.Errorf("Speed() before clock start = %g, want 0", got)
	}

	s.Advance(10)
	s.Hits = 25
	if got := s.Speed(); got != 2.5 {
		t.Errorf("Speed() = %g, want 2.5", got)
	}
}

func TestSession_LivesLeft(t *testing.T) {
	s := NewSession(3)

	if got := s.LivesLeft(); got != 3 {
		t.Errorf("LivesLeft() = %d, want 3", got)
	}
	s.RecordMiss()
	s.RecordMiss()
	if got := s.LivesLeft(); got != 1 {
		t.Errorf("LivesLeft() = %d, want 1", got)
	}
	s.RecordMiss()
	s.RecordMiss() // лишний промах не уводит в минус
	if got := s.LivesLeft(); got != 0 {
		t.Errorf("LivesLeft() = %d, want 0", got)
	}
}

func TestSession_Over(t *testing.T) {
	s := NewSession(2)

	s.RecordMiss()
	if s.Over() {
		t.Error("session over after 1 of 2 misses")
	}
	s.RecordMiss()
	if !s.Over() {
		t.Error("session not over after 2 of 2 misses")
	}
}

func TestSession_Advance(t *testing.T) {
	s := NewSession(3)

	for i := 0; i < 60; i++ {
		s.Advance(1.0 / 60.0)
	}
	if s.Elapsed < 0.99 || s.Elapsed > 1.01 {
		t.Errorf("Elapsed = %g, want ~1.0", s.Elapsed)
	}
}
