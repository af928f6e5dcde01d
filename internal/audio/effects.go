// internal/audio/effects.go
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType — форма волны осциллятора
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator генерирует сырую волну заданной формы и длительности.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator создаёт осциллятор на duration звука.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // держим фазу в [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope накладывает атаку и затухание на поток.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope оборачивает поток в огибающую attack/release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume задаёт громкость потока. math.Log2(0) — минус бесконечность,
// поэтому нулевая громкость выражается флагом Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// HitSound — короткий высокий звон попадания.
func HitSound(rate beep.SampleRate) beep.Streamer {
	const dur = 90 * time.Millisecond
	osc := NewOscillator(880.0, dur, WaveSine, rate)
	shaped := NewEnvelope(osc, dur, 5*time.Millisecond, 60*time.Millisecond, rate)
	return newVolume(shaped, 0.5)
}

// MissSound — низкий скрежет истёкшей мишени.
func MissSound(rate beep.SampleRate) beep.Streamer {
	const dur = 150 * time.Millisecond
	osc := NewOscillator(160.0, dur, WaveSaw, rate)
	shaped := NewEnvelope(osc, dur, 5*time.Millisecond, 100*time.Millisecond, rate)
	return newVolume(shaped, 0.4)
}

// GameOverSound — две ноты вниз в конце сессии.
func GameOverSound(rate beep.SampleRate) beep.Streamer {
	const note1 = 140 * time.Millisecond
	const note2 = 220 * time.Millisecond

	n1 := NewOscillator(440.0, note1, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, note1, 5*time.Millisecond, 40*time.Millisecond, rate)

	n2 := NewOscillator(329.63, note2, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, note2, 5*time.Millisecond, 120*time.Millisecond, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.5)
}
