// Package cuesynth renders the simulation's sound cues as short synthesized
// voices mixed into a single beep stream.
package cuesynth

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Note is one segment of a voice. Glide sweeps the pitch linearly to
// Freq*Glide over the note.
type Note struct {
	Freq     float64
	Glide    float64
	Duration time.Duration
	Wave     Wave
}

// Voice describes how one cue sounds.
type Voice struct {
	Notes   []Note
	Attack  time.Duration
	Release time.Duration
	Volume  float64
}

// Duration is the length of the whole voice at unit speed.
func (v Voice) Duration() time.Duration {
	var d time.Duration
	for _, n := range v.Notes {
		d += n.Duration
	}
	return d
}

type oscillator struct {
	note     Note
	rng      *rand.Rand
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
}

func newOscillator(n Note, rate beep.SampleRate, rng *rand.Rand) *oscillator {
	return &oscillator{note: n, rng: rng, rate: rate, total: rate.N(n.Duration)}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.position >= o.total {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.total {
			return i, true
		}

		var val float64
		switch o.note.Wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		freq := o.note.Freq
		if o.note.Glide > 0 && o.total > 1 {
			t := float64(o.position) / float64(o.total-1)
			freq *= 1 + (o.note.Glide-1)*t
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release.
type envelope struct {
	s        beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 {
			if remaining := e.total - e.position; remaining < e.release {
				vol = math.Max(0, float64(remaining)/float64(e.release))
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Render builds the streamer for v at rate.
func (v Voice) Render(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(v.Notes))
	for _, n := range v.Notes {
		parts = append(parts, newOscillator(n, rate, rng))
	}
	shaped := &envelope{
		s:       beep.Seq(parts...),
		attack:  rate.N(v.Attack),
		release: rate.N(v.Release),
		total:   rate.N(v.Duration()),
	}
	return volume(shaped, v.Volume)
}
