package cuesynth

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/bushido-blazer/components"
	"github.com/automoto/bushido-blazer/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const resampleQuality = 3

// DefaultVoices maps each cue to its voice.
func DefaultVoices() map[config.SoundID]Voice {
	return map[config.SoundID]Voice{
		config.SoundSlash: {
			Notes:   []Note{{Wave: WaveNoise, Duration: 120 * time.Millisecond}},
			Attack:  5 * time.Millisecond,
			Release: 90 * time.Millisecond,
			Volume:  0.5,
		},
		config.SoundUnready: {
			Notes:   []Note{{Freq: 110, Wave: WaveSquare, Duration: 60 * time.Millisecond}},
			Release: 30 * time.Millisecond,
			Volume:  0.3,
		},
		config.SoundHit: {
			Notes: []Note{
				{Freq: 660, Glide: 0.5, Wave: WaveSaw, Duration: 70 * time.Millisecond},
				{Wave: WaveNoise, Duration: 50 * time.Millisecond},
			},
			Attack:  2 * time.Millisecond,
			Release: 40 * time.Millisecond,
			Volume:  0.6,
		},
		config.SoundKill: {
			Notes: []Note{
				{Freq: 220, Glide: 0.25, Wave: WaveSquare, Duration: 180 * time.Millisecond},
			},
			Release: 120 * time.Millisecond,
			Volume:  0.6,
		},
		config.SoundSpark: {
			Notes:   []Note{{Freq: 1760, Glide: 0.7, Wave: WaveSaw, Duration: 90 * time.Millisecond}},
			Release: 60 * time.Millisecond,
			Volume:  0.4,
		},
		config.SoundOuch: {
			Notes: []Note{
				{Freq: 330, Wave: WaveSquare, Duration: 80 * time.Millisecond},
				{Freq: 247, Wave: WaveSquare, Duration: 120 * time.Millisecond},
			},
			Release: 60 * time.Millisecond,
			Volume:  0.5,
		},
		config.SoundAttack: {
			Notes: []Note{
				{Freq: 55, Glide: 0.5, Wave: WaveSaw, Duration: 400 * time.Millisecond},
			},
			Attack:  40 * time.Millisecond,
			Release: 200 * time.Millisecond,
			Volume:  0.8,
		},
	}
}

// Synth mixes cue voices into one stream. It is a beep.Streamer and safe to
// Play into while the speaker goroutine streams from it.
type Synth struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	rate   beep.SampleRate
	rng    *rand.Rand
	voices map[config.SoundID]Voice

	// HalfWidth is the world distance from center that pans fully to one side.
	HalfWidth float64
	Master    float64
}

func New(rate beep.SampleRate, halfWidth float64, seed int64) *Synth {
	return &Synth{
		mixer:     &beep.Mixer{},
		rate:      rate,
		rng:       rand.New(rand.NewSource(seed)),
		voices:    DefaultVoices(),
		HalfWidth: halfWidth,
		Master:    1,
	}
}

// Play starts the voice for cue. Cues without a voice are ignored and
// reported as false.
func (s *Synth) Play(cue components.SoundCue) bool {
	v, ok := s.voices[cue.ID]
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var st beep.Streamer = v.Render(s.rate, s.rng)
	if cue.Speed > 0 && cue.Speed != 1 {
		st = beep.ResampleRatio(resampleQuality, cue.Speed, st)
	}
	st = &effects.Pan{Streamer: st, Pan: s.pan(cue.Position.X)}
	s.mixer.Add(volume(st, s.Master))
	return true
}

// PlayAll plays every cue in order.
func (s *Synth) PlayAll(cues []components.SoundCue) {
	for _, cue := range cues {
		s.Play(cue)
	}
}

func (s *Synth) pan(x float64) float64 {
	if s.HalfWidth <= 0 {
		return 0
	}
	return math.Max(-1, math.Min(1, x/s.HalfWidth))
}

// Active is the number of voices still sounding.
func (s *Synth) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mixer.Len()
}

func (s *Synth) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mixer.Clear()
}

func (s *Synth) Stream(samples [][2]float64) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mixer.Stream(samples)
}

func (s *Synth) Err() error { return nil }
