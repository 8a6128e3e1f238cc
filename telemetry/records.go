// Package telemetry records per-wave and per-run statistics from headless
// sessions and writes them as CSV.
package telemetry

import (
	"log/slog"
)

// WaveRecord holds what happened during one wave of one run.
type WaveRecord struct {
	Seed      int64   `csv:"seed"`
	Wave      int     `csv:"wave"`
	StartTick int     `csv:"start_tick"`
	EndTick   int     `csv:"end_tick"`
	Seconds   float64 `csv:"seconds"`

	Slashes   int `csv:"slashes"`
	Unready   int `csv:"unready"`
	Hits      int `csv:"hits"`
	Kills     int `csv:"kills"`
	Sparks    int `csv:"sparks"`
	HitsTaken int `csv:"hits_taken"`

	// Combo is the ladder step when the wave ended.
	Combo    string `csv:"combo"`
	Expanded bool   `csv:"expanded"`
	Cleared  bool   `csv:"cleared"`
}

// HitRate is hits per slash, 0 with no slashes.
func (w WaveRecord) HitRate() float64 {
	if w.Slashes == 0 {
		return 0
	}
	return float64(w.Hits) / float64(w.Slashes)
}

// LogValue implements slog.LogValuer for structured logging.
func (w WaveRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("seed", w.Seed),
		slog.Int("wave", w.Wave),
		slog.Float64("seconds", w.Seconds),
		slog.Int("slashes", w.Slashes),
		slog.Int("hits", w.Hits),
		slog.Int("kills", w.Kills),
		slog.Int("hits_taken", w.HitsTaken),
		slog.String("combo", w.Combo),
		slog.Bool("cleared", w.Cleared),
	)
}

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeGameOver     Outcome = "game_over"
	OutcomeDarkPresence Outcome = "dark_presence"
	OutcomeTimeout      Outcome = "timeout"
)

// RunRecord summarizes one run.
type RunRecord struct {
	Seed       int64   `csv:"seed"`
	Difficulty string  `csv:"difficulty"`
	Outcome    Outcome `csv:"outcome"`
	Ticks      int     `csv:"ticks"`
	Seconds    float64 `csv:"seconds"`
	Waves      int     `csv:"waves"`
	Kills      int     `csv:"kills"`
	Slashes    int     `csv:"slashes"`
	HitsTaken  int     `csv:"hits_taken"`
	Expanded   bool    `csv:"expanded"`
}

// LogValue implements slog.LogValuer for structured logging.
func (r RunRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("seed", r.Seed),
		slog.String("difficulty", r.Difficulty),
		slog.String("outcome", string(r.Outcome)),
		slog.Float64("seconds", r.Seconds),
		slog.Int("waves", r.Waves),
		slog.Int("kills", r.Kills),
		slog.Int("hits_taken", r.HitsTaken),
	)
}
