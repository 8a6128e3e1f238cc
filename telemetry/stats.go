package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a batch of runs.
type Summary struct {
	Runs int

	WavesMean float64
	WavesStd  float64
	WavesP50  float64
	WavesP90  float64

	KillsMean   float64
	SecondsMean float64
	HitRate     float64

	Outcomes map[Outcome]int
}

// Summarize computes the batch statistics.
func Summarize(runs []RunRecord, waves []WaveRecord) Summary {
	s := Summary{Runs: len(runs), Outcomes: make(map[Outcome]int)}
	if len(runs) == 0 {
		return s
	}

	reached := make([]float64, 0, len(runs))
	kills := make([]float64, 0, len(runs))
	seconds := make([]float64, 0, len(runs))
	for _, r := range runs {
		reached = append(reached, float64(r.Waves))
		kills = append(kills, float64(r.Kills))
		seconds = append(seconds, r.Seconds)
		s.Outcomes[r.Outcome]++
	}

	s.WavesMean, s.WavesStd = stat.MeanStdDev(reached, nil)
	sort.Float64s(reached)
	s.WavesP50 = stat.Quantile(0.5, stat.Empirical, reached, nil)
	s.WavesP90 = stat.Quantile(0.9, stat.Empirical, reached, nil)
	s.KillsMean = stat.Mean(kills, nil)
	s.SecondsMean = stat.Mean(seconds, nil)

	var slashes, hits int
	for _, w := range waves {
		slashes += w.Slashes
		hits += w.Hits
	}
	if slashes > 0 {
		s.HitRate = float64(hits) / float64(slashes)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("runs", s.Runs),
		slog.Float64("waves_mean", s.WavesMean),
		slog.Float64("waves_std", s.WavesStd),
		slog.Float64("waves_p50", s.WavesP50),
		slog.Float64("waves_p90", s.WavesP90),
		slog.Float64("kills_mean", s.KillsMean),
		slog.Float64("seconds_mean", s.SecondsMean),
		slog.Float64("hit_rate", s.HitRate),
		slog.Int("game_over", s.Outcomes[OutcomeGameOver]),
		slog.Int("dark_presence", s.Outcomes[OutcomeDarkPresence]),
		slog.Int("timeout", s.Outcomes[OutcomeTimeout]),
	)
}
