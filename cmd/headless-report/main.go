// Command headless-report plays seeded autopilot runs without a window and
// reports how far they get.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"

	"github.com/automoto/bushido-blazer/assets"
	"github.com/automoto/bushido-blazer/bot"
	"github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/leveldata"
	"github.com/automoto/bushido-blazer/scenes"
	"github.com/automoto/bushido-blazer/telemetry"
)

const tickDT = 1.0 / 60.0

type options struct {
	runs       int
	ticks      int
	seedBase   int64
	seedStep   int64
	difficulty config.BotDifficulty
	arena      *leveldata.Arena
}

func main() {
	var runs, ticks int
	var seedBase, seedStep int64
	var difficultyName, configPath, arenaPath, outDir string
	var verbose bool

	flag.IntVar(&runs, "runs", 10, "number of headless runs")
	flag.IntVar(&ticks, "ticks", 60*60*5, "tick limit per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&difficultyName, "difficulty", "normal", "autopilot difficulty: easy, normal, hard")
	flag.StringVar(&configPath, "config", "", "YAML tuning override")
	flag.StringVar(&arenaPath, "arena", "", "TMX arena layout (default: embedded dojo)")
	flag.StringVar(&outDir, "out", "", "directory for waves.csv and runs.csv")
	flag.BoolVar(&verbose, "v", false, "log every wave")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if runs <= 0 || ticks <= 0 {
		logger.Error("-runs and -ticks must be > 0")
		os.Exit(2)
	}
	difficulty, ok := config.ParseBotDifficulty(difficultyName)
	if !ok {
		logger.Error("unknown difficulty", "difficulty", difficultyName)
		os.Exit(2)
	}
	if err := config.Init(configPath); err != nil {
		logger.Error("config", "err", err)
		os.Exit(1)
	}
	if arenaPath == "" {
		arenaPath = config.Arena.LayoutPath
	}
	arena, err := assets.LoadArena(arenaPath)
	if err != nil {
		logger.Error("arena", "err", err)
		os.Exit(1)
	}

	out, err := telemetry.NewOutputManager(outDir)
	if err != nil {
		logger.Error("output", "err", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := out.WriteConfig(); err != nil {
		logger.Error("output", "err", err)
		os.Exit(1)
	}

	opts := options{
		runs:       runs,
		ticks:      ticks,
		seedBase:   seedBase,
		seedStep:   seedStep,
		difficulty: difficulty,
		arena:      arena,
	}

	fmt.Printf("=== Headless Arena Report ===\n")
	fmt.Printf("arena=%s difficulty=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n",
		arena.Name, difficulty, runs, ticks, seedBase, seedStep)

	summary, err := runBatch(opts, logger, out, os.Stdout)
	if err != nil {
		logger.Error("report", "err", err)
		os.Exit(1)
	}
	printSummary(os.Stdout, summary)
	if dir := out.Dir(); dir != "" {
		logger.Info("wrote report", "dir", dir)
	}
}

// runBatch plays every run, prints one line each and returns the summary.
func runBatch(opts options, logger *slog.Logger, out *telemetry.OutputManager, w io.Writer) (telemetry.Summary, error) {
	var runs []telemetry.RunRecord
	var waves []telemetry.WaveRecord

	for i := 0; i < opts.runs; i++ {
		seed := opts.seedBase + int64(i)*opts.seedStep
		run, runWaves, err := playRun(seed, opts, logger)
		if err != nil {
			return telemetry.Summary{}, err
		}
		for _, wave := range runWaves {
			logger.Debug("wave", "wave", wave)
		}
		if err := out.WriteRun(run); err != nil {
			return telemetry.Summary{}, err
		}
		if err := out.WriteWaves(runWaves); err != nil {
			return telemetry.Summary{}, err
		}

		fmt.Fprintf(w, "run %2d seed=%-6d outcome=%-13s waves=%-3d kills=%-4d hits_taken=%-2d time=%.1fs\n",
			i+1, seed, run.Outcome, run.Waves, run.Kills, run.HitsTaken, run.Seconds)

		runs = append(runs, run)
		waves = append(waves, runWaves...)
	}
	return telemetry.Summarize(runs, waves), nil
}

func playRun(seed int64, opts options, logger *slog.Logger) (telemetry.RunRecord, []telemetry.WaveRecord, error) {
	scene, err := scenes.NewArenaScene(scenes.ArenaOptions{
		Seed:   seed,
		Logger: logger.With("seed", seed),
		Arena:  opts.arena,
	})
	if err != nil {
		return telemetry.RunRecord{}, nil, fmt.Errorf("seed %d: %w", seed, err)
	}

	collector := telemetry.NewCollector(seed, opts.difficulty.String(), tickDT)
	pilot := bot.New(opts.difficulty, rand.New(rand.NewSource(seed)))
	_, end := bot.Run(scene, pilot, opts.ticks, tickDT, collector.Observe)

	run, waves := collector.Finish(end)
	return run, waves, nil
}

func printSummary(w io.Writer, s telemetry.Summary) {
	fmt.Fprintf(w, "\n=== Aggregate ===\n")
	fmt.Fprintf(w, "runs=%d\n", s.Runs)
	fmt.Fprintf(w, "waves: mean=%.2f std=%.2f p50=%.0f p90=%.0f\n", s.WavesMean, s.WavesStd, s.WavesP50, s.WavesP90)
	fmt.Fprintf(w, "kills: mean=%.2f\n", s.KillsMean)
	fmt.Fprintf(w, "survival: mean=%.1fs\n", s.SecondsMean)
	fmt.Fprintf(w, "hit rate: %.1f%%\n", s.HitRate*100)
	fmt.Fprintf(w, "outcomes: game_over=%d dark_presence=%d timeout=%d\n",
		s.Outcomes[telemetry.OutcomeGameOver], s.Outcomes[telemetry.OutcomeDarkPresence], s.Outcomes[telemetry.OutcomeTimeout])
}
