package main

import (
	"flag"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/automoto/bushido-blazer/assets"
	"github.com/automoto/bushido-blazer/bot"
	"github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/cuesynth"
	"github.com/automoto/bushido-blazer/fonts"
	"github.com/automoto/bushido-blazer/scenes"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var configPath, arenaPath, autopilot string
	var resolution, volume int
	var seed int64
	var mute, verbose bool

	flag.StringVar(&configPath, "config", "", "YAML tuning override")
	flag.StringVar(&arenaPath, "arena", "", "TMX arena layout (default: embedded dojo)")
	flag.IntVar(&resolution, "res", config.Display.DefaultResolutionIndex, "window size option index")
	flag.IntVar(&volume, "volume", config.Display.DefaultVolumeIndex, "volume step index")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "session RNG seed")
	flag.StringVar(&autopilot, "bot", "", "let the autopilot play: easy, normal, hard")
	flag.BoolVar(&mute, "mute", false, "disable audio")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := config.Init(configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if arenaPath == "" {
		arenaPath = config.Arena.LayoutPath
	}
	arena, err := assets.LoadArena(arenaPath)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	scene, err := scenes.NewArenaScene(scenes.ArenaOptions{Seed: seed, Logger: logger, Arena: arena})
	if err != nil {
		log.Fatalf("Failed to build arena: %v", err)
	}

	var pilot *bot.Autopilot
	if autopilot != "" {
		difficulty, ok := config.ParseBotDifficulty(autopilot)
		if !ok {
			log.Fatalf("Unknown autopilot difficulty %q", autopilot)
		}
		pilot = bot.New(difficulty, rand.New(rand.NewSource(seed)))
	}

	var synth *cuesynth.Synth
	if !mute {
		rate := beep.SampleRate(config.Display.SampleRate)
		synth = cuesynth.New(rate, arena.Inner.Size().X/2, seed)
		synth.Master = config.Display.Volume(volume)
		// Audio is optional: a missing device only costs the cues.
		if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
			logger.Warn("audio disabled", "err", err)
			synth = nil
		} else {
			speaker.Play(synth)
		}
	}

	res := config.Display.Resolution(resolution)
	ebiten.SetWindowSize(res.Width, res.Height)
	ebiten.SetWindowTitle("Bushido Blazer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(scene, synth, pilot)); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
