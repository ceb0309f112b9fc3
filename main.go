package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/waterflow/config"
	"github.com/pthm-cable/waterflow/encode"
	"github.com/pthm-cable/waterflow/render"
	"github.com/pthm-cable/waterflow/sim"
	"github.com/pthm-cable/waterflow/telemetry"
)

func main() {
	// CLI flags; zero values mean "use config"
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without the live view window")
	resolution := flag.Int("resolution", 0, "Grid resolution override")
	steps := flag.Int("steps", 0, "Frame count override")
	dt := flag.Float64("dt", 0, "Advection time step override")
	strength := flag.Float64("strength", 0, "Velocity strength override")
	seed := flag.Int64("seed", 0, "Dye noise seed override")
	outputDir := flag.String("output-dir", "", "Output directory override")
	gifName := flag.String("gif", "", "Animated GIF filename override")
	fps := flag.Int("fps", 0, "GIF playback FPS override")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	applyOverrides(cfg, *resolution, *steps, *dt, *strength, *seed, *outputDir, *gifName, *fps)

	// Validation happens in NewRunner, before any frame is produced.
	runner, err := sim.NewRunner(cfg)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	sinks, err := newSinks(cfg)
	if err != nil {
		slog.Error("failed to set up output", "error", err)
		os.Exit(1)
	}

	slog.Info("starting run",
		"resolution", cfg.Simulation.Resolution,
		"steps", cfg.Simulation.Steps,
		"dt", cfg.Simulation.DT,
		"strength", cfg.Simulation.Strength,
		"seed", cfg.Simulation.Seed,
		"headless", *headless,
	)

	if *headless {
		runHeadless(runner, sinks)
	} else {
		runLive(cfg, runner, sinks)
	}

	sinks.finish()
}

// applyOverrides copies any CLI-provided values over the loaded config.
func applyOverrides(cfg *config.Config, resolution, steps int, dt, strength float64, seed int64, outputDir, gifName string, fps int) {
	if resolution != 0 {
		cfg.Simulation.Resolution = resolution
	}
	if steps != 0 {
		cfg.Simulation.Steps = steps
	}
	if dt != 0 {
		cfg.Simulation.DT = dt
	}
	if strength != 0 {
		cfg.Simulation.Strength = strength
	}
	if seed != 0 {
		cfg.Simulation.Seed = seed
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if gifName != "" {
		cfg.Output.GIFName = gifName
	}
	if fps != 0 {
		cfg.Output.FPS = fps
	}
}

// sinks fans completed frames out to the encoding and telemetry consumers.
// A failure in one sink is logged and disables that sink only; frames already
// accepted by the others are unaffected.
type sinks struct {
	anim *encode.Animation
	out  *telemetry.OutputManager
}

func newSinks(cfg *config.Config) (*sinks, error) {
	s := &sinks{}

	if cfg.Output.GIFName != "" {
		path := cfg.Output.GIFName
		if cfg.Output.Dir != "" {
			path = filepath.Join(cfg.Output.Dir, cfg.Output.GIFName)
		}
		s.anim = encode.NewAnimation(path, cfg.Output.FPS)
	}

	out, err := telemetry.NewOutputManager(cfg.Output.Dir)
	if err != nil {
		return nil, err
	}
	s.out = out
	if err := s.out.WriteConfig(cfg); err != nil {
		slog.Error("telemetry sink failed, disabling", "error", err)
		s.out = nil
	}
	return s, nil
}

// accept hands one completed frame to every active sink, in emission order.
func (s *sinks) accept(frame *sim.Frame) {
	if s.anim != nil {
		s.anim.Append(frame)
	}
	if s.out != nil {
		if err := s.out.WriteFrameStats(telemetry.Collect(frame)); err != nil {
			slog.Error("telemetry sink failed, disabling", "error", err)
			s.out.Close()
			s.out = nil
		}
	}
}

// finish flushes the sinks after the last frame.
func (s *sinks) finish() {
	if s.anim != nil && s.anim.FrameCount() > 0 {
		if err := s.anim.Close(); err != nil {
			slog.Error("encoding sink failed", "error", err)
		} else {
			slog.Info("saved animation", "path", s.anim.Path(), "frames", s.anim.FrameCount())
		}
	}
	if s.out != nil {
		if err := s.out.Close(); err != nil {
			slog.Error("telemetry sink failed", "error", err)
		}
	}
}

// runHeadless streams frames through a buffered channel to the sinks. The
// producer is strictly sequential; the channel preserves emission order.
func runHeadless(runner *sim.Runner, s *sinks) {
	frames := make(chan *sim.Frame, 16)
	go func() {
		defer close(frames)
		for {
			frame, ok := runner.Next()
			if !ok {
				return
			}
			frames <- frame
		}
	}()

	for frame := range frames {
		s.accept(frame)
		if (frame.Index+1)&frame.Index == 0 {
			slog.Info("frame", "index", frame.Index+1, "of", runner.Steps())
		}
	}
	slog.Info("run complete", "frames", runner.Steps())
}

// runLive advances one simulation step per display frame and keeps the window
// open on the final frame until the user closes it.
func runLive(cfg *config.Config, runner *sim.Runner, s *sinks) {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Procedural Water Flow")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	view := render.NewLiveView(cfg.Simulation.Resolution, cfg.Screen.Width, cfg.Screen.Height)
	defer view.Unload()

	for !rl.WindowShouldClose() {
		if frame, ok := runner.Next(); ok {
			view.Push(frame)
			s.accept(frame)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		view.Draw()
		if runner.Done() {
			rl.DrawText("done - close window to exit", 10, 10, 16, rl.RayWhite)
		}
		rl.EndDrawing()
	}
}
