package sim

import (
	"fmt"

	"github.com/pthm-cable/waterflow/config"
	"github.com/pthm-cable/waterflow/field"
)

// Run loop constants. The simulated time always traverses a fixed window
// regardless of step count, so more steps means finer temporal resolution,
// not more motion. Dissipation blends each step toward the frozen initial
// dye, bounding drift over long runs.
const (
	timeWindow       = 6.0
	dyeRetention     = 0.995
	baseContribution = 1 - dyeRetention
)

// Runner drives one simulation run. It exclusively owns the working dye
// buffer; the base dye is frozen at construction and serves as the
// dissipation target for every step. Frames come out strictly in step order.
type Runner struct {
	cfg  config.SimulationConfig
	base *field.Field // frozen initial dye
	dye  *field.Field // working buffer, overwritten once per step
	step int
}

// NewRunner validates the configuration and builds the initial dye field.
// Validation happens here, before any frame can be produced.
func NewRunner(cfg *config.Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := NewDye(cfg.Simulation.Resolution, cfg.Simulation.Seed, cfg.Dye)
	return &Runner{
		cfg:  cfg.Simulation,
		base: base,
		dye:  base.Clone(),
	}, nil
}

// Steps returns the total number of frames the run will produce.
func (r *Runner) Steps() int {
	return r.cfg.Steps
}

// Done reports whether the run has produced all its frames.
func (r *Runner) Done() bool {
	return r.step >= r.cfg.Steps
}

// Next advances the simulation one step and returns the resulting frame, or
// (nil, false) once the configured step count is reached. Each step recomputes
// the velocity field from scratch, advects the dye through it and dissipates
// toward the base pattern; step i+1 always reads the buffer written by step i.
func (r *Runner) Next() (*Frame, bool) {
	if r.Done() {
		return nil, false
	}

	t := float64(r.step) / float64(r.cfg.Steps) * timeWindow
	vel := Velocity(r.cfg.Resolution, t, r.cfg.Strength)
	r.dye = Advect(r.dye, vel, r.cfg.DT)
	dissipate(r.dye, r.base)

	frame := quantizeFrame(r.step, r.dye)
	r.step++
	return frame, true
}

// Run drives the loop to completion, handing each frame to emit in step
// order. An emit error stops the run and is returned wrapped; the core itself
// has no failure modes on a valid configuration.
func (r *Runner) Run(emit func(*Frame) error) error {
	for {
		frame, ok := r.Next()
		if !ok {
			return nil
		}
		if err := emit(frame); err != nil {
			return fmt.Errorf("emitting frame %d: %w", frame.Index, err)
		}
	}
}

// dissipate blends the working dye toward the frozen base field in place.
func dissipate(dye, base *field.Field) {
	for i := range dye.Data {
		dye.Data[i] = dyeRetention*dye.Data[i] + baseContribution*base.Data[i]
	}
}
