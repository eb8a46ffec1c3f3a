// Package motion converts discrete jump commands into timed, linear movement
// along the travel axis.
package motion

import (
	"errors"
	"fmt"
)

// Jump step sizes accepted by the game.
const (
	StepOne = 1
	StepTwo = 2
)

// Errors returned by New and Begin.
var (
	ErrNoDuration  = errors.New("motion: no duration configured for step")
	ErrBadTileSize = errors.New("motion: tile size must be positive")
	ErrBadStep     = errors.New("motion: step must be 1 or 2")
)

// ValidStep reports whether step is a jump size the game supports.
func ValidStep(step int) bool {
	return step == StepOne || step == StepTwo
}

// Config holds the parameters of a jump.
type Config struct {
	// TileSize is the distance between two neighboring tiles.
	TileSize float64

	// Durations maps a step size to the seconds a jump of that size takes.
	Durations map[int]float64
}

// Duration returns the configured duration for a step.
func (c Config) Duration(step int) (float64, error) {
	if !ValidStep(step) {
		return 0, fmt.Errorf("%w (got %d)", ErrBadStep, step)
	}
	d, ok := c.Durations[step]
	if !ok || d <= 0 {
		return 0, fmt.Errorf("%w %d", ErrNoDuration, step)
	}
	return d, nil
}

// Jump is a single-axis jump state machine driven by ticks.
//
// A jump started with Begin moves at constant speed for its configured
// duration, then snaps exactly onto the target tile and reports completion
// once. Only one jump is in flight at a time and a started jump cannot be
// cancelled.
type Jump struct {
	cfg Config

	inFlight bool
	step     int
	elapsed  float64
	duration float64
	speed    float64
	position float64
	target   float64
	index    int

	onMove     func(position float64)
	onComplete func(index int)
}

// Option configures a Jump.
type Option func(*Jump)

// WithMoveHandler registers a callback invoked after every moving tick.
func WithMoveHandler(fn func(position float64)) Option {
	return func(j *Jump) {
		j.onMove = fn
	}
}

// WithCompleteHandler registers a callback invoked once per finished jump
// with the newly committed tile index.
func WithCompleteHandler(fn func(index int)) Option {
	return func(j *Jump) {
		j.onComplete = fn
	}
}

// New creates a jump controller. Both step sizes must have a duration and
// no other step may be configured.
func New(cfg Config, opts ...Option) (*Jump, error) {
	if cfg.TileSize <= 0 {
		return nil, ErrBadTileSize
	}
	for step := range cfg.Durations {
		if !ValidStep(step) {
			return nil, fmt.Errorf("%w (got %d)", ErrBadStep, step)
		}
	}
	for _, step := range []int{StepOne, StepTwo} {
		if _, err := cfg.Duration(step); err != nil {
			return nil, err
		}
	}

	j := &Jump{cfg: cfg}
	for _, opt := range opts {
		opt(j)
	}
	return j, nil
}

// Begin starts a jump of the given step size.
// It returns false without changing anything while another jump is in flight.
func (j *Jump) Begin(step int) (bool, error) {
	if j.inFlight {
		return false, nil
	}

	duration, err := j.cfg.Duration(step)
	if err != nil {
		return false, err
	}

	distance := float64(step) * j.cfg.TileSize

	j.inFlight = true
	j.step = step
	j.elapsed = 0
	j.duration = duration
	j.speed = distance / duration
	j.target = j.position + distance

	return true, nil
}

// Tick advances the jump by dt seconds.
// The completion handler runs synchronously in the tick that reaches the duration.
func (j *Jump) Tick(dt float64) {
	if !j.inFlight {
		return
	}

	j.elapsed += dt
	if j.elapsed >= j.duration {
		j.position = j.target
		j.index += j.step
		j.inFlight = false
		j.step = 0
		if j.onMove != nil {
			j.onMove(j.position)
		}
		if j.onComplete != nil {
			j.onComplete(j.index)
		}
		return
	}

	j.position += j.speed * dt
	if j.onMove != nil {
		j.onMove(j.position)
	}
}

// Finish lands the jump in flight immediately, snapping to its target and
// calling the handlers exactly as the completing Tick would.
// It returns false when no jump is in flight.
func (j *Jump) Finish() bool {
	if !j.inFlight {
		return false
	}
	j.elapsed = j.duration
	j.Tick(0)
	return true
}

// Reset puts the jumper back on tile 0 and drops any in-flight jump without
// reporting it. Call Finish first when the landing must be observed.
func (j *Jump) Reset() {
	j.inFlight = false
	j.step = 0
	j.elapsed = 0
	j.duration = 0
	j.speed = 0
	j.position = 0
	j.target = 0
	j.index = 0
}

// InFlight reports whether a jump is in progress.
func (j *Jump) InFlight() bool {
	return j.inFlight
}

// Index returns the last committed tile index.
func (j *Jump) Index() int {
	return j.index
}

// Position returns the current offset along the travel axis.
func (j *Jump) Position() float64 {
	return j.position
}

// Step returns the size of the jump in flight, or 0.
func (j *Jump) Step() int {
	return j.step
}

// Progress returns how far the current jump is, from 0 to 1.
// It is 0 when no jump is in flight.
func (j *Jump) Progress() float64 {
	if !j.inFlight || j.duration <= 0 {
		return 0
	}
	p := j.elapsed / j.duration
	if p > 1 {
		p = 1
	}
	return p
}

// TileSize returns the configured tile size.
func (j *Jump) TileSize() float64 {
	return j.cfg.TileSize
}
