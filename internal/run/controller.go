// Package run implements the lifecycle of a lane jumper run: path
// generation on start, jump commands while playing and landing validation
// when a jump completes.
//
// The controller is single-threaded and driven by its host: commands and
// ticks must come from the same goroutine. Listeners are called
// synchronously from within those calls.
package run

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/lane-jumper/internal/lane"
	"github.com/vovakirdan/lane-jumper/internal/motion"
)

// Default configuration values.
const (
	DefaultRoadLength = 50
	DefaultTileSize   = 40.0
)

// NoGaps is an EmptyChance that generates roads without gaps.
const NoGaps = -1.0

// Configuration errors.
var (
	ErrRoadTooShort    = errors.New("run: road length must be at least 2")
	ErrNoSource        = errors.New("run: random source is required")
	ErrUnsupportedStep = errors.New("run: unsupported step")
)

// Config holds everything a controller needs to play runs.
type Config struct {
	RoadLength   int
	TileSize     float64
	Durations    map[int]float64 // Jump duration in seconds per step size
	FinishPolicy FinishPolicy

	// EmptyChance is the gap probability of every tile that is not forced
	// solid. Zero selects lane.DefaultEmptyChance; use NoGaps for a road
	// without gaps.
	EmptyChance float64
}

// DefaultConfig returns the configuration of the classic game.
func DefaultConfig() Config {
	return Config{
		RoadLength: DefaultRoadLength,
		TileSize:   DefaultTileSize,
		Durations: map[int]float64{
			motion.StepOne: 0.25,
			motion.StepTwo: 0.4,
		},
		EmptyChance:  lane.DefaultEmptyChance,
		FinishPolicy: FinishPolicyReset,
	}
}

// Controller owns the run state machine, the generated path and the jump.
type Controller struct {
	cfg       Config
	src       lane.Source
	generator lane.Generator
	jump      *motion.Jump

	state     State
	path      lane.Path
	steps     int
	result    Result
	listeners []func(Event)
}

// New creates a controller in the Idle state.
// A missing jump duration or a road shorter than two tiles is rejected here,
// so a misconfigured game fails before the first run starts.
func New(cfg Config, src lane.Source) (*Controller, error) {
	if cfg.RoadLength < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrRoadTooShort, cfg.RoadLength)
	}
	if src == nil {
		return nil, ErrNoSource
	}
	policy, err := ParseFinishPolicy(string(cfg.FinishPolicy))
	if err != nil {
		return nil, err
	}
	cfg.FinishPolicy = policy
	if cfg.EmptyChance == 0 {
		cfg.EmptyChance = lane.DefaultEmptyChance
	}

	c := &Controller{
		cfg:       cfg,
		src:       src,
		generator: lane.NewGenerator(cfg.EmptyChance),
		state:     StateIdle,
	}

	jump, err := motion.New(
		motion.Config{TileSize: cfg.TileSize, Durations: cfg.Durations},
		motion.WithMoveHandler(c.onMove),
		motion.WithCompleteHandler(c.onMoveComplete),
	)
	if err != nil {
		return nil, fmt.Errorf("run: invalid motion config: %w", err)
	}
	c.jump = jump

	return c, nil
}

// Subscribe registers a listener for controller events.
func (c *Controller) Subscribe(fn func(Event)) {
	if fn != nil {
		c.listeners = append(c.listeners, fn)
	}
}

func (c *Controller) emit(e Event) {
	for _, fn := range c.listeners {
		fn(e)
	}
}

// Start begins a new run. It is only valid from Idle and returns false otherwise.
func (c *Controller) Start() bool {
	if c.state != StateIdle {
		return false
	}

	c.path = c.generator.Generate(c.cfg.RoadLength, c.src)
	c.jump.Reset()
	c.steps = 0

	c.emit(PathReadyEvent{Path: c.path.Clone(), TileSize: c.cfg.TileSize})
	c.emit(StepsChangedEvent{Steps: 0, Label: "0"})
	c.setState(StatePlaying)

	return true
}

// RequestMove asks the player to jump by step tiles.
// It is silently ignored (false, nil) outside Playing or while a jump is in flight.
func (c *Controller) RequestMove(step int) (bool, error) {
	if c.state != StatePlaying || c.jump.InFlight() {
		return false, nil
	}

	started, err := c.jump.Begin(step)
	if err != nil {
		return false, fmt.Errorf("%w %d: %w", ErrUnsupportedStep, step, err)
	}
	return started, nil
}

// Tick advances the in-flight jump by dt seconds.
func (c *Controller) Tick(dt float64) {
	c.jump.Tick(dt)
}

// Stop ends the current run explicitly. Only valid while Playing.
func (c *Controller) Stop() bool {
	if c.state != StatePlaying {
		return false
	}
	c.end(StateEnded, OutcomeStopped)
	return true
}

// Reset returns to Idle from any state, discarding the path and position.
// A jump in flight lands first and its landing is checked as usual; a run
// still in progress after that is reported as stopped.
func (c *Controller) Reset() {
	c.jump.Finish()
	if c.state == StatePlaying {
		c.result = Result{Outcome: OutcomeStopped, Steps: c.steps, RoadLength: c.cfg.RoadLength}
		c.emit(RunEndedEvent{Result: c.result})
	}
	c.toIdle()
}

func (c *Controller) onMove(position float64) {
	c.emit(PositionChangedEvent{Offset: position})
}

// onMoveComplete validates the landing tile of a finished jump.
func (c *Controller) onMoveComplete(landing int) {
	c.steps = min(landing, c.cfg.RoadLength)
	c.emit(StepsChangedEvent{Steps: c.steps, Label: strconv.Itoa(c.steps)})

	if c.state != StatePlaying {
		return
	}

	last := c.cfg.RoadLength - 1
	switch {
	case landing > last && c.cfg.FinishPolicy == FinishPolicyFinish:
		c.end(StateEnded, OutcomeFinished)
	case landing > last:
		c.end(StateIdle, OutcomeOvershot)
	case c.path.At(landing) == lane.Empty:
		c.end(StateIdle, OutcomeFellInGap)
	case landing == last && c.cfg.FinishPolicy == FinishPolicyFinish:
		c.end(StateEnded, OutcomeFinished)
	}
}

// end leaves Playing with the given outcome.
func (c *Controller) end(next State, outcome Outcome) {
	c.result = Result{Outcome: outcome, Steps: c.steps, RoadLength: c.cfg.RoadLength}
	if next == StateIdle {
		c.toIdle()
	} else {
		c.setState(next)
	}
	c.emit(RunEndedEvent{Result: c.result})
}

func (c *Controller) toIdle() {
	c.path = nil
	c.jump.Reset()
	c.setState(StateIdle)
}

func (c *Controller) setState(next State) {
	if c.state == next {
		return
	}
	prev := c.state
	c.state = next
	c.emit(StateChangedEvent{From: prev, To: next})
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Path returns a copy of the current path, or nil when Idle.
func (c *Controller) Path() lane.Path {
	return c.path.Clone()
}

// Steps returns the step counter shown to the player.
func (c *Controller) Steps() int {
	return c.steps
}

// Index returns the committed tile index of the player.
func (c *Controller) Index() int {
	return c.jump.Index()
}

// Position returns the player's offset along the travel axis.
func (c *Controller) Position() float64 {
	return c.jump.Position()
}

// InFlight reports whether a jump is in progress.
func (c *Controller) InFlight() bool {
	return c.jump.InFlight()
}

// Progress returns the completion of the current jump from 0 to 1.
func (c *Controller) Progress() float64 {
	return c.jump.Progress()
}

// LastResult returns the result of the most recent run that ended.
func (c *Controller) LastResult() Result {
	return c.result
}

// Config returns the controller configuration.
func (c *Controller) Config() Config {
	return c.cfg
}
