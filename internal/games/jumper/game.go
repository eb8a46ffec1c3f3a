// Package jumper implements Lane Jumper: hop one tile or leap two along a
// generated road without landing in a gap.
//
// The game adapts a run.Controller to the registry.Game interface. It
// subscribes to controller events and keeps its own copy of the path,
// offset and step label for rendering.
package jumper

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-jumper/internal/config"
	"github.com/vovakirdan/lane-jumper/internal/core"
	"github.com/vovakirdan/lane-jumper/internal/lane"
	"github.com/vovakirdan/lane-jumper/internal/registry"
	"github.com/vovakirdan/lane-jumper/internal/run"
)

// ID is the registry key of the game.
const ID = "jumper"

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the config as loaded.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

// SetLogger sets the logger used for run lifecycle messages.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the Lane Jumper game logic.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.JumperConfig
	ctrl    *run.Controller

	// Presentation state, fed by controller events.
	path     lane.Path
	tileSize float64
	offset   float64
	label    string

	paused bool
	over   bool       // The last run ended and its result is on screen
	result run.Result // Result of the last run
	ended  string     // Outcome of a run that ended during the current Step
	runs   int
}

// New creates a new Lane Jumper game instance.
func New() *Game {
	return &Game{label: "0"}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lane Jumper"
}

// Reset loads the configuration and builds a fresh controller seeded
// from runtime.Seed. The game starts Idle.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadJumper(configPath)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "err", err)
		cfg = config.DefaultJumperConfig()
	}
	cfg = cfg.Clone()
	config.ApplyJumperPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	ctrl, err := run.New(controllerConfig(cfg), rand.New(rand.NewSource(runtime.Seed)))
	if err != nil {
		logger.Error("invalid config, using defaults", "err", err)
		g.cfg = config.DefaultJumperConfig()
		ctrl, _ = run.New(run.DefaultConfig(), rand.New(rand.NewSource(runtime.Seed)))
	}
	ctrl.Subscribe(g.handle)
	g.ctrl = ctrl

	g.path = nil
	g.tileSize = g.cfg.Road.TileSize
	g.offset = 0
	g.label = "0"
	g.paused = false
	g.over = false
	g.result = run.Result{}
	g.ended = ""
	g.runs = 0
}

// controllerConfig converts the file configuration into controller terms.
func controllerConfig(cfg config.JumperConfig) run.Config {
	policy, err := run.ParseFinishPolicy(cfg.Rules.FinishPolicy)
	if err != nil {
		policy = run.FinishPolicyReset
	}
	chance := cfg.Road.EmptyChance
	if chance == 0 {
		chance = run.NoGaps
	}
	durations := make(map[int]float64, len(cfg.Motion.Durations))
	for step, d := range cfg.Motion.Durations {
		durations[step] = d
	}
	return run.Config{
		RoadLength:   cfg.Road.Length,
		TileSize:     cfg.Road.TileSize,
		Durations:    durations,
		EmptyChance:  chance,
		FinishPolicy: policy,
	}
}

// Step applies one frame of input and advances the jump by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ended = ""

	switch g.ctrl.State() {
	case run.StateIdle:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.start()
		}

	case run.StateEnded:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.ctrl.Reset()
			g.start()
		}

	case run.StatePlaying:
		if in.Has(core.ActionQuit) {
			g.ctrl.Stop()
			break
		}
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			break
		}
		if in.Has(core.ActionRestart) {
			g.ctrl.Reset()
			g.start()
			break
		}
		g.move(in)
		g.ctrl.Tick(g.runtime.TickSeconds())
	}

	return core.StepResult{State: g.State(), Ended: g.ended}
}

// move forwards the first jump action in the frame. Hop wins when both are pressed.
func (g *Game) move(in core.InputFrame) {
	for _, a := range []core.Action{core.ActionHop, core.ActionLeap} {
		if !in.Has(a) {
			continue
		}
		if _, err := g.ctrl.RequestMove(a.Step()); err != nil {
			logger.Error("move rejected", "action", a, "err", err)
		}
		return
	}
}

func (g *Game) start() {
	g.paused = false
	if g.ctrl.Start() {
		logger.Debug("run started", "run", g.runs+1, "length", g.cfg.Road.Length, "seed", g.runtime.Seed)
	}
}

// handle is the controller's presentation sink.
func (g *Game) handle(e run.Event) {
	switch e := e.(type) {
	case run.PathReadyEvent:
		g.path = e.Path
		g.tileSize = e.TileSize
		g.offset = 0
		g.over = false
	case run.PositionChangedEvent:
		g.offset = e.Offset
	case run.StepsChangedEvent:
		g.label = e.Label
	case run.StateChangedEvent:
		if e.To == run.StateIdle {
			g.path = nil
			g.offset = 0
		}
	case run.RunEndedEvent:
		g.over = true
		g.result = e.Result
		g.ended = e.Result.Outcome.String()
		g.runs++
		logger.Debug("run ended", "outcome", e.Result.Outcome, "steps", e.Result.Steps, "road", e.Result.RoadLength)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.ctrl.Steps(),
		GameOver: g.over,
		Paused:   g.paused,
		Running:  g.ctrl.State() == run.StatePlaying,
	}
}

// LastResult returns the result of the most recent run that ended.
func (g *Game) LastResult() run.Result {
	return g.result
}

// Seed returns the seed the current controller was built with.
func (g *Game) Seed() int64 {
	return g.runtime.Seed
}

// Runs returns how many runs have ended since the last Reset.
func (g *Game) Runs() int {
	return g.runs
}

// Snapshot is a comparable view of the game used to check determinism.
type Snapshot struct {
	State  run.State
	Path   string
	Index  int
	Offset float64
	Label  string
	Result run.Result
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:  g.ctrl.State(),
		Path:   g.path.String(),
		Index:  g.ctrl.Index(),
		Offset: g.offset,
		Label:  g.label,
		Result: g.result,
	}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
