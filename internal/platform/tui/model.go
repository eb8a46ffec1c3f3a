package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-jumper/internal/config"
	"github.com/vovakirdan/lane-jumper/internal/core"
	"github.com/vovakirdan/lane-jumper/internal/registry"
	"github.com/vovakirdan/lane-jumper/internal/run"
	"github.com/vovakirdan/lane-jumper/internal/storage"
)

// runReporter is implemented by games that can describe their last run
// in more detail than a score.
type runReporter interface {
	LastResult() run.Result
	Seed() int64
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	board      Board
	showBoard  bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The bottom row of the terminal is reserved for the help footer.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		store:      store,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     log.New(io.Discard),
		inputFrame: core.NewInputFrame(),
	}
}

// WithLogger returns a copy of the model that logs through l.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := MouseAction(msg); a != core.ActionNone {
			m.inputFrame.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.gameState.Running {
			// Let the game close the run so it is recorded as stopped.
			frame := core.NewInputFrame()
			frame.Set(core.ActionQuit)
			m.record(m.game.Step(frame))
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Scores):
		m.showBoard = !m.showBoard
		if m.showBoard {
			m.board = LoadBoard(m.store, m.game.ID())
		}
		return m, nil
	}

	if a := m.keys.Action(msg); a != core.ActionNone {
		m.inputFrame.Set(a)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if m.record(result) && m.showBoard {
		m.board = LoadBoard(m.store, m.game.ID())
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// record saves the score and run of a run that ended during this step.
// Saving is best effort; the game continues regardless.
func (m *Model) record(result core.StepResult) bool {
	if result.Ended == "" {
		return false
	}

	rec := storage.RunRecord{
		GameID:  m.game.ID(),
		Outcome: result.Ended,
		Steps:   result.State.Score,
		Seed:    m.config.Seed,
	}
	if r, ok := m.game.(runReporter); ok {
		res := r.LastResult()
		rec.Steps = res.Steps
		rec.RoadLength = res.RoadLength
		rec.Seed = r.Seed()
	}

	m.logger.Debug("run recorded", "game", rec.GameID, "outcome", rec.Outcome, "steps", rec.Steps)
	if m.store == nil {
		return true
	}

	if rec.Steps > 0 {
		best, bestErr := m.store.HighScore(rec.GameID)
		if _, err := m.store.SaveScore(rec.GameID, rec.Steps); err != nil {
			m.logger.Warn("could not save score", "err", err)
		} else if bestErr == nil && rec.Steps > best {
			m.logger.Info("new high score", "game", rec.GameID, "steps", rec.Steps, "previous", best)
		}
	}
	if _, err := m.store.SaveRun(rec); err != nil {
		m.logger.Warn("could not save run", "err", err)
	}
	return true
}

// saveScreenshot writes the current screen as plain text under the user's data directory.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, config.HomeDirName, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.showBoard {
		DrawBoard(m.screen, m.board)
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg).WithLogger(logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
