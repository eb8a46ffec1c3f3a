package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-jumper/internal/config"
	"github.com/vovakirdan/lane-jumper/internal/core"
	"github.com/vovakirdan/lane-jumper/internal/games/jumper"
	"github.com/vovakirdan/lane-jumper/internal/platform/tui"
	"github.com/vovakirdan/lane-jumper/internal/registry"
	"github.com/vovakirdan/lane-jumper/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The road is generated when a run starts.

Controls:
  ←/A/H/1, left click    - Hop one tile
  →/D/L/2, right click   - Leap two tiles
  Enter/Space            - Start a run
  P/Esc                  - Pause
  R                      - Start a new run
  Tab                    - Show scores
  Q/Ctrl+C               - Quit

Difficulty options:
  easy   - Fewer gaps, slower jumps
  normal - Default gap chance and timing
  hard   - More gaps, faster jumps
  fixed  - Use the config file as is

Examples:
  jumper play
  jumper play --difficulty easy
  jumper play --config ./my-road.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := registry.Default()
	if len(args) > 0 {
		gameID = args[0]
	}

	if flagConfig != "" {
		// Fail before the alt screen takes over the terminal.
		if _, err := config.LoadJumper(flagConfig); err != nil {
			return err
		}
	}
	jumper.SetConfigPath(flagConfig)
	jumper.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		// Continue without storage - game still works
		store = nil
	}
	defer store.Close()

	logFile := fileLogger()
	defer logFile.Close()

	logger.Info("playing", "game", gameID, "seed", cfg.Seed, "difficulty", flagDifficulty)
	return tui.Run(game, store, cfg, logger)
}
