// jumper is a terminal lane jumper: hop one tile or leap two along a
// generated road and try not to land in a gap.
//
// Usage:
//
//	jumper list              - List available games
//	jumper play [game]       - Play (default: jumper)
//	jumper path              - Print and validate a generated path
//	jumper scores [game]     - Show high scores and recent runs
//	jumper serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible roads
//	--db <path>          - Set database path (default: ~/.lanejumper/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-jumper/internal/config"
	"github.com/vovakirdan/lane-jumper/internal/games/jumper"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.New(io.Discard)
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Lane Jumper - hop along an endless road in your terminal",
	Long: `Lane Jumper generates a road of solid tiles and gaps. Hop one tile
or leap two; landing in a gap or past the end of the road sends you
back to the start.

Available commands:
  list     - Show all available games
  play     - Play a game
  path     - Print a generated path
  scores   - View high scores and recent runs
  serve    - Start SSH server for remote play

Examples:
  jumper play
  jumper play --difficulty hard --seed 42
  jumper path --length 20 --seed 7
  jumper scores --board
  jumper serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Prefix:          "jumper",
			Level:           level,
		})
		jumper.SetLogger(logger)
		return nil
	},
}

// fileLogger redirects logging to a file under the user's data directory.
// The terminal belongs to the game while it runs. The returned closer is
// never nil.
func fileLogger() io.Closer {
	home, err := os.UserHomeDir()
	if err != nil {
		logger.SetOutput(io.Discard)
		return io.NopCloser(nil)
	}
	dir := filepath.Join(home, config.HomeDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.SetOutput(io.Discard)
		return io.NopCloser(nil)
	}

	f, err := os.OpenFile(filepath.Join(dir, "jumper.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		logger.SetOutput(io.Discard)
		return io.NopCloser(nil)
	}
	logger.SetOutput(f)
	return f
}

// resolveSeed returns the --seed flag, or a time-based seed when it is 0.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.HomeDirName+"/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
