package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	_ "github.com/vovakirdan/lane-jumper/internal/games/jumper"
	"github.com/vovakirdan/lane-jumper/internal/platform/tui"
	"github.com/vovakirdan/lane-jumper/internal/registry"
	"github.com/vovakirdan/lane-jumper/internal/storage"
)

var (
	flagBoard bool
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and recent runs",
	Long: `Display the top scores, the most recent runs and how runs ended.

Examples:
  jumper scores
  jumper scores --limit 20
  jumper scores --board
  jumper scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs for the game")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores and runs to show (0 = all scores)")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := registry.Default()
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("cleared scores", "game", gameID)
		return nil
	}

	if flagBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, width, height)
	}

	return printScores(cmd, store, gameID, game.Title())
}

func printScores(cmd *cobra.Command, store *storage.Store, gameID, title string) error {
	out := cmd.OutOrStdout()

	var scores []storage.ScoreEntry
	var err error
	if flagLimit > 0 {
		scores, err = store.TopScores(gameID, flagLimit)
	} else {
		scores, err = store.AllScores(gameID)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", title)
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintf(out, "Play 'jumper play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Fprintf(out, "  %-4s  %-6s  %s\n", "Rank", "Steps", "Date")
		fmt.Fprintf(out, "  %-4s  %-6s  %s\n", "----", "-----", "----")
		for i, e := range scores {
			fmt.Fprintf(out, "  %-4d  %-6d  %s\n", i+1, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
		}

		stats, err := store.GetGameStats(gameID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%d scored runs, best %d, average %.1f, last played %s\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	// Zero-step runs have no score row but still belong here.
	runs, err := store.RecentRuns(gameID, flagLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return nil
	}
	fmt.Fprintf(out, "\nRecent runs\n\n")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-9s %4d/%-4d  seed %-20d  %s\n",
			r.Outcome, r.Steps, r.RoadLength, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	counts, err := store.OutcomeCounts(gameID)
	if err != nil {
		return err
	}
	outcomes := make([]string, 0, len(counts))
	for o := range counts {
		outcomes = append(outcomes, o)
	}
	sort.Strings(outcomes)

	fmt.Fprintln(out)
	for _, o := range outcomes {
		fmt.Fprintf(out, "%s: %d  ", o, counts[o])
	}
	fmt.Fprintln(out)
	return nil
}
