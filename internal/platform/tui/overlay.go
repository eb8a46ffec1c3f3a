package tui

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/lane-jumper/internal/core"
	"github.com/vovakirdan/lane-jumper/internal/storage"
)

// overlayScores is how many top scores the in-game overlay lists.
const overlayScores = 5

// Board is the data shown by the in-game scores overlay.
type Board struct {
	Top      []storage.ScoreEntry
	Outcomes map[string]int
	Err      error
}

// LoadBoard reads the overlay data for a game. A nil store yields an empty board.
func LoadBoard(store *storage.Store, gameID string) Board {
	if store == nil {
		return Board{}
	}
	top, err := store.TopScores(gameID, overlayScores)
	if err != nil {
		return Board{Err: err}
	}
	outcomes, err := store.OutcomeCounts(gameID)
	if err != nil {
		return Board{Top: top, Err: err}
	}
	return Board{Top: top, Outcomes: outcomes}
}

// DrawBoard draws the overlay in the middle of the screen: best scores on
// the left, how past runs ended on the right.
func DrawBoard(dst *core.Screen, b Board) {
	w := core.Min(dst.Width()-2, 48)
	h := core.Min(dst.Height()-2, overlayScores+5)
	if w < 20 || h < 5 {
		return
	}
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColor(box.X+2, box.Y, " SCORES ", core.ColorBrightWhite)

	inner := core.NewRect(box.X+2, box.Y+1, box.W-4, box.H-2)
	if b.Err != nil {
		dst.DrawTextColor(inner.X, inner.Y, "unavailable", core.ColorRed)
		return
	}

	left, right := inner.Split()

	dst.DrawTextColor(left.X, left.Y, "Best", core.ColorYellow)
	if len(b.Top) == 0 {
		dst.DrawTextColor(left.X, left.Y+1, "none yet", core.ColorGray)
	}
	for i, e := range b.Top {
		if i+1 >= left.H {
			break
		}
		dst.DrawText(left.X, left.Y+1+i, fmt.Sprintf("%d. %4d", i+1, e.Score))
	}

	dst.DrawTextColor(right.X, right.Y, "Runs", core.ColorYellow)
	names := make([]string, 0, len(b.Outcomes))
	for name := range b.Outcomes {
		names = append(names, name)
	}
	sort.Strings(names)
	for i, name := range names {
		if i+1 >= right.H {
			break
		}
		dst.DrawText(right.X, right.Y+1+i, fmt.Sprintf("%-9s %3d", name, b.Outcomes[name]))
	}
}
