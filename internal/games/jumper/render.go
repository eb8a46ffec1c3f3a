package jumper

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lane-jumper/internal/core"
	"github.com/vovakirdan/lane-jumper/internal/lane"
	"github.com/vovakirdan/lane-jumper/internal/run"
)

// Visual characters for rendering
const (
	TileChar   = '█'
	PitChar    = '~'
	PlayerChar = '◆'
	ShadowChar = '▔'
	MarkChar   = '|'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctrl == nil {
		return
	}

	groundY := dst.Height() - 4
	cpt := g.cellsPerTile()
	camera := g.cameraX(dst.Width())

	if g.path != nil {
		g.drawRoad(dst, groundY, camera, cpt)
		g.drawPlayer(dst, groundY, camera, cpt)
	}

	g.drawHUD(dst)

	switch {
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.ctrl.State() == run.StateEnded:
		drawCenteredMessage(dst, g.result.Outcome.Message(),
			fmt.Sprintf("Steps: %d  |  Press R to play again", g.result.Steps))
	case g.ctrl.State() == run.StateIdle && g.over:
		drawCenteredMessage(dst, g.result.Outcome.Message(),
			fmt.Sprintf("Steps: %d  |  Press Enter to try again", g.result.Steps))
	case g.ctrl.State() == run.StateIdle:
		drawCenteredMessage(dst, "LANE JUMPER", "Press Enter to start")
	}
}

func (g *Game) cellsPerTile() int {
	return core.Max(g.cfg.Render.CellsPerTile, 2)
}

// playerCells returns the player's left edge in road cells.
func (g *Game) playerCells() float64 {
	if g.tileSize <= 0 {
		return 0
	}
	return g.offset / g.tileSize * float64(g.cellsPerTile())
}

// cameraX keeps the player a third of the way across the screen and stops
// scrolling once the end of the road is in view.
func (g *Game) cameraX(screenW int) int {
	end := core.Max(len(g.path)*g.cellsPerTile()-screenW, 0)
	return core.Clamp(int(g.playerCells())-screenW/3, 0, end)
}

func (g *Game) drawRoad(dst *core.Screen, groundY, camera, cpt int) {
	last := len(g.path) - 1
	first := camera / cpt
	for i := first; i <= last; i++ {
		x := i*cpt - camera
		if x >= dst.Width() {
			break
		}

		switch {
		case g.path.At(i) == lane.Empty:
			dst.DrawHLineColor(x, groundY+1, cpt, PitChar, core.ColorCyan)
		case i == last:
			dst.DrawHLineColor(x, groundY, cpt-1, TileChar, core.ColorYellow)
		default:
			dst.DrawHLineColor(x, groundY, cpt-1, TileChar, core.ColorGreen)
		}

		if i%10 == 0 {
			dst.SetColor(x, groundY+2, MarkChar, core.ColorGray)
			dst.DrawTextColor(x+1, groundY+2, fmt.Sprint(i), core.ColorGray)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, groundY, camera, cpt int) {
	x := int(math.Round(g.playerCells())) - camera + (cpt-1)/2
	lift := jumpLift(g.ctrl.Progress(), g.cfg.Render.JumpHeight)
	if !g.ctrl.InFlight() {
		lift = 0
	}

	// Row 0 belongs to the HUD.
	field := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	y := groundY - 1 - lift
	if !field.Contains(x, y) {
		y = field.Y
	}

	dst.SetColor(x, y, PlayerChar, core.ColorBrightWhite)
	if lift > 0 {
		dst.SetColor(x, groundY-1, ShadowChar, core.ColorGray)
	}
}

// jumpLift returns the player's height above the road for a jump at the
// given progress. The arc peaks at height halfway through.
func jumpLift(progress float64, height int) int {
	p := core.ClampF(progress, 0, 1)
	return int(math.Round(4 * p * (1 - p) * float64(height)))
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Steps: %s/%d ", g.label, g.cfg.Road.Length))

	status := g.ctrl.State().String()
	if g.runs > 0 {
		status = fmt.Sprintf("%s  Runs: %d", status, g.runs)
	}
	text := " " + status + " "
	dst.DrawTextColor(dst.Width()-len(text)-2, 0, text, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	tw, sw := len([]rune(title)), len([]rune(subtitle))
	boxW := core.Max(tw, sw) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	cx, cy := box.Center()

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColor(cx-tw/2, cy-1, title, core.ColorBrightWhite)
	dst.DrawText(cx-sw/2, cy+1, subtitle)
}
