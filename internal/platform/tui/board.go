package tui

import (
	"fmt"

	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/snake"
)

// Board layout. Each grid cell is two characters wide so it looks square.
const (
	cellW     = 2
	hudHeight = 1
	boardW    = snake.GridSize*cellW + 2
	boardH    = snake.GridSize + 2

	// ScreenW and ScreenH are the size of the drawn area: HUD plus bordered board.
	ScreenW = boardW
	ScreenH = boardH + hudHeight
)

// HUD carries the values shown around the board that the engine does not own.
type HUD struct {
	HighScore int
	NewBest   bool
}

// DrawBoard paints a snapshot onto dst. dst should be at least ScreenW×ScreenH.
func DrawBoard(dst *core.Screen, snap snake.Snapshot, hud HUD) {
	dst.Clear()

	// HUD line: score on the left, high score on the right
	dst.DrawText(0, 0, fmt.Sprintf("SCORE %04d", snap.Score), core.ColorText)
	hi := fmt.Sprintf("HI: %04d", max(hud.HighScore, snap.Score))
	dst.DrawText(ScreenW-len(hi), 0, hi, core.ColorDim)

	frame := core.NewRect(0, hudHeight, boardW, boardH)
	dst.DrawBox(frame, core.ColorBorder)
	field := frame.Inset(1)

	if snap.Food.InBounds() {
		drawCell(dst, field, snap.Food, "()", core.ColorFood)
	}

	// Draw tail first so the head wins if anything overlaps
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		switch {
		case i == 0:
			drawCell(dst, field, snap.Snake[i], "██", core.ColorHead)
		case i <= len(snap.Snake)/2:
			drawCell(dst, field, snap.Snake[i], "▓▓", core.ColorBody)
		default:
			drawCell(dst, field, snap.Snake[i], "▒▒", core.ColorBody)
		}
	}

	switch snap.State {
	case snake.StateNotStarted:
		drawOverlay(dst, frame, core.ColorText, "READY?", "> PRESS SPACE")
	case snake.StatePaused:
		drawOverlay(dst, frame, core.ColorText, "PAUSED", "space to resume")
	case snake.StateGameOver:
		lines := []string{"GAME OVER", fmt.Sprintf("SCORE: %d", snap.Score)}
		if hud.NewBest {
			lines = append(lines, "NEW HIGH SCORE")
		}
		lines = append(lines, "[R] SYSTEM_REBOOT")
		drawOverlay(dst, frame, core.ColorAlert, lines...)
	}
}

// drawCell draws a two-character glyph at a grid cell of the playfield.
func drawCell(dst *core.Screen, field core.Rect, c snake.Cell, glyph string, color core.Color) {
	dst.DrawText(field.X+c.X*cellW, field.Y+c.Y, glyph, color)
}

// drawOverlay draws a centered box with the title on the first line.
func drawOverlay(dst *core.Screen, frame core.Rect, titleColor core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	box := frame.CenteredIn(w+6, len(lines)*2+1)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBorder)

	for i, l := range lines {
		color := core.ColorDim
		if i == 0 {
			color = titleColor
		}
		dst.DrawTextCenteredIn(box, box.Y+1+i*2, l, color)
	}
}
