package loop

import (
	"fmt"
	"io"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/match"
)

// drawHUD overlays scores on the playfield, plus the serve prompt while
// waiting. Drawn after the canvas so text wins over pixels.
func drawHUD(m *match.Match, w io.Writer, canvas *draw.Canvas) {
	width := canvas.TerminalWidth()
	height := canvas.TerminalHeight()
	offCol := canvas.OffsetCol()
	offRow := canvas.OffsetRow()
	centerX := offCol + width/2
	centerY := offRow + height/2

	score := fmt.Sprintf("%d : %d", m.Score(0), m.Score(1))
	draw.MoveCursor(w, centerX-len(score)/2+1, offRow+1)
	fmt.Fprint(w, score)

	if m.Playing() {
		return
	}

	prompt := "Press SPACE to serve"
	draw.MoveCursor(w, centerX-len(prompt)/2+1, centerY-1)
	fmt.Fprint(w, prompt)

	controls := "W/S and arrows move, Q quits"
	draw.MoveCursor(w, centerX-len(controls)/2+1, centerY+1)
	fmt.Fprint(w, controls)
}
