// Package loop provides the main game loop: poll input, advance the match,
// render a frame, pace to the target FPS.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/match"
	"github.com/tomz197/pong/internal/object"
	"github.com/tomz197/pong/internal/physics"
)

// Options configures a run. Zero values pick sensible defaults, so
// Options{} is valid for a local terminal session.
type Options struct {
	// TermSize reports the terminal dimensions; defaults to os.Stdout.
	TermSize draw.TermSizeFunc

	// Rand drives serve directions; defaults to an unpredictably seeded
	// source. Inject a fixed seed for reproducible serves.
	Rand *rand.Rand

	// Now sources wall-clock time for the delta clock and frame pacing;
	// defaults to time.Now.
	Now func() time.Time
}

// Run drives one match on the given reader/writer pair until the player
// quits or the reader ends (window closed). It must only be called after
// the terminal bootstrap succeeded: raw mode on, cursor hidden.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.TermSize == nil {
		opts.TermSize = draw.DefaultTermSizeFunc
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	termWidth, termHeight, err := opts.TermSize()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	canvas := layoutCanvas(termWidth, termHeight)

	m := match.New(match.Config{
		Field:        object.Field{Width: fieldWidth, Height: fieldHeight},
		PaddleSize:   physics.Vec2{X: paddleWidth, Y: paddleHeight},
		BallRadius:   ballRadius,
		BorderOffset: paddleBorderOffset,
	}, opts.Rand)

	stream := input.StartStream(r)
	clock := NewDeltaClock(opts.Now)

	draw.ClearScreen(w)

	running := true
	for running {
		frameStart := opts.Now()

		// ===== INPUT PHASE =====
		events, closed := stream.Poll(frameStart)
		if closed {
			running = false
		}
		for _, ev := range events {
			if ev.Key == input.KeyQuit && ev.Pressed {
				running = false
				continue
			}
			m.HandleEvent(ev)
		}

		// ===== UPDATE PHASE =====
		m.Tick(clock())

		// ===== DRAW PHASE =====
		drawFrame(m, w, canvas)

		// ===== FRAME TIMING =====
		elapsed := opts.Now().Sub(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// layoutCanvas builds a canvas preserving the playfield aspect ratio,
// centered in the terminal. Half-block cells count double vertically.
func layoutCanvas(termWidth, termHeight int) *draw.Canvas {
	w := termWidth
	h := termHeight

	// Terminal area aspect in sub-pixels vs the field's.
	fieldAspect := float64(fieldWidth) / float64(fieldHeight)
	if float64(w)/float64(h*2) > fieldAspect {
		w = int(float64(h*2) * fieldAspect)
	} else {
		h = int(float64(w) / fieldAspect / 2)
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	c := draw.NewScaledCanvas(w, h, fieldWidth, fieldHeight)
	c.SetOffset((termWidth-w)/2, (termHeight-h)/2)
	return c
}

// drawFrame clears the screen and draws the playfield and HUD.
func drawFrame(m *match.Match, w io.Writer, canvas *draw.Canvas) {
	draw.ClearScreen(w)
	canvas.Clear()

	for i := 0; i < 2; i++ {
		b := m.Paddle(i).Bounds()
		canvas.FillRect(draw.Point{X: b.Min.X, Y: b.Min.Y}, draw.Point{X: b.Max.X, Y: b.Max.Y})
	}

	ball := m.Ball()
	canvas.FillDisc(draw.Point{X: ball.Position.X, Y: ball.Position.Y}, ball.Radius)

	canvas.Render(w)
	canvas.RenderBorder(w)
	drawHUD(m, w, canvas)
}
