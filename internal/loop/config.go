package loop

import "time"

// Game configuration constants. All tunable parameters live here.

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// Logical playfield - the simulation runs in these fixed dimensions and
// rendering scales them to the terminal. Set once at startup, never
// resized.
const (
	fieldWidth  = 1280
	fieldHeight = 720
)

// Entity geometry.
const (
	paddleWidth  = 25.0
	paddleHeight = 150.0
	ballRadius   = 20.0

	// Horizontal paddle distance from its own vertical edge.
	paddleBorderOffset = 50.0
)
