// Package match owns the game state machine: one ball, two paddles, the
// scores and the serve/rally/reset cycle.
package match

import (
	"math/rand/v2"

	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/object"
	"github.com/tomz197/pong/internal/physics"
)

// Config fixes the geometry of a match.
type Config struct {
	Field        object.Field
	PaddleSize   physics.Vec2
	BallRadius   float64
	BorderOffset float64 // Paddle distance from its vertical edge
}

// Match drives one game. It exclusively owns the ball, both paddles and
// the scores; all mutation happens on the tick goroutine.
type Match struct {
	field   object.Field
	ball    *object.Ball
	paddles [2]*object.Paddle // 0 defends the left edge, 1 the right
	scores  [2]uint
	playing bool
	rng     *rand.Rand
}

// New creates a match in the waiting-to-serve state. rng drives serve
// directions; pass a seeded source for reproducible serves.
func New(cfg Config, rng *rand.Rand) *Match {
	m := &Match{
		field: cfg.Field,
		ball:  object.NewBall(cfg.BallRadius),
		rng:   rng,
	}
	m.paddles[0] = object.NewPaddle(cfg.PaddleSize, 1)
	m.paddles[1] = object.NewPaddle(cfg.PaddleSize, -1)

	m.resetRound()

	// Horizontal placement happens once; round resets leave it alone.
	m.paddles[0].Position.X = cfg.BorderOffset
	m.paddles[1].Position.X = float64(cfg.Field.Width) - cfg.BorderOffset

	return m
}

// HandleEvent routes a key event. Movement keys always reach the paddles
// so players can pre-position before a serve; the serve key only matters
// while waiting.
func (m *Match) HandleEvent(ev input.Event) {
	switch ev.Key {
	case input.KeyLeftUp:
		m.routeVertical(m.paddles[0], true, ev.Pressed)
	case input.KeyLeftDown:
		m.routeVertical(m.paddles[0], false, ev.Pressed)
	case input.KeyRightUp:
		m.routeVertical(m.paddles[1], true, ev.Pressed)
	case input.KeyRightDown:
		m.routeVertical(m.paddles[1], false, ev.Pressed)
	case input.KeyServe:
		if ev.Pressed && !m.playing {
			m.playing = true
			m.ball.Launch(m.rng)
		}
	}
}

func (m *Match) routeVertical(p *object.Paddle, up, pressed bool) {
	switch {
	case up && pressed:
		p.OnMoveUpPressed()
	case up && !pressed:
		p.OnMoveUpReleased()
	case pressed:
		p.OnMoveDownPressed()
	default:
		p.OnMoveDownReleased()
	}
}

// Tick advances the simulation by delta seconds: integrate the ball and
// paddles, bounce off the terrain, resolve at most one paddle hit, then
// check for a side-out.
func (m *Match) Tick(delta float64) {
	m.ball.Update(delta)
	m.paddles[0].Update(delta, m.field)
	m.paddles[1].Update(delta, m.field)

	m.ball.CollideWithTerrain(m.field)

	if m.collidePaddles() {
		return
	}

	side := m.ball.TouchingSide(m.field)
	if side == object.SideNone {
		return
	}
	m.awardPoint(side)
	m.resetRound()
}

// collidePaddles resolves the ball against at most one paddle per tick.
// When the ball overlaps both (extreme speeds only), the paddle with the
// larger overlap area wins; an exact tie goes to the left paddle.
func (m *Match) collidePaddles() bool {
	a0 := m.ball.OverlapArea(m.paddles[0])
	a1 := m.ball.OverlapArea(m.paddles[1])

	if a1 > a0 {
		return m.ball.CollideWith(m.paddles[1])
	}
	if a0 > 0 {
		return m.ball.CollideWith(m.paddles[0])
	}
	return false
}

// awardPoint credits the defender opposite the touched boundary: the ball
// escaped past the paddle on that side.
func (m *Match) awardPoint(side object.Side) {
	if side == object.SideLeft {
		m.scores[1]++
	} else {
		m.scores[0]++
	}
}

// resetRound recenters the entities in place and waits for the next serve.
// Scores persist.
func (m *Match) resetRound() {
	m.ball.Reset(m.field)
	m.paddles[0].Reset(m.field)
	m.paddles[1].Reset(m.field)
	m.playing = false
}

// Playing reports whether a rally is in progress.
func (m *Match) Playing() bool {
	return m.playing
}

// Score returns the score of the given defender (0 = left, 1 = right).
func (m *Match) Score(i int) uint {
	return m.scores[i]
}

// Ball returns the match ball for rendering and tests.
func (m *Match) Ball() *object.Ball {
	return m.ball
}

// Paddle returns the paddle defending the given side (0 = left, 1 = right).
func (m *Match) Paddle(i int) *object.Paddle {
	return m.paddles[i]
}

// Field returns the fixed playfield dimensions.
func (m *Match) Field() object.Field {
	return m.field
}
