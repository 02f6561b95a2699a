package object

import (
	"math/rand/v2"

	"github.com/tomz197/pong/internal/physics"
)

// Ball is the rally ball. It is inert (zero speed) between rounds.
type Ball struct {
	Kinematic
	Radius float64
}

// NewBall creates an inert ball with the given radius.
func NewBall(radius float64) *Ball {
	return &Ball{Radius: radius}
}

// CollideWithTerrain reflects the ball's vertical direction when its extent
// crosses the top or bottom boundary. Direction reversal is the whole
// contract: no position correction is applied, so tunneling at extreme
// speeds is an accepted limitation.
func (b *Ball) CollideWithTerrain(field Field) {
	top := b.Position.Y-b.Radius < 0
	bottom := b.Position.Y+b.Radius > float64(field.Height)

	if top || bottom {
		b.MoveDirection.Y = -b.MoveDirection.Y
	}
}

// Bounds returns the ball's collision rectangle (Position ± Radius).
func (b *Ball) Bounds() physics.Rect {
	return physics.RectAround(b.Position, b.Radius, b.Radius)
}

// CollideWith reflects the ball's horizontal direction when it overlaps the
// paddle, reporting whether it did. Exactly one reflection per call: a
// second call while still overlapping reflects again.
func (b *Ball) CollideWith(p *Paddle) bool {
	if !physics.Overlaps(b.Bounds(), p.Bounds()) {
		return false
	}
	b.MoveDirection.X = -b.MoveDirection.X
	return true
}

// OverlapArea returns the area of the ball/paddle overlap rectangle, or 0.
// Pure query used to break ties when both paddles overlap in one tick.
func (b *Ball) OverlapArea(p *Paddle) float64 {
	return physics.OverlapArea(b.Bounds(), p.Bounds())
}

// TouchingSide reports which vertical boundary the ball currently crosses,
// or SideNone. Pure query, no mutation.
func (b *Ball) TouchingSide(field Field) Side {
	switch {
	case b.Position.X-b.Radius < 0:
		return SideLeft
	case b.Position.X+b.Radius > float64(field.Width):
		return SideRight
	default:
		return SideNone
	}
}

// Reset recenters the ball and stops it until the next serve.
func (b *Ball) Reset(field Field) {
	b.Position = field.Center()
	b.MoveSpeed = 0
	b.MoveDirection = physics.Vec2{}
}

// Launch serves the ball along a random 45-degree diagonal at
// DefaultMoveSpeed. The direction is normalized to unit length.
func (b *Ball) Launch(rng *rand.Rand) {
	b.MoveSpeed = DefaultMoveSpeed
	b.MoveDirection = physics.Vec2{
		X: randomSign(rng),
		Y: randomSign(rng),
	}.Normalize()
}

func randomSign(rng *rand.Rand) float64 {
	return float64(rng.IntN(2)*2 - 1)
}
