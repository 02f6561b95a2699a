// Package object contains the game entities: the kinematic base, the two
// paddles and the ball.
package object

import "github.com/tomz197/pong/internal/physics"

// DefaultMoveSpeed is the speed, in logical units per second, of a moving
// paddle and of a freshly served ball.
const DefaultMoveSpeed = 300.0

// Field holds the fixed logical playfield dimensions, set once at startup.
type Field struct {
	Width  int
	Height int
}

// Center returns the center point of the field.
func (f Field) Center() physics.Vec2 {
	return physics.Vec2{X: float64(f.Width) / 2, Y: float64(f.Height) / 2}
}

// Kinematic is the movable base embedded by Paddle and Ball. MoveDirection
// is unit length while moving and zero while idle; a zero MoveSpeed means
// no displacement regardless of direction.
type Kinematic struct {
	Position      physics.Vec2
	MoveDirection physics.Vec2
	MoveSpeed     float64
}

// Update advances Position by MoveDirection * MoveSpeed * delta.
// delta is in seconds and must not be negative.
func (k *Kinematic) Update(delta float64) {
	k.Position = k.Position.Add(k.MoveDirection.Scale(k.MoveSpeed * delta))
}
