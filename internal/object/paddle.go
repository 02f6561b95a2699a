package object

import "github.com/tomz197/pong/internal/physics"

// Paddle is a player-controlled bat bound to a vertical lane.
// The simulation uses terminal-style y-down coordinates: the top boundary
// is y = 0 and "up" is negative y.
type Paddle struct {
	Kinematic

	Size physics.Vec2 // Full extents; collision uses Size/2 around Position

	// Forward is the x direction the paddle faces: +1 defends the left
	// edge, -1 the right.
	Forward float64

	// Held key intents. Movement resolves most-recent-press-wins when
	// both are held at once.
	upHeld   bool
	downHeld bool
}

// NewPaddle creates an idle paddle of the given size and facing.
func NewPaddle(size physics.Vec2, forward float64) *Paddle {
	return &Paddle{Size: size, Forward: forward}
}

// OnMoveUpPressed starts upward movement. A press always takes over from
// an opposite key that is still held.
func (p *Paddle) OnMoveUpPressed() {
	p.upHeld = true
	p.setVertical(-1)
}

// OnMoveDownPressed starts downward movement.
func (p *Paddle) OnMoveDownPressed() {
	p.downHeld = true
	p.setVertical(1)
}

// OnMoveUpReleased stops upward movement. If the down key is still held,
// control passes back to it.
func (p *Paddle) OnMoveUpReleased() {
	p.upHeld = false
	if p.downHeld {
		p.setVertical(1)
	} else {
		p.setVertical(0)
	}
}

// OnMoveDownReleased stops downward movement, handing control back to a
// still-held up key.
func (p *Paddle) OnMoveDownReleased() {
	p.downHeld = false
	if p.upHeld {
		p.setVertical(-1)
	} else {
		p.setVertical(0)
	}
}

func (p *Paddle) setVertical(dir float64) {
	p.MoveDirection = physics.Vec2{X: 0, Y: dir}
	if dir == 0 {
		p.MoveSpeed = 0
	} else {
		p.MoveSpeed = DefaultMoveSpeed
	}
}

// Update integrates movement, then applies the terrain guard: if the
// post-update position sits inside the boundary band, the whole move is
// reverted for this tick. The position is never clamped to the boundary.
func (p *Paddle) Update(delta float64, field Field) {
	before := p.Position
	p.Kinematic.Update(delta)
	p.collideTerrain(field, before)
}

func (p *Paddle) collideTerrain(field Field, before physics.Vec2) {
	minOffset := p.Size.Y * 0.1
	half := p.Size.Y / 2

	top := p.Position.Y-minOffset < half
	bottom := p.Position.Y+minOffset > float64(field.Height)-half

	if top || bottom {
		p.Position = before
	}
}

// Bounds returns the paddle's collision rectangle.
func (p *Paddle) Bounds() physics.Rect {
	return physics.RectAround(p.Position, p.Size.X/2, p.Size.Y/2)
}

// Reset recenters the paddle vertically and stops it. The horizontal
// position is owned by match placement and left untouched. Held key
// intents are cleared so stale releases from the ended round are no-ops.
func (p *Paddle) Reset(field Field) {
	p.Position.Y = float64(field.Height) / 2
	p.MoveSpeed = 0
	p.MoveDirection = physics.Vec2{}
	p.upHeld = false
	p.downHeld = false
}
