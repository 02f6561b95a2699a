package match

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/object"
	"github.com/tomz197/pong/internal/physics"
)

func testMatch() *Match {
	return New(Config{
		Field:        object.Field{Width: 1280, Height: 720},
		PaddleSize:   physics.Vec2{X: 25, Y: 150},
		BallRadius:   20,
		BorderOffset: 50,
	}, rand.New(rand.NewPCG(1, 0)))
}

func press(k input.Key) input.Event   { return input.Event{Key: k, Pressed: true} }
func release(k input.Key) input.Event { return input.Event{Key: k, Pressed: false} }

func TestNewMatch(t *testing.T) {
	m := testMatch()

	if m.Playing() {
		t.Error("new match already rallying")
	}
	if m.Score(0) != 0 || m.Score(1) != 0 {
		t.Errorf("scores = %d:%d, want 0:0", m.Score(0), m.Score(1))
	}
	if got := m.Ball().Position; got != (physics.Vec2{X: 640, Y: 360}) {
		t.Errorf("ball at %v, want field center", got)
	}
	if x := m.Paddle(0).Position.X; x != 50 {
		t.Errorf("left paddle x = %v, want 50", x)
	}
	if x := m.Paddle(1).Position.X; x != 1230 {
		t.Errorf("right paddle x = %v, want 1230", x)
	}
}

func TestServe(t *testing.T) {
	m := testMatch()

	m.HandleEvent(press(input.KeyServe))

	if !m.Playing() {
		t.Fatal("serve did not start a rally")
	}
	b := m.Ball()
	if b.MoveSpeed != object.DefaultMoveSpeed {
		t.Errorf("ball speed = %v, want %v", b.MoveSpeed, object.DefaultMoveSpeed)
	}
	diag := 1 / math.Sqrt2
	if math.Abs(math.Abs(b.MoveDirection.X)-diag) > 1e-12 {
		t.Errorf("serve direction %v is not a normalized diagonal", b.MoveDirection)
	}
}

func TestServeKeyIgnoredMidRally(t *testing.T) {
	m := testMatch()
	m.HandleEvent(press(input.KeyServe))
	dir := m.Ball().MoveDirection

	m.HandleEvent(press(input.KeyServe))

	if m.Ball().MoveDirection != dir {
		t.Errorf("mid-rally serve relaunched the ball: %v -> %v", dir, m.Ball().MoveDirection)
	}
}

func TestServeReleaseIgnored(t *testing.T) {
	m := testMatch()
	m.HandleEvent(release(input.KeyServe))
	if m.Playing() {
		t.Error("serve key release started a rally")
	}
}

func TestMovementRouting(t *testing.T) {
	tests := []struct {
		name   string
		key    input.Key
		paddle int
		wantY  float64
	}{
		{"Left paddle up", input.KeyLeftUp, 0, -1},
		{"Left paddle down", input.KeyLeftDown, 0, 1},
		{"Right paddle up", input.KeyRightUp, 1, -1},
		{"Right paddle down", input.KeyRightDown, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testMatch()
			m.HandleEvent(press(tt.key))
			if got := m.Paddle(tt.paddle).MoveDirection.Y; got != tt.wantY {
				t.Errorf("paddle %d direction = %v, want %v", tt.paddle, got, tt.wantY)
			}
			m.HandleEvent(release(tt.key))
			if got := m.Paddle(tt.paddle).MoveSpeed; got != 0 {
				t.Errorf("paddle %d still moving after release", tt.paddle)
			}
		})
	}
}

// Paddles may be pre-positioned while waiting for the serve.
func TestPrePositioningBeforeServe(t *testing.T) {
	m := testMatch()
	m.HandleEvent(press(input.KeyLeftUp))

	m.Tick(0.1)

	if got := m.Paddle(0).Position.Y; got != 330 {
		t.Errorf("paddle y = %v, want 330", got)
	}
	if m.Playing() {
		t.Error("movement started a rally")
	}
}

// Side-out: ball escapes past the left paddle, the right defender scores,
// everything resets in place and the match waits for the next serve.
func TestSideOutLeft(t *testing.T) {
	m := testMatch()
	m.HandleEvent(press(input.KeyServe))

	b := m.Ball()
	b.Position = physics.Vec2{X: 5, Y: 360}
	b.MoveDirection = physics.Vec2{X: -1, Y: 0}
	b.MoveSpeed = 300
	m.Paddle(0).Position.Y = 100 // Out of the ball's path

	m.Tick(0.1)

	if m.Score(1) != 1 || m.Score(0) != 0 {
		t.Errorf("scores = %d:%d, want 0:1", m.Score(0), m.Score(1))
	}
	if b.Position != (physics.Vec2{X: 640, Y: 360}) {
		t.Errorf("ball at %v, want reset to center", b.Position)
	}
	if b.MoveSpeed != 0 {
		t.Errorf("ball speed = %v, want 0", b.MoveSpeed)
	}
	if m.Playing() {
		t.Error("match still rallying after side-out")
	}
	for i := 0; i < 2; i++ {
		if y := m.Paddle(i).Position.Y; y != 360 {
			t.Errorf("paddle %d y = %v, want 360", i, y)
		}
	}
}

func TestSideOutRight(t *testing.T) {
	m := testMatch()
	m.HandleEvent(press(input.KeyServe))

	b := m.Ball()
	b.Position = physics.Vec2{X: 1275, Y: 360}
	b.MoveDirection = physics.Vec2{X: 1, Y: 0}
	b.MoveSpeed = 300
	m.Paddle(1).Position.Y = 100

	m.Tick(0.1)

	if m.Score(0) != 1 || m.Score(1) != 0 {
		t.Errorf("scores = %d:%d, want 1:0", m.Score(0), m.Score(1))
	}
}

func TestScoresPersistAcrossRounds(t *testing.T) {
	m := testMatch()

	for round := 0; round < 3; round++ {
		m.HandleEvent(press(input.KeyServe))
		b := m.Ball()
		b.Position = physics.Vec2{X: 5, Y: 360}
		b.MoveDirection = physics.Vec2{X: -1, Y: 0}
		b.MoveSpeed = 300
		m.Paddle(0).Position.Y = 100
		m.Tick(0.1)
	}

	if m.Score(1) != 3 {
		t.Errorf("right defender score = %d, want 3", m.Score(1))
	}
}

func TestPaddleHitReflectsBall(t *testing.T) {
	m := testMatch()
	m.HandleEvent(press(input.KeyServe))

	b := m.Ball()
	b.Position = physics.Vec2{X: 70, Y: 360}
	b.MoveDirection = physics.Vec2{X: -1, Y: 0}
	b.MoveSpeed = 300

	m.Tick(0)

	if b.MoveDirection.X != 1 {
		t.Errorf("direction x = %v, want 1 after paddle hit", b.MoveDirection.X)
	}
	if m.Score(0) != 0 || m.Score(1) != 0 {
		t.Error("paddle hit awarded a point")
	}
	if !m.Playing() {
		t.Error("paddle hit ended the rally")
	}
}

// A paddle hit shadows the side-out check even if the ball already crosses
// the boundary line in the same tick.
func TestPaddleHitShadowsSideOut(t *testing.T) {
	m := testMatch()
	m.HandleEvent(press(input.KeyServe))

	b := m.Ball()
	b.Position = physics.Vec2{X: 15, Y: 360} // Past the left edge (x - r < 0)
	b.MoveDirection = physics.Vec2{X: -1, Y: 0}
	b.MoveSpeed = 300
	m.Paddle(0).Position.X = 20 // Overlapping the ball

	m.Tick(0)

	if m.Score(1) != 0 {
		t.Errorf("side-out scored despite paddle hit: %d", m.Score(1))
	}
	if b.MoveDirection.X != 1 {
		t.Errorf("direction x = %v, want 1", b.MoveDirection.X)
	}
}

// When the ball overlaps both paddles in one tick, exactly one reflection
// occurs and the larger overlap wins; ties go to the left paddle.
func TestTickBothPaddlesOverlap(t *testing.T) {
	tests := []struct {
		name   string
		leftX  float64
		rightX float64
	}{
		{"Deeper left overlap", 635, 665},
		{"Deeper right overlap", 615, 645},
		{"Exact tie resolves left", 630, 650},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testMatch()
			m.HandleEvent(press(input.KeyServe))

			b := m.Ball()
			b.Position = physics.Vec2{X: 640, Y: 360}
			b.MoveDirection = physics.Vec2{X: -1, Y: 0}
			b.MoveSpeed = 300
			m.Paddle(0).Position = physics.Vec2{X: tt.leftX, Y: 360}
			m.Paddle(1).Position = physics.Vec2{X: tt.rightX, Y: 360}

			m.Tick(0)

			// One reflection, not two: the x direction is flipped exactly once.
			if b.MoveDirection.X != 1 {
				t.Errorf("direction x = %v, want 1 (single reflection)", b.MoveDirection.X)
			}
		})
	}
}
