package pong

import (
	"math"
	"math/rand"
)

// Side identifies which end lost a point.
type Side int

const (
	SideNone Side = iota
	// SidePlayer means the player won the point: the ball left on the right.
	SidePlayer
	// SideOpponent means the ball left on the left.
	SideOpponent
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideOpponent:
		return "opponent"
	default:
		return "none"
	}
}

// Events describes what happened during one Step.
type Events struct {
	WallBounce  bool
	PlayerHit   bool
	OpponentHit bool
	Point       Side
}

// Step advances the ball by ts reference frames and resolves walls, paddles
// and out-of-bounds. Paddle positions are read, never written. Collisions are
// tested against the post-move position only, so a fast enough ball can pass
// a paddle between two frames.
func Step(s *State, p Params, ts float64, rng *rand.Rand) Events {
	var ev Events

	x := s.BallX + s.BallVX*ts
	y := s.BallY + s.BallVY*ts
	vx, vy := s.BallVX, s.BallVY
	r := p.BallRadius

	if y < r || y > p.Height-r {
		vy = -vy
		y = clamp(y, r, p.Height-r)
		ev.WallBounce = true
	}

	if x-r < p.PaddleWidth && y > s.PlayerY && y < s.PlayerY+p.PaddleHeight {
		angle := strikeAngle(y, s.PlayerY, p.PaddleHeight)
		speed := math.Hypot(vx, vy) * p.SpeedUp
		vx = math.Abs(math.Cos(angle) * speed)
		vy = math.Sin(angle) * speed
		ev.PlayerHit = true
	}

	if x+r > p.Width-p.PaddleWidth && y > s.OpponentY && y < s.OpponentY+p.PaddleHeight {
		angle := strikeAngle(y, s.OpponentY, p.PaddleHeight)
		speed := math.Hypot(vx, vy) * p.SpeedUp
		vx = -math.Abs(math.Cos(angle+math.Pi) * speed)
		vy = math.Sin(angle) * speed
		ev.OpponentHit = true
	}

	if x < 0 || x > p.Width {
		if x < 0 {
			ev.Point = SideOpponent
		} else {
			ev.Point = SidePlayer
		}
		Serve(s, p, rng)
		return ev
	}

	s.BallX, s.BallY = x, y
	s.BallVX, s.BallVY = vx, vy
	return ev
}

// Serve puts the ball back in the centre at base speed on a random diagonal.
func Serve(s *State, p Params, rng *rand.Rand) {
	s.BallX = p.Width / 2
	s.BallY = p.Height / 2
	s.BallVX = p.BallSpeed * randomSign(rng)
	s.BallVY = p.BallSpeed * randomSign(rng)
}

// strikeAngle maps the strike offset (0 at paddle top, 1 at bottom) onto
// [-45°, +45°].
func strikeAngle(y, paddleY, paddleHeight float64) float64 {
	offset := (y - paddleY) / paddleHeight
	return (offset - 0.5) * math.Pi / 2
}

func randomSign(rng *rand.Rand) float64 {
	var f float64
	if rng != nil {
		f = rng.Float64()
	} else {
		f = rand.Float64()
	}
	if f > 0.5 {
		return 1
	}
	return -1
}
