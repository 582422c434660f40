package pong

import "math"

// State is the authoritative record of one mounted game. It is owned by a
// single scheduler and mutated once per frame.
type State struct {
	PlayerY   float64
	OpponentY float64
	BallX     float64
	BallY     float64
	BallVX    float64
	BallVY    float64
	Running   bool
}

// NewState returns the centred starting position for p.
func NewState(p Params) State {
	paddleY := p.Height/2 - p.PaddleHeight/2
	return State{
		PlayerY:   paddleY,
		OpponentY: paddleY,
		BallX:     p.Width / 2,
		BallY:     p.Height / 2,
		BallVX:    p.BallSpeed,
		BallVY:    p.BallSpeed,
		Running:   true,
	}
}

// Speed is the magnitude of the ball velocity.
func (s State) Speed() float64 {
	return math.Hypot(s.BallVX, s.BallVY)
}

// IsValid reports whether every coordinate is finite.
func (s State) IsValid() bool {
	for _, v := range []float64{s.PlayerY, s.OpponentY, s.BallX, s.BallY, s.BallVX, s.BallVY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
