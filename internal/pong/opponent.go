package pong

// Opponent steers the right-hand paddle toward where the ball will arrive.
type Opponent struct {
	Speed    float64
	DeadZone float64
}

func NewOpponent(p Params) *Opponent {
	return &Opponent{Speed: p.OpponentSpeed, DeadZone: p.DeadZone}
}

// Predict returns the centre position the paddle wants to reach. While the
// ball travels away the paddle simply drifts toward the ball's height.
func (o *Opponent) Predict(s State, p Params) float64 {
	if s.BallVX <= 0 {
		return s.BallY
	}
	timeToReach := (p.Width - s.BallX) / s.BallVX
	predicted := s.BallY + s.BallVY*timeToReach
	return clamp(predicted, p.PaddleHeight/2, p.Height-p.PaddleHeight/2)
}

// Update moves the opponent paddle one step of ts reference frames.
func (o *Opponent) Update(s *State, p Params, ts float64) {
	desired := o.Predict(*s, p)
	center := s.OpponentY + p.PaddleHeight/2

	y := s.OpponentY
	switch {
	case center < desired-o.DeadZone:
		y += o.Speed * ts
	case center > desired+o.DeadZone:
		y -= o.Speed * ts
	}
	s.OpponentY = p.ClampPaddle(y)
}
