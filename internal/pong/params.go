package pong

import "math"

const (
	DefaultWidth         = 300.0
	DefaultHeight        = 200.0
	DefaultPaddleWidth   = 8.0
	DefaultPaddleHeight  = 50.0
	DefaultBallRadius    = 6.0
	DefaultBallSpeed     = 4.0
	DefaultOpponentSpeed = 3.0
	DefaultDeadZone      = 10.0
	DefaultSpeedUp       = 1.05
	DefaultScorePerHit   = 10
)

// Params holds the constants of one game instance. They never change while
// the instance is mounted.
type Params struct {
	Width         float64
	Height        float64
	PaddleWidth   float64
	PaddleHeight  float64
	BallRadius    float64
	BallSpeed     float64
	OpponentSpeed float64
	DeadZone      float64
	SpeedUp       float64
	ScorePerHit   int
}

func DefaultParams() Params {
	return Params{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		PaddleWidth:   DefaultPaddleWidth,
		PaddleHeight:  DefaultPaddleHeight,
		BallRadius:    DefaultBallRadius,
		BallSpeed:     DefaultBallSpeed,
		OpponentSpeed: DefaultOpponentSpeed,
		DeadZone:      DefaultDeadZone,
		SpeedUp:       DefaultSpeedUp,
		ScorePerHit:   DefaultScorePerHit,
	}
}

func (p Params) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"width", p.Width},
		{"height", p.Height},
		{"paddle width", p.PaddleWidth},
		{"paddle height", p.PaddleHeight},
		{"ball radius", p.BallRadius},
		{"ball speed", p.BallSpeed},
		{"opponent speed", p.OpponentSpeed},
	}
	for _, f := range positive {
		if !(f.v > 0) || math.IsInf(f.v, 0) {
			return &ParamError{Field: f.name, Value: f.v}
		}
	}
	if p.PaddleHeight > p.Height {
		return &ParamError{Field: "paddle height", Value: p.PaddleHeight}
	}
	if 2*p.BallRadius >= p.Height || 2*p.BallRadius >= p.Width {
		return &ParamError{Field: "ball radius", Value: p.BallRadius}
	}
	if 2*p.PaddleWidth >= p.Width {
		return &ParamError{Field: "paddle width", Value: p.PaddleWidth}
	}
	if p.DeadZone < 0 || math.IsNaN(p.DeadZone) {
		return &ParamError{Field: "dead zone", Value: p.DeadZone}
	}
	if !(p.SpeedUp >= 1) || math.IsInf(p.SpeedUp, 0) {
		return &ParamError{Field: "speed up", Value: p.SpeedUp}
	}
	if p.ScorePerHit < 0 {
		return &ParamError{Field: "score per hit", Value: float64(p.ScorePerHit)}
	}
	return nil
}

// MaxPaddleY is the largest top-edge offset that keeps a paddle on the surface.
func (p Params) MaxPaddleY() float64 { return p.Height - p.PaddleHeight }

// ClampPaddle keeps a paddle's top edge inside [0, H - paddleHeight].
func (p Params) ClampPaddle(y float64) float64 {
	return clamp(y, 0, p.MaxPaddleY())
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
