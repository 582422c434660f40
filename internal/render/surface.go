// Package render paints a pong.State onto any drawing surface.
package render

import (
	"math"

	"github.com/san-kum/waitpong/internal/pong"
)

const (
	CenterDash = 5.0
	CenterGap  = 15.0
)

// Surface is a fixed-size drawing target in surface pixels. Implementations
// choose their own colours.
type Surface interface {
	Size() (w, h float64)
	Clear()
	FillRect(x, y, w, h float64)
	FillCircle(cx, cy, r float64)
	DashedLine(x0, y0, x1, y1, dash, gap float64)
}

// Detachable is implemented by surfaces that can disappear while a game is
// still mounted.
type Detachable interface {
	Attached() bool
}

// Attached reports whether s can be drawn on.
func Attached(s Surface) bool {
	if s == nil {
		return false
	}
	if d, ok := s.(Detachable); ok {
		return d.Attached()
	}
	return true
}

// Paint draws one frame: both paddles, the ball and the centre guide line.
func Paint(s Surface, st pong.State, p pong.Params) {
	if !Attached(s) {
		return
	}
	s.Clear()
	s.FillRect(0, st.PlayerY, p.PaddleWidth, p.PaddleHeight)
	s.FillRect(p.Width-p.PaddleWidth, st.OpponentY, p.PaddleWidth, p.PaddleHeight)
	s.FillCircle(st.BallX, st.BallY, p.BallRadius)
	s.DashedLine(p.Width/2, 0, p.Width/2, p.Height, CenterDash, CenterGap)
}

// Segment is a straight stroke from (X0, Y0) to (X1, Y1).
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// DashSegments splits the line into dash-long strokes separated by gap. The
// final dash is cut at the end point.
func DashSegments(x0, y0, x1, y1, dash, gap float64) []Segment {
	length := math.Hypot(x1-x0, y1-y0)
	if length == 0 || dash <= 0 || gap < 0 {
		return nil
	}
	ux, uy := (x1-x0)/length, (y1-y0)/length
	segs := make([]Segment, 0, int(length/(dash+gap))+1)
	for d := 0.0; d < length; d += dash + gap {
		e := math.Min(d+dash, length)
		segs = append(segs, Segment{x0 + ux*d, y0 + uy*d, x0 + ux*e, y0 + uy*e})
	}
	return segs
}
