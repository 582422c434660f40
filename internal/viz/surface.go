package viz

import (
	"math"

	"github.com/san-kum/waitpong/internal/pong"
	"github.com/san-kum/waitpong/internal/render"
)

// CanvasSurface draws pong frames onto a braille Canvas, scaling the game's
// W x H surface onto the canvas sub-pixel grid.
type CanvasSurface struct {
	canvas   *Canvas
	w, h     float64
	attached bool
}

func NewCanvasSurface(c *Canvas, w, h float64) *CanvasSurface {
	return &CanvasSurface{canvas: c, w: w, h: h, attached: true}
}

func (s *CanvasSurface) Size() (float64, float64) { return s.w, s.h }

func (s *CanvasSurface) Attached() bool { return s.attached && s.canvas != nil }

// SetAttached toggles whether the canvas is on screen.
func (s *CanvasSurface) SetAttached(v bool) { s.attached = v }

func (s *CanvasSurface) Canvas() *Canvas { return s.canvas }

func (s *CanvasSurface) scale() (float64, float64) {
	cw, ch := s.canvas.Size()
	return float64(cw) / s.w, float64(ch) / s.h
}

func (s *CanvasSurface) Clear() { s.canvas.Clear() }

func (s *CanvasSurface) FillRect(x, y, w, h float64) {
	kx, ky := s.scale()
	x0, y0 := int(math.Floor(x*kx)), int(math.Floor(y*ky))
	x1, y1 := int(math.Ceil((x+w)*kx))-1, int(math.Ceil((y+h)*ky))-1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	s.canvas.FillRect(x0, y0, x1, y1)
}

func (s *CanvasSurface) FillCircle(cx, cy, r float64) {
	kx, ky := s.scale()
	s.canvas.FillEllipse(cx*kx, cy*ky, r*kx, r*ky)
}

func (s *CanvasSurface) DashedLine(x0, y0, x1, y1, dash, gap float64) {
	kx, ky := s.scale()
	for _, seg := range render.DashSegments(x0, y0, x1, y1, dash, gap) {
		s.canvas.DrawLine(int(seg.X0*kx), int(seg.Y0*ky), int(seg.X1*kx), int(seg.Y1*ky))
	}
}

// NewCourt sizes a canvas cols cells wide to the aspect ratio of p and wraps
// it in a surface.
func NewCourt(cols int, p pong.Params) *CanvasSurface {
	if cols <= 0 {
		cols = DefaultCols
	}
	rows := int(math.Round(float64(cols) * 2 * p.Height / p.Width / 4))
	if rows < 1 {
		rows = 1
	}
	return NewCanvasSurface(NewCanvas(cols, rows), p.Width, p.Height)
}
