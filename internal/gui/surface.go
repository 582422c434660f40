package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/waitpong/internal/render"
)

// Surface draws through raylib between BeginDrawing and EndDrawing. Surface
// pixels are scaled by Scale into window pixels.
type Surface struct {
	W, H  float64
	Scale float64
}

func (s *Surface) Size() (float64, float64) { return s.W, s.H }

// Attached is false while the window is minimized or hidden.
func (s *Surface) Attached() bool {
	return rl.IsWindowReady() && !rl.IsWindowMinimized() && !rl.IsWindowHidden()
}

func (s *Surface) px(v float64) int32 { return int32(v * s.Scale) }

func (s *Surface) Clear() { rl.ClearBackground(ColBg) }

func (s *Surface) FillRect(x, y, w, h float64) {
	rl.DrawRectangle(s.px(x), s.px(y), s.px(w), s.px(h), ColCourt)
}

func (s *Surface) FillCircle(cx, cy, r float64) {
	rl.DrawCircle(s.px(cx), s.px(cy), float32(r*s.Scale), ColCourt)
}

func (s *Surface) DashedLine(x0, y0, x1, y1, dash, gap float64) {
	thick := float32(s.Scale)
	for _, seg := range render.DashSegments(x0, y0, x1, y1, dash, gap) {
		rl.DrawLineEx(
			rl.NewVector2(float32(seg.X0*s.Scale), float32(seg.Y0*s.Scale)),
			rl.NewVector2(float32(seg.X1*s.Scale), float32(seg.Y1*s.Scale)),
			thick, ColNet,
		)
	}
}
