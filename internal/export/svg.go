package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/waitpong/internal/pong"
	"github.com/san-kum/waitpong/internal/render"
	"github.com/san-kum/waitpong/internal/storage"
	"github.com/san-kum/waitpong/internal/viz"
)

const (
	Background = "#0a0a0a"
	Foreground = "#e6e6e6"
	NetColor   = "#5a5a5a"
)

func header(sb *strings.Builder, w, h float64) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, w, h, w, h, Background)
}

// CanvasToSVG converts a braille canvas to SVG, one dot per lit sub-pixel.
func CanvasToSVG(canvas *viz.Canvas, scale float64, fill string) string {
	if canvas == nil {
		return ""
	}

	cw, ch := canvas.Size()
	width, height := float64(cw)*scale, float64(ch)*scale

	var sb strings.Builder
	header(&sb, width, height)
	fmt.Fprintf(&sb, "<g fill=\"%s\">\n", fill)

	dotRadius := scale * 0.4
	for y := 0; y < ch; y++ {
		for x := 0; x < cw; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius)
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SVGSurface collects draw calls as vector SVG elements.
type SVGSurface struct {
	W, H  float64
	Scale float64
	body  strings.Builder
}

func NewSVGSurface(w, h, scale float64) *SVGSurface {
	if scale <= 0 {
		scale = 1
	}
	return &SVGSurface{W: w, H: h, Scale: scale}
}

func (s *SVGSurface) Size() (float64, float64) { return s.W, s.H }

func (s *SVGSurface) Clear() { s.body.Reset() }

func (s *SVGSurface) FillRect(x, y, w, h float64) {
	k := s.Scale
	fmt.Fprintf(&s.body, "<rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" fill=\"%s\"/>\n",
		x*k, y*k, w*k, h*k, Foreground)
}

func (s *SVGSurface) FillCircle(cx, cy, r float64) {
	k := s.Scale
	fmt.Fprintf(&s.body, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\"/>\n", cx*k, cy*k, r*k, Foreground)
}

func (s *SVGSurface) DashedLine(x0, y0, x1, y1, dash, gap float64) {
	k := s.Scale
	fmt.Fprintf(&s.body, "<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"%s\" stroke-width=\"%.1f\" stroke-dasharray=\"%.1f %.1f\"/>\n",
		x0*k, y0*k, x1*k, y1*k, NetColor, k, dash*k, gap*k)
}

func (s *SVGSurface) String() string {
	var sb strings.Builder
	header(&sb, s.W*s.Scale, s.H*s.Scale)
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>")
	return sb.String()
}

// FrameToSVG paints one state as a vector image.
func FrameToSVG(st pong.State, p pong.Params, scale float64) string {
	s := NewSVGSurface(p.Width, p.Height, scale)
	render.Paint(s, st, p)
	return s.String()
}

// BallTrace draws the recorded ball path over an empty court. Serves break
// the path so the jump back to centre is not drawn. A jump is a move longer
// than a quarter court or than half again the distance the ball could cover
// between the two samples, whichever is larger.
func BallTrace(frames []storage.Frame, p pong.Params, scale float64, stroke string) string {
	if len(frames) < 2 {
		return ""
	}
	if scale <= 0 {
		scale = 1
	}

	var sb strings.Builder
	header(&sb, p.Width*scale, p.Height*scale)
	fmt.Fprintf(&sb, "<line x1=\"%.1f\" y1=\"0\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"%s\" stroke-dasharray=\"%.1f %.1f\"/>\n",
		p.Width/2*scale, p.Width/2*scale, p.Height*scale, NetColor, render.CenterDash*scale, render.CenterGap*scale)
	fmt.Fprintf(&sb, "<path fill=\"none\" stroke=\"%s\" stroke-width=\"1.5\" d=\"", stroke)

	for i, f := range frames {
		x, y := f.State.BallX*scale, f.State.BallY*scale
		cmd := " L"
		if i == 0 {
			cmd = "M"
		} else if isServe(frames[i-1], f, p) {
			cmd = " M"
		}
		fmt.Fprintf(&sb, "%s%.1f,%.1f", cmd, x, y)
	}

	sb.WriteString("\"/>\n</svg>")
	return sb.String()
}

func isServe(prev, cur storage.Frame, p pong.Params) bool {
	reach := 0.0
	if dt := cur.Time - prev.Time; dt > 0 {
		reach = 1.5 * math.Abs(prev.State.BallVX) * pong.TimeScale(dt)
	}
	return math.Abs(cur.State.BallX-prev.State.BallX) > math.Max(p.Width/4, reach)
}
