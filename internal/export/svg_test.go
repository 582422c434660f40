package export

import (
	"strings"
	"testing"

	"github.com/san-kum/waitpong/internal/pong"
	"github.com/san-kum/waitpong/internal/storage"
	"github.com/san-kum/waitpong/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	if CanvasToSVG(nil, 1, Foreground) != "" {
		t.Error("expected empty output for nil canvas")
	}

	c := viz.NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	svg := CanvasToSVG(c, 2, "#00ff00")
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("expected 2 dots, got %d", got)
	}
	if !strings.Contains(svg, `width="8" height="8"`) {
		t.Errorf("unexpected dimensions in %s", svg)
	}
	if !strings.Contains(svg, `cx="7.0" cy="7.0"`) {
		t.Error("expected dot at the far corner")
	}
}

func TestFrameToSVG(t *testing.T) {
	p := pong.DefaultParams()
	svg := FrameToSVG(pong.NewState(p), p, 2)

	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("unterminated svg")
	}
	if got := strings.Count(svg, "<rect"); got != 3 {
		t.Errorf("expected background and two paddles, got %d rects", got)
	}
	for _, want := range []string{
		`width="600" height="400"`,
		`<rect x="584.0" y="150.0" width="16.0" height="100.0"`,
		`<circle cx="300.0" cy="200.0" r="12.0"`,
		`stroke-dasharray="10.0 30.0"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestBallTrace(t *testing.T) {
	p := pong.DefaultParams()
	if BallTrace(nil, p, 1, "#fff") != "" {
		t.Error("expected empty output for short trace")
	}

	frames := []storage.Frame{
		{State: pong.State{BallX: 280, BallY: 100}},
		{State: pong.State{BallX: 296, BallY: 120}},
		{State: pong.State{BallX: 150, BallY: 100}},
		{State: pong.State{BallX: 146, BallY: 96}},
	}
	svg := BallTrace(frames, p, 1, "#fff")
	if !strings.Contains(svg, `d="M280.0,100.0 L296.0,120.0 M150.0,100.0 L146.0,96.0"`) {
		t.Errorf("unexpected path in %s", svg)
	}
}

func TestBallTraceStrided(t *testing.T) {
	p := pong.DefaultParams()
	step := 20 * pong.ReferenceFrame
	frames := []storage.Frame{
		{Time: 0, State: pong.State{BallX: 100, BallY: 100, BallVX: 4}},
		{Time: step, State: pong.State{BallX: 180, BallY: 120, BallVX: 4}},
		{Time: 2 * step, State: pong.State{BallX: 260, BallY: 140, BallVX: 4}},
		{Time: 3 * step, State: pong.State{BallX: 70, BallY: 90, BallVX: -4}},
	}
	svg := BallTrace(frames, p, 1, "#fff")
	want := `d="M100.0,100.0 L180.0,120.0 L260.0,140.0 M70.0,90.0"`
	if !strings.Contains(svg, want) {
		t.Errorf("expected strided flight unbroken, got %s", svg)
	}
}
