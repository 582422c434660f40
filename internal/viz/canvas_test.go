package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/waitpong/internal/pong"
	"github.com/san-kum/waitpong/internal/render"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("expected dot 8, got %U", c.Grid[0][1])
	}
	if !c.IsSet(3, 3) || c.IsSet(1, 1) {
		t.Error("IsSet disagrees with Set")
	}

	c.Unset(0, 0)
	if c.Grid[0][0] != blank {
		t.Errorf("expected blank cell, got %U", c.Grid[0][0])
	}

	c.Set(-1, 0)
	c.Set(100, 100)
	c.Clear()
	if strings.Trim(c.String(), string(blank)) != "" {
		t.Errorf("expected blank canvas, got %q", c.String())
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(4, 2)
	c.FillRect(3, 2, 0, 0)
	for y := 0; y <= 2; y++ {
		for x := 0; x <= 3; x++ {
			if !c.IsSet(x, y) {
				t.Errorf("expected (%d,%d) set", x, y)
			}
		}
	}
	if c.IsSet(4, 0) || c.IsSet(0, 3) {
		t.Error("fill leaked past its corner")
	}
}

func TestCanvasSurfaceScaling(t *testing.T) {
	// 300x200 onto 60x20 cells is 120x80 sub-pixels: 0.4 per surface pixel.
	s := NewCanvasSurface(NewCanvas(60, 20), 300, 200)

	s.FillRect(0, 0, 8, 50)
	if !s.Canvas().IsSet(0, 0) || !s.Canvas().IsSet(3, 19) {
		t.Error("expected paddle pixels at the left edge")
	}
	if s.Canvas().IsSet(4, 0) || s.Canvas().IsSet(0, 20) {
		t.Error("paddle drawn too large")
	}

	s.Clear()
	s.FillCircle(150, 100, 6)
	if !s.Canvas().IsSet(60, 40) {
		t.Error("expected ball centre lit")
	}
}

func TestCanvasSurfaceDashedLine(t *testing.T) {
	s := NewCanvasSurface(NewCanvas(60, 20), 300, 200)
	s.DashedLine(150, 0, 150, 200, render.CenterDash, render.CenterGap)

	c := s.Canvas()
	if !c.IsSet(60, 0) {
		t.Error("expected first dash at the top")
	}
	// First gap spans surface y 5..20, sub-pixel 2..8.
	if c.IsSet(60, 5) {
		t.Error("expected gap after the first dash")
	}
	if !c.IsSet(60, 8) {
		t.Error("expected second dash at y=20")
	}
}

func TestPaintOnCanvas(t *testing.T) {
	p := pong.DefaultParams()
	s := NewCanvasSurface(NewCanvas(60, 20), p.Width, p.Height)
	render.Paint(s, pong.NewState(p), p)

	c := s.Canvas()
	if !c.IsSet(0, 40) {
		t.Error("expected player paddle")
	}
	if !c.IsSet(119, 40) {
		t.Error("expected opponent paddle")
	}

	s.SetAttached(false)
	render.Paint(s, pong.NewState(p), p)
	if !c.IsSet(0, 40) {
		t.Error("detached surface must not be cleared")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "minimal" {
		t.Error("unknown theme should fall back to minimal")
	}
	SetTheme("retro")
	NextTheme()
	if CurrentTheme.Name != "cyberpunk" {
		t.Errorf("expected cyberpunk after retro, got %s", CurrentTheme.Name)
	}
	SetTheme("sunset")
	NextTheme()
	if CurrentTheme.Name != "minimal" {
		t.Errorf("expected wrap to minimal, got %s", CurrentTheme.Name)
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names out of sync")
	}
}
