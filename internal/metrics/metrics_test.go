package metrics

import (
	"testing"

	"github.com/san-kum/waitpong/internal/pong"
)

func TestRally(t *testing.T) {
	r := NewRally()
	frames := []pong.Events{
		{PlayerHit: true},
		{},
		{OpponentHit: true},
		{PlayerHit: true},
		{Point: pong.SidePlayer},
		{PlayerHit: true},
	}
	for _, ev := range frames {
		r.OnFrame(pong.State{}, ev, 0)
	}

	if r.Value() != 3 {
		t.Errorf("expected longest rally 3, got %v", r.Value())
	}
	if r.Current() != 1 {
		t.Errorf("expected current rally 1, got %d", r.Current())
	}

	r.Reset()
	if r.Value() != 0 || r.Current() != 0 {
		t.Error("reset did not clear rally")
	}
}

func TestPeakSpeed(t *testing.T) {
	p := NewPeakSpeed()
	p.OnFrame(pong.State{BallVX: 3, BallVY: 4}, pong.Events{}, 0)
	p.OnFrame(pong.State{BallVX: 1, BallVY: 1}, pong.Events{}, 0)

	if p.Value() != 5 {
		t.Errorf("expected peak 5, got %v", p.Value())
	}
}

func TestCollect(t *testing.T) {
	ms := Defaults()
	events := []pong.Events{
		{PlayerHit: true},
		{Point: pong.SideOpponent},
		{Point: pong.SideOpponent},
		{Point: pong.SidePlayer},
	}
	for _, ev := range events {
		for _, m := range ms {
			m.OnFrame(pong.State{BallVX: 4, BallVY: 4}, ev, 0)
		}
	}

	got := Collect(ms)
	want := map[string]float64{
		"longest_rally":   1,
		"player_hits":     1,
		"points_player":   1,
		"points_opponent": 2,
	}
	for name, v := range want {
		if got[name] != v {
			t.Errorf("%s = %v, want %v", name, got[name], v)
		}
	}
	if _, ok := got["peak_speed"]; !ok {
		t.Error("peak_speed missing")
	}
}
