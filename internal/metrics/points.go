package metrics

import (
	"time"

	"github.com/san-kum/waitpong/internal/pong"
)

// Points counts points won by one side.
type Points struct {
	side  pong.Side
	count int
}

func NewPoints(side pong.Side) *Points { return &Points{side: side} }

func (p *Points) Name() string { return "points_" + p.side.String() }

func (p *Points) OnFrame(_ pong.State, ev pong.Events, _ time.Duration) {
	if ev.Point == p.side {
		p.count++
	}
}

func (p *Points) Value() float64 { return float64(p.count) }
func (p *Points) Reset()         { p.count = 0 }

// Hits counts player paddle hits.
type Hits struct {
	count int
}

func NewHits() *Hits { return &Hits{} }

func (h *Hits) Name() string { return "player_hits" }

func (h *Hits) OnFrame(_ pong.State, ev pong.Events, _ time.Duration) {
	if ev.PlayerHit {
		h.count++
	}
}

func (h *Hits) Value() float64 { return float64(h.count) }
func (h *Hits) Reset()         { h.count = 0 }
