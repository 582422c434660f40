package metrics

import (
	"time"

	"github.com/san-kum/waitpong/internal/pong"
)

// Rally tracks the longest run of paddle hits within a single point.
type Rally struct {
	current int
	longest int
}

func NewRally() *Rally { return &Rally{} }

func (r *Rally) Name() string { return "longest_rally" }

func (r *Rally) OnFrame(_ pong.State, ev pong.Events, _ time.Duration) {
	if ev.PlayerHit {
		r.current++
	}
	if ev.OpponentHit {
		r.current++
	}
	if r.current > r.longest {
		r.longest = r.current
	}
	if ev.Point != pong.SideNone {
		r.current = 0
	}
}

func (r *Rally) Current() int { return r.current }

func (r *Rally) Value() float64 { return float64(r.longest) }

func (r *Rally) Reset() {
	r.current = 0
	r.longest = 0
}

// PeakSpeed records the fastest ball seen.
type PeakSpeed struct {
	peak float64
}

func NewPeakSpeed() *PeakSpeed { return &PeakSpeed{} }

func (p *PeakSpeed) Name() string { return "peak_speed" }

func (p *PeakSpeed) OnFrame(st pong.State, _ pong.Events, _ time.Duration) {
	if s := st.Speed(); s > p.peak {
		p.peak = s
	}
}

func (p *PeakSpeed) Value() float64 { return p.peak }
func (p *PeakSpeed) Reset()         { p.peak = 0 }
