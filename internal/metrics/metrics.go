// Package metrics summarises a game as it is played.
package metrics

import (
	"time"

	"github.com/san-kum/waitpong/internal/pong"
)

type Metric interface {
	Name() string
	OnFrame(st pong.State, ev pong.Events, now time.Duration)
	Value() float64
	Reset()
}

// Defaults returns a fresh set of the standard metrics.
func Defaults() []Metric {
	return []Metric{
		NewRally(),
		NewPeakSpeed(),
		NewPoints(pong.SidePlayer),
		NewPoints(pong.SideOpponent),
		NewHits(),
	}
}

// Collect reads every metric into a map keyed by name.
func Collect(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
