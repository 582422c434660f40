package loop

import (
	"time"

	"github.com/san-kum/waitpong/internal/pong"
)

// Observer sees every simulated frame after physics and before drawing.
type Observer interface {
	OnFrame(st pong.State, ev pong.Events, now time.Duration)
}

type ObserverFunc func(st pong.State, ev pong.Events, now time.Duration)

func (f ObserverFunc) OnFrame(st pong.State, ev pong.Events, now time.Duration) { f(st, ev, now) }
