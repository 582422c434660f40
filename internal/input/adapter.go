package input

import (
	"math"
	"time"

	"github.com/san-kum/waitpong/internal/pong"
)

// DefaultThrottle approximates one 60 Hz frame.
const DefaultThrottle = 16 * time.Millisecond

// BoundsFunc reports where the surface currently is on screen. It returns
// false once the surface is gone.
type BoundsFunc func() (Bounds, bool)

// FixedBounds returns a BoundsFunc for a surface that never moves.
func FixedBounds(b Bounds) BoundsFunc {
	return func() (Bounds, bool) { return b, true }
}

// Adapter turns pointer and touch moves into the player paddle target. It
// processes at most one event per throttle window; the newest processed
// sample wins and skipped samples are dropped.
type Adapter struct {
	params   pong.Params
	bounds   BoundsFunc
	throttle time.Duration

	last      time.Duration
	seen      bool
	target    float64
	hasTarget bool

	unsubscribe func()
}

type Option func(*Adapter)

func WithThrottle(d time.Duration) Option {
	return func(a *Adapter) { a.throttle = d }
}

func NewAdapter(p pong.Params, bounds BoundsFunc, opts ...Option) *Adapter {
	a := &Adapter{
		params:   p,
		bounds:   bounds,
		throttle: DefaultThrottle,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Attach subscribes the adapter to src, replacing any previous subscription.
func (a *Adapter) Attach(src Source) {
	a.Detach()
	if src == nil {
		return
	}
	a.unsubscribe = src.Subscribe(func(ev Event) { a.Handle(ev) })
}

// Detach removes the subscription. Safe to call repeatedly.
func (a *Adapter) Detach() {
	if a.unsubscribe == nil {
		return
	}
	a.unsubscribe()
	a.unsubscribe = nil
}

func (a *Adapter) Attached() bool { return a.unsubscribe != nil }

// Handle processes one event and reports whether it moved the target.
func (a *Adapter) Handle(ev Event) bool {
	var clientY float64
	switch ev.Kind {
	case PointerMove:
		clientY = ev.ClientY
	case TouchMove:
		if len(ev.Touches) == 0 {
			return false
		}
		clientY = ev.Touches[0].ClientY
		if ev.PreventDefault != nil {
			ev.PreventDefault()
		}
	default:
		return false
	}

	if a.seen && ev.At-a.last < a.throttle {
		return false
	}
	a.seen = true
	a.last = ev.At

	if a.bounds == nil {
		return false
	}
	b, ok := a.bounds()
	if !ok {
		return false
	}

	y := a.project(clientY, b)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return false
	}
	a.target = a.params.ClampPaddle(y)
	a.hasTarget = true
	return true
}

// project maps a screen coordinate into surface pixels.
func (a *Adapter) project(clientY float64, b Bounds) float64 {
	rel := clientY - b.Top
	if b.Height > 0 && b.Height != a.params.Height {
		rel *= a.params.Height / b.Height
	}
	return rel
}

// Target returns the latest paddle position, if any event produced one.
func (a *Adapter) Target() (float64, bool) {
	return a.target, a.hasTarget
}

// Reset forgets the target and throttle window.
func (a *Adapter) Reset() {
	a.seen = false
	a.last = 0
	a.target = 0
	a.hasTarget = false
}
