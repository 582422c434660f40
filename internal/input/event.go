package input

import "time"

// Kind classifies a raw event. Only PointerMove and TouchMove move the paddle.
type Kind int

const (
	Unknown Kind = iota
	PointerMove
	TouchMove
	PointerDown
	KeyPress
)

func (k Kind) String() string {
	switch k {
	case PointerMove:
		return "pointermove"
	case TouchMove:
		return "touchmove"
	case PointerDown:
		return "pointerdown"
	case KeyPress:
		return "keypress"
	default:
		return "unknown"
	}
}

type Touch struct {
	ID      int
	ClientY float64
}

// Event is a position sample in host screen coordinates. At is the host clock
// reading when the event was produced; PreventDefault, when set, asks the host
// to suppress its default handling (scrolling on touch screens).
type Event struct {
	Kind           Kind
	ClientY        float64
	Touches        []Touch
	At             time.Duration
	PreventDefault func()
}

// Bounds is the on-screen rectangle of the drawing surface along the vertical
// axis, in the same units as Event.ClientY.
type Bounds struct {
	Top    float64
	Height float64
}

// Source delivers events to subscribers until the returned func is called.
type Source interface {
	Subscribe(fn func(Event)) (unsubscribe func())
}
