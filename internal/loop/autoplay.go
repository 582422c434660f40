package loop

import (
	"math/rand"
	"time"

	"github.com/san-kum/waitpong/internal/input"
)

// Autoplayer stands in for a user: it feeds pointer moves that follow the
// ball through the same input path a real host uses.
type Autoplayer struct {
	game   *Game
	out    *input.Dispatcher
	bounds input.Bounds
	rng    *rand.Rand

	// Reaction is the fraction of the remaining distance covered per move.
	Reaction float64
	// Jitter is the maximum aim error in surface pixels.
	Jitter float64

	y float64
}

func NewAutoplayer(g *Game, out *input.Dispatcher, bounds input.Bounds, rng *rand.Rand) *Autoplayer {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Autoplayer{
		game:     g,
		out:      out,
		bounds:   bounds,
		rng:      rng,
		Reaction: 0.35,
		Jitter:   8,
		y:        g.Snapshot().PlayerY,
	}
}

// Move emits one pointer move at now.
func (a *Autoplayer) Move(now time.Duration) {
	st := a.game.Snapshot()
	p := a.game.Params()

	aim := st.BallY - p.PaddleHeight/2 + (a.rng.Float64()*2-1)*a.Jitter
	a.y += (aim - a.y) * a.Reaction

	scale := 1.0
	if a.bounds.Height > 0 {
		scale = a.bounds.Height / p.Height
	}
	a.out.Dispatch(input.Event{
		Kind:    input.PointerMove,
		ClientY: a.bounds.Top + a.y*scale,
		At:      now,
	})
}
