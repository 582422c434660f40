// Package loop owns the frame-by-frame lifecycle of one mounted game.
package loop

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/san-kum/waitpong/internal/input"
	"github.com/san-kum/waitpong/internal/pong"
	"github.com/san-kum/waitpong/internal/render"
)

// Game drives one pong instance between Activate and Deactivate. All methods
// must be called from the host's frame goroutine.
type Game struct {
	params   pong.Params
	frames   FrameRequester
	surface  render.Surface
	events   input.Source
	adapter  *input.Adapter
	opponent *pong.Opponent
	rng      *rand.Rand
	log      *slog.Logger

	score     *pong.Score
	observers []Observer
	throttle  time.Duration
	bounds    input.BoundsFunc

	state   pong.State
	active  bool
	gen     uint64
	frameID FrameID
	pending bool
	prev    time.Duration
	hasPrev bool
	count   uint64
}

type Option func(*Game)

func WithRand(rng *rand.Rand) Option { return func(g *Game) { g.rng = rng } }

func WithSeed(seed int64) Option {
	return func(g *Game) { g.rng = rand.New(rand.NewSource(seed)) }
}

func WithLogger(l *slog.Logger) Option { return func(g *Game) { g.log = l } }

func WithObserver(o Observer) Option {
	return func(g *Game) { g.observers = append(g.observers, o) }
}

// WithScore attaches an observable score counter.
func WithScore(s *pong.Score) Option { return func(g *Game) { g.score = s } }

func WithThrottle(d time.Duration) Option { return func(g *Game) { g.throttle = d } }

// WithBounds overrides where the surface sits on screen. By default the
// surface is assumed to start at the top of the event coordinate space.
func WithBounds(b input.BoundsFunc) Option { return func(g *Game) { g.bounds = b } }

func New(p pong.Params, frames FrameRequester, surface render.Surface, events input.Source, opts ...Option) (*Game, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if frames == nil {
		return nil, ErrNoScheduler
	}
	if surface == nil {
		return nil, ErrNoSurface
	}

	g := &Game{
		params:   p,
		frames:   frames,
		surface:  surface,
		events:   events,
		opponent: pong.NewOpponent(p),
		throttle: input.DefaultThrottle,
		state:    pong.NewState(p),
	}
	g.state.Running = false
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.log == nil {
		g.log = slog.Default()
	}
	if g.bounds == nil {
		g.bounds = g.surfaceBounds
	}
	g.adapter = input.NewAdapter(p, g.bounds, input.WithThrottle(g.throttle))
	return g, nil
}

func (g *Game) surfaceBounds() (input.Bounds, bool) {
	if !render.Attached(g.surface) {
		return input.Bounds{}, false
	}
	_, h := g.surface.Size()
	return input.Bounds{Top: 0, Height: h}, true
}

// Activate mounts the game: a fresh centred state, input listeners, and the
// first frame request. It does nothing if the game is already active.
func (g *Game) Activate() {
	if g.active {
		return
	}
	g.gen++
	g.active = true
	g.state = pong.NewState(g.params)
	g.hasPrev = false
	g.count = 0
	g.adapter.Reset()
	g.adapter.Attach(g.events)
	g.schedule()
	g.log.Debug("game activated", "width", g.params.Width, "height", g.params.Height)
}

// Deactivate unmounts the game. It cancels the pending frame and detaches
// input listeners; repeated calls are no-ops.
func (g *Game) Deactivate() {
	if !g.active {
		return
	}
	g.active = false
	g.state.Running = false
	if g.pending {
		g.frames.CancelFrame(g.frameID)
		g.pending = false
	}
	g.adapter.Detach()
	g.log.Debug("game deactivated", "frames", g.count)
}

func (g *Game) schedule() {
	gen := g.gen
	g.frameID = g.frames.RequestFrame(func(now time.Duration) { g.tick(gen, now) })
	g.pending = true
}

func (g *Game) tick(gen uint64, now time.Duration) {
	if gen != g.gen || !g.active || !g.state.Running {
		return
	}
	g.pending = false

	var elapsed time.Duration
	if g.hasPrev {
		elapsed = now - g.prev
	}
	g.prev, g.hasPrev = now, true

	if render.Attached(g.surface) {
		g.advance(pong.TimeScale(elapsed), now)
		render.Paint(g.surface, g.state, g.params)
	}

	g.schedule()
}

func (g *Game) advance(ts float64, now time.Duration) {
	if y, ok := g.adapter.Target(); ok {
		g.state.PlayerY = y
	}

	ev := pong.Step(&g.state, g.params, ts, g.rng)
	g.opponent.Update(&g.state, g.params, ts)
	g.count++

	if g.score != nil {
		g.score.Observe(ev)
	}
	if ev.Point != pong.SideNone {
		g.log.Debug("point", "winner", ev.Point, "frame", g.count)
	}
	for _, o := range g.observers {
		o.OnFrame(g.state, ev, now)
	}
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() pong.State { return g.state }

func (g *Game) Active() bool { return g.active }

// Frames counts simulated frames since the last Activate.
func (g *Game) Frames() uint64 { return g.count }

func (g *Game) Params() pong.Params { return g.params }

func (g *Game) Score() *pong.Score { return g.score }
