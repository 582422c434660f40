// Package sim plays headless games with a scripted player.
package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/san-kum/waitpong/internal/input"
	"github.com/san-kum/waitpong/internal/loop"
	"github.com/san-kum/waitpong/internal/metrics"
	"github.com/san-kum/waitpong/internal/pong"
	"github.com/san-kum/waitpong/internal/storage"
	"github.com/san-kum/waitpong/internal/viz"
)

var ErrNoFrames = errors.New("sim: frame count must be positive")

// Result is one finished headless game.
type Result struct {
	Seed     int64
	Frames   uint64
	Elapsed  time.Duration
	Score    int
	Metrics  map[string]float64
	Final    pong.State
	Court    *viz.Canvas
	Recorded []storage.Frame
}

type Simulator struct {
	params   pong.Params
	period   time.Duration
	throttle time.Duration
	record   int
	log      *slog.Logger
}

type Option func(*Simulator)

func WithPeriod(d time.Duration) Option   { return func(s *Simulator) { s.period = d } }
func WithThrottle(d time.Duration) Option { return func(s *Simulator) { s.throttle = d } }
func WithLogger(l *slog.Logger) Option    { return func(s *Simulator) { s.log = l } }

// WithRecording keeps every n-th frame in Result.Recorded.
func WithRecording(every int) Option {
	return func(s *Simulator) {
		if every < 1 {
			every = 1
		}
		s.record = every
	}
}

func New(p pong.Params, opts ...Option) *Simulator {
	s := &Simulator{
		params:   p,
		period:   pong.ReferenceFrame,
		throttle: input.DefaultThrottle,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Run plays frames frames with its own game, clock and random source.
func (s *Simulator) Run(ctx context.Context, seed int64, frames int) (*Result, error) {
	if frames <= 0 {
		return nil, ErrNoFrames
	}

	queue := loop.NewFrameQueue()
	events := input.NewDispatcher()
	court := viz.NewCourt(viz.DefaultCols, s.params)
	score := pong.NewScore(s.params.ScorePerHit)
	ms := metrics.Defaults()

	opts := []loop.Option{
		loop.WithSeed(seed),
		loop.WithLogger(s.log.With("seed", seed)),
		loop.WithThrottle(s.throttle),
		loop.WithScore(score),
	}
	for _, m := range ms {
		opts = append(opts, loop.WithObserver(m))
	}
	var rec *storage.Recorder
	if s.record > 0 {
		rec = storage.NewRecorder(s.record)
		opts = append(opts, loop.WithObserver(rec))
	}

	game, err := loop.New(s.params, queue, court, events, opts...)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	player := loop.NewAutoplayer(game, events, input.Bounds{Top: 0, Height: s.params.Height}, rand.New(rand.NewSource(seed+1)))

	game.Activate()
	elapsed, err := loop.Drive(ctx, queue, frames, s.period, player.Move)
	game.Deactivate()

	result := &Result{
		Seed:    seed,
		Frames:  game.Frames(),
		Elapsed: elapsed,
		Score:   score.Value(),
		Metrics: metrics.Collect(ms),
		Final:   game.Snapshot(),
		Court:   court.Canvas(),
	}
	if rec != nil {
		result.Recorded = rec.Frames()
	}
	s.log.Debug("game finished", "seed", seed, "frames", result.Frames, "score", result.Score)
	return result, err
}
