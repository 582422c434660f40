package gui

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/waitpong/internal/audio"
	"github.com/san-kum/waitpong/internal/config"
	"github.com/san-kum/waitpong/internal/input"
	"github.com/san-kum/waitpong/internal/loop"
	"github.com/san-kum/waitpong/internal/metrics"
	"github.com/san-kum/waitpong/internal/pong"
	"github.com/san-kum/waitpong/internal/render"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)    // Deep Black
	ColCourt   = rl.NewColor(230, 230, 230, 255) // Paddles and ball
	ColNet     = rl.NewColor(90, 90, 90, 255)
	ColText    = rl.NewColor(140, 140, 140, 255) // Neutral Gray
	ColTextDim = rl.NewColor(60, 60, 60, 255)    // Dark Gray (Subtle)
	ColScore   = rl.NewColor(255, 255, 255, 255)
)

// App owns the window, the game and its input pump.
type App struct {
	Game    *loop.Game
	Frames  *loop.FrameQueue
	Events  *input.Dispatcher
	Surface *Surface
	Audio   *audio.Synth
	Rally   *metrics.Rally

	showScore bool
	paused    bool
	clock     time.Duration
	last      time.Time
	log       *slog.Logger
}

// initWindow opens a window sized to the scaled court. Escape is handled by
// the app.
func initWindow(w, h int32, fps int32, title string) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(w, h, title)
	rl.SetTargetFPS(fps)
	rl.SetExitKey(0)
}

func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	p := cfg.Params()
	a := &App{
		Frames:    loop.NewFrameQueue(),
		Events:    input.NewDispatcher(),
		Surface:   &Surface{W: p.Width, H: p.Height, Scale: cfg.Scale},
		Rally:     metrics.NewRally(),
		showScore: cfg.ShowScore,
		log:       logger,
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := []loop.Option{
		loop.WithRand(rand.New(rand.NewSource(seed))),
		loop.WithLogger(logger),
		loop.WithThrottle(cfg.Throttle()),
		loop.WithScore(pong.NewScore(p.ScorePerHit)),
		loop.WithObserver(a.Rally),
		loop.WithBounds(a.bounds),
	}

	if cfg.Sound {
		a.Audio = audio.NewSynth(logger)
		if err := a.Audio.Start(); err != nil {
			logger.Warn("audio unavailable", "err", err)
		} else {
			opts = append(opts, loop.WithObserver(a.Audio))
		}
	}

	game, err := loop.New(p, a.Frames, a.Surface, a.Events, opts...)
	if err != nil {
		return nil, err
	}
	a.Game = game
	return a, nil
}

// bounds maps window pixels onto the court. The court is drawn from the
// window origin, so only the scale matters.
func (a *App) bounds() (input.Bounds, bool) {
	if !a.Surface.Attached() {
		return input.Bounds{}, false
	}
	return input.Bounds{Top: 0, Height: a.Surface.H * a.Surface.Scale}, true
}

// Run opens the window and plays cfg until it is closed.
func Run(cfg *config.Config, logger *slog.Logger) error {
	p := cfg.Params()
	initWindow(int32(p.Width*cfg.Scale), int32(p.Height*cfg.Scale), int32(cfg.FrameRate), "waitpong · "+cfg.Preset)
	defer rl.CloseWindow()

	app, err := NewApp(cfg, logger)
	if err != nil {
		return err
	}
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	a.Game.Activate()
	defer a.Close()

	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

func (a *App) Close() {
	a.Game.Deactivate()
	if a.Audio != nil {
		a.Audio.Stop()
	}
}

// Update advances the app clock and forwards input. It returns false when
// the user asked to quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return false
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.paused = !a.paused
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.log.Debug("restart", "frames", a.Game.Frames(), "rally", a.Rally.Value())
		a.Game.Deactivate()
		a.Rally.Reset()
		a.Game.Score().Reset()
		a.Game.Activate()
	}

	now := time.Now()
	if !a.paused && !a.last.IsZero() {
		a.clock += now.Sub(a.last)
	}
	a.last = now

	a.pollTouch()
	if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
		a.Events.Dispatch(input.Event{
			Kind:    input.PointerMove,
			ClientY: float64(rl.GetMousePosition().Y),
			At:      a.clock,
		})
	}
	return true
}

func (a *App) pollTouch() {
	n := rl.GetTouchPointCount()
	if n == 0 {
		return
	}
	touches := make([]input.Touch, 0, n)
	for i := int32(0); i < n; i++ {
		touches = append(touches, input.Touch{
			ID:      int(rl.GetTouchPointId(i)),
			ClientY: float64(rl.GetTouchPosition(i).Y),
		})
	}
	a.Events.Dispatch(input.Event{Kind: input.TouchMove, Touches: touches, At: a.clock})
}

func (a *App) Draw() {
	rl.BeginDrawing()
	if a.paused {
		a.drawCourt()
	} else if a.Frames.Run(a.clock) == 0 {
		a.drawCourt()
	}
	a.DrawHUD()
	rl.EndDrawing()
}

// drawCourt repaints without simulating, for paused frames.
func (a *App) drawCourt() {
	render.Paint(a.Surface, a.Game.Snapshot(), a.Game.Params())
}

func (a *App) DrawHUD() {
	if a.showScore {
		text := fmt.Sprintf("%d", a.Game.Score().Value())
		w := rl.MeasureText(text, 20)
		rl.DrawText(text, int32(a.Surface.W*a.Surface.Scale)/2-w-12, 10, 20, ColScore)
	}
	if rally := a.Rally.Current(); rally > 1 {
		rl.DrawText(fmt.Sprintf("rally %d", rally), 10, 10, 10, ColText)
	}
	if a.paused {
		rl.DrawText("PAUSED", 10, 24, 10, ColText)
	}
	h := int32(a.Surface.H * a.Surface.Scale)
	rl.DrawText("[SPACE] PAUSE  [R] RESTART  [Q] QUIT", 10, h-14, 10, ColTextDim)
}
