package viz

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/waitpong/internal/config"
	"github.com/san-kum/waitpong/internal/input"
	"github.com/san-kum/waitpong/internal/loop"
	"github.com/san-kum/waitpong/internal/metrics"
	"github.com/san-kum/waitpong/internal/pong"
)

const (
	DefaultCols     = 60
	historyCapacity = 240
	// canvasTop is the terminal row of the first canvas row: title line plus
	// the court border.
	canvasTop  = 2
	flashTicks = 12
)

type TickMsg time.Time

// hud collects per-frame readings for the side panel.
type hud struct {
	speeds []float64
	flash  int
}

func (h *hud) OnFrame(st pong.State, _ pong.Events, _ time.Duration) {
	h.speeds = append(h.speeds, st.Speed())
	if len(h.speeds) > historyCapacity {
		h.speeds = h.speeds[1:]
	}
	if h.flash > 0 {
		h.flash--
	}
}

// Model hosts one loop.Game inside a Bubble Tea program. Frames are pumped
// from TickMsg and mouse motion is forwarded as pointer moves.
type Model struct {
	game    *loop.Game
	frames  *loop.FrameQueue
	events  *input.Dispatcher
	surface *CanvasSurface
	params  pong.Params

	rally  *metrics.Rally
	peak   *metrics.PeakSpeed
	points [2]*metrics.Points
	hud    *hud

	preset    string
	showScore bool
	period    time.Duration

	clock  time.Duration
	last   time.Time
	paused bool
	help   bool
}

// NewModel builds a game for cfg on a braille canvas cols cells wide.
func NewModel(cfg *config.Config, cols int, logger *slog.Logger) (Model, error) {
	p := cfg.Params()
	court := NewCourt(cols, p)
	rows := court.Canvas().Height

	m := Model{
		frames:    loop.NewFrameQueue(),
		events:    input.NewDispatcher(),
		surface:   court,
		params:    p,
		rally:     metrics.NewRally(),
		peak:      metrics.NewPeakSpeed(),
		points:    [2]*metrics.Points{metrics.NewPoints(pong.SidePlayer), metrics.NewPoints(pong.SideOpponent)},
		hud:       &hud{speeds: make([]float64, 0, historyCapacity)},
		preset:    cfg.Preset,
		showScore: cfg.ShowScore,
		period:    cfg.FramePeriod(),
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	h, surface := m.hud, m.surface
	score := pong.NewScore(p.ScorePerHit)
	score.Subscribe(func(v int) {
		if v > 0 {
			h.flash = flashTicks
		}
	})

	bounds := func() (input.Bounds, bool) {
		if !surface.Attached() {
			return input.Bounds{}, false
		}
		return input.Bounds{Top: canvasTop, Height: float64(rows)}, true
	}

	game, err := loop.New(p, m.frames, m.surface, m.events,
		loop.WithRand(rand.New(rand.NewSource(seed))),
		loop.WithLogger(logger),
		loop.WithThrottle(cfg.Throttle()),
		loop.WithBounds(bounds),
		loop.WithScore(score),
		loop.WithObserver(m.rally),
		loop.WithObserver(m.peak),
		loop.WithObserver(m.points[0]),
		loop.WithObserver(m.points[1]),
		loop.WithObserver(m.hud),
	)
	if err != nil {
		return Model{}, err
	}
	m.game = game
	SetTheme(cfg.Theme)
	return m, nil
}

func (m Model) Game() *loop.Game { return m.game }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.period, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	m.game.Activate()
	return m.tick()
}

// Update forwards input to the game and pumps one frame per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.game.Deactivate()
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		case "r":
			m.restart()
		case "t":
			NextTheme()
		case "?":
			m.help = !m.help
		case "up", "k":
			m.nudge(-m.params.PaddleHeight / 2)
		case "down", "j":
			m.nudge(m.params.PaddleHeight / 2)
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			m.events.Dispatch(input.Event{
				Kind:    input.PointerMove,
				ClientY: float64(msg.Y) + 0.5,
				At:      m.clock,
			})
		}
	case TickMsg:
		now := time.Time(msg)
		if !m.paused && !m.last.IsZero() {
			m.clock += now.Sub(m.last)
		}
		m.last = now
		if !m.paused {
			m.frames.Run(m.clock)
		}
		if m.game.Active() {
			return m, m.tick()
		}
	}
	return m, nil
}

// nudge moves the paddle by dy surface pixels through the pointer path.
func (m *Model) nudge(dy float64) {
	rows := m.surface.Canvas().Height
	y := m.params.ClampPaddle(m.game.Snapshot().PlayerY + dy)
	m.events.Dispatch(input.Event{
		Kind:    input.PointerMove,
		ClientY: canvasTop + y*float64(rows)/m.params.Height,
		At:      m.clock,
	})
}

func (m *Model) restart() {
	m.game.Deactivate()
	m.rally.Reset()
	m.peak.Reset()
	for _, p := range m.points {
		p.Reset()
	}
	m.hud.speeds = m.hud.speeds[:0]
	m.game.Score().Reset()
	m.game.Activate()
}

func (m Model) View() string {
	st := themeStyles(CurrentTheme)

	title := strings.ToUpper("waitpong · " + m.preset)
	left := st.title.Render(title) + "\n" + st.court.Render(m.surface.Canvas().String())

	var s strings.Builder
	if m.showScore {
		score := fmt.Sprintf("SCORE %d", m.game.Score().Value())
		if m.hud.flash > 0 {
			s.WriteString(st.flash.Render(score))
		} else {
			s.WriteString(st.score.Render(score))
		}
		s.WriteString("\n\n")
	}
	if m.paused {
		s.WriteString(st.paused.Render("PAUSED") + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Points", fmt.Sprintf("%d : %d", int(m.points[0].Value()), int(m.points[1].Value())))
	row("Rally", fmt.Sprintf("%d", m.rally.Current()))
	row("Best", fmt.Sprintf("%d", int(m.rally.Value())))
	best := m.rally.Value()
	if best > 0 {
		row("", ProgressBar(float64(m.rally.Current())/best, 16))
	}
	row("Peak", fmt.Sprintf("%.2f px/f", m.peak.Value()))
	row("Frames", fmt.Sprintf("%d", m.game.Frames()))

	if len(m.hud.speeds) > 1 {
		chart := asciigraph.Plot(m.hud.speeds, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("ball speed"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	if m.help {
		s.WriteString(st.help.Render("mouse/↑↓ move  space pause\nr restart  t theme  q quit"))
	} else {
		s.WriteString(st.help.Render("? help"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, left, st.panel.Render(s.String()))
}

// Run plays cfg in the terminal until the user quits.
func Run(cfg *config.Config, cols int, logger *slog.Logger) error {
	m, err := NewModel(cfg, cols, logger)
	if err != nil {
		return err
	}
	defer m.game.Deactivate()

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
