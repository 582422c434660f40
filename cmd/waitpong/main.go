package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/san-kum/waitpong/internal/config"
	"github.com/san-kum/waitpong/internal/gui"
	"github.com/san-kum/waitpong/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	logFile    string

	seed      int64
	theme     string
	throttle  int
	frameRate int
	showScore bool
	sound     bool
	scale     float64
	cols      int

	simFrames  int
	games      int
	snapFrames int
	save       bool
	every      int
	outFile    string
	style      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "waitpong",
		Short:        "a pong game to play while something slow loads",
		SilenceUsage: true,
		RunE:         runPlay,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".waitpong", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "write logs to file")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	pf.IntVar(&throttle, "throttle", config.DefaultThrottleMs, "input throttle in ms")
	pf.IntVar(&frameRate, "fps", config.DefaultFrameRate, "frame rate")
	pf.BoolVar(&showScore, "score", false, "show the score")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "play in the terminal",
		RunE:  runPlay,
	}
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
		c.Flags().IntVar(&cols, "cols", viz.DefaultCols, "court width in terminal cells")
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "play in a window",
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVar(&sound, "sound", false, "play hit sounds")
	guiCmd.Flags().Float64Var(&scale, "scale", config.DefaultScale, "window pixels per court pixel")

	simCmd := &cobra.Command{
		Use:   "sim",
		Short: "run a headless game with a scripted player",
		RunE:  runSim,
	}
	simCmd.Flags().IntVar(&simFrames, "frames", 3600, "frames to simulate")
	simCmd.Flags().IntVar(&games, "games", 1, "independent games to run in parallel")
	simCmd.Flags().BoolVar(&save, "save", false, "record the run")
	simCmd.Flags().IntVar(&every, "every", 1, "record every n-th frame")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export recorded frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	traceCmd := &cobra.Command{
		Use:   "trace [run_id]",
		Short: "draw the recorded ball path as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  traceRun,
	}
	traceCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "simulate and write one frame as SVG",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&snapFrames, "frames", 120, "frames to simulate before the snapshot")
	snapshotCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	snapshotCmd.Flags().StringVar(&style, "style", "vector", "vector or braille")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-8s %gx%g  paddle %gx%g  ball %g  speed %g\n",
					name, p.Game.Width, p.Game.Height, p.Game.PaddleWidth, p.Game.PaddleHeight,
					p.Game.BallRadius, p.Game.BallSpeed)
			}
			return nil
		},
	}

	rootCmd.AddCommand(playCmd, guiCmd, simCmd, listCmd, plotCmd, exportCSVCmd, traceCmd, snapshotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the process logger. Without --log-file logs go to
// fallback; the terminal game passes io.Discard so the court stays clean.
func newLogger(fallback io.Writer) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", logLevel, err)
	}

	w, closer := fallback, func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		w, closer = f, func() { f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, closer, nil
}

// resolveConfig layers defaults, the config file, --preset, then any flag the
// user set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" && (configFile == "" || cmd.Flags().Changed("preset")) {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("%w: %s (available: %v)", config.ErrUnknownPreset, preset, config.ListPresets())
		}
		cfg.Preset = p.Preset
		cfg.Game = p.Game
		cfg.ShowScore = p.ShowScore
		cfg.Theme = p.Theme
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("throttle") {
		cfg.ThrottleMs = throttle
	}
	if flags.Changed("fps") {
		cfg.FrameRate = frameRate
	}
	if flags.Changed("score") {
		cfg.ShowScore = showScore
	}
	if flags.Lookup("theme") != nil && flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Lookup("sound") != nil && flags.Changed("sound") {
		cfg.Sound = sound
	}
	if flags.Lookup("scale") != nil && flags.Changed("scale") {
		cfg.Scale = scale
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("starting terminal game", "preset", cfg.Preset, "theme", cfg.Theme)
	return viz.Run(cfg, cols, logger)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("starting window", "preset", cfg.Preset, "scale", cfg.Scale, "sound", cfg.Sound)
	return gui.Run(cfg, logger)
}
