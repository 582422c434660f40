package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/waitpong/internal/config"
	"github.com/san-kum/waitpong/internal/export"
	"github.com/san-kum/waitpong/internal/sim"
	"github.com/san-kum/waitpong/internal/storage"
	"github.com/spf13/cobra"
)

func simulator(cfg *config.Config, logger *slog.Logger, opts ...sim.Option) *sim.Simulator {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	base := []sim.Option{
		sim.WithPeriod(cfg.FramePeriod()),
		sim.WithThrottle(cfg.Throttle()),
		sim.WithLogger(logger),
	}
	return sim.New(cfg.Params(), append(base, opts...)...)
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	var opts []sim.Option
	if save {
		opts = append(opts, sim.WithRecording(every))
	}
	s := simulator(cfg, logger, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("simulating %d game(s) of %d frames (%s)...\n", games, simFrames, cfg.Preset)
	start := time.Now()

	var results []*sim.Result
	if games > 1 {
		results, err = sim.NewEnsemble(s, games, cfg.Seed).Run(ctx, simFrames)
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	} else {
		r, err := s.Run(ctx, cfg.Seed, simFrames)
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		results = []*sim.Result{r}
	}
	fmt.Printf("completed in %v\n", time.Since(start))

	results = completed(results)
	if len(results) == 0 {
		return nil
	}
	if len(results) == 1 {
		r := results[0]
		fmt.Printf("frames: %d (%.1fs of play)\n", r.Frames, r.Elapsed.Seconds())
		fmt.Printf("score: %d\n", r.Score)
	}
	fmt.Println("\nmetrics:")
	for _, st := range sim.Summarize(results) {
		if len(results) == 1 {
			fmt.Printf("  %s: %.2f\n", st.Name, st.Mean)
		} else {
			fmt.Printf("  %s: mean %.2f  min %.2f  max %.2f\n", st.Name, st.Mean, st.Min, st.Max)
		}
	}

	if !save {
		return nil
	}
	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	fmt.Println()
	for _, r := range results {
		runID, err := store.Save(storage.RunMetadata{
			Preset:      cfg.Preset,
			Seed:        r.Seed,
			Frames:      r.Frames,
			FramePeriod: cfg.FramePeriod(),
			Params:      cfg.Params(),
			Metrics:     r.Metrics,
		}, r.Recorded)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

// completed drops games that never started.
func completed(results []*sim.Result) []*sim.Result {
	out := results[:0]
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	r, err := simulator(cfg, logger).Run(cmd.Context(), cfg.Seed, snapFrames)
	if err != nil {
		return err
	}

	var svg string
	switch style {
	case "vector":
		svg = export.FrameToSVG(r.Final, cfg.Params(), cfg.Scale)
	case "braille":
		svg = export.CanvasToSVG(r.Court, cfg.Scale*2, export.Foreground)
	default:
		return fmt.Errorf("unknown style %q (vector, braille)", style)
	}
	return writeOut(svg)
}

func writeOut(s string) error {
	if outFile == "" {
		_, err := io.WriteString(os.Stdout, s+"\n")
		return err
	}
	if err := os.WriteFile(outFile, []byte(s), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tFRAMES\tSAMPLES\tSEED\tRALLY\tPOINTS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%.0f\t%.0f:%.0f\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Samples,
			run.Seed,
			run.Metrics["longest_rally"],
			run.Metrics["points_player"],
			run.Metrics["points_opponent"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	fmt.Printf("samples: %d\n\n", len(frames))

	ballY := make([]float64, len(frames))
	speed := make([]float64, len(frames))
	player := make([]float64, len(frames))
	opponent := make([]float64, len(frames))
	for i, f := range frames {
		ballY[i] = f.State.BallY
		speed[i] = f.State.Speed()
		player[i] = f.State.PlayerY
		opponent[i] = f.State.OpponentY
	}

	fmt.Println(asciigraph.Plot(speed,
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.Caption("ball speed (px/frame)"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(ballY,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("ball y"),
	))
	fmt.Println()
	fmt.Println(asciigraph.PlotMany([][]float64{player, opponent},
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
		asciigraph.Caption("paddles: player (green) / opponent (red)"),
	))

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "ball_x", "ball_y", "ball_vx", "ball_vy", "player_y", "opponent_y"}); err != nil {
		return err
	}

	for _, f := range frames {
		s := f.State
		row := []string{strconv.FormatFloat(f.Time.Seconds(), 'f', 6, 64)}
		for _, val := range []float64{s.BallX, s.BallY, s.BallVX, s.BallVY, s.PlayerY, s.OpponentY} {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func traceRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	svg := export.BallTrace(frames, meta.Params, config.DefaultScale, export.Foreground)
	if svg == "" {
		return fmt.Errorf("run %s has too few frames to trace", runID)
	}
	return writeOut(svg)
}
