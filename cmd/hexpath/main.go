// Package main is the hexpath command. It builds a hex grid from flags or a
// YAML scenario, runs one search and prints the result, or animates it in
// the terminal.
//
// Usage:
//
//	hexpath -rows 9 -cols 9 -algo astar -start 0,0 -target 3,8
//	hexpath -scenario scenario/testdata/detour.yaml -tui -delay 30ms
//
// Text output lists the settle order, the path and its cost and the number
// of connected open regions, then draws the grid:
//
//	  S   .   .
//	o   o   o
//	  *   o   .
//	...
//
// Keys in -tui mode: s skips the animation, r replays it, q or Esc quits.
// Resizing the terminal refits the grid to the window and reruns the search;
// walls and weights inside the overlapping region are kept.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/hexpath/hexgrid"
	"github.com/katalvlaran/hexpath/render"
	"github.com/katalvlaran/hexpath/scenario"
	"github.com/katalvlaran/hexpath/search"
	"github.com/katalvlaran/hexpath/telemetry"
)

// config is the parsed command line.
type config struct {
	rows, cols    int
	wide          hexgrid.WideRows
	alg           search.Algorithm
	algSet        bool
	start, target hexgrid.Position
	scenario      string
	tui           bool
	delay         time.Duration
	logLevel      slog.Level
	unitHeuristic bool
	metrics       bool
	slow          time.Duration
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "hexpath:", err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.logLevel}))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout, logger); err != nil {
		logger.Error("hexpath failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("hexpath", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		cfg                             config
		wide, alg, start, target, level string
	)
	fs.IntVar(&cfg.rows, "rows", 9, "number of rows")
	fs.IntVar(&cfg.cols, "cols", 9, "number of columns (one wide plus one narrow row)")
	fs.StringVar(&wide, "wide", "even", "wide-row parity: even or odd")
	fs.StringVar(&alg, "algo", "bfs", "algorithm: bfs, dijkstra or astar")
	fs.StringVar(&start, "start", "0,0", "start cell as x,y")
	fs.StringVar(&target, "target", "", "target cell as x,y (default: last cell of the last row)")
	fs.StringVar(&cfg.scenario, "scenario", "", "YAML scenario file; overrides grid, start and target flags")
	fs.BoolVar(&cfg.tui, "tui", false, "animate the search in the terminal")
	fs.DurationVar(&cfg.delay, "delay", 25*time.Millisecond, "delay between animation steps")
	fs.StringVar(&level, "log-level", "warn", "log level: debug, info, warn or error")
	fs.BoolVar(&cfg.unitHeuristic, "unit-heuristic", false, "do not scale the astar heuristic by the lightest weight")
	fs.BoolVar(&cfg.metrics, "metrics", false, "print search metrics in Prometheus text format on exit")
	fs.DurationVar(&cfg.slow, "slow", 100*time.Millisecond, "log searches slower than this")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "algo" {
			cfg.algSet = true
		}
	})

	var err error
	if cfg.wide, err = hexgrid.ParseWideRows(wide); err != nil {
		return config{}, err
	}
	if cfg.alg, err = search.ParseAlgorithm(alg); err != nil {
		return config{}, err
	}
	if cfg.start, err = parsePosition(start); err != nil {
		return config{}, fmt.Errorf("-start: %w", err)
	}
	if target == "" {
		l := hexgrid.Layout{Rows: cfg.rows, Cols: cfg.cols, Wide: cfg.wide}
		cfg.target, _ = l.Clamp(hexgrid.Position{X: cfg.cols, Y: cfg.rows})
	} else if cfg.target, err = parsePosition(target); err != nil {
		return config{}, fmt.Errorf("-target: %w", err)
	}
	if err = cfg.logLevel.UnmarshalText([]byte(level)); err != nil {
		return config{}, fmt.Errorf("-log-level: %w", err)
	}

	return cfg, nil
}

// parsePosition reads "x,y".
func parsePosition(s string) (hexgrid.Position, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return hexgrid.Position{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return hexgrid.Position{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return hexgrid.Position{}, fmt.Errorf("bad y in %q: %w", s, err)
	}
	return hexgrid.Position{X: x, Y: y}, nil
}

// setup is everything one run needs.
type setup struct {
	grid          *hexgrid.Grid
	start, target hexgrid.Position
	alg           search.Algorithm
}

// load builds the grid from the scenario file when one is given, otherwise
// from the flags.
func load(cfg config) (setup, error) {
	if cfg.scenario == "" {
		g, err := hexgrid.New(cfg.rows, cfg.cols, cfg.wide)
		if err != nil {
			return setup{}, err
		}
		return setup{grid: g, start: cfg.start, target: cfg.target, alg: cfg.alg}, nil
	}

	sc, err := scenario.LoadFile(cfg.scenario)
	if err != nil {
		return setup{}, err
	}
	g, err := sc.Grid()
	if err != nil {
		return setup{}, err
	}
	alg := cfg.alg
	if !cfg.algSet {
		if alg, err = sc.Search(); err != nil {
			return setup{}, err
		}
	}
	return setup{grid: g, start: sc.Start.Position(), target: sc.Target.Position(), alg: alg}, nil
}

func run(ctx context.Context, cfg config, stdout io.Writer, logger *slog.Logger) error {
	st, err := load(cfg)
	if err != nil {
		return err
	}

	var opts []search.Option
	if cfg.unitHeuristic {
		opts = append(opts, search.WithUnitHeuristic())
	}
	s, err := search.New(st.alg, opts...)
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	ts := telemetry.Instrument(st.alg, s,
		telemetry.WithRegisterer(reg),
		telemetry.WithLogger(logger),
		telemetry.WithSlowThreshold(cfg.slow),
	)

	if cfg.tui {
		err = runTUI(ctx, cfg, st, ts)
	} else {
		err = printResult(ctx, stdout, st, ts)
	}
	if err != nil {
		return err
	}

	if cfg.metrics {
		return writeMetrics(stdout, reg)
	}
	return nil
}

// printResult runs one search and writes it as text.
func printResult(ctx context.Context, w io.Writer, st setup, ts *telemetry.Searcher) error {
	res, err := ts.SearchContext(ctx, st.grid, st.start, st.target)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "algorithm: %s\n", res.Algorithm)
	fmt.Fprintf(w, "traversed (%d): %s\n", len(res.CellsTraversed), joinPositions(res.CellsTraversed))
	if res.Found() {
		fmt.Fprintf(w, "path (%d): %s\n", len(res.CellsOnPath), joinPositions(res.CellsOnPath))
		fmt.Fprintf(w, "cost: %d\n", res.Cost)
	} else {
		fmt.Fprintln(w, "path: none")
	}
	fmt.Fprintf(w, "regions: %d\n", len(st.grid.Components()))
	fmt.Fprintln(w)

	view := st.grid.Clone()
	if err = res.Apply(view); err != nil {
		return err
	}
	return render.Text(w, view, st.start, st.target)
}

func joinPositions(ps []hexgrid.Position) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
