// Command sudoku-solve reads puzzle files (or stdin, or a remote
// collection) and prints solutions. All I/O and presentation lives here;
// the engine itself only sees encodings.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"svw.info/sudoku-solver/internal/board"
	"svw.info/sudoku-solver/internal/infrastructure/source"
	"svw.info/sudoku-solver/internal/solver"
	"svw.info/sudoku-solver/internal/strategy"
)

type task struct {
	name   string
	puzzle string
}

type result struct {
	name   string
	output string
	err    error
}

func buildStrategies(list string) ([]strategy.Strategy, error) {
	var out []strategy.Strategy
	for _, name := range strings.Split(list, ",") {
		switch strings.TrimSpace(name) {
		case "naked":
			out = append(out, strategy.NakedSingle{})
		case "hidden":
			out = append(out, strategy.HiddenSingle{})
		case "backtrack":
			out = append(out, strategy.NewBacktracking())
		case "":
		default:
			return nil, fmt.Errorf("unknown strategy %q (want naked, hidden, backtrack)", name)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty strategy list")
	}
	return out, nil
}

func gatherTasks(ctx context.Context, fetchURL string, args []string) ([]task, error) {
	if fetchURL != "" {
		encodings, err := source.NewHTTP("").Fetch(ctx, fetchURL)
		if err != nil {
			return nil, err
		}
		tasks := make([]task, len(encodings))
		for i, enc := range encodings {
			tasks[i] = task{name: fmt.Sprintf("%s#%d", fetchURL, i+1), puzzle: enc}
		}
		return tasks, nil
	}
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return []task{{name: "stdin", puzzle: string(data)}}, nil
	}
	tasks := make([]task, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task{name: path, puzzle: string(data)})
	}
	return tasks, nil
}

func render(name, solved string, stats string, trace []strategy.Step, showTrace bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:\n", name)
	b := board.New()
	b.Restore(solved)
	sb.WriteString(b.String())
	sb.WriteString(stats)
	if showTrace {
		for _, step := range trace {
			sb.WriteString(step.String())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func main() {
	strategiesFlag := flag.String("strategies", "naked,hidden,backtrack", "comma-separated strategy priority order")
	traceFlag := flag.Bool("trace", false, "print the per-assignment decision trace")
	jobs := flag.Int("jobs", runtime.NumCPU(), "puzzles solved concurrently")
	fetchURL := flag.String("fetch", "", "URL of a puzzle collection to solve instead of files")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	ctx := context.Background()
	tasks, err := gatherTasks(ctx, *fetchURL, flag.Args())
	if err != nil {
		logger.Error("gather puzzles", "err", err)
		os.Exit(1)
	}
	if _, err := buildStrategies(*strategiesFlag); err != nil {
		logger.Error("strategy list", "err", err)
		os.Exit(1)
	}

	results := make([]result, len(tasks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*jobs)
	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			// Engines carry per-solve search state, so each task gets
			// its own.
			strategies, _ := buildStrategies(*strategiesFlag)
			eng := solver.New(strategies...)
			solved, stats, err := eng.SolveText(gctx, t.puzzle)
			if err != nil {
				results[i] = result{name: t.name, err: err}
				return nil
			}
			statsLine := fmt.Sprintf("assignments=%d backtracks=%d maxAlternatives=%d dur=%s\n",
				stats.Assignments, stats.Backtracks, stats.MaxAlternatives, stats.Duration.Round(0))
			results[i] = result{
				name:   t.name,
				output: render(t.name, solved, statsLine, eng.Trace(), *traceFlag),
			}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			logger.Error("solve failed", "puzzle", r.name, "err", r.err)
			continue
		}
		fmt.Println(r.output)
	}
	if failed > 0 {
		os.Exit(1)
	}
}
