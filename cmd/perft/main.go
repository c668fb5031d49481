// perft counts the leaf nodes of the legal move tree from the starting
// position, to check the move generator against published counts.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/lgbarn/chessduel/internal/chess"
	"github.com/lgbarn/chessduel/internal/worker"
)

var (
	depth   = flag.Int("depth", 4, "Depth in plies")
	divide  = flag.Bool("divide", false, "Print the count below every root move")
	workers = flag.Int("workers", runtime.NumCPU(), "Number of worker goroutines")
)

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, *depth, *workers, *divide); err != nil {
		fmt.Fprintf(os.Stderr, "perft: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, depth, workers int, divide bool) error {
	if depth < 1 {
		return fmt.Errorf("depth %d must be at least 1", depth)
	}

	start := time.Now()
	results, err := worker.Divide(ctx, chess.NewGameState(), depth, workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if divide {
		for _, r := range results {
			fmt.Fprintf(w, "%s: %d\n", r.Move, r.Nodes)
		}
		fmt.Fprintln(w)
	}
	total := worker.Total(results)
	fmt.Fprintf(w, "depth %d: %d nodes in %s", depth, total, elapsed.Round(time.Millisecond))
	if secs := elapsed.Seconds(); secs > 0 {
		fmt.Fprintf(w, " (%.0f nodes/s)", float64(total)/secs)
	}
	fmt.Fprintln(w)
	return nil
}
