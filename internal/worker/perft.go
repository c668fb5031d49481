package worker

import (
	"context"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessduel/internal/chess"
	"github.com/lgbarn/chessduel/internal/engine"
)

// countJob is the ProcessFunc used by Divide.
func countJob(job Job) Result {
	return Result{Index: job.Index, Move: job.Move, Nodes: engine.Perft(&job.State, job.Depth)}
}

// Divide counts the leaves depth plies below g for every root move, spreading
// the root moves over workers goroutines. Results come back in root move
// order. A cancelled ctx stops the remaining jobs and returns ctx.Err().
func Divide(ctx context.Context, g *chess.GameState, depth, workers int) ([]Result, error) {
	if depth <= 0 {
		return nil, nil
	}

	root := g.Copy()
	moves := engine.LegalMoves(root, root.ToMove)
	jobs := make([]Job, 0, len(moves))
	for i, m := range moves {
		job := Job{Index: i, State: *root, Depth: depth - 1}
		record, err := engine.ApplyMove(&job.State, m.From, m.To)
		if err != nil {
			return nil, err
		}
		job.Move = record.String()
		jobs = append(jobs, job)
	}

	pool := NewPool(countJob, WithWorkers(workers), WithBufferSize(len(jobs)+1))
	pool.Start()
	go func() {
		for _, job := range jobs {
			if ctx.Err() != nil {
				pool.Stop()
				break
			}
			pool.Submit(job)
		}
		pool.Close()
	}()

	results := make([]Result, 0, len(jobs))
	for r := range pool.Results() {
		results = append(results, r)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b Result) int { return a.Index - b.Index })
	return results, nil
}

// Total sums the leaf counts of a divide.
func Total(results []Result) uint64 {
	var n uint64
	for _, r := range results {
		n += r.Nodes
	}
	return n
}
