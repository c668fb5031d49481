// Package worker provides a worker pool that counts perft subtrees in parallel.
// Every job carries its own copy of the position, so workers never share state.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessduel/internal/chess"
)

// Job is one root move of a perft count: the position after the move and the
// depth still to be counted below it.
type Job struct {
	Index int    // Position of the move in the root move list
	Move  string // Root move in long algebraic form
	State chess.GameState
	Depth int
}

// Result is the leaf count of one job.
type Result struct {
	Index int
	Move  string
	Nodes uint64
}

// ProcessFunc counts the leaves of a job.
type ProcessFunc func(job Job) Result

// Pool manages a pool of workers processing perft jobs.
type Pool struct {
	numWorkers  int
	bufferSize  int
	jobChan     chan Job
	resultChan  chan Result
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobChan = make(chan Job, p.bufferSize)
	p.resultChan = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes jobs until the job channel is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(job)
	}
}

// Submit submits a job. It blocks while the job buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobChan <- job
}

// TrySubmit attempts to submit a job without blocking.
// Returns false if the buffer is full or the pool is stopped.
func (p *Pool) TrySubmit(job Job) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.jobChan <- job:
		return true
	default:
		return false
	}
}

// Stop signals workers to skip the jobs still queued.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the job channel, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.jobChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan Result {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
