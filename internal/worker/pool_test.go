package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chessduel/internal/chess"
	"github.com/lgbarn/chessduel/internal/engine"
	"github.com/lgbarn/chessduel/internal/testutil"
)

// echoProcessFunc returns a process function that reports the job depth as its node count.
func echoProcessFunc() ProcessFunc {
	return func(job Job) Result {
		return Result{Index: job.Index, Move: job.Move, Nodes: uint64(job.Depth)}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(job Job) Result {
		atomic.AddInt32(counter, 1)
		return Result{Index: job.Index}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4), WithBufferSize(10))
	pool.Start()

	const numJobs = 10
	for i := 0; i < numJobs; i++ {
		pool.Submit(Job{Index: i, State: *chess.NewGameState(), Depth: 1})
	}

	go pool.Close()

	if got := collectResults(pool); got != numJobs {
		t.Errorf("results = %d; want %d", got, numJobs)
	}
	if got := atomic.LoadInt32(&processed); got != numJobs {
		t.Errorf("processed = %d; want %d", got, numJobs)
	}
}

func TestPoolEarlyStop(t *testing.T) {
	var processed int32
	slow := func(job Job) Result {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processed, 1)
		return Result{Index: job.Index}
	}

	pool := NewPool(slow, WithWorkers(2), WithBufferSize(100))
	pool.Start()

	const numJobs = 50
	for i := 0; i < numJobs; i++ {
		pool.Submit(Job{Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if got := atomic.LoadInt32(&processed); got >= numJobs {
		t.Logf("early stop may not have prevented all processing: %d processed", got)
	}
}

func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(echoProcessFunc(), WithWorkers(2))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}
	pool.Stop()
	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}
	pool.Close()
}

func TestPoolTrySubmit(t *testing.T) {
	slow := func(job Job) Result {
		time.Sleep(100 * time.Millisecond)
		return Result{}
	}

	pool := NewPool(slow, WithWorkers(1), WithBufferSize(2))
	pool.Start()

	if !pool.TrySubmit(Job{Index: 0}) {
		t.Error("first TrySubmit should succeed")
	}
	if !pool.TrySubmit(Job{Index: 1}) {
		t.Error("second TrySubmit should succeed")
	}

	// A third may or may not fit depending on how fast the worker picked up the first.
	pool.TrySubmit(Job{Index: 2})

	pool.Stop()
	if pool.TrySubmit(Job{Index: 3}) {
		t.Error("TrySubmit after Stop should return false")
	}

	go pool.Close()
	collectResults(pool)
}

func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{name: "defaults", wantWorkers: 1, wantBuffer: 10},
		{name: "workers", opts: []PoolOption{WithWorkers(4)}, wantWorkers: 4, wantBuffer: 10},
		{name: "buffer", opts: []PoolOption{WithBufferSize(50)}, wantWorkers: 1, wantBuffer: 50},
		{name: "both", opts: []PoolOption{WithWorkers(8), WithBufferSize(100)}, wantWorkers: 8, wantBuffer: 100},
		{name: "zero workers ignored", opts: []PoolOption{WithWorkers(0)}, wantWorkers: 1, wantBuffer: 10},
		{name: "negative buffer ignored", opts: []PoolOption{WithBufferSize(-5)}, wantWorkers: 1, wantBuffer: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(echoProcessFunc(), tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}

func TestPoolResultsCarryJob(t *testing.T) {
	pool := NewPool(echoProcessFunc(), WithWorkers(4), WithBufferSize(20))
	pool.Start()

	const numJobs = 10
	go func() {
		for i := 0; i < numJobs; i++ {
			pool.Submit(Job{Index: i, Depth: i * 2})
		}
		pool.Close()
	}()

	seen := make(map[int]uint64)
	for r := range pool.Results() {
		seen[r.Index] = r.Nodes
	}
	for i := 0; i < numJobs; i++ {
		if got, ok := seen[i]; !ok || got != uint64(i*2) {
			t.Errorf("result %d = %d (present %v); want %d", i, got, ok, i*2)
		}
	}
}

func TestDivide_InitialPosition(t *testing.T) {
	for _, workers := range []int{1, 4} {
		results, err := Divide(context.Background(), chess.NewGameState(), 3, workers)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, len(results), 20, "workers=%d", workers)
		testutil.AssertEqual(t, Total(results), uint64(8902), "workers=%d", workers)
		for i, r := range results {
			if r.Index != i {
				t.Fatalf("results[%d].Index = %d; results are not in root order", i, r.Index)
			}
		}
	}
}

func TestDivide_MatchesSerialDivide(t *testing.T) {
	g := testutil.Position(t, `
		r...k..r
		p.ppqpb.
		bn..pnp.
		...PN...
		.p..P...
		..N..Q.p
		PPPBBPPP
		R...K..R
	`)
	want := engine.Divide(g.Copy(), 2)

	results, err := Divide(context.Background(), g, 2, 3)
	testutil.AssertNoError(t, err)

	got := make(map[string]uint64, len(results))
	for _, r := range results {
		got[r.Move] = r.Nodes
	}
	testutil.AssertEqual(t, got, want)
	testutil.AssertEqual(t, Total(results), uint64(2039))
}

func TestDivide_LeavesStateUntouched(t *testing.T) {
	g := chess.NewGameState()
	before := *g
	if _, err := Divide(context.Background(), g, 2, 2); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, *g, before)
}

func TestDivide_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Divide(ctx, chess.NewGameState(), 3, 2)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Divide() error = %v; want context.Canceled", err)
	}
}

func TestDivide_ZeroDepth(t *testing.T) {
	results, err := Divide(context.Background(), chess.NewGameState(), 0, 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(results), 0)
}
