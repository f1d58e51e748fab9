// Package bench runs a configured search driver over a batch of scenarios
// and reports aggregate solve-rate and throughput statistics. It is the
// scenario-batch counterpart of the upstream versus-arena benchmark: instead
// of pitting two configurations against each other across games, it runs one
// configuration across many independent problems and summarizes the results.
package bench

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/beluga-challenge/go-mcts/pkg/mcts"
	"github.com/beluga-challenge/go-mcts/pkg/problem"
)

// Item is one scenario to run, identified by a label for reporting.
type Item struct {
	Name  string
	State *problem.State
}

// Stats accumulates counters across every worker. All fields are touched
// only via atomic operations since workers run concurrently.
type Stats struct {
	attempted      uint32
	solved         uint32
	nodesSum       uint64
	solvedNodesSum uint64
	solvedCount    uint32
}

func (s *Stats) Attempted() int   { return int(atomic.LoadUint32(&s.attempted)) }
func (s *Stats) Solved() int      { return int(atomic.LoadUint32(&s.solved)) }
func (s *Stats) NodesSum() uint64 { return atomic.LoadUint64(&s.nodesSum) }

// Summary is the final report handed back once every item has run.
type Summary struct {
	TotalScenarios     int
	Solved             int
	SolveRate          float64
	Elapsed            time.Duration
	ScenariosPerSecond float64
	MeanNodesExplored  float64
	MeanNodesToSolve   float64
	Workers            int
}

// Arena runs a fixed Driver across a slice of Items, spreading the work
// over NThreads workers the same way the upstream arena spreads games: the
// item slice is split into near-equal contiguous shares up front, not
// claimed from a shared queue, so no item is run twice even under
// cancellation.
type Arena struct {
	Driver   *mcts.Driver
	NThreads int
	Stats    Stats
}

// NewArena builds an Arena with at least one worker thread.
func NewArena(driver *mcts.Driver, nThreads int) *Arena {
	if nThreads < 1 {
		nThreads = 1
	}
	return &Arena{Driver: driver, NThreads: nThreads}
}

// Run searches every item and returns the aggregate summary. An item whose
// search returns an error counts as attempted but adds no nodes and no
// solve; the worker goes on with its next item. Once ctx is cancelled,
// every worker stops before starting its next item.
func (a *Arena) Run(ctx context.Context, items []Item) *Summary {
	start := time.Now()

	shares := split(items, a.NThreads)
	var wg sync.WaitGroup
	for _, share := range shares {
		if len(share) == 0 {
			continue
		}
		wg.Add(1)
		go func(share []Item) {
			defer wg.Done()
			a.worker(ctx, share)
		}(share)
	}
	wg.Wait()

	elapsed := time.Since(start)
	attempted := a.Stats.Attempted()
	solved := a.Stats.Solved()

	summary := &Summary{
		TotalScenarios: attempted,
		Solved:         solved,
		Elapsed:        elapsed,
		Workers:        a.NThreads,
	}
	if attempted > 0 {
		summary.SolveRate = float64(solved) / float64(attempted)
		summary.MeanNodesExplored = float64(a.Stats.NodesSum()) / float64(attempted)
	}
	if elapsed > 0 {
		summary.ScenariosPerSecond = float64(attempted) / elapsed.Seconds()
	}
	if solvedCount := atomic.LoadUint32(&a.Stats.solvedCount); solvedCount > 0 {
		summary.MeanNodesToSolve = float64(atomic.LoadUint64(&a.Stats.solvedNodesSum)) / float64(solvedCount)
	}
	return summary
}

func (a *Arena) worker(ctx context.Context, items []Item) {
	for _, item := range items {
		select {
		case <-ctx.Done():
			return
		default:
		}

		result, err := a.Driver.Search(ctx, item.State)
		atomic.AddUint32(&a.Stats.attempted, 1)
		if err != nil {
			continue
		}

		nodes := uint64(mcts.CountTotalNodes(result.Root))
		atomic.AddUint64(&a.Stats.nodesSum, nodes)

		if result.TerminalFound || solvedByPath(item.State, result.Path) {
			atomic.AddUint32(&a.Stats.solved, 1)
			atomic.AddUint64(&a.Stats.solvedNodesSum, nodes)
			atomic.AddUint32(&a.Stats.solvedCount, 1)
		}
	}
}

// solvedByPath replays the search's recommended path against a fresh copy
// of the scenario's initial state and reports whether it reaches a
// terminal (fully solved) snapshot.
func solvedByPath(state *problem.State, path []problem.Action) bool {
	s := state.Copy()
	for _, action := range path {
		if !s.ApplyAction(action.Name, action.Params) {
			return false
		}
	}
	return s.IsTerminal()
}

// split divides items into n contiguous, near-equal shares — the remainder
// is distributed one-per-share starting from the first, same as the
// upstream arena's game-count split.
func split(items []Item, n int) [][]Item {
	shares := make([][]Item, n)
	base := len(items) / n
	rest := len(items) % n

	offset := 0
	for i := 0; i < n; i++ {
		size := base
		if i < rest {
			size++
		}
		shares[i] = items[offset : offset+size]
		offset += size
	}
	return shares
}
