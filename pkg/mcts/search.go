package mcts

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/beluga-challenge/go-mcts/pkg/problem"
)

// Config bounds and tunes a search.
type Config struct {
	// Depth caps both selection descent and rollout length.
	Depth int
	// NSimulations is the iteration budget for a sequential search, or the
	// total budget split across NumThreads for a root-parallel one.
	NSimulations int
	// NumThreads selects the search mode: 1 runs the plain sequential loop,
	// >1 runs independent trees per worker merged at the end (root
	// parallelism only — workers never share tree state while searching).
	NumThreads int
	// ExplorationWeight is the UCT exploration coefficient used during
	// selection. The final move choice always uses weight 0.
	ExplorationWeight float64
	// Seed fixes the rollout RNG. Two searches over the same state with the
	// same Seed, Depth and NSimulations pick the same final action. Zero
	// means "seed from the current time" — non-deterministic by default,
	// same as the source's global RNG.
	Seed  int64
	Debug bool
}

// DefaultConfig mirrors the source's MCTS constructor defaults.
func DefaultConfig() Config {
	return Config{
		Depth:             5,
		NSimulations:      300,
		NumThreads:        1,
		ExplorationWeight: 1.0,
	}
}

func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.Depth <= 0 {
		c.Depth = def.Depth
	}
	if c.NSimulations <= 0 {
		c.NSimulations = def.NSimulations
	}
	if c.NumThreads <= 0 {
		c.NumThreads = 1
	}
	if c.ExplorationWeight == 0 {
		c.ExplorationWeight = def.ExplorationWeight
	}
	return c
}

// Result is what a search returns: the chosen root child, whether an
// expansion step reached a terminal (solved) state (terminal states met
// only during a rollout do not set it), and the greedy best path read off
// the finished tree.
type Result struct {
	Root          *Node
	Best          problem.Action
	HasBest       bool
	TerminalFound bool
	Path          []problem.Action
}

// Driver runs searches with a fixed configuration and logger.
type Driver struct {
	cfg    Config
	logger zerolog.Logger
}

// NewDriver builds a Driver, filling any zero-valued Config field with
// DefaultConfig's value.
func NewDriver(cfg Config, logger zerolog.Logger) *Driver {
	return &Driver{cfg: cfg.normalized(), logger: logger}
}

// Search runs the configured search starting from state, without mutating
// it, and returns the chosen action.
func (d *Driver) Search(ctx context.Context, state *problem.State) (*Result, error) {
	if d.cfg.NumThreads <= 1 {
		root := NewRoot(state.Copy())
		rng := rand.New(rand.NewSource(d.seed()))
		terminalFound := runSequential(ctx, root, d.cfg, rng, d.logger)
		return finalize(root, terminalFound), nil
	}
	return d.searchRootParallel(ctx, state)
}

// SearchPinned is Search, but restricts the root to choosing parameters for
// a single, already-decided action name. It always runs the sequential
// loop; NumThreads is not consulted.
func (d *Driver) SearchPinned(ctx context.Context, state *problem.State, name problem.ActionName) (*Result, error) {
	root := NewPinnedRoot(state.Copy(), name)
	rng := rand.New(rand.NewSource(d.seed()))
	terminalFound := runSequential(ctx, root, d.cfg, rng, d.logger)
	return finalize(root, terminalFound), nil
}

func (d *Driver) seed() int64 {
	if d.cfg.Seed != 0 {
		return d.cfg.Seed
	}
	return time.Now().UnixNano()
}

func (d *Driver) searchRootParallel(ctx context.Context, state *problem.State) (*Result, error) {
	threads := d.cfg.NumThreads
	simsPerThread := d.cfg.NSimulations / threads
	if simsPerThread < 1 {
		simsPerThread = 1
	}

	roots := make([]*Node, threads)
	terminalFlags := make([]bool, threads)
	baseSeed := d.seed()

	g, gctx := errgroup.WithContext(ctx)
	for t := 0; t < threads; t++ {
		t := t
		g.Go(func() error {
			workerCfg := d.cfg
			workerCfg.NSimulations = simsPerThread
			workerRoot := NewRoot(state.Copy())
			rng := rand.New(rand.NewSource(baseSeed + int64(t)*1000))
			workerLogger := d.logger.With().Int("worker", t).Logger()

			roots[t] = workerRoot
			terminalFlags[t] = runSequential(gctx, workerRoot, workerCfg, rng, workerLogger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := NewRoot(state.Copy())
	anyTerminal := false
	for i, workerRoot := range roots {
		mergeRootChildren(merged, workerRoot)
		anyTerminal = anyTerminal || terminalFlags[i]
	}
	recomputeRootTotals(merged)

	d.logger.Debug().
		Int("workers", threads).
		Int("merged_children", len(merged.Children)).
		Int("merged_visits", merged.Visits).
		Msg("root-parallel merge complete")

	return finalize(merged, anyTerminal), nil
}

// mergeRootChildren folds src's direct root children into dst: matching
// actions accumulate visits/reward, unseen actions are attached fresh.
// Grandchildren are not preserved — each worker's deeper exploration stays
// private to that worker's tree, mirroring the reference implementation's
// root-level-only merge.
func mergeRootChildren(dst, src *Node) {
	for _, schild := range src.Children {
		if existing := dst.childByAction(schild.Action); existing != nil {
			existing.Visits += schild.Visits
			existing.TotalReward += schild.TotalReward
			continue
		}
		clone := dst.Expand(schild.Action)
		clone.Visits = schild.Visits
		clone.TotalReward = schild.TotalReward
	}
}

func recomputeRootTotals(root *Node) {
	root.Visits = 0
	root.TotalReward = 0
	for _, child := range root.Children {
		root.Visits += child.Visits
		root.TotalReward += child.TotalReward
	}
}

// runSequential runs up to cfg.NSimulations iterations of selection,
// expansion, rollout and backpropagation against root, stopping early if a
// terminal state is reached or the tree can no longer usefully grow.
func runSequential(ctx context.Context, root *Node, cfg Config, rng *rand.Rand, logger zerolog.Logger) bool {
	terminalFound := false
	for i := 0; i < cfg.NSimulations; i++ {
		select {
		case <-ctx.Done():
			return terminalFound
		default:
		}

		if cfg.Debug {
			logger.Debug().Int("iteration", i+1).Int("of", cfg.NSimulations).Msg("mcts iteration")
		}

		found, abort := runIteration(root, cfg, rng)
		if found {
			terminalFound = true
			break
		}
		if abort {
			break
		}
	}
	return terminalFound
}

// runIteration runs one selection/expansion/rollout/backpropagation cycle.
// It returns terminalFound if expansion reached a solved state (the search
// should stop immediately, reward already backpropagated), and abort if no
// further expansion is possible and the caller should stop iterating.
func runIteration(root *Node, cfg Config, rng *rand.Rand) (terminalFound, abort bool) {
	node := selectNode(root, cfg)

	if !node.IsTerminal() {
		untried := node.UntriedActions()
		if len(untried) > 0 {
			action := untried[rng.Intn(len(untried))]
			node = node.Expand(action)
			if node.State.IsTerminal() {
				reward := node.State.Evaluate(node.Depth)
				node.Backpropagate(reward)
				return true, true
			}
		} else if len(node.Children) == 0 || node.Depth >= cfg.Depth-1 {
			return false, true
		}
	}

	reward := rollout(node, cfg, rng)
	node.Backpropagate(reward)
	return false, false
}

// selectNode walks down from root along best children until it finds a node
// that is not fully expanded, is terminal, or has reached the depth cap.
func selectNode(root *Node, cfg Config) *Node {
	node := root
	depth := 0
	for !node.IsTerminal() && node.IsFullyExpanded() && depth < cfg.Depth {
		next := node.BestChild(cfg.ExplorationWeight)
		if next == nil {
			break
		}
		node = next
		depth++
	}
	return node
}

// rollout plays uniformly random legal actions from node's state until it
// is terminal or the depth cap is reached, then scores the result.
func rollout(node *Node, cfg Config, rng *rand.Rand) float64 {
	state := node.State.Copy()
	depth := node.Depth

	for !state.IsTerminal() && depth < cfg.Depth {
		actions := state.PossibleActions()
		if len(actions) == 0 {
			break
		}
		action := actions[rng.Intn(len(actions))]
		state.ApplyAction(action.Name, action.Params)
		depth++
	}

	return state.Evaluate(depth)
}

// GetBestPath reads off the greedy (exploration weight 0) path from root to
// a leaf, the sequence of actions the search currently recommends.
func GetBestPath(root *Node) []problem.Action {
	var path []problem.Action
	node := root
	for {
		best := node.BestChild(0)
		if best == nil {
			break
		}
		path = append(path, best.Action)
		node = best
	}
	return path
}

func finalize(root *Node, terminalFound bool) *Result {
	best := root.BestChild(0)
	result := &Result{
		Root:          root,
		TerminalFound: terminalFound,
		Path:          GetBestPath(root),
	}
	if best != nil {
		result.Best = best.Action
		result.HasBest = true
	}
	return result
}
