package mcts

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beluga-challenge/go-mcts/pkg/domain"
	"github.com/beluga-challenge/go-mcts/pkg/problem"
)

func oneActionState() *problem.State {
	jigs := []domain.Jig{{Type: domain.TypeA, Empty: false}}
	belugas := []domain.Beluga{{CurrentJigs: []int{0}, Outgoing: []domain.JigType{domain.TypeA}}}
	return problem.NewState(jigs, belugas, []int{problem.EmptySlot}, nil, nil, nil, nil)
}

// Scenario F: depth=1, one legal action — after a single simulation the
// root has exactly one child visited once, and the rollout contributes
// nothing beyond the expansion step because the depth cap is already hit.
func TestScenarioF_DepthCapBoundary(t *testing.T) {
	driver := NewDriver(Config{Depth: 1, NSimulations: 1, NumThreads: 1, Seed: 42}, zerolog.Nop())

	result, err := driver.Search(context.Background(), oneActionState())
	require.NoError(t, err)

	require.Len(t, result.Root.Children, 1)
	assert.Equal(t, 1, result.Root.Children[0].Visits)
}

func richerState() *problem.State {
	jigs := []domain.Jig{
		{Type: domain.TypeA, Empty: false},
		{Type: domain.TypeA, Empty: false},
	}
	belugas := []domain.Beluga{{CurrentJigs: []int{0, 1}, Outgoing: []domain.JigType{domain.TypeA, domain.TypeA}}}
	racks := []domain.Rack{{Capacity: 20}}
	lines := []domain.ProductionLine{{ScheduledJigs: []int{0, 1}}}
	return problem.NewState(jigs, belugas, []int{problem.EmptySlot, problem.EmptySlot}, []int{problem.EmptySlot}, racks, lines, []int{problem.EmptySlot, problem.EmptySlot})
}

// P9: two sequential runs with identical seed, depth and simulation budget
// pick the same final action.
func TestP9_DeterministicWithFixedSeed(t *testing.T) {
	cfg := Config{Depth: 5, NSimulations: 150, NumThreads: 1, Seed: 1234}

	r1, err := NewDriver(cfg, zerolog.Nop()).Search(context.Background(), richerState())
	require.NoError(t, err)
	r2, err := NewDriver(cfg, zerolog.Nop()).Search(context.Background(), richerState())
	require.NoError(t, err)

	require.Equal(t, r1.HasBest, r2.HasBest)
	assert.True(t, r1.Best.Equal(r2.Best))
}

// Scenario E: merging root-parallel workers sums visits/reward per action
// on matching children and keeps the best one by mean reward.
func TestScenarioE_RootParallelMerge(t *testing.T) {
	actionA := problem.Action{Name: problem.UnloadBeluga}
	actionB := problem.Action{Name: problem.LeftStackRack, Params: []int{0, 0}}

	base := oneActionState()
	merged := NewRoot(base)

	var visitsA, visitsB int
	var rewardA, rewardB float64

	for w := 0; w < 4; w++ {
		workerRoot := NewRoot(base)
		childA := workerRoot.Expand(actionA)
		childA.Visits = w + 1
		childA.TotalReward = float64(w + 1)
		visitsA += childA.Visits
		rewardA += childA.TotalReward

		childB := &Node{Parent: workerRoot, State: base, Action: actionB}
		childB.Visits = 1
		childB.TotalReward = 5.0
		workerRoot.Children = append(workerRoot.Children, childB)
		visitsB += childB.Visits
		rewardB += childB.TotalReward

		mergeRootChildren(merged, workerRoot)
	}
	recomputeRootTotals(merged)

	got := merged.childByAction(actionA)
	require.NotNil(t, got)
	assert.Equal(t, visitsA, got.Visits)
	assert.InDelta(t, rewardA, got.TotalReward, 1e-9)

	gotB := merged.childByAction(actionB)
	require.NotNil(t, gotB)
	assert.Equal(t, visitsB, gotB.Visits)
	assert.InDelta(t, rewardB, gotB.TotalReward, 1e-9)

	assert.Equal(t, visitsA+visitsB, merged.Visits)

	best := merged.BestChild(0)
	wantMean := rewardB / float64(visitsB)
	if rewardA/float64(visitsA) > wantMean {
		assert.Same(t, got, best)
	} else {
		assert.Same(t, gotB, best)
	}
}

func TestRootParallelSearch_MergesWorkers(t *testing.T) {
	driver := NewDriver(Config{Depth: 5, NSimulations: 60, NumThreads: 4, Seed: 7}, zerolog.Nop())

	result, err := driver.Search(context.Background(), richerState())
	require.NoError(t, err)
	assert.True(t, result.HasBest)
	assert.NotEmpty(t, result.Root.Children)
}
