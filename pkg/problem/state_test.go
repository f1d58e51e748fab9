package problem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beluga-challenge/go-mcts/pkg/domain"
)

// scenarioA builds the snapshot from spec Scenario A: a single loaded
// typeA jig aboard the active beluga, one rack, one hangar, one production
// line demanding that jig.
func scenarioA() *State {
	jigs := []domain.Jig{{Type: domain.TypeA, Empty: false}}
	belugas := []domain.Beluga{{CurrentJigs: []int{0}, Outgoing: nil}}
	racks := []domain.Rack{{Capacity: 10}}
	lines := []domain.ProductionLine{{ScheduledJigs: []int{0}}}
	return NewState(jigs, belugas, []int{EmptySlot}, []int{EmptySlot}, racks, lines, []int{EmptySlot})
}

// scenarioB builds the snapshot from spec Scenario B: an empty typeA jig
// already sitting on a beluga trailer, with the active beluga demanding it
// back out.
func scenarioB() *State {
	jigs := []domain.Jig{{Type: domain.TypeA, Empty: true}}
	belugas := []domain.Beluga{{CurrentJigs: nil, Outgoing: []domain.JigType{domain.TypeA}}}
	return NewState(jigs, belugas, []int{0}, []int{EmptySlot}, nil, nil, nil)
}

func TestScenarioA_SingleStepSolve(t *testing.T) {
	s := scenarioA()

	require.True(t, s.ApplyAction(UnloadBeluga, nil))
	require.True(t, s.ApplyAction(LeftStackRack, []int{0, 0}))
	require.True(t, s.ApplyAction(RightUnstackRack, []int{0, 0}))
	require.True(t, s.ApplyAction(DeliverToHangar, []int{0, 0}))

	assert.True(t, s.IsTerminal())
	assert.True(t, s.ProblemSolved)
	assert.Equal(t, 1, s.BelugasUnloaded)
	assert.Equal(t, 1, s.BelugasFinished)
	assert.Equal(t, 1, s.ProductionLinesFinished)
	assert.GreaterOrEqual(t, s.Evaluate(4), 1175.0-0.05*4)
}

func TestScenarioB_LoadBeluga(t *testing.T) {
	s := scenarioB()

	require.True(t, s.ApplyAction(LoadBeluga, []int{0}))

	assert.Empty(t, s.Belugas)
	assert.Equal(t, 1, s.BelugasFinished)
	assert.Equal(t, EmptySlot, s.TrailersBeluga[0])
}

// P4: a rejected action leaves the snapshot serialization-equal to before.
func TestP4_IllegalActionLeavesStateUnchanged(t *testing.T) {
	s := scenarioA()
	before := s.Copy()

	ok := s.ApplyAction(RightStackRack, []int{0, 0}) // factory trailer is empty
	require.False(t, ok)
	// Copy turns nil slices into empty ones, so compare like with like.
	assert.Equal(t, before, s.Copy())
}

// P5: check_action_valid agrees with "apply_action on a copy returns true".
func TestP5_CheckActionValidAgreesWithApply(t *testing.T) {
	s := scenarioA()

	for _, action := range s.PossibleActions() {
		valid := s.CheckActionValid(action.Name, action.Params)
		applied := s.Copy().ApplyAction(action.Name, action.Params)
		assert.Equal(t, valid, applied, "action %s %v", action.Name, action.Params)
	}
}

// P6: possible_actions() is exactly the set of actions check_action_valid
// accepts, enumerated over every action name this state could name.
func TestP6_PossibleActionsMatchesCheckActionValid(t *testing.T) {
	s := scenarioA()

	possible := s.PossibleActions()
	seen := make(map[string]bool, len(possible))
	for _, a := range possible {
		assert.True(t, s.CheckActionValid(a.Name, a.Params))
		seen[a.Name.String()] = true
	}

	// unload_beluga has no params — exercised directly since it is not
	// covered by EnumerateValidParams.
	if s.CheckActionValid(UnloadBeluga, nil) {
		assert.True(t, seen["unload_beluga"])
	}
}

func TestP2_RackNeverExceedsCapacity(t *testing.T) {
	s := scenarioA()
	require.True(t, s.ApplyAction(UnloadBeluga, nil))
	require.True(t, s.ApplyAction(LeftStackRack, []int{0, 0}))

	for _, rack := range s.Racks {
		used := rack.Capacity - rack.FreeSpace(s.Jigs)
		assert.LessOrEqual(t, used, rack.Capacity)
	}
}

func TestP3_CountersTrackRemovals(t *testing.T) {
	s := scenarioA()
	require.True(t, s.ApplyAction(UnloadBeluga, nil))
	require.True(t, s.ApplyAction(LeftStackRack, []int{0, 0}))
	require.True(t, s.ApplyAction(RightUnstackRack, []int{0, 0}))
	require.True(t, s.ApplyAction(DeliverToHangar, []int{0, 0}))

	assert.Equal(t, s.TotalBelugas-len(s.Belugas), s.BelugasFinished)
	assert.Equal(t, s.TotalLines-len(s.ProductionLines), s.ProductionLinesFinished)
}

func TestCopyIsIndependent(t *testing.T) {
	s := scenarioA()
	clone := s.Copy()

	require.True(t, clone.ApplyAction(UnloadBeluga, nil))

	assert.NotEmpty(t, clone.TrailersBeluga)
	assert.Equal(t, EmptySlot, s.TrailersBeluga[0])
	assert.Len(t, s.Belugas[0].CurrentJigs, 1)
}

func TestEnumerateValidParamsOrderIsIndexIncreasing(t *testing.T) {
	jigs := []domain.Jig{
		{Type: domain.TypeA, Empty: false},
		{Type: domain.TypeA, Empty: false},
	}
	s := NewState(jigs, nil, []int{0, 1}, nil, []domain.Rack{{Capacity: 10}, {Capacity: 10}}, nil, nil)

	params := s.EnumerateValidParams(LeftStackRack)
	require.Len(t, params, 4)
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, params)
}
