package problem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beluga-challenge/go-mcts/pkg/domain"
)

func TestObservationLength(t *testing.T) {
	s := scenarioA()
	obs := s.ObservationHighLevel()
	require.Len(t, obs, ObservationLength)
}

func TestObservationSlotZero_NoActiveBeluga(t *testing.T) {
	s := NewState(nil, nil, nil, nil, nil, nil, nil)
	obs := s.ObservationHighLevel()
	assert.Equal(t, -1.0, obs[0])
}

func TestObservationSlotZero_ClampsCargoCount(t *testing.T) {
	jigs := []domain.Jig{{Type: domain.TypeA}, {Type: domain.TypeA}}
	s := NewState(jigs, []domain.Beluga{{CurrentJigs: []int{0, 1}}}, nil, nil, nil, nil, nil)
	obs := s.ObservationHighLevel()
	assert.Equal(t, 1.0, obs[0])
}

func TestObservationTrailerSlots_AbsentIsMinusOne(t *testing.T) {
	s := NewState(nil, nil, []int{EmptySlot}, nil, nil, nil, nil)
	obs := s.ObservationHighLevel()
	assert.Equal(t, 0.5, obs[1])
	assert.Equal(t, -1.0, obs[2])
	assert.Equal(t, -1.0, obs[3])
}

func TestObservationStable(t *testing.T) {
	s := scenarioA()
	first := s.ObservationHighLevel()
	second := s.ObservationHighLevel()
	assert.Equal(t, first, second)
}
