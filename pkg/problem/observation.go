package problem

import "github.com/beluga-challenge/go-mcts/pkg/domain"

// maxObservedRacks bounds the rack slots encoded in the observation vector.
// Scenarios with more racks than this simply leave the extra racks
// unobserved (slots 10..39 stay at whatever the loop below fills in for
// i < maxObservedRacks; racks beyond the bound are not represented).
const maxObservedRacks = 10

// ObservationLength is the fixed length of the vector ObservationHighLevel
// returns: 1 (beluga) + 3 (beluga trailers) + 3 (factory trailers) +
// 3 (hangars) + 3*maxObservedRacks.
const ObservationLength = 10 + 3*maxObservedRacks

// ObservationHighLevel returns the fixed-length, real-valued view of the
// snapshot used to train/evaluate a high-level policy. Layout (ported from
// the original implementation's get_observation_high_level, which the
// distilled spec only partially retained):
//
//	slot 0:      -1 no active beluga, else clamp(|current_jigs|, 0, 1)
//	slots 1-3:   beluga trailers — -1 absent, 0.5 empty, else per jig-need
//	slots 4-6:   factory trailers — -1 absent, 0.5 empty, else per jig-need
//	slots 7-9:   hangars — -1 absent, 0 empty, 1 holding a jig
//	slots 10-39: up to 10 racks, 3 floats each — [0] (items-k)/items for the
//	             first jig k that is empty and of a needed outgoing type,
//	             [1] (k+1)/items for the first jig k demanded at a production
//	             line head, [2] free/capacity; 0 where nothing matches, and
//	             -1 in all three for a rack that does not exist
func (s *State) ObservationHighLevel() []float64 {
	out := make([]float64, ObservationLength)

	var neededOutgoing []domain.JigType
	var neededAtLineHead []int
	for _, line := range s.ProductionLines {
		if len(line.ScheduledJigs) > 0 {
			neededAtLineHead = append(neededAtLineHead, line.ScheduledJigs[0])
		}
	}

	noCargo := false
	if len(s.Belugas) > 0 {
		n := len(s.Belugas[0].CurrentJigs)
		if n > 1 {
			n = 1
		}
		out[0] = float64(n)
		noCargo = n == 0
		if noCargo {
			neededOutgoing = s.Belugas[0].Outgoing
		}
	} else {
		out[0] = -1
	}

	for i := 0; i < 3; i++ {
		slot := 1 + i
		if i >= len(s.TrailersBeluga) {
			out[slot] = -1
			continue
		}
		jigID := s.TrailersBeluga[i]
		switch {
		case jigID == EmptySlot:
			out[slot] = 0.5
		case s.Jigs[jigID].Empty && noCargo && containsType(neededOutgoing, s.Jigs[jigID].Type):
			out[slot] = 0
		case s.Jigs[jigID].Empty && noCargo:
			out[slot] = 0.25
		default:
			out[slot] = 1
		}
	}

	for i := 0; i < 3; i++ {
		slot := 4 + i
		if i >= len(s.TrailersFactory) {
			out[slot] = -1
			continue
		}
		jigID := s.TrailersFactory[i]
		switch {
		case jigID == EmptySlot:
			out[slot] = 0.5
		case s.Jigs[jigID].Empty:
			out[slot] = 0
		case containsInt(neededAtLineHead, jigID):
			out[slot] = 1
		default:
			out[slot] = 0.75
		}
	}

	for i := 0; i < 3; i++ {
		slot := 7 + i
		if i >= len(s.Hangars) {
			out[slot] = -1
			continue
		}
		if s.Hangars[i] == EmptySlot {
			out[slot] = 0
		} else {
			out[slot] = 1
		}
	}

	base := 10
	for i := 0; i < maxObservedRacks; i++ {
		if i >= len(s.Racks) {
			out[base+i*3] = -1
			out[base+i*3+1] = -1
			out[base+i*3+2] = -1
			continue
		}
		rack := s.Racks[i]
		if rack.Capacity > 0 {
			out[base+i*3+2] = float64(rack.FreeSpace(s.Jigs)) / float64(rack.Capacity)
		}
		items := len(rack.CurrentJigs)
		if items == 0 {
			continue
		}

		for k, jigID := range rack.CurrentJigs {
			jig := s.Jigs[jigID]
			if jig.Empty && containsType(neededOutgoing, jig.Type) {
				out[base+i*3] = float64(items-k) / float64(items)
				break
			}
		}
		for k, jigID := range rack.CurrentJigs {
			if containsInt(neededAtLineHead, jigID) {
				out[base+i*3+1] = float64(k+1) / float64(items)
				break
			}
		}
	}

	return out
}

func containsInt(haystack []int, needle int) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}

func containsType(haystack []domain.JigType, needle domain.JigType) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}
