package problem

// ActionName tags one of the eight atomic transitions a State supports.
// A tagged-variant enumeration is preferred over the source's bare action
// name strings — string dispatch is kept only at the serialization
// boundary (see Action.String and ParseActionName).
type ActionName uint8

const (
	UnloadBeluga ActionName = iota
	LeftStackRack
	RightStackRack
	LeftUnstackRack
	RightUnstackRack
	LoadBeluga
	GetFromHangar
	DeliverToHangar
)

var actionNames = [...]string{
	UnloadBeluga:      "unload_beluga",
	LeftStackRack:     "left_stack_rack",
	RightStackRack:    "right_stack_rack",
	LeftUnstackRack:   "left_unstack_rack",
	RightUnstackRack:  "right_unstack_rack",
	LoadBeluga:        "load_beluga",
	GetFromHangar:     "get_from_hangar",
	DeliverToHangar:   "deliver_to_hangar",
}

func (a ActionName) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// ParseActionName resolves the wire name of an action back to its tag.
func ParseActionName(name string) (ActionName, bool) {
	for i, n := range actionNames {
		if n == name {
			return ActionName(i), true
		}
	}
	return 0, false
}

// Action is a fully-parameterized transition: a name plus its integer
// parameter list (empty for unload_beluga, one entry for load_beluga,
// two entries for every rack/hangar action).
type Action struct {
	Name   ActionName
	Params []int
}

// Equal compares by name and parameter values, not by slice identity —
// used by untried-action set-difference during tree expansion.
func (a Action) Equal(b Action) bool {
	if a.Name != b.Name || len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if a.Params[i] != b.Params[i] {
			return false
		}
	}
	return true
}

// unloadBeluga pops the last jig off the active beluga's current_jigs into
// the first empty beluga trailer slot.
func (s *State) unloadBeluga() bool {
	if len(s.Belugas) == 0 {
		return false
	}
	beluga := &s.Belugas[0]
	if len(beluga.CurrentJigs) == 0 {
		return false
	}

	slot := -1
	for i, jig := range s.TrailersBeluga {
		if jig == EmptySlot {
			slot = i
			break
		}
	}
	if slot == -1 {
		return false
	}

	last := len(beluga.CurrentJigs) - 1
	jigID := beluga.CurrentJigs[last]
	beluga.CurrentJigs = beluga.CurrentJigs[:last]
	s.TrailersBeluga[slot] = jigID

	if len(beluga.CurrentJigs) == 0 {
		s.BelugasUnloaded++
		if len(beluga.Outgoing) == 0 {
			s.Belugas = append(s.Belugas[:0], s.Belugas[1:]...)
		}
	}
	return true
}

// loadBeluga removes the active beluga's next outgoing demand once the
// named beluga trailer slot holds a matching empty jig.
func (s *State) loadBeluga(trailerBeluga int) bool {
	if trailerBeluga < 0 || trailerBeluga >= len(s.TrailersBeluga) {
		return false
	}
	if len(s.Belugas) == 0 {
		return false
	}
	beluga := &s.Belugas[0]

	jigID := s.TrailersBeluga[trailerBeluga]
	if jigID == EmptySlot {
		return false
	}
	if !s.Jigs[jigID].Empty {
		return false
	}
	if len(beluga.Outgoing) == 0 || len(beluga.CurrentJigs) != 0 {
		return false
	}
	if s.Jigs[jigID].Type != beluga.Outgoing[0] {
		return false
	}

	beluga.Outgoing = beluga.Outgoing[1:]
	s.TrailersBeluga[trailerBeluga] = EmptySlot

	if beluga.Complete() {
		s.Belugas = append(s.Belugas[:0], s.Belugas[1:]...)
	}
	return true
}

// getFromHangar moves an empty jig out of a hangar slot into a free
// factory trailer slot.
func (s *State) getFromHangar(hangar, trailerFactory int) bool {
	if hangar < 0 || hangar >= len(s.Hangars) {
		return false
	}
	if trailerFactory < 0 || trailerFactory >= len(s.TrailersFactory) {
		return false
	}
	jigID := s.Hangars[hangar]
	if jigID == EmptySlot {
		return false
	}
	if s.TrailersFactory[trailerFactory] != EmptySlot {
		return false
	}
	if !s.Jigs[jigID].Empty {
		return false
	}

	s.TrailersFactory[trailerFactory] = jigID
	s.Hangars[hangar] = EmptySlot
	return true
}

// deliverToHangar moves a loaded jig from a factory trailer slot into a
// hangar, provided some production line demands it at its head.
func (s *State) deliverToHangar(hangar, trailerFactory int) bool {
	if hangar < 0 || hangar >= len(s.Hangars) {
		return false
	}
	if trailerFactory < 0 || trailerFactory >= len(s.TrailersFactory) {
		return false
	}
	if s.Hangars[hangar] != EmptySlot {
		return false
	}
	jigID := s.TrailersFactory[trailerFactory]
	if jigID == EmptySlot {
		return false
	}
	if s.Jigs[jigID].Empty {
		return false
	}

	lineIdx := -1
	for i, line := range s.ProductionLines {
		if len(line.ScheduledJigs) > 0 && line.ScheduledJigs[0] == jigID {
			lineIdx = i
			break
		}
	}
	if lineIdx == -1 {
		return false
	}

	line := &s.ProductionLines[lineIdx]
	line.ScheduledJigs = line.ScheduledJigs[1:]
	s.Hangars[hangar] = jigID
	s.Jigs[jigID].Empty = true
	s.TrailersFactory[trailerFactory] = EmptySlot

	if len(line.ScheduledJigs) == 0 {
		s.ProductionLines = append(s.ProductionLines[:lineIdx], s.ProductionLines[lineIdx+1:]...)
	}
	return true
}

// leftStackRack moves the jig held by a beluga trailer onto the left
// (aircraft-facing) end of a rack, if it fits.
func (s *State) leftStackRack(rack, trailerBeluga int) bool {
	if rack < 0 || rack >= len(s.Racks) {
		return false
	}
	if trailerBeluga < 0 || trailerBeluga >= len(s.TrailersBeluga) {
		return false
	}
	jigID := s.TrailersBeluga[trailerBeluga]
	if jigID == EmptySlot {
		return false
	}
	r := &s.Racks[rack]
	if r.FreeSpace(s.Jigs) < s.Jigs[jigID].Size() {
		return false
	}

	s.TrailersBeluga[trailerBeluga] = EmptySlot
	r.CurrentJigs = append([]int{jigID}, r.CurrentJigs...)
	return true
}

// rightStackRack moves the jig held by a factory trailer onto the right
// (factory-facing) end of a rack, if it fits.
func (s *State) rightStackRack(rack, trailerFactory int) bool {
	if rack < 0 || rack >= len(s.Racks) {
		return false
	}
	if trailerFactory < 0 || trailerFactory >= len(s.TrailersFactory) {
		return false
	}
	jigID := s.TrailersFactory[trailerFactory]
	if jigID == EmptySlot {
		return false
	}
	r := &s.Racks[rack]
	if r.FreeSpace(s.Jigs) < s.Jigs[jigID].Size() {
		return false
	}

	s.TrailersFactory[trailerFactory] = EmptySlot
	r.CurrentJigs = append(r.CurrentJigs, jigID)
	return true
}

// leftUnstackRack pulls the rack's front jig into an empty beluga trailer.
func (s *State) leftUnstackRack(rack, trailerBeluga int) bool {
	if rack < 0 || rack >= len(s.Racks) {
		return false
	}
	if trailerBeluga < 0 || trailerBeluga >= len(s.TrailersBeluga) {
		return false
	}
	if s.TrailersBeluga[trailerBeluga] != EmptySlot {
		return false
	}
	r := &s.Racks[rack]
	if len(r.CurrentJigs) == 0 {
		return false
	}

	s.TrailersBeluga[trailerBeluga] = r.CurrentJigs[0]
	r.CurrentJigs = r.CurrentJigs[1:]
	return true
}

// rightUnstackRack pulls the rack's back jig into an empty factory trailer.
func (s *State) rightUnstackRack(rack, trailerFactory int) bool {
	if rack < 0 || rack >= len(s.Racks) {
		return false
	}
	if trailerFactory < 0 || trailerFactory >= len(s.TrailersFactory) {
		return false
	}
	if s.TrailersFactory[trailerFactory] != EmptySlot {
		return false
	}
	r := &s.Racks[rack]
	n := len(r.CurrentJigs)
	if n == 0 {
		return false
	}

	s.TrailersFactory[trailerFactory] = r.CurrentJigs[n-1]
	r.CurrentJigs = r.CurrentJigs[:n-1]
	return true
}
