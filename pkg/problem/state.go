// Package problem implements the Beluga Challenge transition system: the
// ProblemState snapshot, its eight atomic actions, legal-action
// enumeration, and the reward used by the search in pkg/mcts.
package problem

import "github.com/beluga-challenge/go-mcts/pkg/domain"

// EmptySlot is the sentinel stored in a trailer/hangar slot that holds no
// jig — the idiomatic Go stand-in for the source's None.
const EmptySlot = -1

// DefaultDepthPenalty is the mu term in Evaluate's depth penalty.
const DefaultDepthPenalty = 0.05

// State is an immutable-from-the-search's-perspective snapshot of the
// Beluga floor: the jig registry, the beluga queue, both trailer arrays,
// the racks, the production lines and the hangars, plus the monotone
// progress counters used by Evaluate.
type State struct {
	Jigs            []domain.Jig
	Belugas         []domain.Beluga
	TrailersBeluga  []int
	TrailersFactory []int
	Racks           []domain.Rack
	ProductionLines []domain.ProductionLine
	Hangars         []int

	BelugasUnloaded         int
	BelugasFinished         int
	ProductionLinesFinished int
	TotalBelugas            int
	TotalLines              int
	ProblemSolved           bool
}

// NewState builds the initial snapshot a scenario loader produces. The
// counters derive from the given slice lengths.
func NewState(
	jigs []domain.Jig,
	belugas []domain.Beluga,
	trailersBeluga, trailersFactory []int,
	racks []domain.Rack,
	productionLines []domain.ProductionLine,
	hangars []int,
) *State {
	s := &State{
		Jigs:            jigs,
		Belugas:         belugas,
		TrailersBeluga:  trailersBeluga,
		TrailersFactory: trailersFactory,
		Racks:           racks,
		ProductionLines: productionLines,
		Hangars:         hangars,
		TotalBelugas:    len(belugas),
		TotalLines:      len(productionLines),
	}
	s.refreshCounters()
	return s
}

// refreshCounters recomputes the derived progress fields from current
// slice lengths — invariants P3 and "problem_solved ⇔ ..." of the spec.
func (s *State) refreshCounters() {
	s.BelugasFinished = s.TotalBelugas - len(s.Belugas)
	s.ProductionLinesFinished = s.TotalLines - len(s.ProductionLines)
	s.ProblemSolved = len(s.Belugas) == 0 && len(s.ProductionLines) == 0
}

// Copy returns an independent snapshot: mutating the result never affects
// the receiver, and vice versa. Every reference field is deep-copied.
func (s *State) Copy() *State {
	jigs := make([]domain.Jig, len(s.Jigs))
	copy(jigs, s.Jigs)

	belugas := make([]domain.Beluga, len(s.Belugas))
	for i, b := range s.Belugas {
		belugas[i] = b.Clone()
	}

	trailersBeluga := make([]int, len(s.TrailersBeluga))
	copy(trailersBeluga, s.TrailersBeluga)

	trailersFactory := make([]int, len(s.TrailersFactory))
	copy(trailersFactory, s.TrailersFactory)

	racks := make([]domain.Rack, len(s.Racks))
	for i, r := range s.Racks {
		racks[i] = r.Clone()
	}

	lines := make([]domain.ProductionLine, len(s.ProductionLines))
	for i, l := range s.ProductionLines {
		lines[i] = l.Clone()
	}

	hangars := make([]int, len(s.Hangars))
	copy(hangars, s.Hangars)

	return &State{
		Jigs:                    jigs,
		Belugas:                 belugas,
		TrailersBeluga:          trailersBeluga,
		TrailersFactory:         trailersFactory,
		Racks:                   racks,
		ProductionLines:         lines,
		Hangars:                 hangars,
		BelugasUnloaded:         s.BelugasUnloaded,
		BelugasFinished:         s.BelugasFinished,
		ProductionLinesFinished: s.ProductionLinesFinished,
		TotalBelugas:            s.TotalBelugas,
		TotalLines:              s.TotalLines,
		ProblemSolved:           s.ProblemSolved,
	}
}

// IsTerminal reports whether every beluga and every production line has
// been processed.
func (s *State) IsTerminal() bool {
	return len(s.Belugas) == 0 && len(s.ProductionLines) == 0
}

// Evaluate scores the snapshot for MCTS: progress subgoals minus a linear
// depth penalty. Uses DefaultDepthPenalty as mu; see EvaluateWithMu for a
// custom penalty factor.
func (s *State) Evaluate(depth int) float64 {
	return s.EvaluateWithMu(depth, DefaultDepthPenalty)
}

// EvaluateWithMu is Evaluate with an explicit depth-penalty factor.
func (s *State) EvaluateWithMu(depth int, mu float64) float64 {
	score := 15*float64(s.BelugasUnloaded) +
		60*float64(s.BelugasFinished) +
		100*float64(s.ProductionLinesFinished)
	if s.ProblemSolved {
		score += 1000
	}
	return score - mu*float64(depth)
}

// CheckActionValid reports whether applying the named action with these
// parameters would succeed, without mutating the receiver.
func (s *State) CheckActionValid(name ActionName, params []int) bool {
	return s.Copy().ApplyAction(name, params)
}

// ApplyAction mutates the receiver, applying the named action with the
// given parameters. Returns whether the action's preconditions held — on
// false the receiver is left unchanged, since every action function
// checks preconditions before mutating anything.
func (s *State) ApplyAction(name ActionName, params []int) bool {
	var ok bool
	switch name {
	case UnloadBeluga:
		ok = s.unloadBeluga()
	case LoadBeluga:
		if len(params) != 1 {
			return false
		}
		ok = s.loadBeluga(params[0])
	case GetFromHangar:
		if len(params) != 2 {
			return false
		}
		ok = s.getFromHangar(params[0], params[1])
	case DeliverToHangar:
		if len(params) != 2 {
			return false
		}
		ok = s.deliverToHangar(params[0], params[1])
	case LeftStackRack:
		if len(params) != 2 {
			return false
		}
		ok = s.leftStackRack(params[0], params[1])
	case RightStackRack:
		if len(params) != 2 {
			return false
		}
		ok = s.rightStackRack(params[0], params[1])
	case LeftUnstackRack:
		if len(params) != 2 {
			return false
		}
		ok = s.leftUnstackRack(params[0], params[1])
	case RightUnstackRack:
		if len(params) != 2 {
			return false
		}
		ok = s.rightUnstackRack(params[0], params[1])
	default:
		return false
	}

	if ok {
		s.refreshCounters()
	}
	return ok
}

// EnumerateValidParams returns every legal parameter tuple for the named
// action, scanning indices in increasing order (outer loop over the first
// parameter for pair-parameter actions) — the order is observable through
// MCTS's untried-action selection and must stay stable.
func (s *State) EnumerateValidParams(name ActionName) [][]int {
	var params [][]int

	switch name {
	case LeftStackRack:
		for rack := range s.Racks {
			for trailer := range s.TrailersBeluga {
				if s.CheckActionValid(name, []int{rack, trailer}) {
					params = append(params, []int{rack, trailer})
				}
			}
		}
	case RightStackRack:
		for rack := range s.Racks {
			for trailer := range s.TrailersFactory {
				if s.CheckActionValid(name, []int{rack, trailer}) {
					params = append(params, []int{rack, trailer})
				}
			}
		}
	case LeftUnstackRack:
		for rack := range s.Racks {
			for trailer := range s.TrailersBeluga {
				if s.CheckActionValid(name, []int{rack, trailer}) {
					params = append(params, []int{rack, trailer})
				}
			}
		}
	case RightUnstackRack:
		for rack := range s.Racks {
			for trailer := range s.TrailersFactory {
				if s.CheckActionValid(name, []int{rack, trailer}) {
					params = append(params, []int{rack, trailer})
				}
			}
		}
	case LoadBeluga:
		for trailer := range s.TrailersBeluga {
			if s.CheckActionValid(name, []int{trailer}) {
				params = append(params, []int{trailer})
			}
		}
	case GetFromHangar:
		for hangar := range s.Hangars {
			for trailer := range s.TrailersFactory {
				if s.CheckActionValid(name, []int{hangar, trailer}) {
					params = append(params, []int{hangar, trailer})
				}
			}
		}
	case DeliverToHangar:
		for hangar := range s.Hangars {
			for trailer := range s.TrailersFactory {
				if s.CheckActionValid(name, []int{hangar, trailer}) {
					params = append(params, []int{hangar, trailer})
				}
			}
		}
	}

	return params
}

// paramActionOrder is the fixed concatenation order PossibleActions uses
// after unload_beluga.
var paramActionOrder = [...]ActionName{
	LeftStackRack, RightStackRack, LeftUnstackRack, RightUnstackRack,
	LoadBeluga, GetFromHangar, DeliverToHangar,
}

// PossibleActions enumerates every legal (name, params) pair reachable
// from the snapshot, in the fixed order: unload_beluga (if legal) then
// the parameterized actions per paramActionOrder.
func (s *State) PossibleActions() []Action {
	var actions []Action

	if s.CheckActionValid(UnloadBeluga, nil) {
		actions = append(actions, Action{Name: UnloadBeluga})
	}

	for _, name := range paramActionOrder {
		for _, params := range s.EnumerateValidParams(name) {
			actions = append(actions, Action{Name: name, Params: params})
		}
	}

	return actions
}
