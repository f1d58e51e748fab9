// Package mcts implements Monte Carlo Tree Search over problem.State: UCT
// selection, random-playout rollout, backpropagation, and a root-parallel
// ensemble driver that runs independent trees per worker and merges their
// root-level children once every worker has finished.
package mcts

import (
	"math"

	"github.com/beluga-challenge/go-mcts/pkg/problem"
)

// Node is one state in the search tree. Unlike a tree-parallel design, a
// Node is never touched by more than one goroutine at a time: each
// root-parallel worker owns a fully private tree for the length of its
// search, so no field needs atomic access.
type Node struct {
	State  *problem.State
	Parent *Node

	// Action is the transition that produced this node's State from its
	// parent's. The root has no action; HasAction distinguishes a populated
	// zero-value Action from "no action".
	Action    problem.Action
	HasAction bool

	// PinnedActionName restricts a root node's untried actions to a single
	// action name, ranging only over its parameters — the port of the
	// source's "(action_name, None)" root-action convention, used when a
	// caller already knows which action it wants and only needs MCTS to
	// choose its parameters.
	PinnedActionName *problem.ActionName

	Depth    int
	Children []*Node

	Visits      int
	TotalReward float64
}

// NewRoot creates an unparented root node over state.
func NewRoot(state *problem.State) *Node {
	return &Node{State: state}
}

// NewPinnedRoot creates a root node whose search is restricted to choosing
// parameters for the given action name.
func NewPinnedRoot(state *problem.State, name problem.ActionName) *Node {
	return &Node{State: state, PinnedActionName: &name}
}

// IsRoot reports whether this node has no parent.
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

// IsTerminal reports whether the node's snapshot is terminal.
func (n *Node) IsTerminal() bool {
	return n.State.IsTerminal()
}

// IsFullyExpanded reports whether every legal action from this node already
// has a child.
func (n *Node) IsFullyExpanded() bool {
	return len(n.UntriedActions()) == 0
}

// UntriedActions returns the legal actions from this node that have no
// corresponding child yet.
func (n *Node) UntriedActions() []problem.Action {
	if n.IsRoot() && n.PinnedActionName != nil {
		name := *n.PinnedActionName
		var untried []problem.Action
		for _, params := range n.State.EnumerateValidParams(name) {
			candidate := problem.Action{Name: name, Params: params}
			if !n.hasChildFor(candidate) {
				untried = append(untried, candidate)
			}
		}
		return untried
	}

	var untried []problem.Action
	for _, candidate := range n.State.PossibleActions() {
		if !n.hasChildFor(candidate) {
			untried = append(untried, candidate)
		}
	}
	return untried
}

func (n *Node) hasChildFor(candidate problem.Action) bool {
	return n.childByAction(candidate) != nil
}

// childByAction returns the child reached by the given action, or nil.
func (n *Node) childByAction(a problem.Action) *Node {
	for _, child := range n.Children {
		if child.Action.Equal(a) {
			return child
		}
	}
	return nil
}

// Expand applies candidate to a copy of this node's state and attaches the
// result as a new child.
func (n *Node) Expand(candidate problem.Action) *Node {
	next := n.State.Copy()
	next.ApplyAction(candidate.Name, candidate.Params)
	child := &Node{
		State:     next,
		Parent:    n,
		Action:    candidate,
		HasAction: true,
		Depth:     n.Depth + 1,
	}
	n.Children = append(n.Children, child)
	return child
}

// BestChild selects the child maximizing the UCT score, with explorationWeight
// scaling the exploration term. With a nonzero weight an unvisited child
// always wins (+Inf score); ties keep whichever child was seen first.
// explorationWeight 0 selects purely by exploitation, used for the final
// move choice: it then never picks an unvisited child while a visited one
// exists, and falls back to the first child only when none has been visited.
func (n *Node) BestChild(explorationWeight float64) *Node {
	var best *Node
	bestScore := math.Inf(-1)

	for _, child := range n.Children {
		var score float64
		if child.Visits == 0 {
			if explorationWeight == 0 {
				score = math.Inf(-1)
			} else {
				score = math.Inf(1)
			}
		} else {
			exploitation := child.TotalReward / float64(child.Visits)
			exploration := explorationWeight * math.Sqrt(math.Log(float64(n.Visits))/float64(child.Visits))
			score = exploitation + exploration
		}
		if best == nil || score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// Backpropagate increments visits and accumulates reward from this node up
// to the root.
func (n *Node) Backpropagate(reward float64) {
	for node := n; node != nil; node = node.Parent {
		node.Visits++
		node.TotalReward += reward
	}
}
