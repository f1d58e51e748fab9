package mcts

// Guard caps for the BFS walks below — a runaway tree must not be allowed
// to exhaust memory or spin forever just to answer a diagnostic query.
const (
	maxNodesVisited = 1_000_000
	maxQueueSize    = 100_000
)

// CountTotalNodes walks the tree rooted at root breadth-first and returns
// how many nodes it contains, stopping early (with a truncated count) past
// maxNodesVisited.
func CountTotalNodes(root *Node) int {
	if root == nil {
		return 0
	}
	queue := []*Node{root}
	count := 0
	for len(queue) > 0 && count < maxNodesVisited {
		current := queue[0]
		queue = queue[1:]
		count++

		for _, child := range current.Children {
			if len(queue) >= maxQueueSize {
				break
			}
			queue = append(queue, child)
		}
	}
	return count
}

// TreeDepth returns the maximum Depth found anywhere in the tree rooted at
// root, again bounded by the same guard caps as CountTotalNodes.
func TreeDepth(root *Node) int {
	if root == nil {
		return 0
	}
	queue := []*Node{root}
	visited := 0
	maxDepth := root.Depth
	for len(queue) > 0 && visited < maxNodesVisited {
		current := queue[0]
		queue = queue[1:]
		visited++

		if current.Depth > maxDepth {
			maxDepth = current.Depth
		}
		for _, child := range current.Children {
			if len(queue) >= maxQueueSize {
				break
			}
			queue = append(queue, child)
		}
	}
	return maxDepth - root.Depth
}
