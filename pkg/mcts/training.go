package mcts

// TrainingSample pairs an observation with the Q-value estimate a finished
// tree assigned to the node it was taken from.
type TrainingSample struct {
	Observation []float64
	Value       float64
}

// defaultRetryThreshold is the minimum sample count CollectTrainingData
// tries to clear before giving up and loosening minVisits.
const defaultRetryThreshold = 10

// CollectTrainingData walks the tree breadth-first collecting one sample
// per node with at least minVisits visits, up to maxSamples samples. If
// fewer than 10 samples come back and minVisits was above 1, it retries
// once with minVisits forced to 1 — a shallow or narrow tree otherwise
// yields too few points to be useful to a downstream learner.
func CollectTrainingData(root *Node, maxSamples, minVisits int) []TrainingSample {
	samples := collectTrainingData(root, maxSamples, minVisits)
	if len(samples) < defaultRetryThreshold && minVisits > 1 {
		return collectTrainingData(root, maxSamples, 1)
	}
	return samples
}

func collectTrainingData(root *Node, maxSamples, minVisits int) []TrainingSample {
	if root == nil {
		return nil
	}

	var samples []TrainingSample
	queue := []*Node{root}

	for len(queue) > 0 && len(samples) < maxSamples {
		current := queue[0]
		queue = queue[1:]

		if current.Visits >= minVisits {
			value := 0.0
			if current.Visits > 0 {
				value = current.TotalReward / float64(current.Visits)
			}
			samples = append(samples, TrainingSample{
				Observation: current.State.ObservationHighLevel(),
				Value:       value,
			})
		}

		queue = append(queue, current.Children...)
	}

	return samples
}
