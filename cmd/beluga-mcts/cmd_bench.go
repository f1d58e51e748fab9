package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/beluga-challenge/go-mcts/pkg/bench"
	"github.com/beluga-challenge/go-mcts/pkg/mcts"
	"github.com/beluga-challenge/go-mcts/pkg/scenario"
)

var (
	benchDepth       int
	benchSimulations int
	benchThreads     int
	benchWorkers     int
)

var benchCmd = &cobra.Command{
	Use:   "bench <scenario-dir>",
	Short: "Run the search over every *.json scenario in a directory and report solve rate",
	Args:  cobra.ExactArgs(1),
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchDepth, "depth", 5, "max selection/rollout depth")
	benchCmd.Flags().IntVar(&benchSimulations, "simulations", 300, "simulation budget per scenario")
	benchCmd.Flags().IntVar(&benchThreads, "search-threads", 1, "root-parallel threads per scenario search")
	benchCmd.Flags().IntVar(&benchWorkers, "workers", 4, "scenarios to run concurrently")
}

func runBench(cmd *cobra.Command, args []string) error {
	paths, err := filepath.Glob(filepath.Join(args[0], "*.json"))
	if err != nil {
		return fmt.Errorf("globbing scenario dir: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no *.json scenarios found in %s", args[0])
	}

	items := make([]bench.Item, 0, len(paths))
	for _, path := range paths {
		state, err := scenario.Load(path)
		if err != nil {
			return err
		}
		items = append(items, bench.Item{Name: path, State: state})
	}

	driver := mcts.NewDriver(mcts.Config{
		Depth:        benchDepth,
		NSimulations: benchSimulations,
		NumThreads:   benchThreads,
	}, logger)

	arena := bench.NewArena(driver, benchWorkers)
	summary := arena.Run(context.Background(), items)

	fmt.Printf("scenarios:        %d\n", summary.TotalScenarios)
	fmt.Printf("solved:           %d (%.1f%%)\n", summary.Solved, summary.SolveRate*100)
	fmt.Printf("elapsed:          %s\n", summary.Elapsed)
	fmt.Printf("scenarios/sec:    %.2f\n", summary.ScenariosPerSecond)
	fmt.Printf("mean nodes/tree:  %.1f\n", summary.MeanNodesExplored)
	fmt.Printf("mean nodes/solve: %.1f\n", summary.MeanNodesToSolve)
	return nil
}
