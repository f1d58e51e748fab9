package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/beluga-challenge/go-mcts/pkg/mcts"
	"github.com/beluga-challenge/go-mcts/pkg/scenario"
)

var (
	searchDepth       int
	searchSimulations int
	searchThreads     int
	searchSeed        int64
)

var searchCmd = &cobra.Command{
	Use:   "search <scenario.json>",
	Short: "Search a scenario and print the recommended action",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchDepth, "depth", 5, "max selection/rollout depth")
	searchCmd.Flags().IntVar(&searchSimulations, "simulations", 300, "simulation budget")
	searchCmd.Flags().IntVar(&searchThreads, "threads", 1, "worker threads (root-parallel above 1)")
	searchCmd.Flags().Int64Var(&searchSeed, "seed", 0, "rollout RNG seed (0 = seed from current time)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	state, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	cfg := mcts.Config{
		Depth:        searchDepth,
		NSimulations: searchSimulations,
		NumThreads:   searchThreads,
		Seed:         searchSeed,
		Debug:        logger.GetLevel() <= zerolog.DebugLevel,
	}
	driver := mcts.NewDriver(cfg, logger)

	result, err := driver.Search(context.Background(), state)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if !result.HasBest {
		fmt.Println("no legal action found")
		return nil
	}

	fmt.Printf("best action: %s %v\n", result.Best.Name, result.Best.Params)
	fmt.Printf("terminal found: %t\n", result.TerminalFound)
	fmt.Printf("tree nodes: %d\n", mcts.CountTotalNodes(result.Root))
	fmt.Printf("tree depth: %d\n", mcts.TreeDepth(result.Root))

	fmt.Println("best path:")
	for i, action := range result.Path {
		fmt.Printf("  %d. %s %v\n", i+1, action.Name, action.Params)
	}
	return nil
}
