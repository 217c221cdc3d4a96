package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowsched/catalog"
	"github.com/katalvlaran/flowsched/parse"
	"github.com/katalvlaran/flowsched/partition"
	"github.com/katalvlaran/flowsched/search"
)

const (
	methodPartition = "partition"
	methodMask      = "mask"
)

func newValvesCommand(a *app) *cobra.Command {
	var (
		horizon int
		agents  int
		start   string
		method  string
	)
	cmd := &cobra.Command{
		Use:   "valves FILE",
		Short: "Find the most pressure released from a valve scan",
		Long: `Parse "Valve AA has flow rate=0; tunnels lead to valves DD, II, BB" lines and
find the most pressure one or two agents can release within the horizon.

Two agents are solved with --method partition (search each split of the
valves) or --method mask (one unpruned search, then combine disjoint
opened sets). Both give the same answer.
Use "-" to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			cat, err := parse.ValvesFrom(text, start)
			if err != nil {
				return err
			}
			best, err := solveValves(cmd, a, cat, horizon, agents, method)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "best: %d\n", best)

			return nil
		},
	}

	cmd.Flags().IntVar(&horizon, "horizon", 30, "Number of ticks to plan for")
	cmd.Flags().IntVar(&agents, "agents", 1, "Number of agents (1 or 2)")
	cmd.Flags().StringVar(&start, "start", parse.StartValve, "Starting valve")
	cmd.Flags().StringVar(&method, "method", methodPartition, "Two-agent method: partition or mask")

	return cmd
}

func solveValves(cmd *cobra.Command, a *app, cat *catalog.Catalog, horizon, agents int, method string) (int64, error) {
	switch agents {
	case 1:
		return search.Search(cat, search.InitialState(cat), horizon,
			append(a.cfg.Search.SearchOptions(), search.WithContext(cmd.Context()))...)
	case 2:
	default:
		return 0, fmt.Errorf("agents must be 1 or 2, got %d", agents)
	}

	switch method {
	case methodPartition:
		return partition.BestPartitioned(cmd.Context(), cat, horizon, a.cfg.Search.PartitionOptions(a.logger)...)
	case methodMask:
		var stats search.Stats
		opts := append(a.cfg.Search.SearchOptions(), search.WithContext(cmd.Context()), search.WithStats(&stats))
		byMask, err := partition.BestByMask(cat, horizon, opts...)
		if err != nil {
			return 0, err
		}
		a.logger.Debug("mask table built", "sets", len(byMask), "expanded", stats.Expanded, "deduped", stats.Deduped)

		return partition.CombineDisjoint(byMask), nil
	default:
		return 0, fmt.Errorf("unknown method %q (want %s or %s)", method, methodPartition, methodMask)
	}
}
