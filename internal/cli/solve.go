package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowsched/document"
	"github.com/katalvlaran/flowsched/partition"
	"github.com/katalvlaran/flowsched/search"
)

func newSolveCommand(a *app) *cobra.Command {
	var horizon int
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve a YAML or JSON problem document",
		Long: `Load a document (.yaml, .yml or .json) describing a build or valve catalog
and solve it for the horizon and agent count it names.

Two agents split the producers between them; the best split is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.LoadFile(args[0])
			if err != nil {
				return err
			}
			cat, err := doc.Catalog()
			if err != nil {
				return fmt.Errorf("document: %w", err)
			}
			if cmd.Flags().Changed("horizon") {
				doc.Horizon = horizon
			}
			a.logger.Info("solving document", "name", doc.Name, "style", doc.Style,
				"horizon", doc.Horizon, "agents", doc.Agents, "producers", cat.Len())

			var best int64
			if doc.Agents == 2 {
				best, err = partition.BestPartitioned(cmd.Context(), cat, doc.Horizon, a.cfg.Search.PartitionOptions(a.logger)...)
			} else {
				var stats search.Stats
				opts := append(a.cfg.Search.SearchOptions(), search.WithContext(cmd.Context()), search.WithStats(&stats))
				best, err = search.Search(cat, search.InitialState(cat), doc.Horizon, opts...)
				a.logger.Debug("search stats", "enqueued", stats.Enqueued, "expanded", stats.Expanded,
					"pruned", stats.Pruned, "deduped", stats.Deduped)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if doc.Name != "" {
				fmt.Fprintf(out, "%s: %d\n", doc.Name, best)
			} else {
				fmt.Fprintf(out, "best: %d\n", best)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&horizon, "horizon", 0, "Override the document horizon")

	return cmd
}
