package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowsched/batch"
	"github.com/katalvlaran/flowsched/parse"
)

func newBlueprintsCommand(a *app) *cobra.Command {
	var (
		horizon int
		top     int
	)
	cmd := &cobra.Command{
		Use:   "blueprints FILE",
		Short: "Evaluate every blueprint in a text file",
		Long: `Parse "Blueprint N: Each X robot costs ..." records and find, for each one,
the most geodes that can be opened within the horizon.

Without --top the command prints the quality sum (id times value over all
blueprints). With --top N it prints the product of the first N values.
Use "-" to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			bps, err := parse.Blueprints(text)
			if err != nil {
				return err
			}
			jobs := batch.FromBlueprints(bps)
			if top > 0 && top < len(jobs) {
				jobs = jobs[:top]
			}

			res, err := batch.Evaluate(cmd.Context(), jobs, horizon,
				batch.WithWorkers(a.cfg.Search.Workers),
				batch.WithLogger(a.logger),
				batch.WithSearchOptions(a.cfg.Search.SearchOptions()...))
			if err != nil {
				return fmt.Errorf("blueprint evaluation failed: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, r := range res {
				fmt.Fprintf(out, "blueprint %d: %d\n", r.ID, r.Value)
			}
			if top > 0 {
				fmt.Fprintf(out, "product: %d\n", batch.Product(res, top))
			} else {
				fmt.Fprintf(out, "quality: %d\n", batch.QualitySum(res))
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&horizon, "horizon", 24, "Number of ticks to plan for")
	cmd.Flags().IntVar(&top, "top", 0, "Only evaluate the first N blueprints and print their product")

	return cmd
}

// readInput returns the contents of path, or standard input for "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return string(data), nil
}
