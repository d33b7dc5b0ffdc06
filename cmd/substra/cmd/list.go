package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Fabien-GELUS/substra-mnist/assets"
	"github.com/Fabien-GELUS/substra-mnist/flags"
	"github.com/Fabien-GELUS/substra-mnist/handlers"
	"github.com/Fabien-GELUS/substra-mnist/printers"
)

// NewListCommand creates the list command
func NewListCommand(s *state) *cobra.Command {
	outputConfig := flags.NewOutputConfig()
	listConfig := flags.NewListConfig()

	cmd := &cobra.Command{
		Use:   "list ASSET",
		Short: "List the assets of a kind",
		Long: `List the assets of a kind as a table.

Supported assets:
  algo, objective, dataset, data_sample, traintuple, testtuple,
  model, node (JSON only)`,
		Example: `  # List all traintuples
  substra list traintuple

  # Only the successful ones
  substra list traintuple --filter 'item.status == "done"'

  # Raw answer of the node
  substra list dataset --json`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeAssets,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := assets.Parse(args[0])
			if err != nil {
				return err
			}

			rt, err := s.runtime()
			if err != nil {
				return err
			}
			rt.Logger().Debug("listing assets", "kind", kind, "filter", listConfig.Filter)

			resp, err := rt.Handlers().List().Handle(cmd.Context(), &handlers.ListRequest{
				Kind:   kind,
				Filter: listConfig.Filter,
				Search: listConfig.Search,
			})
			if err != nil {
				return err
			}
			if listConfig.Filter != "" {
				rt.Logger().Debug("filtered assets", "kind", kind, "matched", len(resp.Items), "total", resp.Total)
			}

			return printers.Get(kind).PrintList(cmd.OutOrStdout(), resp.Items, outputConfig.JSON)
		},
	}

	cmd.Flags().AddFlagSet(flags.OutputFlagsVar(outputConfig))
	cmd.Flags().AddFlagSet(flags.ListFlagsVar(listConfig))

	return cmd
}

// completeAssets completes the asset argument
func completeAssets(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	kinds := assets.All()
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = string(kind)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// requireKind fails unless kind is one of allowed
func requireKind(kind assets.Kind, allowed ...assets.Kind) error {
	for _, k := range allowed {
		if kind == k {
			return nil
		}
	}
	return fmt.Errorf("unsupported asset %q, expected one of: %v", kind, allowed)
}
