package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Fabien-GELUS/substra-mnist/flags"
	"github.com/Fabien-GELUS/substra-mnist/handlers"
	"github.com/Fabien-GELUS/substra-mnist/printers"
)

// NewLeaderboardCommand creates the leaderboard command
func NewLeaderboardCommand(s *state) *cobra.Command {
	outputConfig := flags.NewOutputConfig()
	leaderboardConfig := flags.NewLeaderboardConfig()

	cmd := &cobra.Command{
		Use:   "leaderboard OBJECTIVE_KEY",
		Short: "Display the ranked testtuples of an objective",
		Example: `  # Best results first
  substra leaderboard 1cdafbb0

  # Worst results first
  substra leaderboard 1cdafbb0 --sort asc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := s.runtime()
			if err != nil {
				return err
			}

			resp, err := rt.Handlers().Leaderboard().Handle(cmd.Context(), &handlers.LeaderboardRequest{
				ObjectiveKey: args[0],
				Sort:         leaderboardConfig.Sort,
			})
			if err != nil {
				return err
			}

			return printers.NewLeaderboardPrinter().Print(cmd.OutOrStdout(), resp.Leaderboard, outputConfig.JSON, outputConfig.Expand)
		},
	}

	cmd.Flags().AddFlagSet(flags.OutputFlagsVar(outputConfig))
	cmd.Flags().AddFlagSet(flags.LeaderboardFlagsVar(leaderboardConfig))

	return cmd
}
