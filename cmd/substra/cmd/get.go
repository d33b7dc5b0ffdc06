package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Fabien-GELUS/substra-mnist/assets"
	"github.com/Fabien-GELUS/substra-mnist/flags"
	"github.com/Fabien-GELUS/substra-mnist/handlers"
	"github.com/Fabien-GELUS/substra-mnist/printers"
)

// NewGetCommand creates the get command
func NewGetCommand(s *state) *cobra.Command {
	outputConfig := flags.NewOutputConfig()

	cmd := &cobra.Command{
		Use:   "get ASSET KEY",
		Short: "Display one asset",
		Example: `  # Show an algo and the commands to go further
  substra get algo 0acc5180e09b6a6ac250f4e3c172e2893f617aa1c22ef1f379019d20fe44142f

  # Show every data sample key of a traintuple
  substra get traintuple 3f0a42d4 --expand`,
		Args:              cobra.ExactArgs(2),
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

			resp, err := rt.Handlers().Get().Handle(cmd.Context(), &handlers.GetRequest{Kind: kind, Key: args[1]})
			if err != nil {
				return err
			}

			return printers.Get(kind).PrintSingle(cmd.OutOrStdout(), resp.Item, outputConfig.JSON, outputConfig.Expand)
		},
	}

	cmd.Flags().AddFlagSet(flags.OutputFlagsVar(outputConfig))

	return cmd
}
