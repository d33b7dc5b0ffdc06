package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Fabien-GELUS/substra-mnist/assets"
	"github.com/Fabien-GELUS/substra-mnist/flags"
	"github.com/Fabien-GELUS/substra-mnist/handlers"
	"github.com/Fabien-GELUS/substra-mnist/printers"
)

// NewAddCommand creates the add command
func NewAddCommand(s *state) *cobra.Command {
	outputConfig := flags.NewOutputConfig()
	addConfig := flags.NewAddConfig()

	cmd := &cobra.Command{
		Use:   "add traintuple|testtuple SPEC_FILE",
		Short: "Register a training or testing task",
		Long: `Register a training or testing task from a JSON or YAML file.

A traintuple file holds algo_key, objective_key, data_manager_key and
train_data_sample_keys. A testtuple file holds traintuple_key and optionally
data_manager_key and test_data_sample_keys.`,
		Example: `  substra add traintuple traintuple.json --exist-ok
  substra add testtuple testtuple.yaml`,
		Args: cobra.ExactArgs(2),
		ValidArgs: []string{
			string(assets.Traintuple),
			string(assets.Testtuple),
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := assets.Parse(args[0])
			if err != nil {
				return err
			}
			if err := requireKind(kind, assets.Traintuple, assets.Testtuple); err != nil {
				return err
			}

			spec, err := handlers.LoadSpec(args[1])
			if err != nil {
				return err
			}

			rt, err := s.runtime()
			if err != nil {
				return err
			}
			rt.Logger().Debug("adding task", "kind", kind, "file", args[1], "exist_ok", addConfig.ExistOK)

			resp, err := rt.Handlers().Add().Handle(cmd.Context(), &handlers.AddRequest{
				Kind:    kind,
				Spec:    spec,
				ExistOK: addConfig.ExistOK,
			})
			if err != nil {
				return err
			}

			return printers.Get(kind).PrintSingle(cmd.OutOrStdout(), resp.Item, outputConfig.JSON, outputConfig.Expand)
		},
	}

	cmd.Flags().AddFlagSet(flags.OutputFlagsVar(outputConfig))
	cmd.Flags().AddFlagSet(flags.AddFlagsVar(addConfig))

	return cmd
}
