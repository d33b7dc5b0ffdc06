package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Fabien-GELUS/substra-mnist/assets"
	"github.com/Fabien-GELUS/substra-mnist/handlers"
)

// NewDescribeCommand creates the describe command
func NewDescribeCommand(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "describe ASSET KEY",
		Short:             "Print the markdown description of an asset",
		Example:           `  substra describe objective 1cdafbb018dd195690111d74916b76c96892d897ec3587c814f287ca7ae47b2e`,
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

			resp, err := rt.Handlers().Describe().Handle(cmd.Context(), &handlers.DescribeRequest{Kind: kind, Key: args[1]})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := io.WriteString(out, resp.Description); err != nil {
				return err
			}
			if !strings.HasSuffix(resp.Description, "\n") {
				_, err = io.WriteString(out, "\n")
			}
			return err
		},
	}

	return cmd
}
