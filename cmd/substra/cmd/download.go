package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Fabien-GELUS/substra-mnist/assets"
	"github.com/Fabien-GELUS/substra-mnist/flags"
	"github.com/Fabien-GELUS/substra-mnist/handlers"
)

// NewDownloadCommand creates the download command
func NewDownloadCommand(s *state) *cobra.Command {
	downloadConfig := flags.NewDownloadConfig()

	cmd := &cobra.Command{
		Use:   "download ASSET KEY",
		Short: "Download the file of an algo, objective or dataset",
		Long: `Download the file of an asset:
  algo       the algo archive
  objective  the metrics script
  dataset    the opener script`,
		Example:           `  substra download algo 0acc5180 --folder ./algo`,
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

			resp, err := rt.Handlers().Download().Handle(cmd.Context(), &handlers.DownloadRequest{
				Kind:   kind,
				Key:    args[1],
				Folder: downloadConfig.Folder,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "File saved to %s\n", resp.Path)
			return err
		},
	}

	cmd.Flags().AddFlagSet(flags.DownloadFlagsVar(downloadConfig))

	return cmd
}
