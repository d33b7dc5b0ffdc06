package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Fabien-GELUS/substra-mnist/config"
	"github.com/Fabien-GELUS/substra-mnist/flags"
)

// NewConfigCommand creates the config command
func NewConfigCommand(s *state) *cobra.Command {
	profileConfig := flags.NewProfileConfig()

	cmd := &cobra.Command{
		Use:   "config URL",
		Short: "Add or replace a node profile",
		Example: `  substra config http://substra-backend.node-1.com --user node-1 --password p@$$w0rd

  # A second node under its own profile
  substra config https://node-2.example.com --profile node-2 --insecure`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := config.Profile{
				URL:      args[0],
				Version:  profileConfig.Version,
				Insecure: profileConfig.Insecure,
				Auth: config.Auth{
					User:     profileConfig.User,
					Password: profileConfig.Password,
				},
			}
			if err := profile.Validate(); err != nil {
				return fmt.Errorf("invalid profile: %w", err)
			}

			path := s.global.ConfigPath
			file, err := config.Load(path)
			if err != nil {
				return err
			}

			name := config.SelectedProfile(s.global.Profile)
			file.SetProfile(name, profile)
			if err := file.Save(path); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Profile %q saved to %s\n", name, path)
			return err
		},
	}

	cmd.Flags().AddFlagSet(flags.ProfileFlagsVar(profileConfig))

	return cmd
}
