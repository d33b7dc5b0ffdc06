package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	substraruntime "github.com/Fabien-GELUS/substra-mnist/cmd/substra/pkg/runtime"
	"github.com/Fabien-GELUS/substra-mnist/flags"
)

// Options configures the root command
type Options struct {
	// Out receives command output, stdout when nil
	Out io.Writer
	// ErrOut receives logs, stderr when nil
	ErrOut io.Writer
	// NewClient builds the node client, HTTP when nil
	NewClient substraruntime.ClientFactory
}

// state is shared by the subcommands. The runtime is created on first use
// so that help and the config command work without a profile.
type state struct {
	global    *flags.GlobalConfig
	errOut    io.Writer
	newClient substraruntime.ClientFactory
	rt        substraruntime.Runtime
}

func (s *state) runtime() (substraruntime.Runtime, error) {
	if s.rt != nil {
		return s.rt, nil
	}

	rt, err := substraruntime.NewRuntime(substraruntime.Config{
		ConfigPath: s.global.ConfigPath,
		Profile:    s.global.Profile,
		LogLevel:   s.global.LogLevel,
		Verbose:    s.global.Verbose,
		LogOutput:  s.errOut,
	}, s.newClient)
	if err != nil {
		return nil, err
	}
	s.rt = rt
	return rt, nil
}

// NewRootCommand creates the root substra command
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.ErrOut == nil {
		opts.ErrOut = os.Stderr
	}

	s := &state{
		global:    flags.NewGlobalConfig(),
		errOut:    opts.ErrOut,
		newClient: opts.NewClient,
	}

	rootCmd := &cobra.Command{
		Use:   "substra",
		Short: "Command line client of a substra node",
		Long: `substra inspects the assets registered on a substra node and registers
training and testing tasks.

Node connection settings are read from a profile file written by
'substra config'.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(opts.Out)
	rootCmd.SetErr(opts.ErrOut)

	// Global persistent flags
	rootCmd.PersistentFlags().AddFlagSet(flags.GlobalFlagsVar(s.global))

	// Add subcommands
	rootCmd.AddCommand(
		NewConfigCommand(s),
		NewListCommand(s),
		NewGetCommand(s),
		NewDescribeCommand(s),
		NewDownloadCommand(s),
		NewLeaderboardCommand(s),
		NewAddCommand(s),
	)

	return rootCmd
}
