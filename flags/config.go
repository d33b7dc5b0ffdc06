// Package flags provides the pflag.FlagSet definitions of the substra CLI.
// Each flag set is bound to a config struct so commands read plain fields
// instead of looking flags up by name.
package flags

import (
	"github.com/spf13/pflag"

	"github.com/Fabien-GELUS/substra-mnist/config"
)

// GlobalConfig contains the flags shared by every command
type GlobalConfig struct {
	ConfigPath string
	Profile    string
	LogLevel   string
	Verbose    bool
}

// NewGlobalConfig creates a new GlobalConfig with defaults
func NewGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		ConfigPath: config.DefaultPath(),
		Profile:    "",
		LogLevel:   DefaultLogLevel,
		Verbose:    false,
	}
}

// OutputConfig contains output formatting configuration
type OutputConfig struct {
	JSON   bool
	Expand bool
}

// NewOutputConfig creates a new OutputConfig with defaults
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{}
}

// ListConfig contains list operation configuration
type ListConfig struct {
	Filter string
	Search []string
}

// NewListConfig creates a new ListConfig with defaults
func NewListConfig() *ListConfig {
	return &ListConfig{
		Filter: "",
		Search: []string{},
	}
}

// DownloadConfig contains download operation configuration
type DownloadConfig struct {
	Folder string
}

// NewDownloadConfig creates a new DownloadConfig with defaults
func NewDownloadConfig() *DownloadConfig {
	return &DownloadConfig{Folder: "."}
}

// LeaderboardConfig contains leaderboard operation configuration
type LeaderboardConfig struct {
	Sort string
}

// NewLeaderboardConfig creates a new LeaderboardConfig with defaults
func NewLeaderboardConfig() *LeaderboardConfig {
	return &LeaderboardConfig{Sort: DefaultSort}
}

// AddConfig contains add operation configuration
type AddConfig struct {
	ExistOK bool
}

// NewAddConfig creates a new AddConfig with defaults
func NewAddConfig() *AddConfig {
	return &AddConfig{ExistOK: false}
}

// ProfileConfig contains the settings written by the config command
type ProfileConfig struct {
	Version  string
	Insecure bool
	User     string
	Password string
}

// NewProfileConfig creates a new ProfileConfig with defaults
func NewProfileConfig() *ProfileConfig {
	return &ProfileConfig{Version: config.DefaultVersion}
}

// GlobalFlagsVar returns the global flags bound to a config struct
func GlobalFlagsVar(cfg *GlobalConfig) *pflag.FlagSet {
	flags := pflag.NewFlagSet("global", pflag.ContinueOnError)

	flags.StringVar(&cfg.ConfigPath, FlagConfig, cfg.ConfigPath, "Path to the profile file (env "+config.EnvConfigPath+")")
	flags.StringVar(&cfg.Profile, FlagProfile, cfg.Profile, "Profile to use (env "+config.EnvProfile+", default \""+config.DefaultProfile+"\")")
	flags.StringVar(&cfg.LogLevel, FlagLogLevel, cfg.LogLevel, "Log level. One of: trace|debug|info|warn|error|off")
	flags.BoolVarP(&cfg.Verbose, FlagVerbose, FlagVerboseShort, cfg.Verbose, "Enable debug logging")

	return flags
}

// OutputFlagsVar returns flags for output formatting bound to a config struct
func OutputFlagsVar(cfg *OutputConfig) *pflag.FlagSet {
	flags := pflag.NewFlagSet("output", pflag.ContinueOnError)

	flags.BoolVar(&cfg.JSON, FlagJSON, cfg.JSON, "Print the raw JSON answer")
	flags.BoolVar(&cfg.Expand, FlagExpand, cfg.Expand, "Print full data sample key lists instead of counts")

	return flags
}

// ListFlagsVar returns flags specific to list operations bound to a config struct
func ListFlagsVar(cfg *ListConfig) *pflag.FlagSet {
	flags := pflag.NewFlagSet("list", pflag.ContinueOnError)

	flags.StringVar(&cfg.Filter, FlagFilter, cfg.Filter, `CEL expression selecting items, e.g. 'item.status == "done"'`)
	flags.StringSliceVar(&cfg.Search, FlagSearch, cfg.Search, "Search terms forwarded to the node, e.g. traintuple:status:done")

	return flags
}

// DownloadFlagsVar returns flags specific to download operations bound to a config struct
func DownloadFlagsVar(cfg *DownloadConfig) *pflag.FlagSet {
	flags := pflag.NewFlagSet("download", pflag.ContinueOnError)

	flags.StringVar(&cfg.Folder, FlagFolder, cfg.Folder, "Destination folder")

	return flags
}

// LeaderboardFlagsVar returns flags specific to leaderboard operations bound to a config struct
func LeaderboardFlagsVar(cfg *LeaderboardConfig) *pflag.FlagSet {
	flags := pflag.NewFlagSet("leaderboard", pflag.ContinueOnError)

	flags.StringVar(&cfg.Sort, FlagSort, cfg.Sort, "Testtuple order. One of: asc|desc")

	return flags
}

// AddFlagsVar returns flags specific to add operations bound to a config struct
func AddFlagsVar(cfg *AddConfig) *pflag.FlagSet {
	flags := pflag.NewFlagSet("add", pflag.ContinueOnError)

	flags.BoolVar(&cfg.ExistOK, FlagExistOK, cfg.ExistOK, "Return the registered task if it already exists")

	return flags
}

// ProfileFlagsVar returns flags specific to the config command bound to a config struct
func ProfileFlagsVar(cfg *ProfileConfig) *pflag.FlagSet {
	flags := pflag.NewFlagSet("profile", pflag.ContinueOnError)

	flags.StringVar(&cfg.Version, FlagVersion, cfg.Version, "API version")
	flags.BoolVarP(&cfg.Insecure, FlagInsecure, FlagInsecureShort, cfg.Insecure, "Skip TLS certificate verification")
	flags.StringVarP(&cfg.User, FlagUser, FlagUserShort, cfg.User, "Basic auth user")
	flags.StringVarP(&cfg.Password, FlagPassword, FlagPasswordShort, cfg.Password, "Basic auth password")

	return flags
}
