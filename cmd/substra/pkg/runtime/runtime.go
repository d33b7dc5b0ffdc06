package runtime

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/Fabien-GELUS/substra-mnist/config"
	"github.com/Fabien-GELUS/substra-mnist/handlers"
	"github.com/Fabien-GELUS/substra-mnist/sdk"
)

// Runtime wires the profile, logger and node client for CLI usage
type Runtime interface {
	Profile() config.Profile
	Logger() hclog.Logger
	Client() sdk.Interface
	Handlers() *handlers.HandlerFactory
}

// ClientFactory builds the node client of a profile
type ClientFactory func(profile config.Profile, logger hclog.Logger) (sdk.Interface, error)

// Config contains configuration for the CLI runtime
type Config struct {
	ConfigPath string
	Profile    string
	LogLevel   string
	Verbose    bool
	LogOutput  io.Writer
}

// runtime implements Runtime interface
type runtime struct {
	profile  config.Profile
	logger   hclog.Logger
	client   sdk.Interface
	handlers *handlers.HandlerFactory
}

// NewClient is the default ClientFactory, talking HTTP to the node
func NewClient(profile config.Profile, logger hclog.Logger) (sdk.Interface, error) {
	return sdk.NewClient(profile, sdk.WithLogger(logger.Named("sdk")))
}

// NewLogger creates the CLI logger from configuration
func NewLogger(cfg Config) (hclog.Logger, error) {
	level := hclog.LevelFromString(cfg.LogLevel)
	if level == hclog.NoLevel {
		return nil, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	if cfg.Verbose {
		level = hclog.Debug
	}

	output := cfg.LogOutput
	if output == nil {
		output = os.Stderr
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "substra",
		Level:  level,
		Output: output,
	}), nil
}

// NewRuntime creates a new CLI runtime from configuration
func NewRuntime(cfg Config, newClient ClientFactory) (Runtime, error) {
	logger, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	path := cfg.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	file, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	name := config.SelectedProfile(cfg.Profile)
	profile, err := file.Profile(name)
	if err != nil {
		return nil, fmt.Errorf("%w in %s, run 'substra config <url> --profile %s' first", err, path, name)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %q: %w", name, err)
	}

	if newClient == nil {
		newClient = NewClient
	}
	client, err := newClient(profile, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	logger.Debug("runtime ready", "config", path, "profile", name, "url", profile.URL, "version", profile.Version)

	return &runtime{
		profile:  profile,
		logger:   logger,
		client:   client,
		handlers: handlers.NewHandlerFactory(client),
	}, nil
}

// Profile returns the selected profile
func (r *runtime) Profile() config.Profile {
	return r.profile
}

// Logger returns the CLI logger
func (r *runtime) Logger() hclog.Logger {
	return r.logger
}

// Client returns the node client
func (r *runtime) Client() sdk.Interface {
	return r.client
}

// Handlers returns the handler factory bound to the client
func (r *runtime) Handlers() *handlers.HandlerFactory {
	return r.handlers
}
