// Package config reads and writes the client profile file.
//
// The file maps a profile name to the connection settings of one platform
// node:
//
//	{
//	  "default": {
//	    "url": "http://substra-backend.owkin.xyz:8000",
//	    "version": "0.0",
//	    "insecure": false,
//	    "auth": {"user": "...", "password": "..."}
//	  }
//	}
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"sigs.k8s.io/yaml"
)

const (
	// DefaultProfile is the profile used when none is selected
	DefaultProfile = "default"
	// DefaultVersion is the API version sent when a profile sets none
	DefaultVersion = "0.0"
	// DefaultFileName is the name of the profile file in the home directory
	DefaultFileName = ".substra"

	// EnvConfigPath overrides the profile file location
	EnvConfigPath = "SUBSTRA_CONFIG"
	// EnvProfile overrides the selected profile
	EnvProfile = "SUBSTRA_PROFILE"
)

// ErrProfileNotFound is returned when a profile is missing from the file.
var ErrProfileNotFound = errors.New("profile not found")

// Auth holds basic authentication credentials.
type Auth struct {
	User     string `json:"user,omitempty"`
	Password string `json:"password,omitempty"`
}

// IsSet reports whether credentials are configured.
func (a Auth) IsSet() bool {
	return a.User != "" || a.Password != ""
}

// Profile holds the settings needed to reach one node.
type Profile struct {
	// URL is the base URL of the node API
	URL string `json:"url"`

	// Version is the API version requested through the Accept header
	Version string `json:"version,omitempty"`

	// Insecure disables TLS certificate verification
	Insecure bool `json:"insecure"`

	Auth Auth `json:"auth"`
}

// Validate checks that the profile can be used to build a client.
func (p Profile) Validate() error {
	var errs []error

	if p.URL == "" {
		errs = append(errs, fmt.Errorf("url must be specified"))
	} else if u, err := url.Parse(p.URL); err != nil {
		errs = append(errs, fmt.Errorf("invalid url %q: %w", p.URL, err))
	} else {
		if u.Scheme != "http" && u.Scheme != "https" {
			errs = append(errs, fmt.Errorf("unsupported url scheme %q, expected http or https", u.Scheme))
		}
		if u.Host == "" {
			errs = append(errs, fmt.Errorf("url %q has no host", p.URL))
		}
	}

	if p.Auth.User != "" && p.Auth.Password == "" {
		errs = append(errs, fmt.Errorf("password is required when user is set"))
	}

	return utilerrors.NewAggregate(errs)
}

// WithDefaults returns a copy of p with empty settings filled in.
func (p Profile) WithDefaults() Profile {
	if p.Version == "" {
		p.Version = DefaultVersion
	}
	return p
}

// Config maps profile names to profiles.
type Config map[string]Profile

// DefaultPath returns the profile file location, honoring SUBSTRA_CONFIG.
func DefaultPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(home, DefaultFileName)
}

// SelectedProfile returns name, or the SUBSTRA_PROFILE value, or the
// default profile name.
func SelectedProfile(name string) string {
	if name != "" {
		return name
	}
	if env := os.Getenv(EnvProfile); env != "" {
		return env
	}
	return DefaultProfile
}

// Load reads the profile file at path. A missing file yields an empty
// config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Config{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Profile returns the named profile with defaults applied.
func (c Config) Profile(name string) (Profile, error) {
	p, ok := c[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return p.WithDefaults(), nil
}

// SetProfile adds or replaces the named profile.
func (c Config) SetProfile(name string, p Profile) {
	c[name] = p.WithDefaults()
}

// Save writes the config to path as JSON, readable by the owner only.
func (c Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory %s: %w", dir, err)
		}
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
