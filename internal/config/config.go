package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/docshell/internal/navigation"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DOCSHELL_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DOCSHELL_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// DOCSHELL_LATEST_VERSION -> latest_version, DOCSHELL_SERVER_PORT -> server.port.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "server_"); ok {
		return "server." + rest
	}
	return key
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Product == "" {
		return fmt.Errorf("product is required")
	}

	if len(c.Versions) == 0 {
		return fmt.Errorf("at least one version is required")
	}
	seen := make(map[string]bool, len(c.Versions))
	for _, v := range c.Versions {
		if v == string(navigation.Latest) || v == string(navigation.Unversioned) {
			return fmt.Errorf("version %q is reserved and must not be listed", v)
		}
		if _, err := semver.NewVersion(v); err != nil {
			return fmt.Errorf("invalid version %q: %w", v, err)
		}
		if seen[v] {
			return fmt.Errorf("duplicate version %q", v)
		}
		seen[v] = true
	}

	if c.LatestVersion != "" && !slices.Contains(c.Versions, c.LatestVersion) {
		return fmt.Errorf("latest_version %q is not one of the configured versions", c.LatestVersion)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.ContentDir == "" {
		return fmt.Errorf("content_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	return nil
}

// VersionIDs returns the configured releases as navigation tokens.
func (c *Config) VersionIDs() []navigation.VersionID {
	ids := make([]navigation.VersionID, len(c.Versions))
	for i, v := range c.Versions {
		ids[i] = navigation.VersionID(v)
	}
	return ids
}

// NavigationOptions builds resolver options from the configuration.
func (c *Config) NavigationOptions() navigation.Options {
	return navigation.Options{
		Versions: c.VersionIDs(),
		Latest:   navigation.VersionID(c.LatestVersion),
		DevMode:  c.Development(),
	}
}

// Loader returns the navigation data loader for DataDir.
func (c *Config) Loader() navigation.Loader {
	files := make(map[navigation.VersionID]string, len(c.DataFiles))
	for v, name := range c.DataFiles {
		files[navigation.VersionID(v)] = name
	}
	return navigation.Loader{Dir: c.DataDir, Files: files}
}
