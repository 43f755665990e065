package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ziadkadry99/docshell/internal/config"
	"github.com/ziadkadry99/docshell/internal/logging"
	"github.com/ziadkadry99/docshell/internal/navigation"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `docshell init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the command logger. Development mode implies verbose.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(verbose || cfg.Development())
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return logger, nil
}

// newResolver loads every version's navigation data and returns a resolver
// over it, along with the versions that were loaded.
func newResolver(cfg *config.Config) (*navigation.Resolver, []navigation.VersionID, error) {
	opts := cfg.NavigationOptions()
	versions := navigation.KnownVersions(opts.Versions, opts.DevMode)

	trees, err := cfg.Loader().LoadAll(versions)
	if err != nil {
		return nil, nil, fmt.Errorf("loading navigation data: %w", err)
	}
	return navigation.NewResolver(navigation.NewCatalog(trees), opts), versions, nil
}
