package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pathkit/internal/config"
	"github.com/vvka-141/pathkit/internal/logging"
	"github.com/vvka-141/pathkit/internal/tui"
	"github.com/vvka-141/pathkit/pkg/pathkit"
)

// session is the resolved configuration for one command invocation.
type session struct {
	cfg     *config.Config
	files   *pathkit.Files
	logger  *logging.ConsoleLogger
	printer *tui.Printer
}

// loadSession resolves configuration in order: .env file, config file,
// PATHKIT_* environment variables, global flags. adjust runs last and lets a
// command apply its own flags.
func loadSession(cmd *cobra.Command, adjust func(*config.Config)) (*session, error) {
	if err := config.LoadEnvFile(rootFlags.envFile); err != nil {
		return nil, fmt.Errorf("%w: %w", pathkit.ErrInvalidConfig, err)
	}

	cfg, source, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if rootFlags.separator != "" {
		cfg.Separator = rootFlags.separator
	}
	if rootFlags.verbose {
		cfg.Verbose = true
	}
	if adjust != nil {
		adjust(cfg)
	}

	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), cfg.Verbose)
	opts.Logger = logger
	if source != "" {
		logger.Verbose("config loaded from %s", source)
	}
	logger.Verbose("separator strategy: %s", opts.Separator.Name())

	return &session{
		cfg:     cfg,
		files:   pathkit.New(opts),
		logger:  logger,
		printer: tui.NewPrinter(cmd.OutOrStdout()),
	}, nil
}

// loadConfig returns the configuration and the file it came from.
// A missing ./pathkit.yaml is not an error; a missing --config file is.
func loadConfig() (*config.Config, string, error) {
	if rootFlags.configPath != "" {
		cfg, err := config.LoadFile(rootFlags.configPath)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, "", fmt.Errorf("%w: %s: %w", pathkit.ErrInvalidConfig, rootFlags.configPath, err)
			}
			return nil, "", err
		}
		return cfg, rootFlags.configPath, nil
	}

	cfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return config.Default(), "", nil
		}
		return nil, "", fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return cfg, config.ConfigFileName, nil
}
