// Package cmd implements the fieldmap cobra commands.
package cmd

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"fieldmap/internal/config"
	"fieldmap/internal/logging"
	"fieldmap/internal/mapping"
)

var version = "dev"

var errNoMapping = errors.New("no mapping source given (pass a path, --mapping or set FIELDMAP_MAPPING)")

// app is the state shared by all subcommands of one invocation.
type app struct {
	cfg      *config.Config
	logger   zerolog.Logger
	registry *mapping.Registry
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{
		cfg:      &config.Config{},
		logger:   zerolog.Nop(),
		registry: mapping.NewRegistry(),
	}

	var cfgFile string

	root := &cobra.Command{
		Use:   "fieldmap",
		Short: "Render fixed-width extract records from field-mapping documents",
		Long: `fieldmap reads mapping documents (YAML, separated by "---") that describe,
per source system and transaction type, how each positioned output field is
derived from an input row: copied, constant, conditional or composite.

Settings are taken from flags, FIELDMAP_* environment variables and an
optional fieldmap.yaml, in that order.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags(), cfgFile)
			if err != nil {
				return err
			}

			logger, err := logging.Setup(logging.Settings{
				Level:  cfg.LogLevel,
				Format: cfg.LogFormat,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.logger = logger

			if cfg.File != "" {
				logger.Debug().Str("file", cfg.File).Msg("configuration loaded")
			}

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./fieldmap.yaml)")
	pf.String(config.KeyMapping, "", "mapping source path")
	pf.String(config.KeyLogLevel, "info", "log level (trace, debug, info, warn, error)")
	pf.String(config.KeyLogFormat, logging.FormatConsole, "log format (console, json)")

	root.AddCommand(
		newCheckCommand(a),
		newFmtCommand(a),
		newListCommand(a),
		newRenderCommand(a),
	)

	return root
}

// mappingPath picks the positional path, falling back to configuration.
func (a *app) mappingPath(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}

	if a.cfg.Mapping != "" {
		return a.cfg.Mapping, nil
	}

	return "", errNoMapping
}
