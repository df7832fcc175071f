// Package cli implements the endpointview command line.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/endpointview/internal/config"
	"github.com/rshade/endpointview/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

type configKey struct{}

// annotationConfigOptional marks commands that run even when the --config file does not exist yet.
const annotationConfigOptional = "endpointview/config-optional"

// configFromContext returns the config loaded by the root command, or defaults.
func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
		return cfg
	}
	return config.New()
}

// NewRootCmd creates the root Cobra command for the endpointview CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		configPath string
	)

	cmd := &cobra.Command{
		Use:           "endpointview",
		Short:         "Browse endpoint definitions as a filterable, paginated table",
		Long:          "endpointview: Show RPC and REST endpoint records with name filtering and page navigation",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path := configPath
			_, optional := cmd.Annotations[annotationConfigOptional]
			required := path != "" && !optional
			if path == "" {
				var err error
				if path, err = config.DefaultPath(lookupEnv); err != nil {
					return err
				}
			}

			cfg, err := config.Load(path, required, lookupEnv)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, configKey{}, cfg))

			result := setupLogging(cmd, cfg)
			logResult = &result
			logger.Debug().Ctx(cmd.Context()).Str("config", path).Msg("configuration loaded")
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default ~/.endpointview/config.yaml, or $ENDPOINTVIEW_CONFIG)")
	cmd.AddCommand(NewShowCmd(), newConfigCmd(), NewVersionCmd(ver))

	return cmd
}

const rootCmdExample = `  # Browse endpoints interactively
  endpointview show -f endpoints.json

  # Print the second page of endpoints whose name contains "user"
  endpointview show -f endpoints.json --filter user --page 2 --no-interactive

  # Combine files and emit JSON with pagination metadata
  endpointview show -f users.yaml -f orders.json --output json

  # Read records from stdin
  cat endpoints.json | endpointview show -f -

  # Write a default configuration file
  endpointview config init`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd())
	return cmd
}

// NewVersionCmd prints the build version.
func NewVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the endpointview version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("endpointview " + ver)
		},
	}
}
