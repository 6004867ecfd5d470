package main

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yigit/registrar/internal/bootstrap"
	"github.com/yigit/registrar/internal/config"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// cli carries the state shared by every subcommand.
type cli struct {
	configPath string
	cfg        *config.Config
	logger     zerolog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:          "registrarctl",
		Short:        "Manage registrar catalogs and events",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			// stdout is reserved for command output
			c.logger = logger.Configure(logger.Config{
				Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
				Format: logger.FormatText,
				Output: cmd.ErrOrStderr(),
			})
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", bootstrap.DefaultConfigPath(),
		"config file (missing files fall back to defaults and environment)")

	root.AddCommand(
		newCatalogCmd(c),
		newDBCmd(c),
		newEventsCmd(c),
	)
	return root
}
