package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vango-dev/flow/internal/config"
	"github.com/vango-dev/flow/internal/errors"
)

func initCmd(opts *globalOptions) *cobra.Command {
	var (
		force bool
		port  int
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default flow.json",
		Long: `Write flow.json with default settings into the config directory.

Examples:
  flow init
  flow init -c ./site --port 8080
  flow init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(opts.configDir, config.ConfigFileName)
			if config.Exists(opts.configDir) && !force {
				return errors.Newf(errors.CategoryConfig, "%s already exists", path).
					WithSuggestion("Use --force to overwrite it")
			}

			cfg := config.New()
			if cmd.Flags().Changed("port") {
				cfg.Serve.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.SaveTo(path); err != nil {
				return err
			}

			success(cmd.OutOrStdout(), "Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing flow.json")
	cmd.Flags().IntVarP(&port, "port", "p", config.DefaultPort, "Port for flow serve")

	return cmd
}
