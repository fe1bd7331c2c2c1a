package main

import (
	"context"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/zeusync/entitykit/internal/config"
	"github.com/zeusync/entitykit/internal/injector"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "sim",
		Short:         "Drive entitykit entities from a host loop",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCommand(), newCheckCommand())
	return root
}

type runFlags struct {
	configPath string
	ticks      uint64
	shards     int
	profile    bool
}

func newRunCommand() *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Spawn the configured entities and tick them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("ticks") {
				cfg.Loop.Ticks = flags.ticks
			}
			if cmd.Flags().Changed("shards") {
				cfg.Loop.Shards = flags.shards
			}
			if flags.profile {
				cfg.Profile.Enabled = true
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().Uint64Var(&flags.ticks, "ticks", 0, "ticks to run, 0 runs until interrupted")
	cmd.Flags().IntVar(&flags.shards, "shards", 1, "number of independent loops")
	cmd.Flags().BoolVar(&flags.profile, "profile", false, "write a profile as configured in the profile section")
	return cmd
}

func newCheckCommand() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a config file and spawn its entities without ticking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			group, cleanup, err := injector.InitializeGroup(cfg)
			if err != nil {
				return err
			}
			defer cleanup()
			defer group.Close()
			return group.Spawn()
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	return cmd
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func run(ctx context.Context, cfg config.Config) error {
	if cfg.Profile.Enabled {
		defer startProfile(cfg.Profile).Stop()
	}

	group, cleanup, err := injector.InitializeGroup(cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	defer group.Close()

	if err = group.Spawn(); err != nil {
		return err
	}
	return group.Run(ctx)
}

func startProfile(cfg config.ProfileConfig) interface{ Stop() } {
	mode := profile.CPUProfile
	if cfg.Mode == "mem" {
		mode = profile.MemProfile
	}
	return profile.Start(mode, profile.ProfilePath(cfg.Path), profile.NoShutdownHook, profile.Quiet)
}
