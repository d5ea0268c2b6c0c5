package main

import (
	"fmt"
	"io"

	"github.com/lattesec/frameinfo/internal/env"
	"github.com/lattesec/frameinfo/internal/helpers/debughelper"
	"github.com/lattesec/frameinfo/pkg/frameinfo"
	"github.com/lattesec/frameinfo/pkg/log"
	"github.com/spf13/cobra"
)

const defaultConfigName = "frameinfo"

type app struct {
	configName string
	configDir  string
	logLevel   string

	cfg     *Config
	locator *frameinfo.Locator
	logger  *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{
		logger: log.Default(),
	}

	root := &cobra.Command{
		Use:          "frameinfo",
		Short:        "Resolve frames of the running call stack",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.configName, "config", defaultConfigName,
		"config file name, without extension")
	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "",
		"read the config from this directory only")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"override log.level (trace, debug, info, warn, error, quiet)")

	root.AddCommand(
		a.walkCmd(),
		a.stackCmd(),
		a.traceCmd(),
	)
	return root
}

func (a *app) setup() error {
	cfg := DefaultConfig()

	var err error
	if a.configDir != "" {
		err = env.NewLoaderWithPaths(a.configDir).Load(a.configName, cfg)
	} else {
		var load func(*Config) error
		load, err = env.FromYAMLConfigs[*Config](a.configName)
		if err == nil {
			err = load(cfg)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// the flag wins over the files
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if err := log.Init(defaultConfigName, level); err != nil {
		return err
	}

	a.locator, err = frameinfo.NewFromConfig(cfg.Locator)
	if err != nil {
		return fmt.Errorf("invalid locator config: %w", err)
	}
	a.cfg = cfg

	a.logger.Debugf("config loaded: %+v", *cfg)
	return nil
}

func (a *app) walkCmd() *cobra.Command {
	indexes := []int{0, -1, -2, -3, 1, 2}
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Resolve indexes from the leaf of a root -> mid -> leaf call chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.walk(cmd.OutOrStdout(), indexes)
			return nil
		},
	}
	cmd.Flags().IntSliceVarP(&indexes, "index", "i", indexes,
		"indexes to resolve, negative toward the root, positive from the root")
	return cmd
}

func (a *app) stackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stack",
		Short: "Print every frame above this command",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.printStack(cmd.OutOrStdout())
			return nil
		},
	}
}

func (a *app) traceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace",
		Short: "Print the caller trace and stack the log helpers attach",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, debughelper.TraceCaller(0))
			fmt.Fprint(w, debughelper.TraceStack(0))
			return nil
		},
	}
}

func (a *app) printStack(w io.Writer) {
	for i, info := range a.locator.Frames() {
		fmt.Fprintf(w, "%d %s\n", i, info)
	}
}
