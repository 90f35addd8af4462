package main

import (
	"github.com/spf13/cobra"

	"github.com/lanternui/lantern/internal/config"
	"github.com/lanternui/lantern/internal/logger"
	"github.com/lanternui/lantern/pkg/components"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "lantern",
		Short:         "Lantern showcases its terminal UI component library",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a lantern config file")

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup loads the optional config file, installs the theme, and builds the
// logger shared by the subcommands.
func setup(flags *rootFlags) (*config.Config, *logger.Logger, error) {
	var cfg *config.Config
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
		components.SetTheme(cfg.BuildTheme())
	}

	level := "info"
	pretty := false
	if cfg != nil && cfg.Log.Level != "" {
		level = cfg.Log.Level
		pretty = cfg.Log.Pretty
	}
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, Pretty: pretty})
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
