package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crossy/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with as YAML.

The configuration is read from --config, then ~/.crossy/configs/crossy.yaml,
then ./configs/crossy.yaml, and finally the built-in defaults. The output
is a complete file that can be edited and passed back with --config.
With --defaults the commented built-in document is printed instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagDefaults {
			_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
			return err
		}
		logger, err := newLogger(os.Stderr)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(logger)
		if err != nil {
			return err
		}
		out, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default configuration")
}
