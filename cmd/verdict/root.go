package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/verdict-ml/verdict/internal/config"
	"github.com/verdict-ml/verdict/internal/logging"
)

var (
	cfgFile   string
	activeCfg config.Config
	log       zerolog.Logger
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "verdict",
		Short:         "Golden tensor validation harness",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			log = logging.Setup(loaded.LogLevel, loaded.LogFormat)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newEncodeCmd())

	return cmd
}
