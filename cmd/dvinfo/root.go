package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-dv/internal/config"
	"github.com/robert-malhotra/go-dv/internal/logger"
)

var (
	cfgFile string
	cfg     *config.Config
	log     = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "dvinfo",
	Short: "Inspect and edit DV image volumes",
	Long: `dvinfo reads the fixed 1024-byte header of DV image volumes, reports
their geometry and section offsets, and can rewrite titles and intensity
statistics or create empty volumes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}

		// CLI flags override config settings
		if cmd.Flags().Changed("debug") {
			cfg.Debug, _ = cmd.Flags().GetBool("debug")
		}
		if cmd.Flags().Changed("log-format") {
			cfg.LogFormat, _ = cmd.Flags().GetString("log-format")
		}

		logCfg := logger.DefaultConfig()
		logCfg.Debug = cfg.Debug
		logCfg.File = cfg.LogFile
		if cfg.LogFormat != "" {
			logCfg.Format = cfg.LogFormat
		}
		log, err = logger.New(logCfg)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		log.Debug("configuration loaded", zap.String("config_file", cfgFile), zap.Any("config", cfg))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./dvinfo.yaml or $HOME/.config/dvinfo/dvinfo.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-format", "human", "Log format: json or human")

	rootCmd.AddCommand(headerCmd, sizesCmd, offsetCmd, titleCmd, createCmd, versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "dvinfo v0.1.0")
	},
}
