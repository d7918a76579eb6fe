package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the config file
search and the difficulty preset. The output is a valid config file.

Examples:
  breakout config > ~/.breakout/config.yaml
  breakout config --format toml --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, args []string) error {
	format, err := config.ParseFormat(flagFormat)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	return config.Encode(cmd.OutOrStdout(), cfg, format)
}
