// Package cmd implements the CLI commands for seller-console.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "seller-console",
	Short: "Multi-marketplace Amazon seller console",
	Long: "An API-first service that manages Amazon Selling Partner and Advertising API access " +
		"for the US, CA, UK, AE and SA marketplaces: orders, listing prices, listing publication " +
		"and Sponsored Products campaigns.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config")

	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
