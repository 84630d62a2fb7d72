package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "moora",
		Short:        "MOORA multi-criteria ranking",
		Long:         `Rank alternatives against weighted benefit and cost criteria using the MOORA ratio method.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(rankCmd())
	rootCmd.AddCommand(weightsCmd())

	return rootCmd
}
