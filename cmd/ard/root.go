package main

import (
	"github.com/spf13/cobra"

	"ard/internal/structures"
)

func newRootCmd() *cobra.Command {
	flags := &structures.CliFlags{}

	root := &cobra.Command{
		Use:   "ard",
		Short: "Twitter activity report daemon",
		Long: `ard counts recent tweets of one account, renders a daily bar chart,
uploads it to Azure Blob Storage and rewrites a Notion page with the summary.

Example usage:
  ard serve --config config/ard.yaml   # run on schedule with the ops HTTP surface
  ard run --config config/ard.yaml     # publish once and exit`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "config/ard.yaml", "path to the YAML config file")
	root.PersistentFlags().BoolVarP(&flags.DebugMode, "debug", "d", false, "log to the console at debug level")

	root.AddCommand(newServeCmd(flags), newRunCmd(flags))
	return root
}
