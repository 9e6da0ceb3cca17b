package main

import (
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"ard/internal/di"
	"ard/internal/structures"
)

var initOnce = di.InitOnce

func newRunCmd(flags *structures.CliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Publish the report once and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			once, err := initOnce(flags)
			if err != nil {
				return err
			}
			result, err := once.Run(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
}
