package main

import (
	"github.com/spf13/cobra"

	"ard/internal/di"
	"ard/internal/structures"
)

var initApp = di.InitApp

func newServeCmd(flags *structures.CliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Publish the report on schedule until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(flags)
			if err != nil {
				return err
			}
			return app.Run()
		},
	}
}
