package main

import (
	"github.com/spf13/cobra"

	"adder/internal/config"
)

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:           "adder",
		Short:         "Serve a two-operand calculation with a selectable sign",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	root.AddCommand(serve, newComputeCmd())
	return root
}

// loadConfig reads .env, then the process environment.
func loadConfig() (config.Config, error) {
	if err := loadDotEnv(); err != nil {
		return config.Config{}, err
	}
	return config.Load()
}
