package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:          "dental-lab",
		Short:        "Dental lab dashboard API",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file with config overrides")

	root.AddCommand(serveCmd(&envFile))
	root.AddCommand(statsCmd(&envFile))
	root.AddCommand(seedCmd(&envFile))
	return root
}
