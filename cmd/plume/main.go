package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "plume",
		Short:         "Scaffold articles and pages for a Pelican-style site",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newNewCmd(), newInitCmd(), newVersionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
