package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/plume-ssg/plume/internal/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter plume.yaml into the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := afero.NewOsFs()
			if exists, err := afero.Exists(fs, config.FileName); err != nil {
				return err
			} else if exists {
				return fmt.Errorf("%s already exists", config.FileName)
			}
			if err := afero.WriteFile(fs, config.FileName, []byte(config.Starter), 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}
}
