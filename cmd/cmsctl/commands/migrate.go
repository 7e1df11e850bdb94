package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// migrateCmd applies the schema. Opening the container already migrates.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := openContainer()
		if err != nil {
			return err
		}
		defer container.Cleanup()

		fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
		return nil
	},
}
