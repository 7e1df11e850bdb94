package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"school-cms/pkg/di"
	"school-cms/pkg/logger"
)

var (
	// Global flags
	logDir  string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cmsctl",
	Short: "School CMS maintenance tool",
	Long: `cmsctl runs one-off maintenance tasks against the School CMS database.

Database settings are read from the same environment variables (or .env file)
as the API server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Init(logDir, verbose)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "logs", "Directory for structured log files")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Also print log entries to the console")

	rootCmd.AddCommand(migrateCmd, createAdminCmd, purgeViewsCmd)
}

// openContainer connects to the database and runs migrations
func openContainer() (*di.Container, error) {
	container := di.NewContainer()
	if err := container.InitializeDatabaseOnly(); err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	return container, nil
}
