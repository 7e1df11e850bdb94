package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var purgeDays int

// purgeViewsCmd runs the retention job once
var purgeViewsCmd = &cobra.Command{
	Use:   "purge-page-views",
	Short: "Delete page-view log rows older than the retention period",
	Long: `Delete rows from the page-view log. Content view counters are not touched.

Examples:
  cmsctl purge-page-views              # Use PAGE_VIEW_RETENTION_DAYS
  cmsctl purge-page-views --days 30    # Keep the last 30 days`,
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := openContainer()
		if err != nil {
			return err
		}
		defer container.Cleanup()

		days := purgeDays
		if days <= 0 {
			days = container.Config.Retention.PageViewDays
		}
		if days <= 0 {
			return fmt.Errorf("retention is disabled; pass --days")
		}

		deleted, err := container.ViewTrackingService.PurgeOldViews(cmd.Context(), days)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d page views older than %d days\n", deleted, days)
		return nil
	},
}

func init() {
	purgeViewsCmd.Flags().IntVar(&purgeDays, "days", 0, "Keep this many days (defaults to the configured retention)")
}
