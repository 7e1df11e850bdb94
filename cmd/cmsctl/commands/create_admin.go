package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"school-cms/domain/models"
	"school-cms/domain/repositories"
	"school-cms/domain/services"
)

var (
	adminEmail    string
	adminPassword string
	adminName     string
)

// createAdminCmd bootstraps the first back-office account
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin user",
	Long: `Create an admin user for the back office.

Examples:
  cmsctl create-admin --email head@school.ac.th --password 'change-me-now'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if adminEmail == "" || adminPassword == "" {
			return errors.New("--email and --password are required")
		}

		container, err := openContainer()
		if err != nil {
			return err
		}
		defer container.Cleanup()

		user, err := container.UserService.Create(cmd.Context(), services.CreateUserInput{
			Email:    adminEmail,
			FullName: adminName,
			Role:     models.RoleAdmin,
			Password: adminPassword,
		})
		if errors.Is(err, repositories.ErrConflict) {
			return fmt.Errorf("a user with email %s already exists", adminEmail)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s (%s)\n", user.Email, user.ID)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Login email")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Initial password (at least 8 characters)")
	createAdminCmd.Flags().StringVar(&adminName, "name", "Administrator", "Display name")
}
