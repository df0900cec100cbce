package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/clipworks/clipctl/internal/core/domain"
)

var (
	orgDescription string
	orgName        string
	orgDeleteYes   bool
)

var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "Manage organizations",
	Long:  `Commands for listing and managing organizations on the clipping server.`,
	RunE:  runOrgsList,
}

var orgsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List organizations",
	RunE:  runOrgsList,
}

var orgsCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create an organization",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrgsCreate,
}

var orgsUpdateCmd = &cobra.Command{
	Use:   "update [org-id]",
	Short: "Rename or re-describe an organization",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrgsUpdate,
}

var orgsDeleteCmd = &cobra.Command{
	Use:   "delete [org-id]",
	Short: "Delete an organization",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrgsDelete,
}

func init() {
	orgsCreateCmd.Flags().StringVarP(&orgDescription, "description", "d", "", "organization description")
	orgsUpdateCmd.Flags().StringVar(&orgName, "name", "", "new name")
	orgsUpdateCmd.Flags().StringVarP(&orgDescription, "description", "d", "", "new description")
	orgsDeleteCmd.Flags().BoolVarP(&orgDeleteYes, "yes", "y", false, "skip the confirmation prompt")

	orgsCmd.AddCommand(orgsListCmd)
	orgsCmd.AddCommand(orgsCreateCmd)
	orgsCmd.AddCommand(orgsUpdateCmd)
	orgsCmd.AddCommand(orgsDeleteCmd)
	rootCmd.AddCommand(orgsCmd)
}

func runOrgsList(cmd *cobra.Command, _ []string) error {
	if directoryService == nil {
		return errors.New("directory service not configured")
	}

	orgs, err := directoryService.Organizations(context.Background())
	if err != nil {
		return reportError(cmd, err)
	}

	if len(orgs) == 0 {
		cmd.Println("No organizations.")
		return nil
	}

	cmd.Println("Organizations:")
	cmd.Println()
	for _, org := range orgs {
		cmd.Printf("  [%s] %s\n", org.ID, org.Name)
		if org.Description != "" {
			cmd.Printf("      %s\n", org.Description)
		}
		cmd.Printf("      Members: %d  Storage: %d bytes\n", org.MemberCount, org.StorageUsed)
	}
	return nil
}

func runOrgsCreate(cmd *cobra.Command, args []string) error {
	if mutationService == nil {
		return errors.New("mutation service not configured")
	}

	org, err := mutationService.CreateOrganization(context.Background(), args[0], orgDescription)
	if err != nil {
		return reportError(cmd, err)
	}

	cmd.Printf("Created organization: %s (%s)\n", org.Name, org.ID)
	return nil
}

func runOrgsUpdate(cmd *cobra.Command, args []string) error {
	if mutationService == nil {
		return errors.New("mutation service not configured")
	}

	org := domain.Organization{
		ID:          args[0],
		Name:        orgName,
		Description: orgDescription,
	}
	updated, err := mutationService.UpdateOrganization(context.Background(), org)
	if err != nil {
		return reportError(cmd, err)
	}

	cmd.Printf("Updated organization: %s\n", updated.Name)
	return nil
}

func runOrgsDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	if mutationService == nil {
		return errors.New("mutation service not configured")
	}

	confirm := func() bool {
		if orgDeleteYes {
			return true
		}
		return promptConfirm(cmd, "Delete organization "+id+"?")
	}

	err := mutationService.DeleteOrganization(context.Background(), id, confirm)
	if errors.Is(err, domain.ErrAborted) {
		cmd.Println("Aborted.")
		return nil
	}
	if err != nil {
		return reportError(cmd, err)
	}

	cmd.Printf("Deleted organization: %s\n", id)
	return nil
}
