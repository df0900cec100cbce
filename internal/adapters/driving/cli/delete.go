package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/clipworks/clipctl/internal/core/domain"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete [record-id]",
	Short: "Delete a record",
	Long: `Deletes one record from the clipping server.

Asks for confirmation unless --yes is given. Nothing is sent to the
server when the confirmation is declined.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	if mutationService == nil {
		return errors.New("mutation service not configured")
	}

	confirm := func() bool {
		if deleteYes {
			return true
		}
		return promptConfirm(cmd, "Delete record "+id+"?")
	}

	err := mutationService.Remove(context.Background(), id, confirm)
	if errors.Is(err, domain.ErrAborted) {
		cmd.Println("Aborted.")
		return nil
	}
	if err != nil {
		return reportError(cmd, err)
	}

	cmd.Printf("Deleted record: %s\n", id)
	return nil
}
