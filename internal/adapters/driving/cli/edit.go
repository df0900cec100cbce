package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clipworks/clipctl/internal/core/domain"
	"github.com/clipworks/clipctl/internal/core/services"
)

var (
	editTitle string
	editOrg   string
	editTags  []string
)

var editCmd = &cobra.Command{
	Use:   "edit [record-id]",
	Short: "Edit a record's title, tags, or organization",
	Long: `Applies a partial update to one record.

Only the fields given as flags change; everything else is left as-is.
--tags replaces the full tag set (duplicates are dropped). Pass
--tags "" to clear all tags.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "new title")
	editCmd.Flags().StringVarP(&editOrg, "org", "o", "", "new organization")
	editCmd.Flags().StringSliceVarP(&editTags, "tags", "t", nil, "replacement tag set (comma-separated)")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	id := args[0]

	if mutationService == nil {
		return errors.New("mutation service not configured")
	}

	var patch domain.RecordPatch
	if cmd.Flags().Changed("title") {
		patch.Title = &editTitle
	}
	if cmd.Flags().Changed("org") {
		patch.Organization = &editOrg
	}
	if cmd.Flags().Changed("tags") {
		editor := services.NewEditor()
		editor.SetTags(editTags)
		tags := editor.Tags()
		patch.Tags = &tags
	}

	rec, err := mutationService.Edit(context.Background(), id, patch)
	if err != nil {
		return reportError(cmd, err)
	}

	cmd.Printf("Updated: %s\n", rec.Title)
	if rec.Organization != "" {
		cmd.Printf("  Org: %s\n", rec.Organization)
	}
	if len(rec.Tags) > 0 {
		cmd.Printf("  Tags: %s\n", strings.Join(rec.Tags, ", "))
	}
	return nil
}
