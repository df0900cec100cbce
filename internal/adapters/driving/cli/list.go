package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clipworks/clipctl/internal/core/domain"
)

var (
	listOrg  string
	listPage int
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list [search]",
	Short: "List clipped records",
	Long: `Lists clipped records, newest first.

An optional search term filters by title and content. Use --org to
restrict the listing to a single organization.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listOrg, "org", "o", "", "filter by organization")
	listCmd.Flags().IntVarP(&listPage, "page", "p", 1, "page number")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output records as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if listService == nil {
		return errors.New("list service not configured")
	}

	if len(args) > 0 {
		listService.SetSearch(args[0])
	}
	if listOrg != "" {
		listService.SetOrganization(listOrg)
	}
	plan := listService.SetPage(listPage)

	if err := listService.Fetch(context.Background(), plan); err != nil {
		return reportError(cmd, err)
	}

	page := listService.Page()
	if page == nil {
		return errors.New("no page loaded")
	}

	if listJSON {
		data, err := json.MarshalIndent(page, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal page: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	return outputRecordTable(cmd, page)
}

func outputRecordTable(cmd *cobra.Command, page *domain.ListPage) error {
	if len(page.Items) == 0 {
		cmd.Println("No records found.")
		return nil
	}

	cmd.Println("Records:")
	cmd.Println()
	for i := range page.Items {
		rec := &page.Items[i]

		title := rec.Title
		if title == "" {
			title = rec.ID
		}

		cmd.Printf("  [%s] %s\n", rec.ID, title)
		if rec.SourceURL != "" {
			cmd.Printf("      Source: %s\n", rec.SourceURL)
		}
		if rec.Organization != "" {
			cmd.Printf("      Org: %s\n", rec.Organization)
		}
		if len(rec.Tags) > 0 {
			cmd.Printf("      Tags: %s\n", strings.Join(rec.Tags, ", "))
		}
		cmd.Println()
	}

	cmd.Printf("Page %d of %d\n", page.Page, page.TotalPages)
	return nil
}
