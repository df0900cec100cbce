package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clipworks/clipctl/internal/core/domain"
	"github.com/clipworks/clipctl/internal/core/services"
)

var (
	clipOrg  string
	clipTags []string
	clipJSON bool
)

var clipCmd = &cobra.Command{
	Use:   "clip [url|sitemap|file]",
	Short: "Submit a URL, sitemap, or local file for clipping",
	Long: `Submits an input to the clipping server and waits for the result.

The input kind is detected automatically:
  - paths ending in sitemap.xml are crawled as sitemaps
  - existing local files are uploaded first, then clipped
  - anything else is treated as a page URL`,
	Args: cobra.ExactArgs(1),
	RunE: runClip,
}

func init() {
	clipCmd.Flags().StringVarP(&clipOrg, "org", "o", "", "organization to file the clip under")
	clipCmd.Flags().StringArrayVarP(&clipTags, "tag", "t", nil, "tag to attach (repeatable)")
	clipCmd.Flags().BoolVar(&clipJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(clipCmd)
}

func runClip(cmd *cobra.Command, args []string) error {
	input := args[0]

	if jobService == nil {
		return errors.New("job service not configured")
	}

	editor := services.NewEditor()
	editor.SelectOrganization(clipOrg)
	for _, tag := range clipTags {
		editor.AddTag(tag)
	}
	org, tags := editor.Payload()

	kind := domain.ClassifyInput(input)
	cmd.Println(kind.ProgressMessage())

	req := domain.ClipRequest{
		Input:        input,
		Organization: org,
		Tags:         tags,
	}

	job, err := jobService.Submit(context.Background(), req)
	if err != nil {
		return reportError(cmd, err)
	}

	if clipJSON {
		data, err := json.MarshalIndent(job, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Clipped: %s\n", job.ResultTitle)
	if job.ResultRecordID != "" {
		cmd.Printf("  ID: %s\n", job.ResultRecordID)
	}
	if job.ResultPreview != "" {
		cmd.Printf("  %s\n", job.ResultPreview)
	}
	return nil
}
