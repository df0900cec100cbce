package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/clipworks/clipctl/internal/render"
)

var (
	previewRendered bool
	previewText     bool
)

var previewCmd = &cobra.Command{
	Use:   "preview [record-id]",
	Short: "Show a record's rendered preview",
	Long: `Fetches the server-rendered preview for one record.

By default the preview HTML is printed as-is. With --text the markup is
stripped to readable text. With --rendered the markdown artifact is
downloaded instead and rendered for the terminal.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().BoolVarP(&previewRendered, "rendered", "r", false, "render the markdown artifact for the terminal")
	previewCmd.Flags().BoolVarP(&previewText, "text", "t", false, "strip markup from the preview HTML")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	id := args[0]
	ctx := context.Background()

	if previewRendered {
		return renderedPreview(cmd, ctx, id)
	}

	if previewService == nil {
		return errors.New("preview service not configured")
	}

	preview, err := previewService.Fetch(ctx, id)
	if err != nil {
		return reportError(cmd, err)
	}

	if previewText {
		cmd.Println(render.HTMLText(preview.HTML))
		return nil
	}
	cmd.Println(preview.HTML)
	return nil
}

func renderedPreview(cmd *cobra.Command, ctx context.Context, id string) error {
	if apiClient == nil {
		return errors.New("api client not configured")
	}

	var buf bytes.Buffer
	if err := apiClient.Download(ctx, id, "markdown", &buf); err != nil {
		return reportError(cmd, err)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// Fall back to the raw markdown when the renderer cannot start.
		cmd.Println(buf.String())
		return nil
	}

	out, err := renderer.Render(buf.String())
	if err != nil {
		cmd.Println(buf.String())
		return nil
	}
	cmd.Println(strings.TrimRight(out, "\n"))
	return nil
}
