package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/clipworks/clipctl/internal/adapters/driven/config/file"
)

var downloadOut string

var downloadCmd = &cobra.Command{
	Use:   "download [record-id] [markdown|pdf]",
	Short: "Download a record's markdown or PDF artifact",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runDownload,
}

func init() {
	downloadCmd.Flags().StringVarP(&downloadOut, "out", "O", "", "output directory (defaults to the configured download dir)")
	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	id := args[0]
	format := "markdown"
	if len(args) > 1 {
		format = args[1]
	}

	if apiClient == nil {
		return errors.New("api client not configured")
	}

	dir := downloadOut
	if dir == "" && configStore != nil {
		dir = configStore.GetString(file.KeyDownloadDir)
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	ext := ".md"
	if format == "pdf" {
		ext = ".pdf"
	}
	path := filepath.Join(dir, id+ext)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer out.Close()

	if err := apiClient.Download(context.Background(), id, format, out); err != nil {
		os.Remove(path)
		return reportError(cmd, err)
	}

	cmd.Printf("Saved %s\n", path)
	return nil
}
