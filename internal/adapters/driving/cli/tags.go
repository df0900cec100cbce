package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all known tags",
	RunE:  runTags,
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, _ []string) error {
	if directoryService == nil {
		return errors.New("directory service not configured")
	}

	tags, err := directoryService.Tags(context.Background())
	if err != nil {
		return reportError(cmd, err)
	}

	if len(tags) == 0 {
		cmd.Println("No tags.")
		return nil
	}
	for _, tag := range tags {
		cmd.Println(tag)
	}
	return nil
}
