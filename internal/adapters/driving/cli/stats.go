package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show service-wide clip statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if directoryService == nil {
		return errors.New("directory service not configured")
	}

	stats, err := directoryService.Stats(context.Background())
	if err != nil {
		return reportError(cmd, err)
	}

	cmd.Printf("Total clips:    %d\n", stats.TotalClips)
	cmd.Printf("Organizations:  %d\n", stats.TotalOrganizations)
	cmd.Printf("Active projects: %d\n", stats.ActiveProjects)
	cmd.Printf("Storage used:   %.2f GB\n", stats.StorageUsedGB)
	return nil
}
