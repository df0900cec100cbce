package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/clipworks/clipctl/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for clipctl.

The TUI provides a visual interface for browsing clips, submitting new
ones, and managing organizations with keyboard navigation.

Controls:
  ↑/k, ↓/j - Navigate
  ←/→      - Previous / next page
  Enter    - Select / Submit
  Esc      - Back / Cancel
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// Panic recovery keeps a stack trace visible after the alt screen
	// is torn down.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		List:      listService,
		Jobs:      jobService,
		Mutations: mutationService,
		Preview:   previewService,
		Directory: directoryService,
		API:       apiClient,
	}
	app, err := tui.NewApp(ports)
	if err != nil {
		return err
	}

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
