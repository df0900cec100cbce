package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/clipworks/clipctl/internal/adapters/driven/api"
	"github.com/clipworks/clipctl/internal/adapters/driven/config/file"
	"github.com/clipworks/clipctl/internal/core/domain"
	"github.com/clipworks/clipctl/internal/core/ports/driven"
	"github.com/clipworks/clipctl/internal/core/ports/driving"
	"github.com/clipworks/clipctl/internal/core/services"
	"github.com/clipworks/clipctl/internal/logger"
)

// version is stamped by the build; "dev" for local builds.
var version = "dev"

// SetVersion overrides the reported version (set from main at build time).
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Package-level services shared by all commands. Populated by
// ensureServices on first use; tests swap them for mocks.
var (
	configStore      driven.ConfigStore
	apiClient        driven.API
	listService      driving.ListService
	jobService       driving.JobService
	mutationService  driving.MutationService
	previewService   driving.PreviewService
	directoryService driving.DirectoryService
)

var (
	flagVerbose bool
	flagServer  string
)

var rootCmd = &cobra.Command{
	Use:   "clipctl",
	Short: "Clip web pages and documents into organised markdown",
	Long: `clipctl is a terminal client for a clipping server.

Submit URLs, sitemaps, or local files to be converted into markdown,
then browse, tag, and download the results.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		return ensureServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "clipping server base URL (overrides config)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ensureServices builds the service graph from configuration. It is a
// no-op when services are already wired (tests inject their own).
func ensureServices() error {
	if listService != nil {
		return nil
	}

	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	configStore = store

	baseURL := flagServer
	if baseURL == "" {
		baseURL = store.GetString(file.KeyBaseURL)
	}
	timeout := time.Duration(store.GetInt(file.KeyTimeoutSeconds)) * time.Second
	client := api.NewClient(baseURL, timeout)
	apiClient = client

	perPage := store.GetInt(file.KeyPerPage)
	debounce := time.Duration(store.GetInt(file.KeyDebounceMillis)) * time.Millisecond

	listCtl := services.NewListController(client, perPage, debounce)
	// The bumped plan is unused here: the CLI is one-shot and the TUI
	// refetches via PlanCurrent after the bump.
	invalidate := func() { listCtl.Invalidate() }

	listService = listCtl
	jobService = services.NewJobController(client, invalidate)
	mutationService = services.NewMutations(client, invalidate)
	previewService = services.NewPreviewLoader(client)
	directoryService = services.NewDirectory(client)

	logger.Debug("services wired (server=%s, per_page=%d)", baseURL, perPage)
	return nil
}

// promptConfirm asks a yes/no question on the command's streams and
// returns true only for an explicit yes.
func promptConfirm(cmd *cobra.Command, question string) bool {
	cmd.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// reportError prints a user-facing message for domain errors and
// returns the error unchanged for exit-code purposes.
func reportError(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	cmd.PrintErrln("Error:", domain.UserMessage(err))
	return err
}
