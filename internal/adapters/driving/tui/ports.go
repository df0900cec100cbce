// Package tui provides the interactive terminal user interface for
// clipctl. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/clipworks/clipctl/internal/core/ports/driven"
	"github.com/clipworks/clipctl/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// List is the paginated read path over records.
	List driving.ListService

	// Jobs manages clip submissions.
	Jobs driving.JobService

	// Mutations performs record and organization writes.
	Mutations driving.MutationService

	// Preview loads rendered previews on demand.
	Preview driving.PreviewService

	// Directory fetches organizations, tags, and stats.
	Directory driving.DirectoryService

	// API is used directly for artifact downloads.
	API driven.API
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.List == nil {
		return ErrMissingListService
	}
	if p.Jobs == nil {
		return ErrMissingJobService
	}
	if p.Mutations == nil {
		return ErrMissingMutationService
	}
	if p.Preview == nil {
		return ErrMissingPreviewService
	}
	if p.Directory == nil {
		return ErrMissingDirectoryService
	}
	return nil
}
