package driving

import (
	"context"

	"github.com/clipworks/clipctl/internal/core/domain"
)

// PreviewService loads rendered previews on demand, one state slot per
// record id. Concurrent previews of different records never interfere.
type PreviewService interface {
	// State returns the preview slot for a record.
	State(id string) domain.Preview

	// Begin moves a record's slot to Loading. It returns false when a
	// load for that record is already in flight.
	Begin(id string) bool

	// Run performs the network fetch for a begun load.
	Run(ctx context.Context, id string) (string, error)

	// Complete records a load outcome in the record's slot.
	Complete(id, html string, err error) domain.Preview

	// Fetch is Begin + Run + Complete for synchronous callers.
	Fetch(ctx context.Context, id string) (domain.Preview, error)
}
