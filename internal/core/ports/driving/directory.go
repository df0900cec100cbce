package driving

import (
	"context"

	"github.com/clipworks/clipctl/internal/core/domain"
)

// DirectoryService provides the read-only reference data surrounding
// the record list: the organization picklist, the known tags, and the
// service-wide stats.
type DirectoryService interface {
	// Organizations fetches all organizations.
	Organizations(ctx context.Context) ([]domain.Organization, error)

	// Tags fetches all known tags.
	Tags(ctx context.Context) ([]string, error)

	// Stats fetches the dashboard summary.
	Stats(ctx context.Context) (domain.Stats, error)
}
