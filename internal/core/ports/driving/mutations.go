package driving

import (
	"context"

	"github.com/clipworks/clipctl/internal/core/domain"
)

// MutationService owns write operations against individual records and
// organizations. It never patches the local list view; a successful
// mutation fires exactly one list invalidation instead, a failed one
// fires none.
type MutationService interface {
	// Edit applies a partial update to one record.
	Edit(ctx context.Context, id string, patch domain.RecordPatch) (domain.Record, error)

	// Remove deletes one record after the caller-supplied confirm
	// predicate approves. A declined confirmation returns
	// domain.ErrAborted without a network call.
	Remove(ctx context.Context, id string, confirm func() bool) error

	// CreateOrganization creates a new organization.
	CreateOrganization(ctx context.Context, name, description string) (domain.Organization, error)

	// UpdateOrganization renames or re-describes an organization.
	UpdateOrganization(ctx context.Context, org domain.Organization) (domain.Organization, error)

	// DeleteOrganization removes an organization after the confirm
	// predicate approves.
	DeleteOrganization(ctx context.Context, id string, confirm func() bool) error
}
