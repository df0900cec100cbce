package services

import (
	"context"
	"fmt"

	"github.com/clipworks/clipctl/internal/core/domain"
	"github.com/clipworks/clipctl/internal/core/ports/driven"
	"github.com/clipworks/clipctl/internal/core/ports/driving"
)

// Ensure Directory implements the interface.
var _ driving.DirectoryService = (*Directory)(nil)

// Directory reads the reference data around the record list. It holds
// no state; callers decide when to refresh.
type Directory struct {
	api driven.API
}

// NewDirectory creates a directory service.
func NewDirectory(api driven.API) *Directory {
	return &Directory{api: api}
}

// Organizations fetches all organizations.
func (d *Directory) Organizations(ctx context.Context) ([]domain.Organization, error) {
	orgs, err := d.api.ListOrganizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	return orgs, nil
}

// Tags fetches all known tags.
func (d *Directory) Tags(ctx context.Context) ([]string, error) {
	tags, err := d.api.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	return tags, nil
}

// Stats fetches the dashboard summary.
func (d *Directory) Stats(ctx context.Context) (domain.Stats, error) {
	stats, err := d.api.Stats(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("fetching stats: %w", err)
	}
	return stats, nil
}
