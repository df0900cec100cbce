package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/clipworks/clipctl/internal/core/domain"
	"github.com/clipworks/clipctl/internal/core/ports/driven"
	"github.com/clipworks/clipctl/internal/core/ports/driving"
)

// Ensure Mutations implements the interface.
var _ driving.MutationService = (*Mutations)(nil)

// Mutations owns write operations against records and organizations.
//
// It never mutates the local ListPage: the remote stays the single
// source of truth and every successful mutation triggers exactly one
// list invalidation (a refetch) instead of an in-place patch. A failed
// mutation changes nothing locally, so there is no rollback.
type Mutations struct {
	api        driven.API
	invalidate func()
}

// NewMutations creates the mutation controller. invalidate may be nil
// when no list view is attached.
func NewMutations(api driven.API, invalidate func()) *Mutations {
	return &Mutations{api: api, invalidate: invalidate}
}

func (m *Mutations) fireInvalidation() {
	if m.invalidate != nil {
		m.invalidate()
	}
}

// Edit applies a partial update to one record.
func (m *Mutations) Edit(ctx context.Context, id string, patch domain.RecordPatch) (domain.Record, error) {
	if id == "" {
		return domain.Record{}, &domain.ValidationError{Reason: "record id is required"}
	}
	if patch.IsZero() {
		return domain.Record{}, &domain.ValidationError{Reason: "nothing to change"}
	}

	rec, err := m.api.UpdateRecord(ctx, id, patch)
	if err != nil {
		return domain.Record{}, fmt.Errorf("updating record %s: %w", id, err)
	}

	m.fireInvalidation()
	return rec, nil
}

// Remove deletes one record. The confirm predicate is the explicit
// confirmation step; a nil or declining predicate aborts before any
// network call.
func (m *Mutations) Remove(ctx context.Context, id string, confirm func() bool) error {
	if id == "" {
		return &domain.ValidationError{Reason: "record id is required"}
	}
	if confirm == nil || !confirm() {
		return domain.ErrAborted
	}

	if err := m.api.DeleteRecord(ctx, id); err != nil {
		return fmt.Errorf("deleting record %s: %w", id, err)
	}

	m.fireInvalidation()
	return nil
}

// CreateOrganization creates a new organization.
func (m *Mutations) CreateOrganization(ctx context.Context, name, description string) (domain.Organization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Organization{}, &domain.ValidationError{Reason: "organization name is required"}
	}

	org, err := m.api.CreateOrganization(ctx, domain.Organization{Name: name, Description: description})
	if err != nil {
		return domain.Organization{}, fmt.Errorf("creating organization: %w", err)
	}

	m.fireInvalidation()
	return org, nil
}

// UpdateOrganization renames or re-describes an organization.
func (m *Mutations) UpdateOrganization(ctx context.Context, org domain.Organization) (domain.Organization, error) {
	if org.ID == "" {
		return domain.Organization{}, &domain.ValidationError{Reason: "organization id is required"}
	}
	if strings.TrimSpace(org.Name) == "" {
		return domain.Organization{}, &domain.ValidationError{Reason: "organization name is required"}
	}

	updated, err := m.api.UpdateOrganization(ctx, org)
	if err != nil {
		return domain.Organization{}, fmt.Errorf("updating organization %s: %w", org.ID, err)
	}

	m.fireInvalidation()
	return updated, nil
}

// DeleteOrganization removes an organization after confirmation.
func (m *Mutations) DeleteOrganization(ctx context.Context, id string, confirm func() bool) error {
	if id == "" {
		return &domain.ValidationError{Reason: "organization id is required"}
	}
	if confirm == nil || !confirm() {
		return domain.ErrAborted
	}

	if err := m.api.DeleteOrganization(ctx, id); err != nil {
		return fmt.Errorf("deleting organization %s: %w", id, err)
	}

	m.fireInvalidation()
	return nil
}
