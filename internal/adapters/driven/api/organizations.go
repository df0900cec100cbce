package api

import (
	"context"
	"net/url"

	"github.com/clipworks/clipctl/internal/core/domain"
)

// organizationDTO is the wire shape of an organization.
type organizationDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MemberCount int    `json:"member_count"`
	StorageUsed int64  `json:"storage_used"`
}

func (d organizationDTO) toDomain() domain.Organization {
	return domain.Organization{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		MemberCount: d.MemberCount,
		StorageUsed: d.StorageUsed,
	}
}

// ListOrganizations fetches all organizations.
func (c *Client) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	resp, err := c.do(ctx, "GET", "/organizations", nil)
	if err != nil {
		return nil, err
	}

	var dtos []organizationDTO
	if err := decodeJSON(resp, &dtos); err != nil {
		return nil, err
	}

	orgs := make([]domain.Organization, 0, len(dtos))
	for _, d := range dtos {
		orgs = append(orgs, d.toDomain())
	}
	return orgs, nil
}

// CreateOrganization creates an organization; the server assigns the
// id.
func (c *Client) CreateOrganization(ctx context.Context, org domain.Organization) (domain.Organization, error) {
	body := organizationDTO{Name: org.Name, Description: org.Description}

	resp, err := c.do(ctx, "POST", "/organizations", body)
	if err != nil {
		return domain.Organization{}, err
	}

	var dto organizationDTO
	if err := decodeJSON(resp, &dto); err != nil {
		return domain.Organization{}, err
	}
	return dto.toDomain(), nil
}

// UpdateOrganization updates an organization's name or description.
func (c *Client) UpdateOrganization(ctx context.Context, org domain.Organization) (domain.Organization, error) {
	body := organizationDTO{Name: org.Name, Description: org.Description}

	resp, err := c.do(ctx, "PUT", "/organizations/"+url.PathEscape(org.ID), body)
	if err != nil {
		return domain.Organization{}, err
	}

	var dto organizationDTO
	if err := decodeJSON(resp, &dto); err != nil {
		return domain.Organization{}, err
	}
	if dto.ID == "" {
		dto.ID = org.ID
	}
	return dto.toDomain(), nil
}

// DeleteOrganization removes an organization.
func (c *Client) DeleteOrganization(ctx context.Context, id string) error {
	resp, err := c.do(ctx, "DELETE", "/organizations/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return apiError(resp)
	}
	return nil
}

// ListTags fetches all known tags.
func (c *Client) ListTags(ctx context.Context) ([]string, error) {
	resp, err := c.do(ctx, "GET", "/tags", nil)
	if err != nil {
		return nil, err
	}

	var tags []string
	if err := decodeJSON(resp, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// statsDTO is the wire shape of the dashboard summary.
type statsDTO struct {
	TotalClips         int     `json:"total_clips"`
	TotalOrganizations int     `json:"total_organizations"`
	ActiveProjects     int     `json:"active_projects"`
	StorageUsed        float64 `json:"storage_used"`
}

// Stats fetches the service-wide dashboard summary.
func (c *Client) Stats(ctx context.Context) (domain.Stats, error) {
	resp, err := c.do(ctx, "GET", "/stats", nil)
	if err != nil {
		return domain.Stats{}, err
	}

	var dto statsDTO
	if err := decodeJSON(resp, &dto); err != nil {
		return domain.Stats{}, err
	}
	return domain.Stats{
		TotalClips:         dto.TotalClips,
		TotalOrganizations: dto.TotalOrganizations,
		ActiveProjects:     dto.ActiveProjects,
		StorageUsedGB:      dto.StorageUsed,
	}, nil
}
