package driven

import (
	"context"
	"io"

	"github.com/clipworks/clipctl/internal/core/domain"
)

// API is the typed wrapper over the remote clip service.
//
// Every operation is at-most-once: no implicit retries, because clip
// submission is not idempotent. Failures are normalised to the domain
// error taxonomy: *domain.NetworkError when no response was received,
// *domain.APIError when the server rejected the request, and
// *domain.DecodeError when the response body was unparsable. The
// implementation holds no cached state.
type API interface {
	// ListRecords fetches one page of records for the given query.
	ListRecords(ctx context.Context, query domain.ListQuery) (domain.ListPage, error)

	// GetRecord fetches a single record by id.
	GetRecord(ctx context.Context, id string) (domain.Record, error)

	// UpdateRecord applies a partial update and returns the new state.
	UpdateRecord(ctx context.Context, id string, patch domain.RecordPatch) (domain.Record, error)

	// DeleteRecord removes a record.
	DeleteRecord(ctx context.Context, id string) error

	// SubmitClip submits a URL or sitemap for clipping and blocks
	// until the server reports the job's outcome.
	SubmitClip(ctx context.Context, req domain.ClipRequest) (domain.JobResult, error)

	// UploadFile uploads a local file as multipart form data and
	// returns the server-side filename.
	UploadFile(ctx context.Context, filename string, r io.Reader) (string, error)

	// FetchPreview fetches the rendered HTML preview of one record.
	FetchPreview(ctx context.Context, id string) (string, error)

	// Download streams a generated artifact ("markdown" or "pdf") to w.
	Download(ctx context.Context, id, format string, w io.Writer) error

	// ListOrganizations fetches all organizations.
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)

	// CreateOrganization creates an organization and returns it with
	// its server-assigned id.
	CreateOrganization(ctx context.Context, org domain.Organization) (domain.Organization, error)

	// UpdateOrganization updates an organization's name or description.
	UpdateOrganization(ctx context.Context, org domain.Organization) (domain.Organization, error)

	// DeleteOrganization removes an organization.
	DeleteOrganization(ctx context.Context, id string) error

	// ListTags fetches all known tags.
	ListTags(ctx context.Context) ([]string, error)

	// Stats fetches the service-wide dashboard summary.
	Stats(ctx context.Context) (domain.Stats, error)
}
