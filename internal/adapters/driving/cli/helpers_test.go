package cli

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/clipworks/clipctl/internal/core/domain"
	"github.com/clipworks/clipctl/internal/core/ports/driven"
	"github.com/clipworks/clipctl/internal/core/services"
)

// fakeAPI is a canned driven.API for command tests.
type fakeAPI struct {
	records   []domain.Record
	orgs      []domain.Organization
	tags      []string
	stats     domain.Stats
	submitErr error
	deleteErr error
}

var _ driven.API = (*fakeAPI)(nil)

func (f *fakeAPI) ListRecords(_ context.Context, query domain.ListQuery) (domain.ListPage, error) {
	return domain.ListPage{
		Items:      f.records,
		TotalPages: 1,
		Page:       query.Page,
		PerPage:    query.PerPage,
	}, nil
}

func (f *fakeAPI) GetRecord(_ context.Context, id string) (domain.Record, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return domain.Record{}, &domain.APIError{Status: 404, Detail: "not found"}
}

func (f *fakeAPI) UpdateRecord(_ context.Context, id string, patch domain.RecordPatch) (domain.Record, error) {
	rec := domain.Record{ID: id, Title: "old title"}
	if patch.Title != nil {
		rec.Title = *patch.Title
	}
	if patch.Tags != nil {
		rec.Tags = *patch.Tags
	}
	if patch.Organization != nil {
		rec.Organization = *patch.Organization
	}
	return rec, nil
}

func (f *fakeAPI) DeleteRecord(context.Context, string) error {
	return f.deleteErr
}

func (f *fakeAPI) SubmitClip(_ context.Context, req domain.ClipRequest) (domain.JobResult, error) {
	if f.submitErr != nil {
		return domain.JobResult{}, f.submitErr
	}
	return domain.JobResult{
		ID:     "rec-1",
		Title:  "Example Page",
		URL:    req.Input,
		Status: "completed",
	}, nil
}

func (f *fakeAPI) UploadFile(_ context.Context, filename string, _ io.Reader) (string, error) {
	return filename, nil
}

func (f *fakeAPI) FetchPreview(context.Context, string) (string, error) {
	return "<h1>Example</h1>", nil
}

func (f *fakeAPI) Download(_ context.Context, _, _ string, w io.Writer) error {
	_, err := w.Write([]byte("# Example\n"))
	return err
}

func (f *fakeAPI) ListOrganizations(context.Context) ([]domain.Organization, error) {
	return f.orgs, nil
}

func (f *fakeAPI) CreateOrganization(_ context.Context, org domain.Organization) (domain.Organization, error) {
	org.ID = "org-1"
	return org, nil
}

func (f *fakeAPI) UpdateOrganization(_ context.Context, org domain.Organization) (domain.Organization, error) {
	return org, nil
}

func (f *fakeAPI) DeleteOrganization(context.Context, string) error {
	return nil
}

func (f *fakeAPI) ListTags(context.Context) ([]string, error) {
	return f.tags, nil
}

func (f *fakeAPI) Stats(context.Context) (domain.Stats, error) {
	return f.stats, nil
}

// resetFlags clears a command's Changed markers, which persist across
// Execute calls otherwise. Bound variables are reset by the callers.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
	})
}

// setupTestServices wires the package-level services to a canned API
// and returns a cleanup that restores the previous wiring.
func setupTestServices(api driven.API) func() {
	prevAPI := apiClient
	prevList := listService
	prevJobs := jobService
	prevMut := mutationService
	prevPrev := previewService
	prevDir := directoryService

	listCtl := services.NewListController(api, 10, time.Millisecond)
	invalidate := func() { listCtl.Invalidate() }
	apiClient = api
	listService = listCtl
	jobService = services.NewJobController(api, invalidate)
	mutationService = services.NewMutations(api, invalidate)
	previewService = services.NewPreviewLoader(api)
	directoryService = services.NewDirectory(api)

	return func() {
		apiClient = prevAPI
		listService = prevList
		jobService = prevJobs
		mutationService = prevMut
		previewService = prevPrev
		directoryService = prevDir
	}
}
