package tui

import (
	"context"
	"io"
	"time"

	"github.com/clipworks/clipctl/internal/core/domain"
	"github.com/clipworks/clipctl/internal/core/ports/driven"
	"github.com/clipworks/clipctl/internal/core/services"
)

// fakeAPI is a canned driven.API for app tests.
type fakeAPI struct {
	records []domain.Record
	orgs    []domain.Organization
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
	return domain.Record{ID: id}, nil
}

func (f *fakeAPI) UpdateRecord(_ context.Context, id string, _ domain.RecordPatch) (domain.Record, error) {
	return domain.Record{ID: id}, nil
}

func (f *fakeAPI) DeleteRecord(context.Context, string) error {
	return nil
}

func (f *fakeAPI) SubmitClip(_ context.Context, req domain.ClipRequest) (domain.JobResult, error) {
	return domain.JobResult{ID: "rec-1", Title: "Example", URL: req.Input, Status: "completed"}, nil
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
	return nil, nil
}

func (f *fakeAPI) Stats(context.Context) (domain.Stats, error) {
	return domain.Stats{}, nil
}

func newTestPorts() *Ports {
	api := &fakeAPI{}
	listCtl := services.NewListController(api, 10, time.Millisecond)
	invalidate := func() { listCtl.Invalidate() }

	return &Ports{
		List:      listCtl,
		Jobs:      services.NewJobController(api, invalidate),
		Mutations: services.NewMutations(api, invalidate),
		Preview:   services.NewPreviewLoader(api),
		Directory: services.NewDirectory(api),
		API:       api,
	}
}
