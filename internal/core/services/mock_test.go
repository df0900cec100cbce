package services

import (
	"context"
	"io"

	"github.com/clipworks/clipctl/internal/core/domain"
	"github.com/clipworks/clipctl/internal/core/ports/driven"
)

// mockAPI implements driven.API for testing. Each operation records
// its calls and delegates to an optional stub function.
type mockAPI struct {
	listCalls   int
	listQueries []domain.ListQuery
	listFn      func(domain.ListQuery) (domain.ListPage, error)

	getFn func(string) (domain.Record, error)

	updateCalls int
	updateFn    func(string, domain.RecordPatch) (domain.Record, error)

	deleteCalls int
	deleteErr   error

	submitCalls int
	submitFn    func(domain.ClipRequest) (domain.JobResult, error)

	uploadCalls int
	uploadFn    func(string) (string, error)

	previewCalls int
	previewFn    func(string) (string, error)

	orgs      []domain.Organization
	orgsErr   error
	createFn  func(domain.Organization) (domain.Organization, error)
	updOrgFn  func(domain.Organization) (domain.Organization, error)
	delOrgErr error

	tags    []string
	tagsErr error

	stats    domain.Stats
	statsErr error
}

var _ driven.API = (*mockAPI)(nil)

func (m *mockAPI) ListRecords(_ context.Context, q domain.ListQuery) (domain.ListPage, error) {
	m.listCalls++
	m.listQueries = append(m.listQueries, q)
	if m.listFn != nil {
		return m.listFn(q)
	}
	return domain.ListPage{Page: q.Page, PerPage: q.PerPage, TotalPages: 1}, nil
}

func (m *mockAPI) GetRecord(_ context.Context, id string) (domain.Record, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return domain.Record{ID: id}, nil
}

func (m *mockAPI) UpdateRecord(_ context.Context, id string, patch domain.RecordPatch) (domain.Record, error) {
	m.updateCalls++
	if m.updateFn != nil {
		return m.updateFn(id, patch)
	}
	return domain.Record{ID: id}, nil
}

func (m *mockAPI) DeleteRecord(_ context.Context, _ string) error {
	m.deleteCalls++
	return m.deleteErr
}

func (m *mockAPI) SubmitClip(_ context.Context, req domain.ClipRequest) (domain.JobResult, error) {
	m.submitCalls++
	if m.submitFn != nil {
		return m.submitFn(req)
	}
	return domain.JobResult{ID: "r1", Title: "T", Status: "completed"}, nil
}

func (m *mockAPI) UploadFile(_ context.Context, filename string, _ io.Reader) (string, error) {
	m.uploadCalls++
	if m.uploadFn != nil {
		return m.uploadFn(filename)
	}
	return filename, nil
}

func (m *mockAPI) FetchPreview(_ context.Context, id string) (string, error) {
	m.previewCalls++
	if m.previewFn != nil {
		return m.previewFn(id)
	}
	return "<p>preview</p>", nil
}

func (m *mockAPI) Download(_ context.Context, _, _ string, _ io.Writer) error {
	return nil
}

func (m *mockAPI) ListOrganizations(_ context.Context) ([]domain.Organization, error) {
	return m.orgs, m.orgsErr
}

func (m *mockAPI) CreateOrganization(_ context.Context, org domain.Organization) (domain.Organization, error) {
	if m.createFn != nil {
		return m.createFn(org)
	}
	org.ID = "org-1"
	return org, nil
}

func (m *mockAPI) UpdateOrganization(_ context.Context, org domain.Organization) (domain.Organization, error) {
	if m.updOrgFn != nil {
		return m.updOrgFn(org)
	}
	return org, nil
}

func (m *mockAPI) DeleteOrganization(_ context.Context, _ string) error {
	return m.delOrgErr
}

func (m *mockAPI) ListTags(_ context.Context) ([]string, error) {
	return m.tags, m.tagsErr
}

func (m *mockAPI) Stats(_ context.Context) (domain.Stats, error) {
	return m.stats, m.statsErr
}

// invalidationCounter builds an invalidate hook that counts firings.
type invalidationCounter struct {
	count int
}

func (i *invalidationCounter) hook() func() {
	return func() { i.count++ }
}
