package submit

import (
	"context"
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipworks/clipctl/internal/adapters/driving/tui/messages"
	"github.com/clipworks/clipctl/internal/core/domain"
	"github.com/clipworks/clipctl/internal/core/ports/driven"
	"github.com/clipworks/clipctl/internal/core/services"
)

// fakeAPI records submissions.
type fakeAPI struct {
	submitCalls int
	submitFn    func(domain.ClipRequest) (domain.JobResult, error)
}

var _ driven.API = (*fakeAPI)(nil)

func (f *fakeAPI) ListRecords(_ context.Context, query domain.ListQuery) (domain.ListPage, error) {
	return domain.ListPage{TotalPages: 1, Page: query.Page, PerPage: query.PerPage}, nil
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
	f.submitCalls++
	if f.submitFn != nil {
		return f.submitFn(req)
	}
	return domain.JobResult{ID: "rec-1", Title: "Example", URL: req.Input, Status: "completed"}, nil
}

func (f *fakeAPI) UploadFile(_ context.Context, filename string, _ io.Reader) (string, error) {
	return filename, nil
}

func (f *fakeAPI) FetchPreview(context.Context, string) (string, error) {
	return "", nil
}

func (f *fakeAPI) Download(context.Context, string, string, io.Writer) error {
	return nil
}

func (f *fakeAPI) ListOrganizations(context.Context) ([]domain.Organization, error) {
	return []domain.Organization{{ID: "org-1", Name: "docs"}}, nil
}

func (f *fakeAPI) CreateOrganization(_ context.Context, org domain.Organization) (domain.Organization, error) {
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

type invalidations struct {
	count int
}

func (i *invalidations) hook() {
	i.count++
}

func newTestView(api *fakeAPI) (*View, *invalidations) {
	inv := &invalidations{}
	jobs := services.NewJobController(api, inv.hook)
	directory := services.NewDirectory(api)

	v := NewView(nil, nil, jobs, directory)
	v.SetDimensions(80, 24)
	return v, inv
}

func pressEnter(v *View) tea.Cmd {
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestView_EmptyInputFailsValidation(t *testing.T) {
	api := &fakeAPI{}
	v, inv := newTestView(api)

	cmd := pressEnter(v)

	assert.Nil(t, cmd, "validation failure must not start a network call")
	assert.True(t, domain.IsValidation(v.Err()))
	assert.Zero(t, api.submitCalls)
	assert.Zero(t, inv.count)
}

func TestView_SuccessfulSubmission(t *testing.T) {
	api := &fakeAPI{}
	v, inv := newTestView(api)
	v.urlInput.SetValue("https://example.com/page")

	cmd := pressEnter(v)
	require.NotNil(t, cmd)
	assert.True(t, v.Submitting())

	// The command runs the network call; its outcome comes back as a
	// message for the event loop to complete.
	ran, ok := cmd().(jobRan)
	require.True(t, ok)
	require.NoError(t, ran.err)

	_, done := v.Update(ran)
	require.NotNil(t, done)

	completed, ok := done().(messages.JobCompleted)
	require.True(t, ok)
	assert.Equal(t, domain.JobIdle, v.jobs.Job().Phase, "acknowledged back to idle")
	assert.Equal(t, "Example", completed.Job.ResultTitle)

	assert.False(t, v.Submitting())
	assert.Equal(t, 1, api.submitCalls)
	assert.Equal(t, 1, inv.count, "success fires exactly one invalidation")
	assert.Empty(t, v.urlInput.Value(), "input clears for the next clip")
}

func TestView_SecondSubmitWhileInFlightIsRejected(t *testing.T) {
	api := &fakeAPI{}
	v, _ := newTestView(api)
	v.urlInput.SetValue("https://example.com/page")

	first := pressEnter(v)
	require.NotNil(t, first)
	require.True(t, v.Submitting())

	second := pressEnter(v)

	assert.Nil(t, second)
	assert.ErrorIs(t, v.Err(), domain.ErrBusy)
	assert.Equal(t, 0, api.submitCalls, "the network call has not run yet")
}

func TestView_FailedSubmissionKeepsInput(t *testing.T) {
	api := &fakeAPI{
		submitFn: func(domain.ClipRequest) (domain.JobResult, error) {
			return domain.JobResult{}, &domain.NetworkError{Err: errors.New("connection refused")}
		},
	}
	v, inv := newTestView(api)
	v.urlInput.SetValue("https://example.com/page")

	cmd := pressEnter(v)
	require.NotNil(t, cmd)

	ran, ok := cmd().(jobRan)
	require.True(t, ok)
	require.Error(t, ran.err)
	v.Update(ran)

	assert.False(t, v.Submitting())
	assert.Zero(t, inv.count, "failure fires no invalidation")
	assert.Equal(t, "https://example.com/page", v.urlInput.Value(),
		"input survives so the user can retry")
}

func TestView_SitemapProgressMessage(t *testing.T) {
	api := &fakeAPI{}
	v, _ := newTestView(api)
	v.urlInput.SetValue("https://example.com/sitemap.xml")

	cmd := pressEnter(v)
	require.NotNil(t, cmd)

	assert.Contains(t, v.statusbar.Message(), "sitemap")
	assert.Contains(t, v.statusbar.Message(), "may take a while")
}

func TestView_TagsAndOrgFlowIntoRequest(t *testing.T) {
	var captured domain.ClipRequest
	api := &fakeAPI{
		submitFn: func(req domain.ClipRequest) (domain.JobResult, error) {
			captured = req
			return domain.JobResult{ID: "rec-1", Title: "Example", Status: "completed"}, nil
		},
	}
	v, _ := newTestView(api)

	// Load the picklist, then cycle to the first organization.
	v.Update(messages.OrganizationsLoaded{
		Organizations: []domain.Organization{{ID: "org-1", Name: "docs"}},
	})
	v.Update(tea.KeyMsg{Type: tea.KeyCtrlO})

	v.urlInput.SetValue("https://example.com/page")
	v.tagInput.SetValue("go, go, http")

	cmd := pressEnter(v)
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, "docs", captured.Organization)
	assert.Equal(t, []string{"go", "http"}, captured.Tags, "tags deduplicate with set semantics")
}

func TestView_Reset(t *testing.T) {
	api := &fakeAPI{}
	v, _ := newTestView(api)
	v.urlInput.SetValue("something")
	v.tagInput.SetValue("a,b")

	v.Reset()

	assert.Empty(t, v.urlInput.Value())
	assert.Empty(t, v.tagInput.Value())
	assert.False(t, v.Submitting())
}
