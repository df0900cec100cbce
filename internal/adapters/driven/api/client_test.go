package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipworks/clipctl/internal/core/domain"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 5*time.Second), srv
}

func TestListRecords(t *testing.T) {
	var gotQuery map[string][]string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, "/results", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{
					"id":        "r1",
					"title":     "A Title",
					"url":       "https://example.com/a",
					"tags":      []string{"go"},
					"timestamp": "2026-08-29T10:30:00.123456",
				},
			},
			"total_pages": 3,
			"page":        2,
			"per_page":    10,
		})
	})
	defer srv.Close()

	page, err := client.ListRecords(context.Background(), domain.ListQuery{
		SearchTerm:   "foo",
		Organization: "acme",
		Page:         2,
		PerPage:      10,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2"}, gotQuery["page"])
	assert.Equal(t, []string{"10"}, gotQuery["per_page"])
	assert.Equal(t, []string{"foo"}, gotQuery["search"])
	assert.Equal(t, []string{"acme"}, gotQuery["organization"])

	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.Page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "r1", page.Items[0].ID)
	assert.Equal(t, "https://example.com/a", page.Items[0].SourceURL)
	assert.Equal(t, 2026, page.Items[0].CreatedAt.Year())
}

func TestListRecords_AllOrganizationsOmitsFilter(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("organization"))
		assert.False(t, r.URL.Query().Has("search"))
		json.NewEncoder(w).Encode(map[string]any{"items": []any{}, "total_pages": 1, "page": 1, "per_page": 10})
	})
	defer srv.Close()

	_, err := client.ListRecords(context.Background(), domain.NewListQuery(10))
	require.NoError(t, err)
}

func TestListRecords_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client := NewClient(srv.URL, time.Second)
	srv.Close() // nothing is listening any more

	_, err := client.ListRecords(context.Background(), domain.NewListQuery(10))
	assert.True(t, domain.IsNetwork(err))
}

func TestListRecords_DecodeError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, "<html>not json</html>")
	})
	defer srv.Close()

	_, err := client.ListRecords(context.Background(), domain.NewListQuery(10))
	assert.True(t, domain.IsDecode(err))
}

func TestListRecords_APIErrorDetail(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"detail": "database unavailable"}`)
	})
	defer srv.Close()

	_, err := client.ListRecords(context.Background(), domain.NewListQuery(10))

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.Status)
	assert.Equal(t, "database unavailable", apiErr.Detail)
}

func TestUpdateRecord(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/results/r1", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "New Title", body["title"])
		_, hasTags := body["tags"]
		assert.False(t, hasTags, "nil patch fields must be omitted")

		json.NewEncoder(w).Encode(map[string]any{"id": "r1", "title": "New Title"})
	})
	defer srv.Close()

	title := "New Title"
	rec, err := client.UpdateRecord(context.Background(), "r1", domain.RecordPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "New Title", rec.Title)
}

func TestUpdateRecord_NotFound(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"detail": "Result not found"}`)
	})
	defer srv.Close()

	title := "x"
	_, err := client.UpdateRecord(context.Background(), "gone", domain.RecordPatch{Title: &title})
	assert.True(t, domain.IsNotFound(err))
}

func TestDeleteRecord(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/results/r1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	defer srv.Close()

	assert.NoError(t, client.DeleteRecord(context.Background(), "r1"))
}

func TestSubmitClip(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clip", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://x/sitemap.xml", body["input"])
		assert.Equal(t, "acme", body["organization"])

		json.NewEncoder(w).Encode(map[string]any{
			"id":     "r1",
			"title":  "T",
			"url":    "https://x/sitemap.xml",
			"status": "completed",
		})
	})
	defer srv.Close()

	res, err := client.SubmitClip(context.Background(), domain.ClipRequest{
		Input:        "https://x/sitemap.xml",
		Organization: "acme",
		Tags:         []string{"go"},
	})
	require.NoError(t, err)
	assert.Equal(t, "r1", res.ID)
	assert.Equal(t, "completed", res.Status)
}

func TestSubmitClip_EmptyInputNeverDispatches(t *testing.T) {
	called := false
	client, srv := newTestClient(func(http.ResponseWriter, *http.Request) { called = true })
	defer srv.Close()

	_, err := client.SubmitClip(context.Background(), domain.ClipRequest{})
	assert.True(t, domain.IsValidation(err))
	assert.False(t, called)
}

func TestUploadFile(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/upload_file", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"), "uploads are traceable like every other call")
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "notes.html", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "<html>notes</html>", string(content))

		json.NewEncoder(w).Encode(map[string]any{"filename": "notes.html", "status": "uploaded"})
	})
	defer srv.Close()

	name, err := client.UploadFile(context.Background(), "notes.html", strings.NewReader("<html>notes</html>"))
	require.NoError(t, err)
	assert.Equal(t, "notes.html", name)
}

func TestFetchPreview(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/preview/r1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"html": "<h1>Hi</h1>"})
	})
	defer srv.Close()

	html, err := client.FetchPreview(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hi</h1>", html)
}

func TestDownload(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/download/r1/markdown", r.URL.Path)
		io.WriteString(w, "# Title\n\nbody\n")
	})
	defer srv.Close()

	var buf strings.Builder
	require.NoError(t, client.Download(context.Background(), "r1", "markdown", &buf))
	assert.Contains(t, buf.String(), "# Title")
}

func TestDownload_InvalidFormat(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second)
	err := client.Download(context.Background(), "r1", "epub", io.Discard)
	assert.True(t, domain.IsValidation(err))
}

func TestOrganizationCRUD(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/organizations":
			json.NewEncoder(w).Encode([]map[string]any{{"id": "org-1", "name": "Acme"}})
		case r.Method == http.MethodPost && r.URL.Path == "/organizations":
			json.NewEncoder(w).Encode(map[string]any{"id": "org-2", "name": "Globex"})
		case r.Method == http.MethodPut && r.URL.Path == "/organizations/org-1":
			json.NewEncoder(w).Encode(map[string]any{"id": "org-1", "name": "Acme Corp"})
		case r.Method == http.MethodDelete && r.URL.Path == "/organizations/org-1":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	defer srv.Close()

	ctx := context.Background()

	orgs, err := client.ListOrganizations(ctx)
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	assert.Equal(t, "Acme", orgs[0].Name)

	created, err := client.CreateOrganization(ctx, domain.Organization{Name: "Globex"})
	require.NoError(t, err)
	assert.Equal(t, "org-2", created.ID)

	updated, err := client.UpdateOrganization(ctx, domain.Organization{ID: "org-1", Name: "Acme Corp"})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", updated.Name)

	assert.NoError(t, client.DeleteOrganization(ctx, "org-1"))
}

func TestStats(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stats", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"total_clips":         42,
			"total_organizations": 3,
			"active_projects":     2,
			"storage_used":        0.75,
		})
	})
	defer srv.Close()

	stats, err := client.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, stats.TotalClips)
	assert.InDelta(t, 0.75, stats.StorageUsedGB, 0.001)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "RFC 3339",
			input: "2026-08-29T10:30:00Z",
			want:  time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "zone-less with microseconds",
			input: "2026-08-29T10:30:00.500000",
			want:  time.Date(2026, 8, 29, 10, 30, 0, 500000000, time.UTC),
		},
		{
			name:  "zone-less seconds",
			input: "2026-08-29T10:30:00",
			want:  time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "garbage yields zero time",
			input: "yesterday",
			want:  time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, parseTimestamp(tt.input).Equal(tt.want))
		})
	}
}

func TestDefaultClient(t *testing.T) {
	c := NewClient("", 0)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
}
