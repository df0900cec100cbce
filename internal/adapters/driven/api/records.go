package api

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/clipworks/clipctl/internal/core/domain"
)

// recordDTO is the wire shape of one clip record.
type recordDTO struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	URL          string   `json:"url"`
	MarkdownPath string   `json:"markdown_path"`
	PDFPath      string   `json:"pdf_path"`
	Organization string   `json:"organization"`
	Tags         []string `json:"tags"`
	Timestamp    string   `json:"timestamp"`
}

func (d recordDTO) toDomain() domain.Record {
	return domain.Record{
		ID:           d.ID,
		Title:        d.Title,
		SourceURL:    d.URL,
		CreatedAt:    parseTimestamp(d.Timestamp),
		Organization: d.Organization,
		Tags:         d.Tags,
		MarkdownPath: d.MarkdownPath,
		PDFPath:      d.PDFPath,
	}
}

// listPageDTO is the wire shape of one results page.
type listPageDTO struct {
	Items      []recordDTO `json:"items"`
	TotalPages int         `json:"total_pages"`
	Page       int         `json:"page"`
	PerPage    int         `json:"per_page"`
}

// ListRecords fetches one page of records for the given query.
func (c *Client) ListRecords(ctx context.Context, query domain.ListQuery) (domain.ListPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(query.Page))
	params.Set("per_page", strconv.Itoa(query.PerPage))
	if query.SearchTerm != "" {
		params.Set("search", query.SearchTerm)
	}
	if query.Organization != "" && query.Organization != domain.OrgFilterAll {
		params.Set("organization", query.Organization)
	}

	resp, err := c.do(ctx, "GET", "/results?"+params.Encode(), nil)
	if err != nil {
		return domain.ListPage{}, err
	}

	var dto listPageDTO
	if err := decodeJSON(resp, &dto); err != nil {
		return domain.ListPage{}, err
	}

	page := domain.ListPage{
		Items:      make([]domain.Record, 0, len(dto.Items)),
		TotalPages: dto.TotalPages,
		Page:       dto.Page,
		PerPage:    dto.PerPage,
	}
	if page.TotalPages < 1 {
		page.TotalPages = 1
	}
	for _, item := range dto.Items {
		page.Items = append(page.Items, item.toDomain())
	}
	return page, nil
}

// GetRecord fetches a single record by id.
func (c *Client) GetRecord(ctx context.Context, id string) (domain.Record, error) {
	resp, err := c.do(ctx, "GET", "/results/"+url.PathEscape(id), nil)
	if err != nil {
		return domain.Record{}, err
	}

	var dto recordDTO
	if err := decodeJSON(resp, &dto); err != nil {
		return domain.Record{}, err
	}
	return dto.toDomain(), nil
}

// updateRequestDTO is the wire shape of a partial record update.
// Nil fields are omitted so the server leaves them untouched.
type updateRequestDTO struct {
	Title        *string   `json:"title,omitempty"`
	Tags         *[]string `json:"tags,omitempty"`
	Organization *string   `json:"organization,omitempty"`
}

// UpdateRecord applies a partial update and returns the new state.
func (c *Client) UpdateRecord(ctx context.Context, id string, patch domain.RecordPatch) (domain.Record, error) {
	body := updateRequestDTO{
		Title:        patch.Title,
		Tags:         patch.Tags,
		Organization: patch.Organization,
	}

	resp, err := c.do(ctx, "PUT", "/results/"+url.PathEscape(id), body)
	if err != nil {
		return domain.Record{}, err
	}

	var dto recordDTO
	if err := decodeJSON(resp, &dto); err != nil {
		return domain.Record{}, err
	}
	if dto.ID == "" {
		// Older servers acknowledge without echoing the record.
		dto.ID = id
	}
	return dto.toDomain(), nil
}

// DeleteRecord removes a record. The server answers 204.
func (c *Client) DeleteRecord(ctx context.Context, id string) error {
	resp, err := c.do(ctx, "DELETE", "/results/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return apiError(resp)
	}
	return nil
}

// Download streams a generated artifact to w. format is "markdown" or
// "pdf".
func (c *Client) Download(ctx context.Context, id, format string, w io.Writer) error {
	if format != "markdown" && format != "pdf" {
		return &domain.ValidationError{Reason: fmt.Sprintf("unknown format %q: want markdown or pdf", format)}
	}

	resp, err := c.do(ctx, "GET", "/download/"+url.PathEscape(id)+"/"+format, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return apiError(resp)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return &domain.NetworkError{Err: err}
	}
	return nil
}
