package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/clipworks/clipctl/internal/core/domain"
	"github.com/clipworks/clipctl/internal/logger"
)

// clipRequestDTO is the wire shape of a clip submission.
type clipRequestDTO struct {
	Input        string   `json:"input"`
	Organization string   `json:"organization,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// jobResultDTO is the wire shape of a clip outcome.
type jobResultDTO struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	Status       string `json:"status"`
	Preview      string `json:"preview"`
	Error        string `json:"error"`
	MarkdownPath string `json:"markdown_path"`
	PDFPath      string `json:"pdf_path"`
}

// SubmitClip submits a URL or sitemap for clipping. The call blocks
// until the server reports the job's outcome; there is no mid-flight
// cancellation of an accepted job beyond the request context.
func (c *Client) SubmitClip(ctx context.Context, req domain.ClipRequest) (domain.JobResult, error) {
	if req.Input == "" {
		return domain.JobResult{}, &domain.ValidationError{Reason: "input is required"}
	}

	body := clipRequestDTO{
		Input:        req.Input,
		Organization: req.Organization,
		Tags:         req.Tags,
	}

	resp, err := c.do(ctx, "POST", "/clip", body)
	if err != nil {
		return domain.JobResult{}, err
	}

	var dto jobResultDTO
	if err := decodeJSON(resp, &dto); err != nil {
		return domain.JobResult{}, err
	}
	return domain.JobResult{
		ID:           dto.ID,
		Title:        dto.Title,
		URL:          dto.URL,
		Status:       dto.Status,
		Preview:      dto.Preview,
		Error:        dto.Error,
		MarkdownPath: dto.MarkdownPath,
		PDFPath:      dto.PDFPath,
	}, nil
}

// UploadFile uploads a local file as multipart form data and returns
// the server-side filename to reference in a following clip request.
func (c *Client) UploadFile(ctx context.Context, filename string, r io.Reader) (string, error) {
	if filename == "" {
		return "", &domain.ValidationError{Reason: "filename is required"}
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("building multipart body: %w", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", &domain.NetworkError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/upload_file", &buf)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	c.setCommonHeaders(req)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	logger.Debug("POST /upload_file (%s)", filename)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &domain.NetworkError{Err: err}
	}

	var dto struct {
		Filename string `json:"filename"`
	}
	if err := decodeJSON(resp, &dto); err != nil {
		return "", err
	}
	return dto.Filename, nil
}
