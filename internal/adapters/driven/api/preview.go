package api

import (
	"context"
	"net/url"
)

// FetchPreview fetches the rendered HTML preview of one record.
func (c *Client) FetchPreview(ctx context.Context, id string) (string, error) {
	resp, err := c.do(ctx, "GET", "/preview/"+url.PathEscape(id), nil)
	if err != nil {
		return "", err
	}

	var dto struct {
		HTML string `json:"html"`
	}
	if err := decodeJSON(resp, &dto); err != nil {
		return "", err
	}
	return dto.HTML, nil
}
