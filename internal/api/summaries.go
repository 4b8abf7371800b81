package api

import (
	"context"
	"io"

	"github.com/kadirkilicoglu/PrepAI/internal/domain/summary"
)

func (c *Client) ListSummaries(ctx context.Context) ([]summary.Summary, error) {
	var out []summary.Summary
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/api/summaries")
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetSummary(ctx context.Context, id string) (*summary.Summary, error) {
	var out summary.Summary
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/api/summaries/" + id)
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSummary(ctx context.Context, id string) error {
	resp, err := c.http.R().SetContext(ctx).Delete("/api/summaries/" + id)
	if err != nil {
		return err
	}
	return responseError(resp)
}

// GenerateSummary uploads a PDF and returns the stored summary. folderID may
// be empty for root.
func (c *Client) GenerateSummary(ctx context.Context, pdf io.Reader, filename, folderID string) (*summary.Summary, error) {
	req := c.http.R().
		SetContext(ctx).
		SetFileReader("pdf", filename, pdf)
	if folderID != "" {
		req.SetFormData(map[string]string{"folder_id": folderID})
	}

	var out summary.Summary
	resp, err := req.SetResult(&out).Post("/api/summarize")
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}
