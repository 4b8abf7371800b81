package api

import (
	"context"

	"github.com/kadirkilicoglu/PrepAI/internal/domain/result"
)

func (c *Client) ListResults(ctx context.Context) ([]result.Result, error) {
	var out []result.Result
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/api/results")
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetResult(ctx context.Context, id string) (*result.Result, error) {
	var out result.Result
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/api/results/" + id)
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}
