package api

import (
	"context"

	"github.com/kadirkilicoglu/PrepAI/internal/domain/folder"
)

func (c *Client) ListFolders(ctx context.Context) ([]folder.Folder, error) {
	var out []folder.Folder
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/api/folders")
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateFolder(ctx context.Context, name string) (*folder.Folder, error) {
	var out folder.Folder
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"name": name}).
		SetResult(&out).
		Post("/api/folders")
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteFolder(ctx context.Context, id string) error {
	resp, err := c.http.R().SetContext(ctx).Delete("/api/folders/" + id)
	if err != nil {
		return err
	}
	return responseError(resp)
}
