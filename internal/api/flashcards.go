package api

import (
	"context"
	"io"

	"github.com/kadirkilicoglu/PrepAI/internal/domain/flashcard"
)

func (c *Client) ListFlashcardSets(ctx context.Context) ([]flashcard.Set, error) {
	var out []flashcard.Set
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/api/flashcards")
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetFlashcardSet(ctx context.Context, id string) (*flashcard.Set, error) {
	var out flashcard.Set
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/api/flashcards/" + id)
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteFlashcardSet(ctx context.Context, id string) error {
	resp, err := c.http.R().SetContext(ctx).Delete("/api/flashcards/" + id)
	if err != nil {
		return err
	}
	return responseError(resp)
}

// GenerateFlashcards uploads a PDF and returns the generated set. folderID
// may be empty for root.
func (c *Client) GenerateFlashcards(ctx context.Context, pdf io.Reader, filename, folderID string) (*flashcard.Set, error) {
	req := c.http.R().
		SetContext(ctx).
		SetFileReader("pdf", filename, pdf)
	if folderID != "" {
		req.SetFormData(map[string]string{"folder_id": folderID})
	}

	var out flashcard.Set
	resp, err := req.SetResult(&out).Post("/api/flashcards/create")
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}
