// internal/api/client.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// ErrUnauthorized is returned for any 401 so callers can force a logout.
var ErrUnauthorized = errors.New("unauthorized")

// APIError carries the backend-supplied message for a failed request, so
// callers can surface it verbatim.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Detail, e.Status)
}

// TokenSource yields the current bearer token. An empty token means no
// session; the request goes out unauthenticated.
type TokenSource interface {
	Token() (string, error)
}

// Client wraps the PrepAI REST backend. Every request under the /api prefix
// automatically carries the bearer token from the TokenSource. There is no
// retry, no backoff and no client-side timeout beyond the transport default.
type Client struct {
	http *resty.Client
}

const apiPrefix = "/api/"

func New(baseURL string, tokens TokenSource) *Client {
	hc := resty.New().SetBaseURL(baseURL)

	hc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if tokens == nil || !strings.HasPrefix(req.URL, apiPrefix) {
			return nil
		}
		token, err := tokens.Token()
		if err != nil {
			return fmt.Errorf("read session token: %w", err)
		}
		if token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	})

	return &Client{http: hc}
}

// responseError maps a non-2xx response to an error. 401 becomes
// ErrUnauthorized; anything else surfaces the backend's "detail" message,
// with a generic fallback when the body carries none.
func responseError(resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	var body struct {
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(resp.Body(), &body)
	detail := body.Detail
	if detail == "" {
		detail = "request failed"
	}
	return &APIError{Status: resp.StatusCode(), Detail: detail}
}
