// internal/report/fonts.go
package report

import (
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// FontSource fetches a Unicode TTF once and serves it from memory for the
// rest of the process. Both the bytes and any fetch error are cached: a
// failed fetch is not retried, callers degrade to a built-in font instead.
type FontSource struct {
	url    string
	client *http.Client

	once sync.Once
	data []byte
	err  error
}

func NewFontSource(url string) *FontSource {
	return &FontSource{
		url: url,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Bytes returns the font file, fetching it on first use.
func (f *FontSource) Bytes() ([]byte, error) {
	f.once.Do(func() {
		f.data, f.err = f.fetch()
	})
	return f.data, f.err
}

func (f *FontSource) fetch() ([]byte, error) {
	resp, err := f.client.Get(f.url)
	if err != nil {
		return nil, fmt.Errorf("fetch font: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch font: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch font: %w", err)
	}
	return data, nil
}
