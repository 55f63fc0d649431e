// ABOUTME: HTTP fetcher for the external catalog resource with size and time bounds
// ABOUTME: Returns the response body for 200s and a typed error for anything else

package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxResponseSize caps catalog downloads at 10MB.
const MaxResponseSize = 10 * 1024 * 1024

// ErrBadStatus is returned when the resource responds with a non-200 status.
var ErrBadStatus = errors.New("unexpected status code")

var httpClient = &http.Client{
	Timeout: 30 * time.Second,
}

// Fetch retrieves a URL and returns its body.
// Returns an error wrapping ErrBadStatus for non-200 responses and a plain
// error for transport failures; both are treated as load failures by callers.
func Fetch(ctx context.Context, urlStr string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "gamedex/1.0 (game catalog)")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	limitedReader := io.LimitReader(resp.Body, MaxResponseSize+1)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if int64(len(body)) > MaxResponseSize {
		return nil, fmt.Errorf("response too large (exceeds %d bytes)", MaxResponseSize)
	}

	return body, nil
}
