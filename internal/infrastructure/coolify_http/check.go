package coolify_http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/davarch/coolify-badge/internal/domain"
)

const versionPath = "/api/v1/version"

// Check asks Coolify for its version, which requires a valid token.
// Transport errors and 5xx answers are retried with exponential backoff
// for at most maxElapsed; a rejected token fails immediately.
func (c *Client) Check(ctx context.Context, maxElapsed time.Duration) (string, error) {
	var version string

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseUrl+versionPath, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("%w: %v", domain.ErrUnreachable, err))
		}
		req.Header.Set("Authorization", "Bearer "+c.token)

		resp, err := c.hc.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrUnreachable, err)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode == http.StatusUnauthorized {
			return backoff.Permanent(domain.ErrUnauthorized)
		}

		if resp.StatusCode >= 500 {
			return fmt.Errorf("%w: coolify %s", domain.ErrUnreachable, resp.Status)
		}

		if resp.StatusCode >= 300 {
			return backoff.Permanent(fmt.Errorf("coolify %s", resp.Status))
		}

		b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		if err != nil {
			return err
		}
		version = strings.TrimSpace(string(b))
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 300 * time.Millisecond
	bo.MaxInterval = 2 * time.Second
	bo.MaxElapsedTime = maxElapsed

	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return "", err
	}
	return version, nil
}
