package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sale-relay/internal/config"
)

//go:generate mockgen -source internal/client/revalidateClient.go -destination=internal/service/revalidate_mock_test.go -package=service

// Revalidator asks the front end to rebuild a cached page.
type Revalidator interface {
	Revalidate(ctx context.Context, path string) error
}

type revalidatorImpl struct {
	httpClient *http.Client
	endpoint   string
	secret     string
}

func NewRevalidator(frontendCfg *config.Frontend, timeout time.Duration) Revalidator {
	return &revalidatorImpl{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		endpoint: strings.TrimRight(frontendCfg.BaseURL, "/") + "/api/revalidate",
		secret:   frontendCfg.RevalidateSecret,
	}
}

func (r *revalidatorImpl) Revalidate(ctx context.Context, path string) error {
	q := url.Values{}
	q.Set("path", path)
	q.Set("secret", r.secret)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("revalidate %s: %w", path, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("revalidate %s: front end returned %d", path, resp.StatusCode)
	}
	return nil
}
