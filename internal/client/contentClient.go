package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sale-relay/internal/config"
	"sale-relay/internal/model"
)

//go:generate mockgen -source internal/client/contentClient.go -destination=internal/service/content_mock_test.go -package=service

type ContentClient interface {
	// MarkSold flags a fossil as sold and returns it with its category populated.
	MarkSold(ctx context.Context, id string) (*model.Fossil, error)
}

// RequestOption adjusts an outgoing CMS request before it is sent.
type RequestOption func(req *http.Request)

func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

func WithQuery(key, value string) RequestOption {
	return func(req *http.Request) {
		q := req.URL.Query()
		q.Set(key, value)
		req.URL.RawQuery = q.Encode()
	}
}

type contentClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	token      string
}

func NewContentClient(contentCfg *config.Content, timeout time.Duration) ContentClient {
	return &contentClientImpl{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseApiURL: strings.TrimRight(contentCfg.BaseApiURL, "/"),
		token:      contentCfg.Token,
	}
}

// do sends an authenticated request to <base>/api<path>. Options run after the
// default headers are set, so callers may add headers but not drop the token.
func (c *contentClientImpl) do(ctx context.Context, method, path string, body io.Reader, opts ...RequestOption) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseApiURL+"/api"+path, body)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	for _, opt := range opts {
		opt(req)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	return resp, nil
}

func (c *contentClientImpl) MarkSold(ctx context.Context, id string) (*model.Fossil, error) {
	sold := true
	payload, err := json.Marshal(model.FossilUpdate{
		Data: model.FossilUpdateData{Sold: &sold},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal fossil update: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPut, "/fossils/"+url.PathEscape(id), bytes.NewReader(payload),
		WithQuery("populate", "category"),
	)
	if err != nil {
		return nil, fmt.Errorf("update fossil %s: %w", id, err)
	}
	defer resp.Body.Close()

	var result model.FossilResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&result)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decodeErr == nil && result.Error != nil {
			return nil, fmt.Errorf("content api error %d updating fossil %s: %s", resp.StatusCode, id, result.Error.Message)
		}
		return nil, fmt.Errorf("content api error %d updating fossil %s", resp.StatusCode, id)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode fossil %s: %w", id, decodeErr)
	}
	if result.Data == nil {
		return nil, errors.New("content api returned no data for fossil " + id)
	}

	return &result.Data.Attributes, nil
}
