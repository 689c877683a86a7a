package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"sale-relay/internal/config"
	"sale-relay/internal/logger"
	"sale-relay/internal/model"
)

var (
	ErrOrderLinkNotFound  = errors.New("order has no self link and no id")
	ErrUntrustedOrderLink = errors.New("order link does not point at the paypal api")
)

//go:generate mockgen -source internal/client/paypalClient.go -destination=internal/service/paypal_mock_test.go -package=service

type PaypalClient interface {
	GetAccessToken(ctx context.Context) (string, error)
	// GetOrder fetches the full order behind a storefront order stub.
	GetOrder(ctx context.Context, stub *model.PaypalOrder) (*model.PaypalOrder, error)
}

type paypalClientImpl struct {
	httpClient         *http.Client
	baseApiURL         *url.URL
	paypalClientID     string
	paypalClientSecret string
	logger             *zap.Logger
}

func NewPaypalClient(paypalCfg *config.Paypal, timeout time.Duration, logger *zap.Logger) (PaypalClient, error) {
	base, err := url.Parse(strings.TrimRight(paypalCfg.BaseApiURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse paypal base url: %w", err)
	}

	return &paypalClientImpl{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseApiURL:         base,
		paypalClientID:     paypalCfg.ClientID,
		paypalClientSecret: paypalCfg.ClientSecret,
		logger:             logger,
	}, nil
}

// GetAccessToken requests a fresh client-credentials token on every call.
func (c *paypalClientImpl) GetAccessToken(ctx context.Context) (string, error) {
	auth := base64.StdEncoding.EncodeToString(
		[]byte(c.paypalClientID + ":" + c.paypalClientSecret),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseApiURL.String()+"/v1/oauth2/token",
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("paypal token error %d: %s", resp.StatusCode, string(b))
	}

	var res struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("decode paypal token: %w", err)
	}
	if res.AccessToken == "" {
		return "", errors.New("paypal token response has no access_token")
	}

	return res.AccessToken, nil
}

func (c *paypalClientImpl) GetOrder(ctx context.Context, stub *model.PaypalOrder) (*model.PaypalOrder, error) {
	orderURL, err := c.orderURL(ctx, stub)
	if err != nil {
		return nil, err
	}

	accessToken, err := c.GetAccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("get paypal access token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, orderURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create order request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paypal order request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("paypal error %d: %s", resp.StatusCode, string(b))
	}

	var order model.PaypalOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("decode paypal order: %w", err)
	}

	return &order, nil
}

// orderURL picks the self link of the stub without touching stub.Links.
// The bearer token is only ever sent to the configured API host: a self link
// on another host is replaced by the id-based URL when the stub has an id.
func (c *paypalClientImpl) orderURL(ctx context.Context, stub *model.PaypalOrder) (string, error) {
	if stub == nil {
		return "", ErrOrderLinkNotFound
	}

	if link, ok := stub.Link(model.LinkRelSelf); ok {
		u, err := url.Parse(link.Href)
		if err != nil {
			return "", fmt.Errorf("parse order link: %w", err)
		}
		if u.Scheme == c.baseApiURL.Scheme && u.Host == c.baseApiURL.Host {
			return u.String(), nil
		}
		if stub.ID == "" {
			return "", fmt.Errorf("%w: %s", ErrUntrustedOrderLink, u.Host)
		}
		logger.FromContext(ctx, c.logger).Warn("order self link is not on the paypal api host, using order id",
			zap.String("link_host", u.Host),
			zap.String("order_id", stub.ID),
		)
	}

	if stub.ID == "" {
		return "", ErrOrderLinkNotFound
	}

	return fmt.Sprintf("%s/v2/checkout/orders/%s", c.baseApiURL.String(), url.PathEscape(stub.ID)), nil
}
