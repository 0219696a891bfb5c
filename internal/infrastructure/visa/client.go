// Package visa implements the visa gateway over the visa service's HTTP API.
package visa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	appvisa "github.com/travelease/callcenter/internal/application/visa"
	"github.com/travelease/callcenter/internal/shared/logger"
)

const (
	defaultTimeout = 5 * time.Second

	// maxResponseBytes bounds how much of a response body is read.
	maxResponseBytes = 1 << 20
)

// Client talks to the visa service. Every request is bounded by the
// configured timeout and is never retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Interface
}

func NewClient(baseURL string, timeout time.Duration, log logger.Interface) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log,
	}
}

func (c *Client) SubmitApplication(ctx context.Context, app appvisa.Application) (*appvisa.Decision, error) {
	payload, err := json.Marshal(app)
	if err != nil {
		return nil, fmt.Errorf("encode application: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, "/apply", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var decision appvisa.Decision
	if err := json.Unmarshal(body, &decision); err != nil {
		return nil, fmt.Errorf("%w: decode decision: %v", appvisa.ErrGatewayUnavailable, err)
	}

	c.logger.Debugw("visa application answered", "user_id", app.UserID)
	return &decision, nil
}

func (c *Client) ListApplications(ctx context.Context, userID string) (json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, "/my-applications/"+url.PathEscape(userID), nil)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: response is not JSON", appvisa.ErrGatewayUnavailable)
	}
	return json.RawMessage(body), nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appvisa.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", appvisa.ErrGatewayUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warnw("visa service returned error status",
			"method", method,
			"path", path,
			"status", resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status code: %d", appvisa.ErrGatewayUnavailable, resp.StatusCode)
	}

	return data, nil
}
