package frankfurter

// Package frankfurter contains the client for the Frankfurter exchange-rate
// API. This file is the transport layer: it only sends GET requests and
// returns raw response bodies, it knows nothing about currencies.

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"currency-bot/internal/infra/log"

	"go.uber.org/zap"
)

// DefaultBaseURL is the public Frankfurter API endpoint.
const DefaultBaseURL = "https://api.frankfurter.app"

const defaultMaxResponseSize = 10 * 1024 * 1024 // 10MB

// Client is the Frankfurter API client. One value is shared by every
// message handler; it holds no mutable state.
type Client struct {
	baseURL         string
	httpClient      *http.Client
	maxResponseSize int64
}

// NewClient returns a ready-to-use client. An empty baseURL selects
// DefaultBaseURL; a zero timeout selects 30 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:         baseURL,
		maxResponseSize: defaultMaxResponseSize,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DisableKeepAlives: false,
				MaxIdleConns:      10,
				IdleConnTimeout:   90 * time.Second,
			},
		},
	}
}

// doGET performs one GET against the API. Errors propagate to the caller
// unchanged in kind: there is no retry here by design, every message
// handler owns its own failure.
func (c *Client) doGET(ctx context.Context, endpoint string) ([]byte, error) {
	requestID := log.GenerateRequestID()
	startTime := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.LogRequest(requestID, http.MethodGet, endpoint, zap.String("url", req.URL.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.LogResponse(requestID, 0, time.Since(startTime).Milliseconds(), zap.String("endpoint", endpoint), zap.Error(err))
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxResponseSize))
	duration := time.Since(startTime).Milliseconds()
	if err != nil {
		log.LogResponse(requestID, resp.StatusCode, duration, zap.String("endpoint", endpoint), zap.Error(err))
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.LogResponse(requestID, resp.StatusCode, duration, zap.String("endpoint", endpoint), zap.String("error", "API error response received"))
		return nil, fmt.Errorf("API error (%d): %s", resp.StatusCode, string(body))
	}

	log.LogResponse(requestID, resp.StatusCode, duration, zap.String("endpoint", endpoint))

	return body, nil
}
