// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

// Package webinargeek is the HTTP client for the WebinarGeek REST API.
package webinargeek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/logging"
)

const (
	// BaseURL is the base URL for the WebinarGeek API
	BaseURL = "https://app.webinargeek.com/api/v2"
	// DefaultClientTimeout is the default HTTP client timeout for API requests
	DefaultClientTimeout = 30 * time.Second
)

// apiTokenHeader carries the account API key on every request.
const apiTokenHeader = "Api-Token"

// Client represents a WebinarGeek API client
type Client struct {
	httpClient *http.Client
	config     Config
}

// Config holds the configuration for the WebinarGeek client
type Config struct {
	APIKey string
	// Optional: override base URL for testing
	BaseURL string
	// Optional: override timeout for HTTP requests
	Timeout time.Duration
}

// Ensure that Client implements the domain remote API interface
var _ domain.WebinarAPI = (*Client)(nil)

// NewClient creates a new WebinarGeek API client
func NewClient(config Config) *Client {
	// Set defaults if not provided
	if config.BaseURL == "" {
		config.BaseURL = BaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultClientTimeout
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		config: config,
	}
}

// doRequest performs a single authenticated HTTP request to the WebinarGeek
// API and returns the response body on success. Failures surface immediately:
// the client never retries, so a registration POST is sent at most once.
func (c *Client) doRequest(ctx context.Context, method, path string, body any) ([]byte, error) {
	var jsonBody []byte
	if body != nil {
		var err error
		jsonBody, err = json.Marshal(body)
		if err != nil {
			return nil, domain.NewInternalError("failed to marshal request body", err)
		}
	}

	req, err := c.createRequest(ctx, method, c.config.BaseURL+path, jsonBody)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "making WebinarGeek API request",
		"method", method,
		"path", path,
	)

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)
	if err != nil {
		slog.ErrorContext(ctx, "WebinarGeek API request failed",
			"method", method,
			"path", path,
			"duration", duration.String(),
			logging.ErrKey, err)
		return nil, domain.NewTransportError("request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewTransportError("failed to read response body", err)
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		slog.InfoContext(ctx, "WebinarGeek API request completed",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"duration", duration.String(),
		)
		slog.DebugContext(ctx, "WebinarGeek API response body",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"body", string(respBody),
		)
		return respBody, nil
	}

	slog.ErrorContext(ctx, "WebinarGeek API error response",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", duration.String(),
		"body", string(respBody),
		logging.ErrKey, fmt.Errorf("status: %d", resp.StatusCode))

	return nil, parseErrorResponse(resp.StatusCode, respBody)
}

// createRequest creates a new HTTP request with the given parameters
func (c *Client) createRequest(ctx context.Context, method, url string, jsonBody []byte) (*http.Request, error) {
	var bodyReader io.Reader
	if jsonBody != nil {
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, domain.NewInternalError("failed to create request", err)
	}
	req.Header.Set(apiTokenHeader, c.config.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// parseErrorResponse converts a non-success API response into a domain error
func parseErrorResponse(statusCode int, body []byte) error {
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	message := fmt.Sprintf("WebinarGeek API error (status %d)", statusCode)
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.Message != "":
			message = fmt.Sprintf("WebinarGeek API error (status %d): %s", statusCode, errResp.Message)
		case errResp.Error != "":
			message = fmt.Sprintf("WebinarGeek API error (status %d): %s", statusCode, errResp.Error)
		}
	}

	if statusCode == http.StatusNotFound {
		return domain.NewNotFoundError(message)
	}
	return domain.NewRemoteStatusError(message)
}
