// Package gpn provides the client for the Global Philatelic Network
// client-management API and the address lookup operations exposed over MCP.
package gpn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/GlobalPhilatelicNetwork/GoogleSheet-Function-GetAdress/internal/address"
	"github.com/GlobalPhilatelicNetwork/GoogleSheet-Function-GetAdress/metrics"
)

// Client provides access to the GPN client-management API
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		client.logger = l
	}
}

// NewClient creates a new GPN API client
func NewClient(config *Config, opts ...ClientOption) *Client {
	c := &Client{
		config:     config,
		httpClient: newHTTPClient(config.Timeout),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetClientAddress fetches the address list for a client and reduces it to a
// single string: the plain-text rendering of the selected address, or one of
// its fields when fieldFilter is set. typeFilter picks a non-default address
// by type; both filters fall back to the default address as described in the
// address package. Each call issues exactly one upstream request.
func (c *Client) GetClientAddress(ctx context.Context, clientID int64, typeFilter, fieldFilter string) (string, error) {
	set, err := c.FetchAddresses(ctx, clientID)
	if err != nil {
		return "", err
	}

	target := address.Select(set, typeFilter)
	return address.Resolve(target, address.DefaultOf(set), fieldFilter)
}

// FetchAddresses retrieves the raw address set for a client.
func (c *Client) FetchAddresses(ctx context.Context, clientID int64) (address.Set, error) {
	if c.config == nil || !c.config.HasCredentials() {
		return nil, &MissingParameterError{Name: "credentials"}
	}
	if clientID == 0 {
		return nil, &MissingParameterError{Name: "client_id"}
	}

	reqURL := fmt.Sprintf("%s/clients/%d/addresses", c.config.BaseURL, clientID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	req.SetBasicAuth(c.config.Username, c.config.Password)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordAPICall("get_addresses", time.Since(start).Seconds(), false, "network")
		c.logger.Warn("GPN API request failed", "client_id", clientID, "error", err)
		return nil, &NetworkError{Err: err}
	}

	body, err := readAndClose(resp)
	if err != nil {
		metrics.RecordAPICall("get_addresses", time.Since(start).Seconds(), false, "network")
		return nil, &NetworkError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		metrics.RecordAPICall("get_addresses", time.Since(start).Seconds(), false, fmt.Sprintf("http_%d", resp.StatusCode))
		return nil, &APIError{Status: resp.StatusCode, Body: truncate(string(body), 200)}
	}

	var envelope address.Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		metrics.RecordAPICall("get_addresses", time.Since(start).Seconds(), false, "parse")
		return nil, &InvalidResponseError{Err: err}
	}

	if len(envelope.Data) == 0 {
		metrics.RecordAPICall("get_addresses", time.Since(start).Seconds(), true, "")
		return nil, &NotFoundError{ClientID: clientID}
	}

	metrics.RecordAPICall("get_addresses", time.Since(start).Seconds(), true, "")
	c.logger.Debug("Fetched addresses", "client_id", clientID, "count", len(envelope.Data))
	return address.Set(envelope.Data), nil
}

// readAndClose reads the response body and closes it
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// newHTTPClient creates an HTTP client with optimized transport settings
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		IdleConnTimeout:       120 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		DisableCompression:    false,
		ForceAttemptHTTP2:     true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
