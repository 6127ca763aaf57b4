// Package erpapi is the REST client of the external ERP backend, the system of record for
// accounts, transactions, salaries and invoices.
package erpapi

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

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/flourmill/mill_ledger/internal/core/ports/repositories"
	"github.com/flourmill/mill_ledger/internal/models"
	"github.com/flourmill/mill_ledger/internal/platform/authctx"
	"github.com/flourmill/mill_ledger/internal/platform/metrics"
	"golang.org/x/oauth2"
)

const (
	defaultTimeout     = 15 * time.Second
	defaultPageSize    = 100
	defaultConcurrency = 4
	maxErrorBody       = 64 << 10
)

// Client talks to the ERP backend. It holds no per-user state: the bearer token of every
// call comes from the request context.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	pageSize    int
	concurrency int
}

// Ensure Client implements the backend facade
var _ repositories.ERPBackendFacade = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithPageSize sets the page size used when walking every page of a listing.
func WithPageSize(size int) Option {
	return func(c *Client) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// WithConcurrency bounds how many pages are fetched at once.
func WithConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: timeout},
		pageSize:    defaultPageSize,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// call describes one backend request.
type call struct {
	operation string
	method    string
	path      string
	query     url.Values
	body      any
	public    bool
}

// do performs a request and decodes the JSON response into out (if non-nil).
// Authenticated calls fail with ErrUnauthenticated before any I/O when the context
// carries no token or an expired one. There is no retry.
func (c *Client) do(ctx context.Context, rc call, out any) (err error) {
	outcome := metrics.OutcomeOK
	defer func() {
		metrics.ObserveBackendCall(rc.operation, outcome)
	}()

	httpClient := c.httpClient
	if !rc.public {
		token := authctx.TokenFromContext(ctx)
		if token == nil || !token.Valid() {
			outcome = metrics.OutcomeUnauthenticated
			return fmt.Errorf("%w: no valid bearer token for %s", apperrors.ErrUnauthenticated, rc.operation)
		}
		// oauth2 attaches "Authorization: Bearer <token>" to every request made by this client.
		httpClient = oauth2.NewClient(context.WithValue(ctx, oauth2.HTTPClient, c.httpClient), oauth2.StaticTokenSource(token))
		httpClient.Timeout = c.httpClient.Timeout
	}

	endpoint := c.baseURL + rc.path
	if len(rc.query) > 0 {
		endpoint += "?" + rc.query.Encode()
	}

	var reqBody io.Reader
	if rc.body != nil {
		payload, err := json.Marshal(rc.body)
		if err != nil {
			return fmt.Errorf("encoding %s request: %w", rc.operation, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, rc.method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("building %s request: %w", rc.operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if rc.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		outcome = metrics.OutcomeNetwork
		return fmt.Errorf("%w: %s %s: %w", apperrors.ErrNetwork, rc.method, rc.path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		outcome = metrics.OutcomeUnauthenticated
		return fmt.Errorf("%w: %s", apperrors.ErrUnauthenticated, errorMessage(resp))
	}
	if resp.StatusCode >= http.StatusBadRequest {
		outcome = metrics.OutcomeServer
		return &apperrors.ServerError{StatusCode: resp.StatusCode, Message: errorMessage(resp)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		outcome = metrics.OutcomeServer
		return &apperrors.ServerError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("malformed %s response: %v", rc.operation, err)}
	}
	return nil
}

// errorMessage extracts the backend's message from an error response.
func errorMessage(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return http.StatusText(resp.StatusCode)
	}
	var body models.ErrorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return strings.TrimSpace(string(raw))
}
