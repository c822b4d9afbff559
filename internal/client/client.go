// Package client implements the unified request layer for the lesson
// admin backend plus one service per REST resource. Every call funnels
// through Client.Do: default headers, authorization injection (with an
// allowlist for the unauthenticated endpoints), per-call timeout, HTTP
// status checking, envelope decoding and the business-code check. Every
// failure surfaces as *api.Error so callers have a single error idiom.
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

	"github.com/google/uuid"
	"github.com/gookit/goutil"

	"github.com/sgzs6721/lessonctl/internal/credentials"
	"github.com/sgzs6721/lessonctl/internal/session"
	"github.com/sgzs6721/lessonctl/internal/shared/logger"
	"github.com/sgzs6721/lessonctl/pkg/api"
)

// DefaultTimeout bounds every call unless overridden via WithTimeout.
const DefaultTimeout = 30 * time.Second

// DefaultCacheTTL is the course list cache window unless overridden via
// WithCacheTTL.
const DefaultCacheTTL = 30 * time.Second

// apiPrefix is prepended to every resource path.
const apiPrefix = "/lesson/api"

// noAuthSuffixes lists the endpoints that must never carry an
// Authorization header.
var noAuthSuffixes = []string{"/auth/login", "/auth/register"}

// Client is the API client for the lesson admin backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
	creds      credentials.Store
	bus        *session.Bus
	timeout    time.Duration
	now        func() time.Time

	courseCache *listCache
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) { c.logger = log }
}

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithSessionBus attaches a session bus; the 401 handler publishes the
// expiry event on it.
func WithSessionBus(bus *session.Bus) Option {
	return func(c *Client) { c.bus = bus }
}

// WithCacheTTL sets the course list cache window. Zero disables caching.
func WithCacheTTL(d time.Duration) Option {
	return func(c *Client) { c.courseCache = newListCache(d, c.now) }
}

// New creates a client for the given base URL. The credential store is
// required: it is read on every authorized call and cleared on 401.
func New(baseURL string, creds credentials.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger.NewDevelopment("client"),
		creds:      creds,
		timeout:    DefaultTimeout,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.courseCache == nil {
		c.courseCache = newListCache(DefaultCacheTTL, c.now)
	}
	return c
}

// Do performs one request and returns the raw envelope. Query values may
// be nil; a non-nil body is JSON-encoded. The returned error is always a
// *api.Error: HTTP status code for transport failures, the envelope code
// for business failures, api.CodeTimeout / api.CodeNetwork for failures
// that never produced a response.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (*api.RawEnvelope, error) {
	u := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, api.NewError(api.CodeNetwork, fmt.Sprintf("failed to encode request body: %v", err))
		}
		reader = bytes.NewReader(data)
	}

	tctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(tctx, method, u, reader)
	if err != nil {
		return nil, api.NewError(api.CodeNetwork, fmt.Sprintf("failed to create request: %v", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	c.authorize(req, path)

	start := c.now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, api.NewError(api.CodeTimeout, fmt.Sprintf("request timed out after %s", c.timeout))
		}
		return nil, api.NewError(api.CodeNetwork, fmt.Sprintf("request failed: %v", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, api.NewError(api.CodeNetwork, fmt.Sprintf("failed to read response body: %v", err))
	}

	c.logger.DebugContext(ctx, "api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", c.now().Sub(start),
	)

	if err := c.checkStatus(resp, raw); err != nil {
		return nil, err
	}

	var env api.RawEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, api.NewError(api.CodeNetwork, fmt.Sprintf("failed to decode response envelope: %v", err))
	}

	if !env.OK() {
		return nil, &api.Error{Code: env.Code, Message: env.Message, Data: env.Data}
	}

	return &env, nil
}

// authorize attaches the stored token unless the path is one of the
// unauthenticated endpoints. A missing token is not an error here; the
// server answers unauthenticated calls with 401 and that is handled in
// checkStatus. Nothing in this method can fail the request.
func (c *Client) authorize(req *http.Request, path string) {
	for _, suffix := range noAuthSuffixes {
		if strings.HasSuffix(path, suffix) {
			return
		}
	}
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", token)
	}
}

// checkStatus turns a non-2xx response into a *api.Error. On 401 it also
// clears the stored credentials and publishes the session-expired event,
// synchronously, before the error is returned.
func (c *Client) checkStatus(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	message := fmt.Sprintf("request failed: %d", resp.StatusCode)
	var data json.RawMessage
	var errBody struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &errBody) == nil {
		data = body
		if errBody.Message != "" {
			message = errBody.Message
		}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.creds.Clear(); err != nil {
			c.logger.Warn("failed to clear credentials after 401", "error", err)
		}
		if c.bus != nil {
			c.bus.PublishExpired(message)
		}
	}

	if retry := resp.Header.Get("Retry-After"); retry != "" {
		if seconds, err := goutil.ToInt(retry); err == nil {
			c.logger.Warn("server asked to retry later",
				"status", resp.StatusCode,
				"retry_after_seconds", seconds,
			)
		}
	}

	return &api.Error{Code: resp.StatusCode, Message: message, Data: data}
}

// request performs a call and decodes the envelope's data field into T.
// A null or absent data field yields T's zero value.
func request[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var out T
	env, err := c.Do(ctx, method, path, query, body)
	if err != nil {
		return out, err
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, api.NewError(api.CodeNetwork, fmt.Sprintf("failed to decode response data: %v", err))
	}
	return out, nil
}

// exec performs a call whose data payload the caller does not need.
func (c *Client) exec(ctx context.Context, method, path string, query url.Values, body any) error {
	_, err := c.Do(ctx, method, path, query, body)
	return err
}
