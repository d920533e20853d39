// Package api is the single point of contact with the Dreamcatcher
// backend: an authenticated JSON transport plus one thin typed wrapper per
// resource. The Client owns the bearer token; resource wrappers translate
// method calls into requests and decode responses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dreamcatcher/dreamcatcher-go/internal/client/credstore"
	"github.com/dreamcatcher/dreamcatcher-go/internal/common"
	"github.com/dreamcatcher/dreamcatcher-go/internal/logging"
)

// basePath prefixes every resource path.
const basePath = "/api"

// Client issues authenticated REST calls against a fixed base URL.
//
// The bearer token is the only shared state. It is read once per request
// under a read lock, so two in-flight requests built around a SetToken may
// carry different tokens; re-authentication is idempotent and this is
// accepted.
//
// No timeout is configured: a hung request blocks only the awaiting
// goroutine. Callers cancel via context when they need a bound.
type Client struct {
	baseURL string
	httpc   *http.Client
	store   credstore.Store
	log     logging.Logger

	mu    sync.RWMutex
	token string

	loadOnce sync.Once
}

// New creates a Client for the given base URL (without the /api suffix).
// store may be nil, in which case the token lives only in memory.
func New(baseURL string, store credstore.Store, log logging.Logger) *Client {
	if log == nil {
		log = logging.NewDiscardLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		store:   store,
		log:     log,
	}
}

type callOptions struct {
	skipAuth bool
	query    url.Values
}

// Option adjusts a single call.
type Option func(*callOptions)

// SkipAuth suppresses the Authorization header. Only register and login
// use it, since no token exists yet.
func SkipAuth() Option {
	return func(o *callOptions) { o.skipAuth = true }
}

// WithQuery appends a query string to the request path.
func WithQuery(q url.Values) Option {
	return func(o *callOptions) { o.query = q }
}

// loadPersistedToken restores a previously persisted token once, before
// the first request. Read failures mean "no token"; sign-in must never be
// blocked by the store.
func (c *Client) loadPersistedToken(ctx context.Context) {
	c.loadOnce.Do(func() {
		if c.store == nil {
			return
		}
		value, err := c.store.Get(ctx, common.TokenStoreKey)
		if err != nil {
			if !errors.Is(err, common.ErrNotFound) {
				c.log.Warn(ctx, "failed to load token from credential store", "error", err)
			}
			return
		}
		c.mu.Lock()
		c.token = string(value)
		c.mu.Unlock()
	})
}

// SetToken replaces the held token and persists it best effort.
func (c *Client) SetToken(ctx context.Context, token string) {
	// An explicit set supersedes whatever the store held.
	c.loadOnce.Do(func() {})

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	if c.store == nil {
		return
	}
	if err := c.store.Set(ctx, common.TokenStoreKey, []byte(token)); err != nil {
		c.log.Warn(ctx, "failed to persist token", "error", err)
	}
}

// ClearToken drops the held token and deletes the persisted value best
// effort. The in-memory state always clears, even when the delete fails.
func (c *Client) ClearToken(ctx context.Context) {
	c.loadOnce.Do(func() {})

	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()

	if c.store == nil {
		return
	}
	if err := c.store.Delete(ctx, common.TokenStoreKey); err != nil {
		c.log.Warn(ctx, "failed to delete persisted token", "error", err)
	}
}

// Token returns the currently held token, or "" when anonymous.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// IsAuthenticated reports whether a token is held.
func (c *Client) IsAuthenticated() bool {
	return c.Token() != ""
}

func (c *Client) Get(ctx context.Context, path string, out any, opts ...Option) error {
	return c.do(ctx, http.MethodGet, path, nil, out, opts...)
}

func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...Option) error {
	return c.do(ctx, http.MethodPost, path, body, out, opts...)
}

func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...Option) error {
	return c.do(ctx, http.MethodPut, path, body, out, opts...)
}

func (c *Client) Delete(ctx context.Context, path string, out any, opts ...Option) error {
	return c.do(ctx, http.MethodDelete, path, nil, out, opts...)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, opts ...Option) error {
	c.loadPersistedToken(ctx)

	var options callOptions
	for _, opt := range opts {
		opt(&options)
	}

	endpoint := c.baseURL + basePath + path
	if len(options.query) > 0 {
		endpoint += "?" + options.query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if !options.skipAuth {
		if token := c.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// decodeError extracts the backend's {"detail": ...} message. A body that
// is not valid JSON degrades to a generic message; a JSON body without a
// detail falls through to "HTTP <status>" via Error.Error.
func decodeError(resp *http.Response) error {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return &Error{Status: resp.StatusCode, Detail: genericDetail}
	}
	return &Error{Status: resp.StatusCode, Detail: payload.Detail}
}
