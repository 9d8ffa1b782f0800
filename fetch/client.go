/*
Package fetch retrieves the published sheet exports over HTTP.

PURPOSE:
  The aggregator needs six CSV documents per lookup. This package issues
  the GETs concurrently and hands back one Response per source, in source
  order, without reading any body. Bodies are read later, and again
  concurrently, by ReadAll.

TWO BARRIERS:
  1. FetchAll: all GETs run concurrently; FetchAll returns only once
     every request has settled. Statuses are NOT inspected here.
  2. ReadAll: all bodies are read concurrently; returns once every body
     has been read.

  The caller inspects statuses between the two barriers, in source
  order, so the reported failure is deterministic: the first failing
  source wins even if a later one failed worse.

CACHE BYPASS:
  Every FetchAll call generates one fresh token (a UUID) and appends it
  to all URLs as the "_t" query parameter, plus no-cache headers.
  Published sheets are served through a CDN that otherwise returns stale
  exports for several minutes.

NO RETRY:
  A transport failure on any source fails the whole call. There is no
  retry or backoff; the caller decides what to do.

SEE ALSO:
  - employee/service.go: The only caller
  - metrics.go: Prometheus instrumentation
*/
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// TokenParam is the query parameter carrying the cache-defeating token.
const TokenParam = "_t"

var errBodyClosed = errors.New("body already closed")

// =============================================================================
// SOURCE / RESPONSE
// =============================================================================

// Source is one published export.
type Source struct {
	Name string
	URL  string
}

// Response is the settled result of one GET. The body is not read until
// Text is called.
type Response struct {
	Source     Source
	StatusCode int

	mu   sync.Mutex
	body io.ReadCloser
	text *string
}

// OK reports whether the status is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Text reads and closes the body. Subsequent calls return the same text.
func (r *Response) Text() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.text != nil {
		return *r.text, nil
	}
	if r.body == nil {
		return "", &Error{Source: r.Source.Name, Err: errBodyClosed}
	}

	defer func() {
		r.body.Close()
		r.body = nil
	}()

	b, err := io.ReadAll(r.body)
	if err != nil {
		return "", &Error{Source: r.Source.Name, Err: err}
	}
	s := string(b)
	r.text = &s
	return s, nil
}

// Close releases the body without reading it.
func (r *Response) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.body == nil {
		return nil
	}
	err := r.body.Close()
	r.body = nil
	return err
}

// Error is a transport failure on one source.
type Error struct {
	Source string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Source, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CloseAll closes every non-nil response.
func CloseAll(responses []*Response) {
	for _, r := range responses {
		if r != nil {
			r.Close()
		}
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client performs concurrent cache-bypassing GETs.
type Client struct {
	http     *http.Client
	logger   *zap.Logger
	metrics  *Metrics
	newToken func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout. Zero means none.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithTokenFunc overrides the cache-defeating token generator.
func WithTokenFunc(f func() string) Option {
	return func(c *Client) { c.newToken = f }
}

// NewClient creates a Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:     &http.Client{},
		logger:   zap.NewNop(),
		newToken: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchAll issues one GET per source concurrently and waits for all of
// them to settle. Responses are returned in source order.
//
// If any request fails at the transport level, every response that did
// arrive is closed and the first failure in source order is returned.
// Non-2xx statuses are not errors here.
func (c *Client) FetchAll(ctx context.Context, sources []Source) ([]*Response, error) {
	token := c.newToken()
	responses := make([]*Response, len(sources))
	errs := make([]error, len(sources))

	var g errgroup.Group
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			resp, err := c.get(ctx, src, token)
			responses[i], errs[i] = resp, err
			return err
		})
	}

	if g.Wait() != nil {
		CloseAll(responses)
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
	}
	return responses, nil
}

func (c *Client) get(ctx context.Context, src Source, token string) (*Response, error) {
	u, err := withToken(src.URL, token)
	if err != nil {
		return nil, &Error{Source: src.Name, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &Error{Source: src.Name, Err: err}
	}
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")

	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		c.metrics.observe(src.Name, "error", elapsed)
		c.logger.Warn("source fetch failed",
			zap.String("source", src.Name),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return nil, &Error{Source: src.Name, Err: err}
	}

	c.metrics.observe(src.Name, strconv.Itoa(resp.StatusCode), elapsed)
	c.logger.Debug("source fetched",
		zap.String("source", src.Name),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", elapsed))

	return &Response{Source: src, StatusCode: resp.StatusCode, body: resp.Body}, nil
}

// ReadAll reads every body concurrently and returns the texts in
// response order. All bodies are closed on return.
func ReadAll(ctx context.Context, responses []*Response) ([]string, error) {
	defer CloseAll(responses)

	texts := make([]string, len(responses))
	g, ctx := errgroup.WithContext(ctx)
	for i, r := range responses {
		i, r := i, r
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := r.Text()
			if err != nil {
				return err
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return texts, nil
}

// withToken appends the token to raw's query. Existing parameters keep
// their order and encoding.
func withToken(raw, token string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	param := TokenParam + "=" + url.QueryEscape(token)
	if u.RawQuery == "" {
		u.RawQuery = param
	} else {
		u.RawQuery += "&" + param
	}
	return u.String(), nil
}
