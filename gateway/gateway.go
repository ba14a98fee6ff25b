// Package gateway implements the authenticated request pipeline: every
// outgoing call on the private channel gets the current bearer token
// attached, and a 401 response triggers a single shared refresh across all
// concurrently failing requests, after which each is replayed with the new
// token in the order it arrived. When the refresh itself is denied the
// session is wiped and the caller is signalled to navigate back to the
// unauthenticated entry point.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/mts-ml/eManage-sub000/session"
)

// Doer issues a single HTTP round trip. *http.Client satisfies it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Request describes one outgoing call. The body is held as bytes so the
// request can be re-transmitted unchanged after a token refresh.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// hasExplicitAuth reports whether the caller set its own Authorization
// header. Such requests are sent as-is and never enter the refresh protocol;
// their credential is not the Token Store's.
func (r Request) hasExplicitAuth() bool {
	return r.Header.Get("Authorization") != ""
}

// Gateway decorates outgoing requests with the current access token and
// recovers transparently from token expiry. Coordination state (the
// refresh-in-progress flag and the pending queue) is per-instance, so
// independent gateways never share state.
type Gateway struct {
	baseURL   string
	http      Doer
	store     SessionStore
	refresher Refresher
	coord     refreshCoordinator
	onExpired func()
	logger    zerolog.Logger
}

// SessionStore is the slice of the Token Store the gateway depends on.
// *session.Store satisfies it.
type SessionStore interface {
	Read() session.Session
	Clear()
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithHTTPDoer replaces the underlying HTTP client.
func WithHTTPDoer(d Doer) Option {
	return func(g *Gateway) {
		g.http = d
	}
}

// WithLogger sets the gateway logger.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Gateway) {
		g.logger = l
	}
}

// WithOnSessionExpired registers the navigation callback invoked when a
// refresh is denied and the session has been wiped. Typical target is the
// unauthenticated entry point ("/").
func WithOnSessionExpired(fn func()) Option {
	return func(g *Gateway) {
		g.onExpired = fn
	}
}

// New creates a Gateway for the given API base URL.
func New(baseURL string, store SessionStore, refresher Refresher, options ...Option) *Gateway {
	g := &Gateway{
		baseURL:   baseURL,
		http:      &http.Client{Timeout: 30 * time.Second},
		store:     store,
		refresher: refresher,
		logger:    zerolog.Nop(),
	}
	for _, opt := range options {
		opt(g)
	}
	return g
}

// Do sends the request with the current token attached and decodes a
// successful JSON response into out (ignored when out is nil).
//
// A 401 response triggers at most one refresh-and-replay cycle: the request
// either joins the in-flight refresh or starts one, then re-transmits with
// the new token. A second 401 on the replay, and every non-401 error status,
// is returned to the caller as an *APIError. Transport failures (no response
// at all) propagate immediately and are never treated as expiry.
func (g *Gateway) Do(ctx context.Context, req Request, out any) error {
	resp, err := g.send(ctx, req, g.store.Read().AccessToken)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusUnauthorized || req.hasExplicitAuth() {
		return g.finish(resp, out)
	}

	// Authentication expired: discard this response and recover.
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	resp.Body.Close()

	g.logger.Debug().Str("method", req.Method).Str("path", req.Path).
		Msg("request hit expired token, entering refresh")

	token, err := g.awaitRefresh(ctx)
	if err != nil {
		return err
	}

	replayed, err := g.send(ctx, req, token)
	if err != nil {
		return err
	}
	return g.finish(replayed, out)
}

// Get issues a GET request.
func (g *Gateway) Get(ctx context.Context, path string, query url.Values, out any) error {
	return g.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

// Post issues a POST request with a JSON body.
func (g *Gateway) Post(ctx context.Context, path string, body, out any) error {
	encoded, err := encodeBody(body)
	if err != nil {
		return err
	}
	return g.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: encoded}, out)
}

// Put issues a PUT request with a JSON body.
func (g *Gateway) Put(ctx context.Context, path string, body, out any) error {
	encoded, err := encodeBody(body)
	if err != nil {
		return err
	}
	return g.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: encoded}, out)
}

// Delete issues a DELETE request.
func (g *Gateway) Delete(ctx context.Context, path string) error {
	return g.Do(ctx, Request{Method: http.MethodDelete, Path: path}, nil)
}

func encodeBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}
	return encoded, nil
}

// send builds and transmits one HTTP request. The bearer token is attached
// only when the caller did not set an explicit Authorization header.
func (g *Gateway) send(ctx context.Context, req Request, token string) (*http.Response, error) {
	target := g.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("building request %s %s: %w", req.Method, req.Path, err)
	}

	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	if len(req.Body) > 0 && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if httpReq.Header.Get("Authorization") == "" && token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	return g.http.Do(httpReq)
}

type refreshResult struct {
	token string
	err   error
}

// awaitRefresh coordinates a single shared refresh operation. The first
// request to observe expiry becomes the leader and runs the refresh; every
// other request that expires meanwhile is enqueued and woken with the
// leader's outcome in FIFO order.
//
// There is deliberately no ctx select on the waiting path: once a request
// enters 401 handling it runs to settlement, and the in-flight refresh
// always settles.
func (g *Gateway) awaitRefresh(ctx context.Context) (string, error) {
	resultCh := make(chan refreshResult, 1)
	leader := g.coord.begin(
		func(token string) { resultCh <- refreshResult{token: token} },
		func(err error) { resultCh <- refreshResult{err: err} },
	)

	if !leader {
		res := <-resultCh
		return res.token, res.err
	}

	token, err := g.refresher.Refresh(ctx)
	if err != nil {
		g.logger.Warn().Err(err).Msg("token refresh denied, wiping session")
		g.coord.settle("", err)
		g.store.Clear()
		if g.onExpired != nil {
			g.onExpired()
		}
		return "", err
	}

	g.logger.Debug().Msg("token refresh succeeded")
	g.coord.settle(token, nil)
	return token, nil
}

// finish consumes the response: 2xx decodes into out, anything else becomes
// an *APIError carrying whatever the server said.
func (g *Gateway) finish(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response body: %w", err)
		}
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	apiErr := &APIError{StatusCode: resp.StatusCode, Body: body}

	var payload struct {
		Field   string `json:"field"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil {
		apiErr.Field = payload.Field
		apiErr.Message = payload.Message
		if apiErr.Message == "" {
			apiErr.Message = payload.Error
		}
	}
	return apiErr
}
