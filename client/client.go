// Package client is the Go SDK for the eManage API. It owns the session
// state for one signed-in user and sends every private-channel call through
// the gateway, so expired access tokens are refreshed and replayed without
// the caller noticing. The refresh credential never passes through this
// package's API: it lives in the HTTP client's cookie jar.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/rs/zerolog"

	"github.com/mts-ml/eManage-sub000/gateway"
	"github.com/mts-ml/eManage-sub000/session"
)

const (
	pathAuthLogin   = "/api/auth/login"
	pathAuthRefresh = "/api/auth/refresh"
	pathAuthLogout  = "/api/auth/logout"
)

// Client is a stateful API client for one user session.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
	gateway *gateway.Gateway

	Clients   *ClientsService
	Suppliers *SuppliersService
	Products  *ProductsService
	Sales     *SalesService
	Purchases *PurchasesService
	Expenses  *ExpensesService
	Reports   *ReportsService
}

// Option configures a Client.
type Option func(*options)

type options struct {
	httpClient *http.Client
	logger     zerolog.Logger
	onExpired  func()
}

// WithHTTPClient replaces the underlying HTTP client. A cookie jar is
// installed on it if it has none, since the refresh credential rides on a
// cookie.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithLogger sets the logger used by the request pipeline.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithOnSessionExpired registers a callback fired when a token refresh is
// denied and the session has been wiped. UIs use it to navigate back to the
// login screen.
func WithOnSessionExpired(fn func()) Option {
	return func(o *options) {
		o.onExpired = fn
	}
}

// New creates a Client for the API at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	o := &options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("[client New] creating cookie jar: %w", err)
		}
		httpClient.Jar = jar
	}

	store := session.NewStore()
	refresher := gateway.NewHTTPRefresher(baseURL+pathAuthRefresh, httpClient, store)

	gwOpts := []gateway.Option{
		gateway.WithHTTPDoer(httpClient),
		gateway.WithLogger(o.logger),
	}
	if o.onExpired != nil {
		gwOpts = append(gwOpts, gateway.WithOnSessionExpired(o.onExpired))
	}
	gw := gateway.New(baseURL, store, refresher, gwOpts...)

	c := &Client{
		baseURL: baseURL,
		http:    httpClient,
		session: store,
		gateway: gw,
	}
	c.Clients = &ClientsService{gw: gw}
	c.Suppliers = &SuppliersService{gw: gw}
	c.Products = &ProductsService{gw: gw}
	c.Sales = &SalesService{gw: gw}
	c.Purchases = &PurchasesService{gw: gw}
	c.Expenses = &ExpensesService{gw: gw}
	c.Reports = &ReportsService{gw: gw}
	return c, nil
}

// Session returns the current session snapshot.
func (c *Client) Session() session.Session {
	return c.session.Read()
}

// OnSessionChange registers an observer for session updates. See
// session.Store.Subscribe for delivery semantics.
func (c *Client) OnSessionChange(fn func(session.Session)) {
	c.session.Subscribe(fn)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates on the public channel and populates the session. The
// server also plants the refresh cookie in the client's jar.
//
// Login bypasses the gateway on purpose: a 401 here means bad credentials,
// not an expired token, so it must not trigger the refresh protocol.
func (c *Client) Login(ctx context.Context, email, password string) (session.Session, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return session.Session{}, fmt.Errorf("[Login] encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+pathAuthLogin, bytes.NewReader(body))
	if err != nil {
		return session.Session{}, fmt.Errorf("[Login] building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return session.Session{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return session.Session{}, decodeAPIError(resp)
	}

	var next session.Session
	if err := json.NewDecoder(resp.Body).Decode(&next); err != nil {
		return session.Session{}, fmt.Errorf("[Login] decoding response: %w", err)
	}

	c.session.Replace(session.Patch{
		Name:        &next.Name,
		Email:       &next.Email,
		Roles:       &next.Roles,
		AccessToken: &next.AccessToken,
	})
	return next, nil
}

// Logout revokes the refresh credential server-side and clears the local
// session. The local session is cleared even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.gateway.Post(ctx, pathAuthLogout, nil, nil)
	c.session.Clear()
	return err
}

func decodeAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	apiErr := &gateway.APIError{StatusCode: resp.StatusCode, Body: body}
	var payload struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		apiErr.Field = payload.Field
		apiErr.Message = payload.Message
	}
	return apiErr
}
