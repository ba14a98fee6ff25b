package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mts-ml/eManage-sub000/client"
	apiclients "github.com/mts-ml/eManage-sub000/clients"
	"github.com/mts-ml/eManage-sub000/expenses"
	"github.com/mts-ml/eManage-sub000/gateway"
	"github.com/mts-ml/eManage-sub000/internal/config"
	"github.com/mts-ml/eManage-sub000/products"
	"github.com/mts-ml/eManage-sub000/purchases"
	"github.com/mts-ml/eManage-sub000/sales"
	"github.com/mts-ml/eManage-sub000/server"
	"github.com/mts-ml/eManage-sub000/session"
	"github.com/mts-ml/eManage-sub000/suppliers"
	"github.com/mts-ml/eManage-sub000/token"
	"github.com/mts-ml/eManage-sub000/token/refresh"
	"github.com/mts-ml/eManage-sub000/users"
)

const (
	adminEmail    = "admin@sdk-test.local"
	adminPassword = "Sdk!TestPass123"
)

func startAPIServer(t *testing.T) *httptest.Server {
	t.Helper()

	t.Setenv("ADMIN_EMAIL", adminEmail)
	t.Setenv("ADMIN_PASSWORD", adminPassword)
	t.Setenv("RATE_LIMITING", "off")

	s, err := server.New(config.New(), server.Repos{
		Users:         users.NewInMemoryRepo(),
		RefreshTokens: refresh.NewInMemoryRepo(),
		Clients:       apiclients.NewInMemoryRepo(),
		Suppliers:     suppliers.NewInMemoryRepo(),
		Products:      products.NewInMemoryRepo(),
		Sales:         sales.NewInMemoryRepo(),
		Purchases:     purchases.NewInMemoryRepo(),
		Expenses:      expenses.NewInMemoryRepo(),
	})
	require.NoError(t, err)

	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)
	return ts
}

func TestLoginPopulatesSession(t *testing.T) {
	ts := startAPIServer(t)

	c, err := client.New(ts.URL)
	require.NoError(t, err)

	current, err := c.Login(context.Background(), adminEmail, adminPassword)
	require.NoError(t, err)
	require.Equal(t, adminEmail, current.Email)
	require.NotEmpty(t, current.AccessToken)
	require.True(t, c.Session().Authenticated())
}

func TestLoginFailureSurfacesAPIError(t *testing.T) {
	ts := startAPIServer(t)

	c, err := client.New(ts.URL)
	require.NoError(t, err)

	_, err = c.Login(context.Background(), adminEmail, "wrong-password")

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.False(t, c.Session().Authenticated())
}

// TestExpiredTokenIsRefreshedTransparently signs in while the token clock
// reads one hour in the past, so the issued access token is already expired
// by real time. The first API call then gets a 401; the gateway must redeem
// the refresh cookie and replay without the caller noticing.
func TestExpiredTokenIsRefreshedTransparently(t *testing.T) {
	ts := startAPIServer(t)

	c, err := client.New(ts.URL)
	require.NoError(t, err)

	originalNow := token.NowTimeFunc
	token.NowTimeFunc = func() time.Time { return time.Now().Add(-time.Hour) }
	staleSession, err := c.Login(context.Background(), adminEmail, adminPassword)
	token.NowTimeFunc = originalNow
	require.NoError(t, err)

	created, err := c.Clients.Create(context.Background(), &apiclients.Client{
		Name:  "Distribuidora Boa Mesa",
		Email: "vendas@boamesa.com.br",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// A fresh token replaced the stale one in the session.
	require.NotEqual(t, staleSession.AccessToken, c.Session().AccessToken)
	require.True(t, c.Session().Authenticated())

	list, err := c.Clients.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestLogoutClearsSessionAndKillsRefresh(t *testing.T) {
	ts := startAPIServer(t)

	expired := false
	c, err := client.New(ts.URL, client.WithOnSessionExpired(func() { expired = true }))
	require.NoError(t, err)

	_, err = c.Login(context.Background(), adminEmail, adminPassword)
	require.NoError(t, err)

	require.NoError(t, c.Logout(context.Background()))
	require.Equal(t, session.Session{}, c.Session())

	// With no token and a revoked refresh credential, the next call fails
	// terminally and signals session expiry.
	_, err = c.Clients.List(context.Background())
	require.ErrorIs(t, err, gateway.ErrRefreshDenied)
	require.True(t, expired)
}

func TestSessionChangeNotifications(t *testing.T) {
	ts := startAPIServer(t)

	c, err := client.New(ts.URL)
	require.NoError(t, err)

	var changes []session.Session
	c.OnSessionChange(func(s session.Session) {
		changes = append(changes, s)
	})

	_, err = c.Login(context.Background(), adminEmail, adminPassword)
	require.NoError(t, err)
	require.NoError(t, c.Logout(context.Background()))

	require.Len(t, changes, 2)
	require.True(t, changes[0].Authenticated())
	require.False(t, changes[1].Authenticated())
}
