package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mts-ml/eManage-sub000/gateway"
	"github.com/mts-ml/eManage-sub000/session"
)

func TestHTTPRefresherStoresNewToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"accessToken":"refreshed-token"}`))
	}))
	defer ts.Close()

	store := session.NewStore()
	refresher := gateway.NewHTTPRefresher(ts.URL+"/api/auth/refresh", ts.Client(), store)

	token, err := refresher.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, "refreshed-token", token)
	require.Equal(t, "refreshed-token", store.Read().AccessToken)
}

func TestHTTPRefresherDeniedOnErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid refresh token"}`))
	}))
	defer ts.Close()

	store := session.NewStore()
	refresher := gateway.NewHTTPRefresher(ts.URL+"/api/auth/refresh", ts.Client(), store)

	_, err := refresher.Refresh(context.Background())
	require.ErrorIs(t, err, gateway.ErrRefreshDenied)
	require.Empty(t, store.Read().AccessToken)
}

func TestHTTPRefresherDeniedOnEmptyToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"accessToken":""}`))
	}))
	defer ts.Close()

	store := session.NewStore()
	refresher := gateway.NewHTTPRefresher(ts.URL+"/api/auth/refresh", ts.Client(), store)

	_, err := refresher.Refresh(context.Background())
	require.ErrorIs(t, err, gateway.ErrRefreshDenied)
}

func TestHTTPRefresherDeniedOnTransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	store := session.NewStore()
	refresher := gateway.NewHTTPRefresher(ts.URL+"/api/auth/refresh", http.DefaultClient, store)

	_, err := refresher.Refresh(context.Background())
	require.ErrorIs(t, err, gateway.ErrRefreshDenied)
}

func TestHTTPRefresherDeniedOnMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer ts.Close()

	store := session.NewStore()
	refresher := gateway.NewHTTPRefresher(ts.URL+"/api/auth/refresh", ts.Client(), store)

	_, err := refresher.Refresh(context.Background())
	require.ErrorIs(t, err, gateway.ErrRefreshDenied)
}
