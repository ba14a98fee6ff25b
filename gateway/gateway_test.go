package gateway_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/mts-ml/eManage-sub000/gateway"
	"github.com/mts-ml/eManage-sub000/internal/utils"
	"github.com/mts-ml/eManage-sub000/session"
)

const (
	staleToken = "stale-token"
	freshToken = "fresh-token"
)

// fakeRefresher counts calls and optionally blocks until released.
type fakeRefresher struct {
	store *session.Store
	token string
	err   error
	calls atomic.Int64
	gate  chan struct{} // nil means "do not block"
}

func (f *fakeRefresher) Refresh(ctx context.Context) (string, error) {
	f.calls.Add(1)
	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil {
		return "", f.err
	}
	f.store.Replace(session.Patch{AccessToken: utils.Ptr(f.token)})
	return f.token, nil
}

func storeWithToken(token string) *session.Store {
	store := session.NewStore()
	store.Replace(session.Patch{
		Name:        utils.Ptr("Test User"),
		Email:       utils.Ptr("user@example.com"),
		AccessToken: utils.Ptr(token),
	})
	return store
}

// apiServer answers 200 only for the fresh token and 401 for anything else.
func apiServer(t *testing.T, unauthorized *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+freshToken {
			if unauthorized != nil {
				unauthorized.Add(1)
			}
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
}

func TestGatewayAttachesCurrentToken(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	store := storeWithToken(freshToken)
	gw := gateway.New(ts.URL, store, &fakeRefresher{store: store})

	require.NoError(t, gw.Get(context.Background(), "/api/clients", nil, nil))
	require.Equal(t, "Bearer "+freshToken, gotAuth)
}

func TestGatewayRefreshesAndReplaysOn401(t *testing.T) {
	ts := apiServer(t, nil)
	defer ts.Close()

	store := storeWithToken(staleToken)
	refresher := &fakeRefresher{store: store, token: freshToken}
	gw := gateway.New(ts.URL, store, refresher)

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, gw.Get(context.Background(), "/api/clients", nil, &out))
	require.True(t, out.OK)
	require.Equal(t, int64(1), refresher.calls.Load())
	require.Equal(t, freshToken, store.Read().AccessToken)
}

func TestGatewaySharesOneRefreshAcrossConcurrentRequests(t *testing.T) {
	const workers = 8

	var unauthorized atomic.Int64
	ts := apiServer(t, &unauthorized)
	defer ts.Close()

	store := storeWithToken(staleToken)
	refresher := &fakeRefresher{store: store, token: freshToken, gate: make(chan struct{})}
	gw := gateway.New(ts.URL, store, refresher)

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			return gw.Get(context.Background(), "/api/clients", nil, nil)
		})
	}

	// Hold the refresh open until every worker has received its 401 and
	// entered the refresh protocol, then release it once.
	require.Eventually(t, func() bool {
		return unauthorized.Load() == workers
	}, 5*time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	close(refresher.gate)

	require.NoError(t, g.Wait())
	require.Equal(t, int64(1), refresher.calls.Load())
	require.Equal(t, freshToken, store.Read().AccessToken)
}

func TestGatewaySecond401OnReplayPropagates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	store := storeWithToken(staleToken)
	refresher := &fakeRefresher{store: store, token: freshToken}
	gw := gateway.New(ts.URL, store, refresher)

	err := gw.Get(context.Background(), "/api/clients", nil, nil)

	// Exactly one refresh-and-replay cycle, then the 401 surfaces.
	require.Equal(t, int64(1), refresher.calls.Load())
	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.True(t, gateway.IsAuthExpired(err))
}

func TestGatewayRefreshDeniedWipesSessionAndSignals(t *testing.T) {
	ts := apiServer(t, nil)
	defer ts.Close()

	store := storeWithToken(staleToken)
	refreshErr := gateway.ErrRefreshDenied
	refresher := &fakeRefresher{store: store, err: refreshErr}

	expired := false
	gw := gateway.New(ts.URL, store, refresher,
		gateway.WithOnSessionExpired(func() { expired = true }))

	err := gw.Get(context.Background(), "/api/clients", nil, nil)
	require.ErrorIs(t, err, gateway.ErrRefreshDenied)
	require.True(t, expired)
	require.Equal(t, session.Session{}, store.Read())
}

func TestGatewayRefreshDeniedRejectsAllWaiters(t *testing.T) {
	const workers = 4

	var unauthorized atomic.Int64
	ts := apiServer(t, &unauthorized)
	defer ts.Close()

	store := storeWithToken(staleToken)
	refresher := &fakeRefresher{
		store: store,
		err:   errors.New("credential revoked"),
		gate:  make(chan struct{}),
	}
	gw := gateway.New(ts.URL, store, refresher)

	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			errCh <- gw.Get(context.Background(), "/api/clients", nil, nil)
		}()
	}

	require.Eventually(t, func() bool {
		return unauthorized.Load() == workers
	}, 5*time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	close(refresher.gate)

	for i := 0; i < workers; i++ {
		require.Error(t, <-errCh)
	}
	require.Equal(t, int64(1), refresher.calls.Load())
}

func TestGatewayPassesThroughNon401Errors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"field":"email","message":"Email já cadastrado"}`))
	}))
	defer ts.Close()

	store := storeWithToken(freshToken)
	refresher := &fakeRefresher{store: store}
	gw := gateway.New(ts.URL, store, refresher)

	err := gw.Post(context.Background(), "/api/clients", map[string]string{"email": "dup@x.com"}, nil)

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, "email", apiErr.Field)
	require.Equal(t, "Email já cadastrado", apiErr.Message)

	// The refresh protocol never saw this.
	require.Equal(t, int64(0), refresher.calls.Load())
	require.Equal(t, freshToken, store.Read().AccessToken)
}

func TestGatewayTransportErrorIsNotTreatedAsExpiry(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // Every request now fails at the transport level.

	store := storeWithToken(freshToken)
	refresher := &fakeRefresher{store: store}
	gw := gateway.New(ts.URL, store, refresher)

	err := gw.Get(context.Background(), "/api/clients", nil, nil)
	require.Error(t, err)

	var apiErr *gateway.APIError
	require.False(t, errors.As(err, &apiErr))
	require.Equal(t, int64(0), refresher.calls.Load())
	require.Equal(t, freshToken, store.Read().AccessToken)
}

func TestGatewayExplicitAuthSkipsRefreshProtocol(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	store := storeWithToken(staleToken)
	refresher := &fakeRefresher{store: store, token: freshToken}
	gw := gateway.New(ts.URL, store, refresher)

	header := http.Header{}
	header.Set("Authorization", "Bearer external-credential")
	err := gw.Do(context.Background(), gateway.Request{
		Method: http.MethodGet,
		Path:   "/api/clients",
		Header: header,
	}, nil)

	require.Equal(t, "Bearer external-credential", gotAuth)
	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, int64(0), refresher.calls.Load())
}
