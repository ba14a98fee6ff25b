package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mts-ml/eManage-sub000/internal/utils"
	"github.com/mts-ml/eManage-sub000/session"
)

const maxErrorBody = 4 << 10

// Refresher exchanges the externally-held long-lived credential for a new
// access token. Implementations must write the new token into the Token
// Store as a side effect and be safely callable multiple times sequentially.
type Refresher interface {
	Refresh(ctx context.Context) (string, error)
}

// HTTPRefresher posts to the refresh endpoint. No explicit input is carried:
// the refresh credential is an HttpOnly cookie attached automatically by the
// HTTP client's cookie jar. Any failure — error status, transport failure or
// an unreadable response — surfaces as ErrRefreshDenied; there is no silent
// default token.
type HTTPRefresher struct {
	endpoint string
	http     Doer
	store    *session.Store
}

// NewHTTPRefresher creates a refresher targeting the given absolute endpoint
// URL. The Doer must carry a cookie jar holding the refresh credential.
func NewHTTPRefresher(endpoint string, doer Doer, store *session.Store) *HTTPRefresher {
	return &HTTPRefresher{
		endpoint: endpoint,
		http:     doer,
		store:    store,
	}
}

var _ Refresher = (*HTTPRefresher)(nil)

// Refresh requests a new access token and stores it.
func (r *HTTPRefresher) Refresh(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("[Refresh] building request: %w", err)
	}

	resp, err := r.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRefreshDenied, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("%w: status %d: %s", ErrRefreshDenied, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", ErrRefreshDenied, err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token in response", ErrRefreshDenied)
	}

	r.store.Replace(session.Patch{AccessToken: utils.Ptr(payload.AccessToken)})
	return payload.AccessToken, nil
}
