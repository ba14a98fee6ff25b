package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/mts-ml/eManage-sub000/session"
)

type contextKey string

const identityContextKey contextKey = "identity"

// Identity is the authenticated caller extracted from the bearer token.
type Identity struct {
	UserID string
	Email  string
	Name   string
	Roles  []session.Role
}

// IdentityFromContext returns the authenticated identity set by RequireAuth.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(Identity)
	return id, ok
}

// RequireAuth validates the Authorization bearer token and stores the
// caller's identity in the request context. Missing, malformed, expired or
// otherwise inactive tokens get a 401.
func (s *Server) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, http.StatusUnauthorized, "", "missing authorization header")
			return
		}
		raw, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || raw == "" {
			writeError(w, http.StatusUnauthorized, "", "invalid authorization header")
			return
		}

		introspection, err := s.tokens.Introspect(raw)
		if err != nil || !introspection.Active {
			writeError(w, http.StatusUnauthorized, "", "invalid or expired token")
			return
		}

		identity := Identity{
			Email: introspection.Email,
			Name:  introspection.Name,
			Roles: introspection.Roles,
		}
		if introspection.Sub != nil {
			identity.UserID = *introspection.Sub
		}

		ctx := context.WithValue(r.Context(), identityContextKey, identity)
		next(w, r.WithContext(ctx))
	}
}

// RequireRole gates a handler on the caller holding the given role. Must run
// after RequireAuth.
func (s *Server) RequireRole(role session.Role) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "", "missing authorization")
				return
			}
			for _, have := range identity.Roles {
				if have == role {
					next(w, r)
					return
				}
			}
			writeError(w, http.StatusForbidden, "", "insufficient permissions")
		}
	}
}
