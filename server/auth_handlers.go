package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	apperrors "github.com/mts-ml/eManage-sub000/internal/errors"
	"github.com/mts-ml/eManage-sub000/session"
	"github.com/mts-ml/eManage-sub000/users"
)

const refreshCookieName = "refreshToken"

// RouteAuthRefresh is the only path the browser ever sends the refresh
// cookie to.
const refreshCookiePath = RouteAuthRefresh

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// loginResponse carries the user's display identity and the first access
// token. The refresh credential travels separately as an HttpOnly cookie.
type loginResponse struct {
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Roles       []session.Role `json:"roles"`
	AccessToken string         `json:"accessToken"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// LoginHandler verifies credentials, issues the access token and plants the
// refresh cookie.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}

		user, err := s.repos.Users.GetByEmail(req.Email)
		if err != nil {
			// Same response for unknown email and bad password so the
			// endpoint does not leak which emails exist.
			writeError(w, http.StatusUnauthorized, "", "invalid credentials")
			return
		}
		if !users.CheckPasswordHash(req.Password, user.PasswordHash) {
			writeError(w, http.StatusUnauthorized, "", "invalid credentials")
			return
		}

		accessToken, err := s.tokens.CreateAccessToken(user)
		if err != nil {
			log.Error().Err(err).Msg("[LoginHandler] creating access token")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}

		refreshToken, err := s.refreshMgr.Create(user.ID)
		if err != nil {
			log.Error().Err(err).Msg("[LoginHandler] creating refresh token")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}

		if err := s.repos.Users.SetLastLogin(user.Email); err != nil {
			log.Warn().Err(err).Str("email", user.Email).Msg("[LoginHandler] recording last login")
		}

		s.setRefreshCookie(w, refreshToken, s.config.GetRefreshTokenExpiry())
		writeJSON(w, http.StatusOK, loginResponse{
			Name:        user.Name,
			Email:       user.Email,
			Roles:       user.Roles,
			AccessToken: accessToken,
		})
	}
}

// RefreshHandler exchanges a valid refresh cookie for a fresh access token.
// The refresh credential is rotated on every successful exchange.
func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(refreshCookieName)
		if err != nil || cookie.Value == "" {
			writeError(w, http.StatusUnauthorized, "", "missing refresh token")
			return
		}

		stored, err := s.refreshMgr.Validate(cookie.Value)
		if err != nil {
			s.clearRefreshCookie(w)
			writeError(w, http.StatusUnauthorized, "", "invalid refresh token")
			return
		}

		user, err := s.repos.Users.GetByID(stored.UserID)
		if err != nil {
			s.clearRefreshCookie(w)
			writeError(w, http.StatusUnauthorized, "", "invalid refresh token")
			return
		}

		accessToken, err := s.tokens.CreateAccessToken(user)
		if err != nil {
			log.Error().Err(err).Msg("[RefreshHandler] creating access token")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}

		rotated, err := s.refreshMgr.Create(user.ID)
		if err != nil {
			log.Error().Err(err).Msg("[RefreshHandler] rotating refresh token")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}

		s.setRefreshCookie(w, rotated, s.config.GetRefreshTokenExpiry())
		writeJSON(w, http.StatusOK, refreshResponse{AccessToken: accessToken})
	}
}

// LogoutHandler revokes the caller's refresh credential and clears the
// cookie. The access token simply ages out.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "", "missing authorization")
			return
		}

		if err := s.refreshMgr.DeleteByUser(identity.UserID); err != nil && !apperrors.Is(err, apperrors.ErrInvalidRefreshToken) {
			log.Warn().Err(err).Str("userID", identity.UserID).Msg("[LogoutHandler] revoking refresh token")
		}

		s.clearRefreshCookie(w)
		writeJSON(w, http.StatusNoContent, nil)
	}
}

func (s *Server) setRefreshCookie(w http.ResponseWriter, value string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    value,
		Path:     refreshCookiePath,
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.env != "DEV",
		SameSite: http.SameSiteStrictMode,
	})
}

func (s *Server) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     refreshCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.env != "DEV",
		SameSite: http.SameSiteStrictMode,
	})
}
