package token

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mts-ml/eManage-sub000/internal/config"
	"github.com/mts-ml/eManage-sub000/users"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Manager creates and verifies the short-lived JWT access tokens used on the
// Authorization header. Tokens are HMAC-signed with the configured key.
type Manager struct {
	config  config.AuthConfig
	nowFunc func() time.Time
}

type ManagerOption func(*Manager)

func WithNowFunc(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.nowFunc = now
	}
}

func New(cfg config.AuthConfig, options ...ManagerOption) *Manager {
	m := &Manager{
		config:  cfg,
		nowFunc: func() time.Time { return NowTimeFunc() },
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// CreateAccessToken creates a signed access token carrying the user's
// display identity and roles.
func (m *Manager) CreateAccessToken(user *users.User) (string, error) {
	now := m.nowFunc()

	claims := jwtlib.MapClaims{
		"iss":   m.config.GetIssuer(),
		"aud":   m.config.GetAudience(),
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"roles": user.Roles,
		"iat":   now.Unix(),
		"exp":   now.Add(m.config.GetAccessTokenExpiry()).Unix(),
		"jti":   uuid.New().String(),
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(m.config.GetSigningKey())
}
