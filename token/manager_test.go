package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mts-ml/eManage-sub000/internal/config"
	"github.com/mts-ml/eManage-sub000/session"
	"github.com/mts-ml/eManage-sub000/token"
	"github.com/mts-ml/eManage-sub000/users"
)

func testUser() *users.User {
	return &users.User{
		ID:    "user-1",
		Email: "maria@example.com",
		Name:  "Maria",
		Roles: []session.Role{session.RoleAdmin, session.RoleSales},
	}
}

func TestCreateAndIntrospectAccessToken(t *testing.T) {
	cfg := config.New()
	manager := token.New(cfg)

	raw, err := manager.CreateAccessToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	introspection, err := manager.Introspect(raw)
	require.NoError(t, err)
	require.True(t, introspection.Active)
	require.Equal(t, "user-1", *introspection.Sub)
	require.Equal(t, "maria@example.com", introspection.Email)
	require.Equal(t, "Maria", introspection.Name)
	require.Equal(t, []session.Role{session.RoleAdmin, session.RoleSales}, introspection.Roles)
	require.Equal(t, cfg.GetIssuer(), *introspection.Iss)
}

func TestExpiredTokenIsInactive(t *testing.T) {
	cfg := config.New()
	past := time.Now().Add(-2 * cfg.GetAccessTokenExpiry())

	issuer := token.New(cfg, token.WithNowFunc(func() time.Time { return past }))
	raw, err := issuer.CreateAccessToken(testUser())
	require.NoError(t, err)

	verifier := token.New(cfg)
	introspection, err := verifier.Introspect(raw)
	require.NoError(t, err)
	require.False(t, introspection.Active)
}

func TestTamperedTokenIsInactive(t *testing.T) {
	manager := token.New(config.New())

	raw, err := manager.CreateAccessToken(testUser())
	require.NoError(t, err)

	tampered := raw[:len(raw)-2] + "xx"
	introspection, err := manager.Introspect(tampered)
	require.NoError(t, err)
	require.False(t, introspection.Active)
}

func TestBlankTokenIsInactive(t *testing.T) {
	manager := token.New(config.New())

	introspection, err := manager.Introspect("   ")
	require.NoError(t, err)
	require.False(t, introspection.Active)
}
