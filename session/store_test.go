package session_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mts-ml/eManage-sub000/internal/utils"
	"github.com/mts-ml/eManage-sub000/session"
)

func TestStoreStartsEmpty(t *testing.T) {
	store := session.NewStore()

	current := store.Read()
	require.Equal(t, session.Session{}, current)
	require.False(t, current.Authenticated())
}

func TestStoreReplaceMergesOnlyPatchedFields(t *testing.T) {
	store := session.NewStore()
	store.Replace(session.Patch{
		Name:        utils.Ptr("Maria"),
		Email:       utils.Ptr("maria@example.com"),
		Roles:       utils.Ptr([]session.Role{session.RoleAdmin}),
		AccessToken: utils.Ptr("token-1"),
	})

	// Patch only the token: identity fields must survive.
	store.Replace(session.Patch{AccessToken: utils.Ptr("token-2")})

	current := store.Read()
	require.Equal(t, "Maria", current.Name)
	require.Equal(t, "maria@example.com", current.Email)
	require.Equal(t, []session.Role{session.RoleAdmin}, current.Roles)
	require.Equal(t, "token-2", current.AccessToken)
	require.True(t, current.Authenticated())
}

func TestStoreClearResetsToEmpty(t *testing.T) {
	store := session.NewStore()
	store.Replace(session.Patch{
		Name:        utils.Ptr("Maria"),
		AccessToken: utils.Ptr("token-1"),
	})

	store.Clear()
	require.Equal(t, session.Session{}, store.Read())
}

func TestStoreNotifiesSubscribersOnChange(t *testing.T) {
	store := session.NewStore()

	var seen []session.Session
	store.Subscribe(func(s session.Session) {
		seen = append(seen, s)
	})

	store.Replace(session.Patch{AccessToken: utils.Ptr("token-1")})
	store.Clear()

	require.Len(t, seen, 2)
	require.Equal(t, "token-1", seen[0].AccessToken)
	require.Equal(t, session.Session{}, seen[1])
}

func TestSessionHasRole(t *testing.T) {
	s := session.Session{Roles: []session.Role{session.RoleFinance, session.RoleSales}}

	require.True(t, s.HasRole(session.RoleFinance))
	require.True(t, s.HasRole(session.RoleSales))
	require.False(t, s.HasRole(session.RoleAdmin))
}
