package users_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mts-ml/eManage-sub000/users"
)

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid password", "Passw0rd", false},
		{"too short", "Pw1", true},
		{"no uppercase", "password1", true},
		{"no lowercase", "PASSWORD1", true},
		{"no number", "Password", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := users.ValidatePasswordStrength(tc.password)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := users.HashPassword("Passw0rd!")
	require.NoError(t, err)
	require.NotEqual(t, "Passw0rd!", hash)

	require.True(t, users.CheckPasswordHash("Passw0rd!", hash))
	require.False(t, users.CheckPasswordHash("wrong", hash))
}

func TestInMemoryRepoUpsertAndLookup(t *testing.T) {
	repo := users.NewInMemoryRepo()

	require.NoError(t, repo.Upsert(&users.User{ID: "u1", Email: "a@example.com", Name: "A"}))
	require.NoError(t, repo.Upsert(&users.User{ID: "u2", Email: "b@example.com", Name: "B"}))

	byEmail, err := repo.GetByEmail("a@example.com")
	require.NoError(t, err)
	require.Equal(t, "u1", byEmail.ID)

	byID, err := repo.GetByID("u2")
	require.NoError(t, err)
	require.Equal(t, "b@example.com", byID.Email)

	list, err := repo.List(0, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)

	_, err = repo.GetByEmail("missing@example.com")
	require.Error(t, err)
}
