package refresh

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/mts-ml/eManage-sub000/internal/config"
	apperrors "github.com/mts-ml/eManage-sub000/internal/errors"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Manager handles refresh credential creation, validation, and rotation
type Manager struct {
	repo   Repo
	config config.AuthConfig
}

// NewManager creates a new refresh credential manager
func NewManager(repo Repo, cfg config.AuthConfig) *Manager {
	return &Manager{
		repo:   repo,
		config: cfg,
	}
}

// Create generates a new refresh credential for the user and stores it.
// Any existing credential for the same user is dropped first (single
// refresh credential per user).
func (m *Manager) Create(userID string) (string, error) {
	if existingToken, err := m.repo.GetByUserID(userID); err == nil && existingToken != nil {
		if err := m.repo.Delete(existingToken.Token); err != nil {
			return "", fmt.Errorf("failed to delete existing refresh token: %w", err)
		}
	}

	tokenBytes := make([]byte, m.config.GetRefreshTokenLength())
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	tokenStr := hex.EncodeToString(tokenBytes)
	if err := m.repo.Upsert(&StoredRefreshToken{
		Token:  tokenStr,
		UserID: userID,
		Iat:    NowTimeFunc(),
	}); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return tokenStr, nil
}

// Validate looks up the credential and checks it has not expired. The
// returned record identifies the user the credential was issued to.
func (m *Manager) Validate(token string) (*StoredRefreshToken, error) {
	stored, err := m.repo.Get(token)
	if err != nil {
		return nil, err
	}
	if NowTimeFunc().Sub(stored.Iat) > m.config.GetRefreshTokenExpiry() {
		// Expired credentials are dropped eagerly so they cannot pile up.
		_ = m.repo.Delete(stored.Token)
		return nil, apperrors.ErrRefreshTokenExpired
	}
	return stored, nil
}

// Delete removes a refresh credential from storage
func (m *Manager) Delete(token string) error {
	return m.repo.Delete(token)
}

// DeleteByUser removes the user's refresh credential, if any.
func (m *Manager) DeleteByUser(userID string) error {
	stored, err := m.repo.GetByUserID(userID)
	if err != nil {
		return nil // Nothing to delete
	}
	return m.repo.Delete(stored.Token)
}
