package refresh

import (
	"errors"
	"sync"

	apperrors "github.com/mts-ml/eManage-sub000/internal/errors"
)

// InMemoryRepo is a thread-safe in-memory implementation of the Repo
// interface.
type InMemoryRepo struct {
	mu     sync.RWMutex
	tokens map[string]*StoredRefreshToken
}

var _ Repo = (*InMemoryRepo)(nil)

// NewInMemoryRepo creates a new in-memory refresh token repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		tokens: make(map[string]*StoredRefreshToken),
	}
}

func (r *InMemoryRepo) Upsert(refreshToken *StoredRefreshToken) error {
	if refreshToken == nil {
		return errors.New("refresh token cannot be nil")
	}
	if refreshToken.Token == "" {
		return errors.New("token cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *refreshToken
	r.tokens[refreshToken.Token] = &copied
	return nil
}

func (r *InMemoryRepo) Delete(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tokens, token)
	return nil
}

func (r *InMemoryRepo) Get(token string) (*StoredRefreshToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.tokens[token]
	if !exists {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	copied := *stored
	return &copied, nil
}

func (r *InMemoryRepo) GetByUserID(userID string) (*StoredRefreshToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, stored := range r.tokens {
		if stored.UserID == userID {
			copied := *stored
			return &copied, nil
		}
	}
	return nil, apperrors.ErrInvalidRefreshToken
}
