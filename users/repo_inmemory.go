package users

import (
	"errors"
	"sort"
	"sync"
	"time"

	apperrors "github.com/mts-ml/eManage-sub000/internal/errors"
)

// InMemoryRepo is a thread-safe in-memory implementation of the UserRepo
// interface, keyed by email.
type InMemoryRepo struct {
	mu    sync.RWMutex
	users map[string]*User
}

var _ UserRepo = (*InMemoryRepo)(nil)

// NewInMemoryRepo creates a new in-memory user repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		users: make(map[string]*User),
	}
}

func (r *InMemoryRepo) Upsert(user *User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}
	if user.Email == "" {
		return errors.New("user email cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *user
	r.users[user.Email] = &copied
	return nil
}

func (r *InMemoryRepo) Delete(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, email)
	return nil
}

func (r *InMemoryRepo) GetByEmail(email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[email]
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *InMemoryRepo) GetByID(id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *InMemoryRepo) List(offset, limit int) ([]*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Email < all[j].Email })

	return paginate(all, offset, limit), nil
}

func (r *InMemoryRepo) SetLastLogin(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[email]
	if !exists {
		return apperrors.ErrUserNotFound
	}
	user.LastLogin = time.Now()
	return nil
}

func paginate(all []*User, offset, limit int) []*User {
	if offset >= len(all) {
		return []*User{}
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end]
}
