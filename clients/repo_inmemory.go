package clients

import (
	"errors"
	"sort"
	"sync"

	apperrors "github.com/mts-ml/eManage-sub000/internal/errors"
)

// InMemoryRepo is a thread-safe in-memory implementation of the Repo
// interface, keyed by client ID.
type InMemoryRepo struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

var _ Repo = (*InMemoryRepo)(nil)

// NewInMemoryRepo creates a new in-memory client repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		clients: make(map[string]*Client),
	}
}

func (r *InMemoryRepo) Upsert(client *Client) error {
	if client == nil {
		return errors.New("client cannot be nil")
	}
	if client.ID == "" {
		return errors.New("client ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *client
	r.clients[client.ID] = &copied
	return nil
}

func (r *InMemoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.clients, id)
	return nil
}

func (r *InMemoryRepo) GetByID(id string) (*Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, exists := r.clients[id]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	copied := *client
	return &copied, nil
}

func (r *InMemoryRepo) GetByEmail(email string) (*Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, client := range r.clients {
		if client.Email == email {
			copied := *client
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *InMemoryRepo) List(offset, limit int) ([]*Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*Client, 0, len(r.clients))
	for _, client := range r.clients {
		copied := *client
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	if offset >= len(all) {
		return []*Client{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}
