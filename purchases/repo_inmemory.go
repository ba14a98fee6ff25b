package purchases

import (
	"errors"
	"sort"
	"sync"

	apperrors "github.com/mts-ml/eManage-sub000/internal/errors"
)

// InMemoryRepo is a thread-safe in-memory implementation of the Repo
// interface, keyed by purchase ID.
type InMemoryRepo struct {
	mu        sync.RWMutex
	purchases map[string]*Purchase
}

var _ Repo = (*InMemoryRepo)(nil)

// NewInMemoryRepo creates a new in-memory purchase repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		purchases: make(map[string]*Purchase),
	}
}

func (r *InMemoryRepo) Upsert(purchase *Purchase) error {
	if purchase == nil {
		return errors.New("purchase cannot be nil")
	}
	if purchase.ID == "" {
		return errors.New("purchase ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *purchase
	copied.Items = append([]Item(nil), purchase.Items...)
	r.purchases[purchase.ID] = &copied
	return nil
}

func (r *InMemoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.purchases, id)
	return nil
}

func (r *InMemoryRepo) GetByID(id string) (*Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	purchase, exists := r.purchases[id]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	copied := *purchase
	copied.Items = append([]Item(nil), purchase.Items...)
	return &copied, nil
}

func (r *InMemoryRepo) List(offset, limit int) ([]*Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*Purchase, 0, len(r.purchases))
	for _, purchase := range r.purchases {
		copied := *purchase
		copied.Items = append([]Item(nil), purchase.Items...)
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date.Before(all[j].Date) })

	if offset >= len(all) {
		return []*Purchase{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}
