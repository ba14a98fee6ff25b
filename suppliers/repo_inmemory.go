package suppliers

import (
	"errors"
	"sort"
	"sync"

	apperrors "github.com/mts-ml/eManage-sub000/internal/errors"
)

// InMemoryRepo is a thread-safe in-memory implementation of the Repo
// interface, keyed by supplier ID.
type InMemoryRepo struct {
	mu        sync.RWMutex
	suppliers map[string]*Supplier
}

var _ Repo = (*InMemoryRepo)(nil)

// NewInMemoryRepo creates a new in-memory supplier repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		suppliers: make(map[string]*Supplier),
	}
}

func (r *InMemoryRepo) Upsert(supplier *Supplier) error {
	if supplier == nil {
		return errors.New("supplier cannot be nil")
	}
	if supplier.ID == "" {
		return errors.New("supplier ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *supplier
	r.suppliers[supplier.ID] = &copied
	return nil
}

func (r *InMemoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.suppliers, id)
	return nil
}

func (r *InMemoryRepo) GetByID(id string) (*Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	supplier, exists := r.suppliers[id]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	copied := *supplier
	return &copied, nil
}

func (r *InMemoryRepo) GetByEmail(email string) (*Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, supplier := range r.suppliers {
		if supplier.Email == email {
			copied := *supplier
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *InMemoryRepo) List(offset, limit int) ([]*Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*Supplier, 0, len(r.suppliers))
	for _, supplier := range r.suppliers {
		copied := *supplier
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	if offset >= len(all) {
		return []*Supplier{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}
