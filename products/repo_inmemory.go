package products

import (
	"errors"
	"sort"
	"sync"

	apperrors "github.com/mts-ml/eManage-sub000/internal/errors"
)

// InMemoryRepo is a thread-safe in-memory implementation of the Repo
// interface, keyed by product ID.
type InMemoryRepo struct {
	mu       sync.RWMutex
	products map[string]*Product
}

var _ Repo = (*InMemoryRepo)(nil)

// NewInMemoryRepo creates a new in-memory product repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		products: make(map[string]*Product),
	}
}

func (r *InMemoryRepo) Upsert(product *Product) error {
	if product == nil {
		return errors.New("product cannot be nil")
	}
	if product.ID == "" {
		return errors.New("product ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *InMemoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, id)
	return nil
}

func (r *InMemoryRepo) GetByID(id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.products[id]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	copied := *product
	return &copied, nil
}

func (r *InMemoryRepo) List(offset, limit int) ([]*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*Product, 0, len(r.products))
	for _, product := range r.products {
		copied := *product
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	if offset >= len(all) {
		return []*Product{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}
