package sales

import (
	"errors"
	"sort"
	"sync"

	apperrors "github.com/mts-ml/eManage-sub000/internal/errors"
)

// InMemoryRepo is a thread-safe in-memory implementation of the Repo
// interface, keyed by sale ID.
type InMemoryRepo struct {
	mu    sync.RWMutex
	sales map[string]*Sale
}

var _ Repo = (*InMemoryRepo)(nil)

// NewInMemoryRepo creates a new in-memory sales repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		sales: make(map[string]*Sale),
	}
}

func (r *InMemoryRepo) Upsert(sale *Sale) error {
	if sale == nil {
		return errors.New("sale cannot be nil")
	}
	if sale.ID == "" {
		return errors.New("sale ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *sale
	copied.Items = append([]Item(nil), sale.Items...)
	r.sales[sale.ID] = &copied
	return nil
}

func (r *InMemoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sales, id)
	return nil
}

func (r *InMemoryRepo) GetByID(id string) (*Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sale, exists := r.sales[id]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	return copySale(sale), nil
}

func (r *InMemoryRepo) List(offset, limit int) ([]*Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*Sale, 0, len(r.sales))
	for _, sale := range r.sales {
		all = append(all, copySale(sale))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date.Before(all[j].Date) })

	if offset >= len(all) {
		return []*Sale{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

func (r *InMemoryRepo) ListByStatus(status PaymentStatus) ([]*Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*Sale, 0)
	for _, sale := range r.sales {
		if sale.Status == status {
			matched = append(matched, copySale(sale))
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Date.Before(matched[j].Date) })
	return matched, nil
}

func copySale(sale *Sale) *Sale {
	copied := *sale
	copied.Items = append([]Item(nil), sale.Items...)
	return &copied
}
