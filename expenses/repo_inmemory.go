package expenses

import (
	"errors"
	"sort"
	"sync"

	apperrors "github.com/mts-ml/eManage-sub000/internal/errors"
)

// InMemoryRepo is a thread-safe in-memory implementation of the Repo
// interface, keyed by expense ID.
type InMemoryRepo struct {
	mu       sync.RWMutex
	expenses map[string]*Expense
}

var _ Repo = (*InMemoryRepo)(nil)

// NewInMemoryRepo creates a new in-memory expense repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		expenses: make(map[string]*Expense),
	}
}

func (r *InMemoryRepo) Upsert(expense *Expense) error {
	if expense == nil {
		return errors.New("expense cannot be nil")
	}
	if expense.ID == "" {
		return errors.New("expense ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *expense
	r.expenses[expense.ID] = &copied
	return nil
}

func (r *InMemoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.expenses, id)
	return nil
}

func (r *InMemoryRepo) GetByID(id string) (*Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	expense, exists := r.expenses[id]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	copied := *expense
	return &copied, nil
}

func (r *InMemoryRepo) List(offset, limit int) ([]*Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*Expense, 0, len(r.expenses))
	for _, expense := range r.expenses {
		copied := *expense
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date.Before(all[j].Date) })

	if offset >= len(all) {
		return []*Expense{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}
