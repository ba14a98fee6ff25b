package expenses

type Repo interface {
	Upsert(expense *Expense) error
	Delete(id string) error
	GetByID(id string) (*Expense, error)
	List(offset, limit int) ([]*Expense, error)
}
