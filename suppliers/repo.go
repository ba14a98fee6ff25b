package suppliers

type Repo interface {
	Upsert(supplier *Supplier) error
	Delete(id string) error
	GetByID(id string) (*Supplier, error)
	GetByEmail(email string) (*Supplier, error)
	List(offset, limit int) ([]*Supplier, error)
}
