package products

type Repo interface {
	Upsert(product *Product) error
	Delete(id string) error
	GetByID(id string) (*Product, error)
	List(offset, limit int) ([]*Product, error)
}
