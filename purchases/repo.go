package purchases

type Repo interface {
	Upsert(purchase *Purchase) error
	Delete(id string) error
	GetByID(id string) (*Purchase, error)
	List(offset, limit int) ([]*Purchase, error)
}
