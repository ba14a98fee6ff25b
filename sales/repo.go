package sales

type Repo interface {
	Upsert(sale *Sale) error
	Delete(id string) error
	GetByID(id string) (*Sale, error)
	List(offset, limit int) ([]*Sale, error)
	ListByStatus(status PaymentStatus) ([]*Sale, error)
}
