package clients

type Repo interface {
	Upsert(client *Client) error
	Delete(id string) error
	GetByID(id string) (*Client, error)
	GetByEmail(email string) (*Client, error)
	List(offset, limit int) ([]*Client, error)
}
