package refresh

import (
	"time"
)

// StoredRefreshToken represents the server-side record of a refresh
// credential. The client only ever holds the Token field (a random string,
// transported as an HttpOnly cookie); everything else is server-side
// metadata used for validation.
type StoredRefreshToken struct {
	Token  string    // The actual random token string (sent to client)
	UserID string    // Server-side metadata
	Iat    time.Time // Server-side metadata (issued at time)
}

// Repo manages server-side storage of refresh credentials, keyed by the
// token string.
type Repo interface {
	Upsert(refreshToken *StoredRefreshToken) error
	Delete(token string) error
	Get(token string) (*StoredRefreshToken, error)
	GetByUserID(userID string) (*StoredRefreshToken, error)
}
