package session

// Role identifies an application area the signed-in user may access.
type Role int

const (
	RoleAdmin   Role = 1 // Full access, including user management
	RoleFinance Role = 2 // Receivables, payables, expenses, reports
	RoleSales   Role = 3 // Clients, products, sales workflows
)

// Session is the in-memory record of the current signed-in identity.
// The zero value means "unauthenticated".
type Session struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Roles       []Role `json:"roles"`
	AccessToken string `json:"accessToken"`
}

// Authenticated reports whether the session carries an access token.
func (s Session) Authenticated() bool {
	return s.AccessToken != ""
}

// HasRole reports whether the session grants the given role.
func (s Session) HasRole(role Role) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Patch is a partial update of a Session. Nil fields are left untouched.
// Callers typically build patches with utils.Ptr.
type Patch struct {
	Name        *string
	Email       *string
	Roles       *[]Role
	AccessToken *string
}
