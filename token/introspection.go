package token

import (
	"errors"
	"strings"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/mts-ml/eManage-sub000/internal/utils"
	"github.com/mts-ml/eManage-sub000/session"
)

// TokenIntrospection represents the verified contents of an access token.
// The 'active' field indicates the state of the token - if it's false, other
// fields may not be populated.
type TokenIntrospection struct {
	Active bool           `json:"active"`          // True or false - Is the token valid
	Sub    *string        `json:"sub,omitempty"`   // User's unique ID
	Email  string         `json:"email,omitempty"` // User's email address
	Name   string         `json:"name,omitempty"`  // Display name
	Roles  []session.Role `json:"roles,omitempty"` // Roles assigned to the user
	Exp    *int64         `json:"exp,omitempty"`   // Expiration
	Iat    *int64         `json:"iat,omitempty"`   // Issued at time
	Iss    *string        `json:"iss,omitempty"`   // Issuer of the token
}

// Introspect validates a raw access token and extracts its claims. An
// expired or otherwise invalid token yields Active=false rather than an
// error, so callers decide the HTTP shape of the rejection.
func (m *Manager) Introspect(rawToken string) (*TokenIntrospection, error) {
	if strings.TrimSpace(rawToken) == "" {
		return &TokenIntrospection{Active: false}, nil
	}

	parser := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(m.nowFunc),
	)
	token, err := parser.Parse(rawToken, func(t *jwtlib.Token) (interface{}, error) {
		return m.config.GetSigningKey(), nil
	})
	if err != nil || !token.Valid {
		return &TokenIntrospection{Active: false}, nil
	}

	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return &TokenIntrospection{Active: false}, errors.New("error extracting claims from token")
	}

	iss, _ := claims["iss"].(string)
	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	iat, _ := claims["iat"].(float64)
	exp, _ := claims["exp"].(float64)

	iatInt := int64(iat)
	expInt := int64(exp)

	var roles []session.Role
	if claimRoles, ok := claims["roles"].([]any); ok {
		for _, r := range utils.ToIntSlice(claimRoles) {
			roles = append(roles, session.Role(r))
		}
	}

	return &TokenIntrospection{
		Active: true,
		Sub:    &sub,
		Email:  email,
		Name:   name,
		Roles:  roles,
		Exp:    &expInt,
		Iat:    &iatInt,
		Iss:    &iss,
	}, nil
}
