package config

import (
	"time"
)

type AuthConfig interface {
	GetIssuer() string
	GetAudience() string
	GetSigningKey() []byte
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenLength() int
	GetRefreshTokenExpiry() time.Duration
}

type Auth struct{}

var _ AuthConfig = Auth{}

func (Auth) GetIssuer() string {
	return GetEnv("TOKEN_ISSUER", "emanage")
}

func (Auth) GetAudience() string {
	return GetEnv("TOKEN_AUDIENCE", "emanage-api")
}

// GetSigningKey returns the HMAC key used to sign access tokens.
// The default is only meant for local development.
func (Auth) GetSigningKey() []byte {
	return []byte(GetEnv("TOKEN_SIGNING_KEY", "dev-signing-key-do-not-use-in-prod"))
}

func (Auth) GetAccessTokenExpiry() time.Duration {
	return durationEnv("ACCESS_TOKEN_EXPIRY", 15*time.Minute)
}

func (Auth) GetRefreshTokenLength() int {
	return 32 // 32 bytes = 256 bits
}

func (Auth) GetRefreshTokenExpiry() time.Duration {
	return durationEnv("REFRESH_TOKEN_EXPIRY", 7*24*time.Hour)
}

func durationEnv(envVar string, defaultValue time.Duration) time.Duration {
	value := GetEnv(envVar, "")
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
