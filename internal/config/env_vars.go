package config

import (
	"fmt"
	"os"
)

const (
	portEnvVar    = "PORT"
	appNameVar    = "APP_NAME"
	adminNameVar  = "ADMIN_NAME"
	adminEmailVar = "ADMIN_EMAIL"
	adminPassVar  = "ADMIN_PASSWORD"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "8080")
	if port != "" || port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "eManage")
}

// GetAdminName returns the display name of the bootstrap admin user.
func (EnvVars) GetAdminName() string {
	return GetEnv(adminNameVar, "Administrator")
}

// GetAdminEmail returns the email of the bootstrap admin user.
func (EnvVars) GetAdminEmail() string {
	return GetEnv(adminEmailVar, "admin@emanage.local")
}

// GetAdminPassword returns the initial password of the bootstrap admin user.
// Empty means the admin user is not created on startup.
func (EnvVars) GetAdminPassword() string {
	return GetEnv(adminPassVar, "")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
