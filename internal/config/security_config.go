package config

type SecurityConfig interface {
	GetEnableRateLimiting() bool
	GetLoginRatePerSecond() float64
	GetLoginRateBurst() int
}

type Security struct{}

var _ SecurityConfig = Security{}

func (Security) GetEnableRateLimiting() bool {
	return GetEnv("RATE_LIMITING", "on") != "off"
}

// GetLoginRatePerSecond returns the sustained per-IP rate allowed on the
// login endpoint.
func (Security) GetLoginRatePerSecond() float64 {
	return 1
}

func (Security) GetLoginRateBurst() int {
	return 5
}
