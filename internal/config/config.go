// Package config loads lessonctl configuration from file, environment
// and defaults.
package config

// Config holds the lessonctl application configuration.
type Config struct {
	APIURL          string `mapstructure:"api_url"`
	TimeoutMS       int    `mapstructure:"timeout_ms"`
	CacheTTLMS      int    `mapstructure:"cache_ttl_ms"`
	CampusID        int64  `mapstructure:"campus_id"`
	CredentialsPath string `mapstructure:"credentials_path"`
	Verbose         bool   `mapstructure:"verbose"`
	LogLevel        string `mapstructure:"log_level"`
	LogFormat       string `mapstructure:"log_format"`
}
