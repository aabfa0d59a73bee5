// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SOLARSITE_SERVER_HTTP_PORT
const EnvPrefix = "SOLARSITE"

var v *viper.Viper

// DefaultPath returns the config file location: $SOLARSITE_CONFIG if set,
// else ~/.solarsite/config.yaml
func DefaultPath() string {
	if p := os.Getenv(EnvPrefix + "_CONFIG"); p != "" {
		return p
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".solarsite", "config.yaml")
	}
	return filepath.Join(home, ".solarsite", "config.yaml")
}

// LoadEnv reads KEY=value pairs from the given .env files into the process
// environment. Missing files are ignored; existing variables win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	// Set defaults
	setDefaults()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set config file path
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Try to read existing config
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, create it with defaults
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	v.SetDefault("server.http_port", "80")
	v.SetDefault("server.https_port", "443")
	v.SetDefault("server.base_domain", "localhost")
	v.SetDefault("server.aliases", []string{})
	v.SetDefault("server.development", false)

	// Site defaults
	v.SetDefault("site.name", "Harish Solar Systems")
	v.SetDefault("site.theme", "dark")
	v.SetDefault("site.palette", "solar")

	// Storage defaults
	v.SetDefault("storage.static_dir", "/var/lib/solarsite/static")

	// Catalog override, empty uses the built-in catalog
	v.SetDefault("catalog.path", "")

	// Database defaults
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", "/var/lib/solarsite/solarsite.db")

	// Security defaults
	v.SetDefault("security.blocked_ips", []string{})

	// Contact form defaults
	v.SetDefault("contact.rate_limit", 5)          // Submissions per window per IP
	v.SetDefault("contact.rate_window", "1h")
	v.SetDefault("contact.notify_email", "")

	// Backup defaults
	v.SetDefault("backups.path", "/var/lib/solarsite/backups")
	v.SetDefault("backups.interval", "24h")          // Daily backups
	v.SetDefault("backups.retention", 10)            // Keep last 10 backups
	v.SetDefault("backups.enable_auto_backup", true) // Enabled by default

	// Off-site copies, empty bucket disables upload
	v.SetDefault("backups.s3.bucket", "")
	v.SetDefault("backups.s3.region", "ap-south-1")
	v.SetDefault("backups.s3.endpoint", "")
	v.SetDefault("backups.s3.prefix", "solarsite/")

	// Admin inbox, disabled until a password is set
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password_hash", "")
	v.SetDefault("admin.login_rate_limit", 10) // Sign-in attempts per window per IP
	v.SetDefault("admin.login_rate_window", "15m")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.session_ttl", "8h")

	// TLS defaults
	v.SetDefault("server.tls_enabled", false)
	v.SetDefault("tls.email", "")
	v.SetDefault("tls.cert_dir", "/var/lib/solarsite/certs")
	v.SetDefault("tls.staging", false)
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetStringSlice returns a config value as a list of strings
func GetStringSlice(key string) []string {
	if v == nil {
		return nil
	}
	return v.GetStringSlice(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
