// Package config loads the server configuration from a YAML file and the
// environment.
package config

import (
	"strings"
	"time"
)

// Config is the root application configuration
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Catalog     CatalogConfig     `yaml:"catalog"`
	Redis       RedisConfig       `yaml:"redis"`
	Log         LogConfig         `yaml:"log"`
	Preferences PreferencesConfig `yaml:"preferences"`
}

// ServerConfig holds gRPC server settings
type ServerConfig struct {
	GRPCPort        int           `yaml:"grpc_port"        env:"GRPC_PORT"               env-default:"50051"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"30s"`
	Reflection      bool          `yaml:"reflection"       env:"SERVER_REFLECTION"       env-default:"true"`
}

// CatalogConfig locates the catalog documents
type CatalogConfig struct {
	Dir string `yaml:"dir" env:"CATALOG_DIR" env-default:"./data"`
	// FallbackLanguages replaces the catalog's own fallback chain when set
	FallbackLanguages []string `yaml:"fallback_languages" env:"CATALOG_FALLBACK_LANGUAGES" env-separator:","`
	// DeniedFields replaces the default sanitizer denylist when set
	DeniedFields []string `yaml:"denied_fields" env:"CATALOG_DENIED_FIELDS" env-separator:","`
}

// RedisConfig holds preference storage settings. An empty Addr selects the
// in-memory store.
type RedisConfig struct {
	// Addr is one endpoint, or a comma separated list for a cluster
	Addr               string        `yaml:"addr"                 env:"REDIS_ADDR"`
	Username           string        `yaml:"username"             env:"REDIS_USERNAME"`
	Password           string        `yaml:"password"             env:"REDIS_PASSWORD"`
	DB                 int           `yaml:"db"                   env:"REDIS_DB"                   env-default:"0"`
	PoolSize           int           `yaml:"pool_size"            env:"REDIS_POOL_SIZE"            env-default:"10"`
	MinIdleConns       int           `yaml:"min_idle_conns"       env:"REDIS_MIN_IDLE_CONNS"       env-default:"2"`
	MaxRetries         int           `yaml:"max_retries"          env:"REDIS_MAX_RETRIES"          env-default:"3"`
	UseTLS             bool          `yaml:"use_tls"              env:"REDIS_USE_TLS"              env-default:"false"`
	InsecureSkipVerify bool          `yaml:"insecure_skip_verify" env:"REDIS_INSECURE_SKIP_VERIFY" env-default:"false"`
	DialTimeout        time.Duration `yaml:"dial_timeout"         env:"REDIS_DIAL_TIMEOUT"         env-default:"5s"`
	PreferenceTTL      time.Duration `yaml:"preference_ttl"       env:"REDIS_PREFERENCE_TTL"       env-default:"0s"`
}

// Endpoints splits Addr into its non-empty endpoints
func (c RedisConfig) Endpoints() []string {
	var endpoints []string
	for _, addr := range strings.Split(c.Addr, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			endpoints = append(endpoints, addr)
		}
	}
	return endpoints
}

// Enabled reports whether a Redis endpoint is configured
func (c RedisConfig) Enabled() bool {
	return len(c.Endpoints()) > 0
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// PreferencesConfig holds layout preference bounds and defaults
type PreferencesConfig struct {
	SidebarMin   int `yaml:"sidebar_min"   env:"PREFERENCES_SIDEBAR_MIN"   env-default:"200"`
	SidebarMax   int `yaml:"sidebar_max"   env:"PREFERENCES_SIDEBAR_MAX"   env-default:"800"`
	SidebarWidth int `yaml:"sidebar_width" env:"PREFERENCES_SIDEBAR_WIDTH" env-default:"320"`
}
