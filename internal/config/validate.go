package config

import (
	"github.com/KirkDiggler/atlas-api/internal/errors"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Validate checks the loaded configuration
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.grpc_port", c.Server.GRPCPort, 1, 65535, vb)
	if c.Server.ShutdownTimeout <= 0 {
		vb.Field("server.shutdown_timeout", "must be positive")
	}

	if c.Catalog.Dir == "" {
		vb.RequiredField("catalog.dir")
	}

	if c.Redis.PoolSize < 0 {
		vb.Field("redis.pool_size", "cannot be negative")
	}
	if c.Redis.PreferenceTTL < 0 {
		vb.Field("redis.preference_ttl", "cannot be negative")
	}

	errors.ValidateEnum("log.level", c.Log.Level, logLevels, vb)
	errors.ValidateEnum("log.format", c.Log.Format, logFormats, vb)

	p := c.Preferences
	if p.SidebarMin <= 0 {
		vb.Field("preferences.sidebar_min", "must be positive")
	}
	if p.SidebarMax < p.SidebarMin {
		vb.Field("preferences.sidebar_max", "must not be below sidebar_min")
	}
	if p.SidebarWidth < p.SidebarMin || p.SidebarWidth > p.SidebarMax {
		vb.Fieldf("preferences.sidebar_width", "must be between %d and %d", p.SidebarMin, p.SidebarMax)
	}

	return vb.Build()
}
