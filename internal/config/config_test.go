package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/atlas-api/internal/config"
	"github.com/KirkDiggler/atlas-api/internal/errors"
)

const validYAML = `
server:
  grpc_port: 6000
  shutdown_timeout: "5s"

catalog:
  dir: "/srv/catalog"
  fallback_languages: ["EN", "FR"]

redis:
  addr: "redis-a:6379, redis-b:6379"
  pool_size: 20
  preference_ttl: "720h"

log:
  level: "debug"
  format: "text"

preferences:
  sidebar_min: 250
  sidebar_max: 600
  sidebar_width: 300
`

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) writeYAML(content string) string {
	path := filepath.Join(s.dir, "config.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (s *ConfigTestSuite) TestLoadFromYAML() {
	s.T().Setenv("CONFIG_PATH", s.writeYAML(validYAML))

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(6000, cfg.Server.GRPCPort)
	s.Equal(5*time.Second, cfg.Server.ShutdownTimeout)
	s.True(cfg.Server.Reflection)
	s.Equal("/srv/catalog", cfg.Catalog.Dir)
	s.Equal([]string{"EN", "FR"}, cfg.Catalog.FallbackLanguages)
	s.Equal([]string{"redis-a:6379", "redis-b:6379"}, cfg.Redis.Endpoints())
	s.True(cfg.Redis.Enabled())
	s.Equal(20, cfg.Redis.PoolSize)
	s.Equal(720*time.Hour, cfg.Redis.PreferenceTTL)
	s.Equal(3, cfg.Redis.MaxRetries)
	s.Equal("debug", cfg.Log.Level)
	s.Equal("text", cfg.Log.Format)
	s.Equal(300, cfg.Preferences.SidebarWidth)
}

func (s *ConfigTestSuite) TestEnvOverridesYAML() {
	s.T().Setenv("CONFIG_PATH", s.writeYAML(validYAML))
	s.T().Setenv("GRPC_PORT", "7000")
	s.T().Setenv("LOG_FORMAT", "json")

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(7000, cfg.Server.GRPCPort)
	s.Equal("json", cfg.Log.Format)
}

func (s *ConfigTestSuite) TestDefaultsWithoutFile() {
	cfg, err := config.LoadFile(filepath.Join(s.dir, "missing.yaml"), false)
	s.Require().NoError(err)

	s.Equal(50051, cfg.Server.GRPCPort)
	s.Equal(30*time.Second, cfg.Server.ShutdownTimeout)
	s.Equal("./data", cfg.Catalog.Dir)
	s.Empty(cfg.Catalog.FallbackLanguages)
	s.False(cfg.Redis.Enabled())
	s.Equal("info", cfg.Log.Level)
	s.Equal("json", cfg.Log.Format)
	s.Equal(200, cfg.Preferences.SidebarMin)
	s.Equal(800, cfg.Preferences.SidebarMax)
	s.Equal(320, cfg.Preferences.SidebarWidth)
}

func (s *ConfigTestSuite) TestExplicitMissingFile() {
	s.T().Setenv("CONFIG_PATH", filepath.Join(s.dir, "missing.yaml"))

	_, err := config.Load()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name   string
		yaml   string
		fields []string
	}{
		{
			name:   "port out of range",
			yaml:   "server:\n  grpc_port: 70000\n",
			fields: []string{"server.grpc_port"},
		},
		{
			name:   "unknown log level",
			yaml:   "log:\n  level: \"loud\"\n",
			fields: []string{"log.level"},
		},
		{
			name:   "unknown log format",
			yaml:   "log:\n  format: \"xml\"\n",
			fields: []string{"log.format"},
		},
		{
			name:   "sidebar width outside bounds",
			yaml:   "preferences:\n  sidebar_width: 900\n",
			fields: []string{"preferences.sidebar_width"},
		},
		{
			name:   "inverted sidebar bounds",
			yaml:   "preferences:\n  sidebar_min: 500\n  sidebar_max: 400\n  sidebar_width: 450\n",
			fields: []string{"preferences.sidebar_max", "preferences.sidebar_width"},
		},
		{
			name:   "negative ttl",
			yaml:   "redis:\n  preference_ttl: \"-1m\"\n",
			fields: []string{"redis.preference_ttl"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := config.LoadFile(s.writeYAML(tc.yaml), true)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))

			fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			s.Require().True(ok)
			s.Len(fields, len(tc.fields))
			for _, field := range tc.fields {
				s.Contains(fields, field)
			}
		})
	}
}
