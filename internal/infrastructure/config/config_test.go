package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "catalog.db", cfg.Database.DSN())
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expire)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 8080
  request_timeout: 3s
database:
  driver: postgres
  host: db
  port: 5432
  user: catalog
  password: secret
  dbname: library
jwt:
  secret: file-secret
  expire: 30m
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "host=db port=5432 user=catalog password=secret dbname=library sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, 30*time.Minute, cfg.JWT.Expire)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_PrefixedEnv(t *testing.T) {
	t.Setenv("CATALOG_SERVER_PORT", "4000")
	t.Setenv("CATALOG_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_LegacyEnv(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("JWT_SECRET", "legacy")
	t.Setenv("DB_DIALECT", "postgresql")
	t.Setenv("DB_HOST", "pg")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASSWORD", "p")
	t.Setenv("DB_NAME", "books")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "legacy", cfg.JWT.Secret)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "pg", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "books", cfg.Database.DBName)
}

func TestLoad_PrefixedEnvWinsOverLegacy(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("CATALOG_SERVER_PORT", "6000")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6000, cfg.Server.Port)
}

func TestDatabaseConfig_MySQLDSN(t *testing.T) {
	d := DatabaseConfig{
		Driver:   "mysql",
		Host:     "localhost",
		Port:     3306,
		User:     "root",
		Password: "pw",
		DBName:   "catalog",
		Charset:  "utf8mb4",
		Loc:      "Asia/Shanghai",
	}
	assert.Equal(t, "root:pw@tcp(localhost:3306)/catalog?charset=utf8mb4&parseTime=true&loc=Asia%2FShanghai", d.DSN())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 3000, Mode: "debug"},
			Database: DatabaseConfig{Driver: "sqlite", Path: "x.db"},
			JWT:      JWTConfig{Secret: "s", Expire: time.Hour},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"valid", func(c *Config) {}, true},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, false},
		{"unknown driver", func(c *Config) { c.Database.Driver = "oracle" }, false},
		{"mysql without host", func(c *Config) { c.Database = DatabaseConfig{Driver: "mysql", DBName: "x"} }, false},
		{"empty secret", func(c *Config) { c.JWT.Secret = "" }, false},
		{"default secret in release", func(c *Config) {
			c.JWT.Secret = defaultJWTSecret
			c.Server.Mode = "release"
		}, false},
		{"default secret in debug", func(c *Config) { c.JWT.Secret = defaultJWTSecret }, true},
		{"zero expire", func(c *Config) { c.JWT.Expire = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
