package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.Equal(t, "warn", cfg.DBLogLevel)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_PATH", "/tmp/blog.db")
	t.Setenv("APP_ENV", "development")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/blog.db", cfg.DBPath)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"postgres ok", Config{DBDriver: DriverPostgres, DBHost: "db", DBUser: "u", DBName: "n"}, false},
		{"postgres missing host", Config{DBDriver: DriverPostgres, DBUser: "u", DBName: "n"}, true},
		{"sqlite ok", Config{DBDriver: DriverSQLite, DBPath: "x.db"}, false},
		{"sqlite missing path", Config{DBDriver: DriverSQLite}, true},
		{"unknown driver", Config{DBDriver: "mysql"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := Config{DBHost: "db", DBPort: 5433, DBUser: "blog", DBPassword: "secret", DBName: "posts", DBSSLMode: "require"}
	assert.Equal(t, "host=db port=5433 user=blog password=secret dbname=posts sslmode=require", cfg.DSN())
}
