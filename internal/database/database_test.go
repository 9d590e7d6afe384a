package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poseidon/internal/config"
)

func TestConfigURLs(t *testing.T) {
	cfg := NewConfig(&config.Config{
		DBDriver: "postgres", DBHost: "db", DBPort: "5432",
		DBUser: "u", DBPassword: "p", DBName: "poseidon", DBSSLMode: "disable",
	})

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=poseidon sslmode=disable", cfg.DSN())
	assert.Equal(t, "postgres://u:p@db:5432/poseidon?sslmode=disable", cfg.MigrateURL())
}

func TestSQLiteManager(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poseidon.db")
	m, err := NewManager(&Config{Driver: "sqlite", Path: path})
	require.NoError(t, err)
	defer func() { _ = m.Close() }()

	require.NoError(t, m.RunMigrations())

	for _, table := range []string{"bid_list", "curve_point", "rating", "rule_name", "trade", "users", "audit_logs"} {
		assert.True(t, m.DB().Migrator().HasTable(table), "table %s", table)
	}
}
