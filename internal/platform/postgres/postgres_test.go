package postgres

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_ArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Fatalf("unexpected file in migrations: %s", name)
		}
	}

	for version := range ups {
		assert.True(t, downs[version], "migration %s has no down file", version)
	}
	for version := range downs {
		assert.True(t, ups[version], "migration %s has no up file", version)
	}
}

func migrationSQL(t *testing.T, name string) string {
	t.Helper()
	b, err := fs.ReadFile(migrationsFS, "migrations/"+name)
	require.NoError(t, err)
	return strings.Join(strings.Fields(string(b)), " ")
}

func TestMigrations_DefineDedupeKey(t *testing.T) {
	sql := migrationSQL(t, "000001_create_transactions.up.sql")
	assert.Contains(t, sql, "dedupe_key TEXT NOT NULL UNIQUE")
}

func TestMigrations_AmountColumnWidth(t *testing.T) {
	// twelve integer digits and two decimals, matching the import parser
	sql := migrationSQL(t, "000001_create_transactions.up.sql")
	assert.Contains(t, sql, "amount NUMERIC(14, 2) NOT NULL")
}
