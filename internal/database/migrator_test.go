package database

import (
	"testing"
	"testing/fstest"

	"estate-backend/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAndReadEmbeddedMigrations(t *testing.T) {
	// Same arguments the server passes at startup
	m := NewMigrator(nil, migrations.FS, ".")

	files, err := m.listMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "001_init.sql", files[0])

	for _, name := range files {
		data, err := m.readMigration(name)
		require.NoError(t, err, "migration %s must be readable through the embedded FS", name)
		assert.NotEmpty(t, data)
	}
}

// Property deletion cascades to leases; the ledger FKs must detach rather
// than block the cascade or erase payment history.
func TestLeaseReferencesDetachOnDelete(t *testing.T) {
	m := NewMigrator(nil, migrations.FS, ".")

	data, err := m.readMigration("001_init.sql")
	require.NoError(t, err)
	schema := string(data)

	assert.Contains(t, schema, "lease_id INT REFERENCES leases(id) ON DELETE SET NULL")
	assert.NotContains(t, schema, "lease_id INT REFERENCES leases(id),")
}

func TestListMigrationsSortedAndFiltered(t *testing.T) {
	fsys := fstest.MapFS{
		"002_second.sql": {Data: []byte("SELECT 2")},
		"001_first.sql":  {Data: []byte("SELECT 1")},
		"notes.md":       {Data: []byte("not a migration")},
	}
	m := NewMigrator(nil, fsys, ".")

	files, err := m.listMigrations()
	require.NoError(t, err)
	assert.Equal(t, []string{"001_first.sql", "002_second.sql"}, files)

	data, err := m.readMigration("001_first.sql")
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", string(data))
}

func TestReadMigrationNestedRoot(t *testing.T) {
	fsys := fstest.MapFS{
		"db/001_first.sql": {Data: []byte("SELECT 1")},
	}
	m := NewMigrator(nil, fsys, "db")

	data, err := m.readMigration("001_first.sql")
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", string(data))
}
