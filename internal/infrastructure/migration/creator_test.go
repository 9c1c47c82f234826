package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "Add Scheme Tables")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(mf.UpPath, "_add_scheme_tables.up.sql"))
	assert.True(t, strings.HasSuffix(mf.DownPath, "_add_scheme_tables.down.sql"))

	upContent, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(upContent), "Add Scheme Tables")

	downContent, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(downContent), "Rollback")
}

func TestCreateMigration_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "migrations")

	_, err := CreateMigration(dir, "init")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Add Scheme Tables", "add_scheme_tables"},
		{"fix-ledger-index", "fix_ledger_index"},
		{"already_clean", "already_clean"},
		{"trailing space ", "trailing_space"},
		{"special!@#chars", "specialchars"},
		{"v2 migration", "v2_migration"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, sanitizeName(tt.input), "input: %q", tt.input)
	}
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()

	_, err := CreateMigration(dir, "first")
	require.NoError(t, err)

	migrations, err := ListMigrations(dir)
	require.NoError(t, err)
	require.Len(t, migrations, 1)
	assert.True(t, strings.HasSuffix(migrations[0], "_first"))
}

func TestListMigrations_MissingDirectory(t *testing.T) {
	migrations, err := ListMigrations(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Empty(t, migrations)
}
