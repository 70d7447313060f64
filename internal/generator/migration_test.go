package generator

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMigration(t *testing.T) {
	fsys := afero.NewMemMapFs()
	var out bytes.Buffer
	now := time.Date(2025, 8, 24, 12, 17, 15, 0, time.UTC)

	paths, err := NewMigration(fsys, &out, "", "Create Users!", now)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	assert.Equal(t, "db/migrations/20250824121715_createusers.up.sql", paths[0])
	assert.Equal(t, "db/migrations/20250824121715_createusers.down.sql", paths[1])

	up, err := afero.ReadFile(fsys, paths[0])
	require.NoError(t, err)
	content := string(up)
	assert.Contains(t, content, "-- revision: ")
	assert.Contains(t, content, "-- migration: createusers")

	// Revision is a 26 character ULID.
	for _, line := range strings.Split(content, "\n") {
		if rev, ok := strings.CutPrefix(line, "-- revision: "); ok {
			assert.Len(t, rev, 26)
		}
	}
}

func TestNewMigrationSnakeCaseNamePreserved(t *testing.T) {
	fsys := afero.NewMemMapFs()
	now := time.Date(2025, 8, 24, 12, 18, 28, 0, time.UTC)

	paths, err := NewMigration(fsys, &bytes.Buffer{}, "", "create_posts", now)
	require.NoError(t, err)
	assert.Equal(t, "db/migrations/20250824121828_create_posts.up.sql", paths[0])
}

func TestNewMigrationRefusesDuplicate(t *testing.T) {
	fsys := afero.NewMemMapFs()
	now := time.Now()

	_, err := NewMigration(fsys, &bytes.Buffer{}, "", "create_posts", now)
	require.NoError(t, err)

	_, err = NewMigration(fsys, &bytes.Buffer{}, "", "create_posts", now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestNewMigrationRejectsEmptyName(t *testing.T) {
	fsys := afero.NewMemMapFs()
	_, err := NewMigration(fsys, &bytes.Buffer{}, "", "!!!", time.Now())
	require.Error(t, err)
}
