package generator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppGeneratorGenerate(t *testing.T) {
	fsys := afero.NewMemMapFs()
	var out bytes.Buffer

	gen, err := NewAppGenerator(fsys, &out, "blog", "", "")
	require.NoError(t, err)
	require.NoError(t, gen.Generate())

	wantFiles := []string{
		"blog/go.mod",
		"blog/cmd/server/main.go",
		"blog/internal/config/config.go",
		"blog/internal/handlers/health.go",
		"blog/internal/handlers/health_test.go",
		"blog/internal/models/models.go",
		"blog/config/database.yml",
		"blog/.env",
		"blog/.gitignore",
		"blog/README.md",
		"blog/db/migrations/.keep",
	}
	for _, path := range wantFiles {
		exists, err := afero.Exists(fsys, path)
		require.NoError(t, err)
		assert.True(t, exists, "expected %s to be generated", path)
	}

	gomod, err := afero.ReadFile(fsys, "blog/go.mod")
	require.NoError(t, err)
	assert.Contains(t, string(gomod), "module blog")

	env, err := afero.ReadFile(fsys, "blog/.env")
	require.NoError(t, err)
	assert.Contains(t, string(env), "APP_NAME=blog")
	assert.Contains(t, string(env), "blog_dev")

	assert.Contains(t, out.String(), "WROTE:")
	assert.Contains(t, out.String(), `Created application "blog"`)
}

func TestAppGeneratorCustomModuleAndDir(t *testing.T) {
	fsys := afero.NewMemMapFs()
	var out bytes.Buffer

	gen, err := NewAppGenerator(fsys, &out, "blog", "workspace", "github.com/acme/blog")
	require.NoError(t, err)
	require.NoError(t, gen.Generate())

	gomod, err := afero.ReadFile(fsys, "workspace/blog/go.mod")
	require.NoError(t, err)
	assert.Contains(t, string(gomod), "module github.com/acme/blog")

	mainGo, err := afero.ReadFile(fsys, "workspace/blog/cmd/server/main.go")
	require.NoError(t, err)
	assert.Contains(t, string(mainGo), `"github.com/acme/blog/internal/handlers"`)
}

func TestAppGeneratorRejectsInvalidName(t *testing.T) {
	fsys := afero.NewMemMapFs()

	tests := []string{"", "2cool", "my-app", "my app"}
	for _, name := range tests {
		_, err := NewAppGenerator(fsys, &bytes.Buffer{}, name, "", "")
		assert.Error(t, err, "name %q should be rejected", name)
	}
}

func TestAppGeneratorRefusesExistingDirectory(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("blog", 0o755))

	gen, err := NewAppGenerator(fsys, &bytes.Buffer{}, "blog", "", "")
	require.NoError(t, err)

	err = gen.Generate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestAppGeneratorCleansUpOnFailure(t *testing.T) {
	// A read-only filesystem makes every write fail after validation passes.
	base := afero.NewMemMapFs()
	fsys := afero.NewReadOnlyFs(base)

	gen, err := NewAppGenerator(fsys, &bytes.Buffer{}, "blog", "", "")
	require.NoError(t, err)

	err = gen.Generate()
	require.Error(t, err)

	exists, _ := afero.Exists(base, "blog")
	assert.False(t, exists, "partial app directory should have been removed")
}

func TestAppGeneratorOutputMentionsNextSteps(t *testing.T) {
	fsys := afero.NewMemMapFs()
	var out bytes.Buffer

	gen, err := NewAppGenerator(fsys, &out, "shop", "", "")
	require.NoError(t, err)
	require.NoError(t, gen.Generate())

	for _, line := range []string{"cd shop", "go mod tidy", "go run ./cmd/server"} {
		if !strings.Contains(out.String(), line) {
			t.Errorf("output missing %q:\n%s", line, out.String())
		}
	}
}
