package embed

import (
	"strings"
	"testing"
)

func TestGetTemplates(t *testing.T) {
	ctx := Context{AppName: "blog", Module: "github.com/acme/blog"}

	templates, err := GetTemplates(ctx)
	if err != nil {
		t.Fatalf("GetTemplates() error = %v", err)
	}
	if len(templates) == 0 {
		t.Fatal("GetTemplates() returned no templates")
	}

	byPath := map[string]Template{}
	for _, tmpl := range templates {
		byPath[tmpl.Path] = tmpl
	}

	// Every scaffold file the generator promises must be present.
	wantPaths := []string{
		"go.mod",
		"cmd/server/main.go",
		"internal/config/config.go",
		"internal/handlers/health.go",
		"internal/handlers/health_test.go",
		"internal/models/models.go",
		"config/database.yml",
		".env",
		".gitignore",
		"README.md",
	}
	for _, path := range wantPaths {
		if _, ok := byPath[path]; !ok {
			t.Errorf("missing template for %s", path)
		}
	}

	// Template suffixes and embed-safe dotfile names must not leak through.
	for path := range byPath {
		if strings.HasSuffix(path, ".tmpl") {
			t.Errorf("unrendered template path: %s", path)
		}
	}
	if _, ok := byPath["gitignore"]; ok {
		t.Error("gitignore was not renamed to .gitignore")
	}

	gomod := string(byPath["go.mod"].Content)
	if !strings.Contains(gomod, "module github.com/acme/blog") {
		t.Errorf("go.mod not rendered with module path: %q", gomod)
	}

	dbYml := string(byPath["config/database.yml"].Content)
	if !strings.Contains(dbYml, "blog_dev") {
		t.Errorf("database.yml not rendered with app name: %q", dbYml)
	}

	mainGo := string(byPath["cmd/server/main.go"].Content)
	if !strings.Contains(mainGo, `"github.com/acme/blog/internal/config"`) {
		t.Errorf("main.go import not rendered: %q", mainGo)
	}
}
