// Package generator implements the orbin code generators: application
// scaffolding, RESTful resource handlers and SQL migrations.
package generator

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/marceloribeiro/orbin/internal/embed"
	"github.com/marceloribeiro/orbin/internal/infra/fs"
	"github.com/marceloribeiro/orbin/internal/pkg/naming"
)

// AppGenerator creates a new orbin application skeleton.
type AppGenerator struct {
	fsys    afero.Fs
	out     io.Writer
	appName string
	module  string
	appPath string
}

// NewAppGenerator validates the app name and prepares a generator.
// targetDir defaults to the current directory; module defaults to the app name.
func NewAppGenerator(fsys afero.Fs, out io.Writer, appName, targetDir, module string) (*AppGenerator, error) {
	if !naming.IsValidAppName(appName) {
		return nil, fmt.Errorf("app name %q is not a valid identifier (letters, digits and underscores; must not start with a digit)", appName)
	}
	if targetDir == "" {
		targetDir = "."
	}
	if module == "" {
		module = appName
	}
	return &AppGenerator{
		fsys:    fsys,
		out:     out,
		appName: appName,
		module:  module,
		appPath: filepath.Join(targetDir, appName),
	}, nil
}

// AppPath returns the directory the application will be generated into.
func (g *AppGenerator) AppPath() string {
	return g.appPath
}

// Generate creates the complete application structure. On failure after
// partial generation the app directory is removed.
func (g *AppGenerator) Generate() error {
	if fs.Exists(g.fsys, g.appPath) {
		return fmt.Errorf("directory %s already exists", g.appPath)
	}

	if err := g.generate(); err != nil {
		g.fsys.RemoveAll(g.appPath)
		return err
	}

	fmt.Fprintf(g.out, "\nCreated application %q at %s\n", g.appName, g.appPath)
	fmt.Fprintf(g.out, "To get started:\n")
	fmt.Fprintf(g.out, "  cd %s\n", g.appName)
	fmt.Fprintf(g.out, "  go mod tidy\n")
	fmt.Fprintf(g.out, "  go run ./cmd/server\n")
	return nil
}

func (g *AppGenerator) generate() error {
	requiredDirs := []string{
		filepath.Join(g.appPath, "cmd", "server"),
		filepath.Join(g.appPath, "internal", "config"),
		filepath.Join(g.appPath, "internal", "handlers"),
		filepath.Join(g.appPath, "internal", "models"),
		filepath.Join(g.appPath, "config"),
		filepath.Join(g.appPath, "db", "migrations"),
	}
	for _, d := range requiredDirs {
		if err := g.fsys.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", d, err)
		}
	}

	templates, err := embed.GetTemplates(embed.Context{AppName: g.appName, Module: g.module})
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	for _, tmpl := range templates {
		dest := filepath.Join(g.appPath, tmpl.Path)
		if err := fs.WriteFileAtomic(g.fsys, dest, tmpl.Content); err != nil {
			return fmt.Errorf("failed to write %s: %w", tmpl.Path, err)
		}
		fmt.Fprintf(g.out, "WROTE: %s\n", dest)
	}

	// Keep the empty migrations directory in version control.
	keep := filepath.Join(g.appPath, "db", "migrations", ".keep")
	if err := fs.WriteFileAtomic(g.fsys, keep, []byte{}); err != nil {
		return fmt.Errorf("failed to write %s: %w", keep, err)
	}

	return nil
}
