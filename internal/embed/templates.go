// Package embed carries the file templates used by "orbin create" to
// scaffold a new application.
package embed

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"text/template"
)

//go:embed all:templates
var templatesFS embed.FS

// Template represents one rendered file to be written into a new application.
type Template struct {
	Path    string
	Content []byte
	Mode    os.FileMode
}

// Context is the data available to the scaffold templates.
type Context struct {
	AppName string // application name, e.g. "blog"
	Module  string // Go module path of the generated app, e.g. "blog" or "github.com/acme/blog"
}

// Embedded files cannot start with a dot, so dotfiles are stored under a
// plain name and renamed at render time.
var destRenames = map[string]string{
	"gitignore": ".gitignore",
	"env":       ".env",
}

// GetTemplates renders all scaffold templates with the given context.
func GetTemplates(ctx Context) ([]Template, error) {
	var templates []Template

	err := fs.WalkDir(templatesFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		raw, err := templatesFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		content := raw
		destPath := strings.TrimPrefix(path, "templates/")
		if strings.HasSuffix(destPath, ".tmpl") {
			destPath = strings.TrimSuffix(destPath, ".tmpl")
			content, err = render(path, raw, ctx)
			if err != nil {
				return err
			}
		}
		if renamed, ok := destRenames[destPath]; ok {
			destPath = renamed
		}

		templates = append(templates, Template{
			Path:    destPath,
			Content: content,
			Mode:    0o644,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return templates, nil
}

func render(name string, raw []byte, ctx Context) ([]byte, error) {
	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
