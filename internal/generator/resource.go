package generator

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/afero"

	"github.com/marceloribeiro/orbin/internal/infra/fs"
	"github.com/marceloribeiro/orbin/internal/pkg/naming"
)

// ResourceGenerator creates a RESTful handler for an existing model.
type ResourceGenerator struct {
	fsys  afero.Fs
	out   io.Writer
	dir   string
	res   naming.Resource
	Force bool
}

// NewResourceGenerator prepares a generator for the given raw model name,
// run from dir (the root of an orbin application).
func NewResourceGenerator(fsys afero.Fs, out io.Writer, model, dir string) (*ResourceGenerator, error) {
	res := naming.ForModel(model)
	if res.Singular == "" {
		return nil, fmt.Errorf("model name %q contains no usable characters", model)
	}
	if dir == "" {
		dir = "."
	}
	return &ResourceGenerator{fsys: fsys, out: out, dir: dir, res: res}, nil
}

// Generate writes the handler and its test stub.
func (g *ResourceGenerator) Generate() error {
	module, err := readModulePath(g.fsys, g.dir)
	if err != nil {
		return fmt.Errorf("not an orbin application directory: %w", err)
	}

	modelFile := filepath.Join(g.dir, "internal", "models", g.res.Singular+".go")
	if !fs.Exists(g.fsys, modelFile) {
		return fmt.Errorf("model %s not found at %s (create the model first)", g.res.Type, modelFile)
	}

	handlerFile := filepath.Join(g.dir, "internal", "handlers", g.res.Plural+"_handler.go")
	if fs.Exists(g.fsys, handlerFile) && !g.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", handlerFile)
	}

	ctx := resourceContext{Resource: g.res, Module: module}

	content, err := renderResource(handlerTemplate, ctx)
	if err != nil {
		return err
	}
	if err := fs.WriteFileAtomic(g.fsys, handlerFile, content); err != nil {
		return fmt.Errorf("failed to write %s: %w", handlerFile, err)
	}
	fmt.Fprintf(g.out, "WROTE: %s\n", handlerFile)

	testFile := filepath.Join(g.dir, "internal", "handlers", g.res.Plural+"_handler_test.go")
	if !fs.Exists(g.fsys, testFile) || g.Force {
		content, err := renderResource(handlerTestTemplate, ctx)
		if err != nil {
			return err
		}
		if err := fs.WriteFileAtomic(g.fsys, testFile, content); err != nil {
			return fmt.Errorf("failed to write %s: %w", testFile, err)
		}
		fmt.Fprintf(g.out, "WROTE: %s\n", testFile)
	}

	fmt.Fprintf(g.out, "\nGenerated RESTful handler for %s\n", g.res.Type)
	fmt.Fprintf(g.out, "Next steps:\n")
	fmt.Fprintf(g.out, "  1. Implement the action bodies in %s\n", handlerFile)
	fmt.Fprintf(g.out, "  2. Register %sHandler in your server setup\n", g.res.TypeList)
	return nil
}

type resourceContext struct {
	naming.Resource
	Module string
}

func renderResource(tmpl string, ctx resourceContext) ([]byte, error) {
	t, err := template.New("resource").Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse resource template: %w", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("failed to render resource template: %w", err)
	}
	return buf.Bytes(), nil
}

// readModulePath extracts the module path from the go.mod at dir.
func readModulePath(fsys afero.Fs, dir string) (string, error) {
	f, err := fsys.Open(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to open go.mod: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "module ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "module ")), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("no module directive in go.mod")
}

const handlerTemplate = `package handlers

import (
	"encoding/json"
	"net/http"

	"{{.Module}}/internal/models"
)

// {{.TypeList}}Handler implements the RESTful actions for the {{.Type}} model.
type {{.TypeList}}Handler struct{}

// Register attaches the {{.Singular}} routes to mux.
func (h {{.TypeList}}Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{{.Plural}}", h.Index)
	mux.HandleFunc("GET /{{.Plural}}/{id}", h.Show)
	mux.HandleFunc("POST /{{.Plural}}", h.Create)
	mux.HandleFunc("PUT /{{.Plural}}/{id}", h.Update)
	mux.HandleFunc("DELETE /{{.Plural}}/{id}", h.Destroy)
}

// Index lists all {{.Plural}}.
func (h {{.TypeList}}Handler) Index(w http.ResponseWriter, r *http.Request) {
	// TODO: fetch all {{.Plural}} from the database
	h.writeJSON(w, http.StatusOK, []models.{{.Type}}{})
}

// Show returns one {{.Singular}} by id.
func (h {{.TypeList}}Handler) Show(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	// TODO: fetch the {{.Singular}} with this id
	_ = id
	http.Error(w, "{{.Type}} not found", http.StatusNotFound)
}

// Create stores a new {{.Singular}}.
func (h {{.TypeList}}Handler) Create(w http.ResponseWriter, r *http.Request) {
	var {{.Singular}} models.{{.Type}}
	if err := json.NewDecoder(r.Body).Decode(&{{.Singular}}); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// TODO: persist the new {{.Singular}}
	h.writeJSON(w, http.StatusCreated, {{.Singular}})
}

// Update modifies an existing {{.Singular}}.
func (h {{.TypeList}}Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var {{.Singular}} models.{{.Type}}
	if err := json.NewDecoder(r.Body).Decode(&{{.Singular}}); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// TODO: update the {{.Singular}} with this id
	_ = id
	h.writeJSON(w, http.StatusOK, {{.Singular}})
}

// Destroy deletes a {{.Singular}} by id.
func (h {{.TypeList}}Handler) Destroy(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	// TODO: delete the {{.Singular}} with this id
	_ = id
	w.WriteHeader(http.StatusNoContent)
}

func (h {{.TypeList}}Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
`

const handlerTestTemplate = `package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func Test{{.TypeList}}Index(t *testing.T) {
	var h {{.TypeList}}Handler

	req := httptest.NewRequest(http.MethodGet, "/{{.Plural}}", nil)
	rec := httptest.NewRecorder()
	h.Index(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
`
