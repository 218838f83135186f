package registry

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"sort"
	"sync"

	"go.yaml.in/yaml/v3"
)

// DefaultID is the template used when none is selected.
const DefaultID = "default"

// manifestFile is the instruction file expected in every template directory.
const manifestFile = "template.yaml"

//go:embed templates
var templatesFS embed.FS

var (
	builtin     *Registry
	builtinOnce sync.Once
)

// Registry maps template ids to templates and serves their payloads.
type Registry struct {
	payloads  fs.FS
	templates map[string]*Template
	ids       []string
}

// Builtin returns the registry compiled into the binary. It panics if the
// embedded templates are inconsistent.
func Builtin() *Registry {
	builtinOnce.Do(func() {
		sub, err := fs.Sub(templatesFS, "templates")
		if err != nil {
			panic(fmt.Sprintf("registry: embedded templates: %v", err))
		}
		r, err := Load(sub)
		if err != nil {
			panic(fmt.Sprintf("registry: %v", err))
		}
		builtin = r
	})
	return builtin
}

// Load reads every <id>/template.yaml under fsys and validates it. Payload
// sources are resolved relative to the root of fsys, so one template may
// reuse another template's files.
func Load(fsys fs.FS) (*Registry, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading template root: %w", err)
	}

	r := &Registry{
		payloads:  fsys,
		templates: make(map[string]*Template),
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id := entry.Name()
		data, err := fs.ReadFile(fsys, path.Join(id, manifestFile))
		if err != nil {
			return nil, fmt.Errorf("template %q: reading %s: %w", id, manifestFile, err)
		}

		var t Template
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("template %q: parsing %s: %w", id, manifestFile, err)
		}
		t.ID = id

		if err := t.Validate(fsys); err != nil {
			return nil, fmt.Errorf("template %q: %w", id, err)
		}
		r.templates[id] = &t
		r.ids = append(r.ids, id)
	}

	if len(r.ids) == 0 {
		return nil, fmt.Errorf("no templates found")
	}
	sort.Strings(r.ids)
	return r, nil
}

// IDs returns the sorted template ids.
func (r *Registry) IDs() []string {
	return slices.Clone(r.ids)
}

// Has reports whether id names a template.
func (r *Registry) Has(id string) bool {
	_, ok := r.templates[id]
	return ok
}

// Resolve returns the template for id. Callers validate ids first, so an
// unknown id is a programming error and panics.
func (r *Registry) Resolve(id string) *Template {
	t, ok := r.templates[id]
	if !ok {
		panic(fmt.Sprintf("registry: unknown template %q reached Resolve", id))
	}
	return t
}

// Payloads returns the filesystem that FileSpec sources are read from.
func (r *Registry) Payloads() fs.FS {
	return r.payloads
}
