package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/juhanify-labs/juhanify/internal/manifest"
	"github.com/juhanify-labs/juhanify/internal/project"
	"github.com/juhanify-labs/juhanify/internal/registry"
)

func TestNewVars(t *testing.T) {
	v := NewVars("my-app")
	if v.Name != "my-app" {
		t.Errorf("Name = %q, want %q", v.Name, "my-app")
	}
	if v.Version != "0.1.0" {
		t.Errorf("Version = %q, want %q", v.Version, "0.1.0")
	}
	if v.Year == 0 {
		t.Error("Year should not be zero")
	}
	if got := v.Lookup(registry.VarYear); got == "" {
		t.Error("Lookup(year) should not be empty")
	}
	if got := v.Lookup("nope"); got != "" {
		t.Errorf("Lookup(nope) = %q, want empty", got)
	}
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		tokens map[string]string
		want   string
	}{
		{
			name:   "every occurrence",
			text:   "<title>$PROJECT_NAME$</title><h1>$PROJECT_NAME$</h1>",
			tokens: map[string]string{"$PROJECT_NAME$": "my-app"},
			want:   "<title>my-app</title><h1>my-app</h1>",
		},
		{
			name:   "no tokens present",
			text:   "plain text",
			tokens: map[string]string{"$PROJECT_NAME$": "my-app"},
			want:   "plain text",
		},
		{
			name:   "replacement is not rescanned",
			text:   "$A$ $B$",
			tokens: map[string]string{"$A$": "$B$", "$B$": "b"},
			want:   "$B$ b",
		},
		{
			name:   "longest token wins",
			text:   "$NAME$ $NAME$_LONG",
			tokens: map[string]string{"$NAME$": "x", "$NAME$_LONG": "y"},
			want:   "x y",
		},
		{
			name:   "empty map",
			text:   "$PROJECT_NAME$",
			tokens: nil,
			want:   "$PROJECT_NAME$",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Substitute(tt.text, tt.tokens); got != tt.want {
				t.Errorf("Substitute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateDefault(t *testing.T) {
	p := newProject(t, "my-app")
	reg := registry.Builtin()

	result, err := Generate(p, reg.Resolve("default"), reg.Payloads(), NewVars("my-app"))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	assertFiles(t, result, []string{
		"public/", "src/", "public/index.html", "src/index.jsx", "src/index.css",
		"package.json", ".gitignore", "esbuild.config.dev.mjs", "esbuild.config.prod.mjs", "README.md",
	})

	html := readGenerated(t, p.Path, "public/index.html")
	assertContains(t, html, "<title>my-app</title>")
	assertNotContains(t, html, "$PROJECT_NAME$")

	readme := readGenerated(t, p.Path, "README.md")
	assertNotContains(t, readme, "$YEAR$")

	pkg := readGenerated(t, p.Path, "package.json")
	assertContains(t, pkg, `"name": "my-app"`)
	assertContains(t, pkg, `"version": "0.1.0"`)
	assertContains(t, pkg, `"start": "node esbuild.config.dev.mjs"`)
	assertManifestValid(t, p.Path, "package.json")

	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestGenerateCopiesBytes(t *testing.T) {
	p := newProject(t, "copy-app")
	reg := registry.Builtin()

	if _, err := Generate(p, reg.Resolve("default"), reg.Payloads(), NewVars("copy-app")); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	want, err := os.ReadFile(filepath.Join("..", "registry", "templates", "default", "esbuild.config.prod.mjs"))
	if err != nil {
		t.Fatalf("reading payload: %v", err)
	}
	got := readGenerated(t, p.Path, "esbuild.config.prod.mjs")
	if got != string(want) {
		t.Error("copied file differs from its payload")
	}
}

func TestGenerateJest(t *testing.T) {
	p := newProject(t, "tested")
	reg := registry.Builtin()

	result, err := Generate(p, reg.Resolve("jest"), reg.Payloads(), NewVars("tested"))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for _, f := range []string{"tests/App.test.js", "jest.config.js", "src/App.jsx"} {
		if _, err := os.Stat(filepath.Join(p.Path, filepath.FromSlash(f))); err != nil {
			t.Errorf("expected %s: %v", f, err)
		}
	}
	pkg := readGenerated(t, p.Path, "package.json")
	assertContains(t, pkg, `"name": "tested"`)
	assertContains(t, pkg, `"test": "jest"`)
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestGenerateOptionalFields(t *testing.T) {
	p := newProject(t, "described")
	reg := registry.Builtin()

	vars := NewVars("described")
	vars.Description = "A demo"
	vars.Author = "Ada <ada@example.com>"
	if _, err := Generate(p, reg.Resolve("default"), reg.Payloads(), vars); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	pkg := readGenerated(t, p.Path, "package.json")
	assertContains(t, pkg, `"description": "A demo"`)
	assertContains(t, pkg, `"author": "Ada <ada@example.com>"`)
}

func TestGenerateRootExists(t *testing.T) {
	p := newProject(t, "taken")
	if err := os.Mkdir(p.Path, 0755); err != nil {
		t.Fatal(err)
	}

	reg := registry.Builtin()
	_, err := Generate(p, reg.Resolve("default"), reg.Payloads(), NewVars("taken"))
	if !errors.Is(err, ErrDirectoryCreation) {
		t.Fatalf("error = %v, want ErrDirectoryCreation", err)
	}
}

func TestGenerateMissingPayload(t *testing.T) {
	p := newProject(t, "broken")
	tmpl := &registry.Template{
		ID: "broken",
		Files: []registry.FileSpec{
			{Dest: "a.txt", Kind: registry.KindCopy, Source: "broken/a.txt"},
			{Dest: "b.txt", Kind: registry.KindCopy, Source: "broken/missing.txt"},
		},
	}
	payloads := fstest.MapFS{"broken/a.txt": {Data: []byte("a")}}

	_, err := Generate(p, tmpl, payloads, NewVars("broken"))
	if !errors.Is(err, ErrFileWrite) {
		t.Fatalf("error = %v, want ErrFileWrite", err)
	}
	// Earlier files stay on disk.
	if got := readGenerated(t, p.Path, "a.txt"); got != "a" {
		t.Errorf("a.txt = %q, want %q", got, "a")
	}
}

func TestGenerateMalformedManifest(t *testing.T) {
	p := newProject(t, "badjson")
	tmpl := &registry.Template{
		ID: "badjson",
		Files: []registry.FileSpec{
			{Dest: "package.json", Kind: registry.KindManifest, Source: "badjson/package.json",
				Fields: []registry.Field{{Name: "name", Var: registry.VarName}}},
		},
	}
	payloads := fstest.MapFS{"badjson/package.json": {Data: []byte(`{"name": `)}}

	_, err := Generate(p, tmpl, payloads, NewVars("badjson"))
	if !errors.Is(err, manifest.ErrParse) {
		t.Fatalf("error = %v, want manifest.ErrParse", err)
	}
	if _, err := os.Stat(filepath.Join(p.Path, "package.json")); !os.IsNotExist(err) {
		t.Error("package.json should not be written")
	}
}

func TestGenerateRejectsEscapingDest(t *testing.T) {
	p := newProject(t, "escape")
	tmpl := &registry.Template{
		ID:    "escape",
		Files: []registry.FileSpec{{Dest: "../outside", Kind: registry.KindDirectory}},
	}

	_, err := Generate(p, tmpl, fstest.MapFS{}, NewVars("escape"))
	if err == nil {
		t.Fatal("expected error for escaping destination")
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(p.Path), "outside")); !os.IsNotExist(err) {
		t.Error("directory outside the project root was created")
	}
}

func TestGenerateSchemaWarnings(t *testing.T) {
	p := newProject(t, "Upper_Case")
	tmpl := &registry.Template{
		ID: "warn",
		Files: []registry.FileSpec{
			{Dest: "package.json", Kind: registry.KindManifest, Source: "warn/package.json",
				Fields: []registry.Field{{Name: "name", Var: registry.VarName}}},
		},
	}
	payloads := fstest.MapFS{"warn/package.json": {Data: []byte(`{"name": "x"}`)}}

	result, err := Generate(p, tmpl, payloads, NewVars("Upper_Case"))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a schema warning for an uppercase package name")
	}
	assertContains(t, readGenerated(t, p.Path, "package.json"), `"name": "Upper_Case"`)
}

func newProject(t *testing.T, name string) *project.Project {
	t.Helper()
	p, err := project.New(name, t.TempDir())
	if err != nil {
		t.Fatalf("project.New(%q): %v", name, err)
	}
	return p
}

func readGenerated(t *testing.T, dir, filename string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(filename)))
	if err != nil {
		t.Fatalf("reading %s: %v", filename, err)
	}
	return string(data)
}

func assertFiles(t *testing.T, result *Result, expected []string) {
	t.Helper()
	if len(result.Files) != len(expected) {
		t.Fatalf("Files = %v, want %v", result.Files, expected)
	}
	for i, f := range expected {
		if result.Files[i] != f {
			t.Errorf("Files[%d] = %q, want %q", i, result.Files[i], f)
		}
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("expected content to contain %q, got:\n%s", substr, content)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("expected content not to contain %q", substr)
	}
}

func assertManifestValid(t *testing.T, dir, filename string) {
	t.Helper()
	result, err := manifest.ValidateFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("validating %s: %v", filename, err)
	}
	if !result.Valid {
		t.Errorf("%s has schema issues: %v", filename, result.Issues)
	}
}
