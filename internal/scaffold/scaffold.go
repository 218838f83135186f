package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/juhanify-labs/juhanify/internal/manifest"
	"github.com/juhanify-labs/juhanify/internal/project"
	"github.com/juhanify-labs/juhanify/internal/registry"
)

var (
	// ErrDirectoryCreation is returned when the project root or a template
	// directory cannot be created.
	ErrDirectoryCreation = errors.New("directory creation failed")

	// ErrFileWrite is returned when a payload cannot be read or its
	// destination cannot be written.
	ErrFileWrite = errors.New("file write failed")
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Result holds the outcome of a materialization.
type Result struct {
	Root     string
	Files    []string // destinations in template order; directories end in "/"
	Warnings []string
}

// Generate creates p.Path and applies the template's file specs in order.
// Sources are read from payloads. On failure the partially written project
// is left on disk.
func Generate(p *project.Project, tmpl *registry.Template, payloads fs.FS, vars *Vars) (*Result, error) {
	// Mkdir, not MkdirAll: the root must not exist yet.
	if err := os.Mkdir(p.Path, dirPerm); err != nil {
		return nil, fmt.Errorf("%w: creating project root %s: %v", ErrDirectoryCreation, p.Path, err)
	}

	result := &Result{Root: p.Path}

	for _, spec := range tmpl.Files {
		rel := filepath.FromSlash(spec.Dest)
		if !filepath.IsLocal(rel) {
			return nil, fmt.Errorf("%w: %s escapes the project root", ErrFileWrite, spec.Dest)
		}
		target := filepath.Join(p.Path, rel)

		switch spec.Kind {
		case registry.KindDirectory:
			if err := os.MkdirAll(target, dirPerm); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrDirectoryCreation, spec.Dest, err)
			}
			result.Files = append(result.Files, spec.Dest+"/")
			continue

		case registry.KindCopy:
			data, err := readPayload(payloads, spec)
			if err != nil {
				return nil, err
			}
			if err := writeFile(target, data); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrFileWrite, spec.Dest, err)
			}

		case registry.KindSubstitute:
			data, err := readPayload(payloads, spec)
			if err != nil {
				return nil, err
			}
			out := Substitute(string(data), resolveTokens(spec.Replace, vars))
			if err := writeFile(target, []byte(out)); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrFileWrite, spec.Dest, err)
			}

		case registry.KindManifest:
			data, err := readPayload(payloads, spec)
			if err != nil {
				return nil, err
			}
			out, err := manifest.Rewrite(data, resolveFields(spec.Fields, vars))
			if err != nil {
				return nil, fmt.Errorf("rewriting %s from %s: %w", spec.Dest, spec.Source, err)
			}
			if err := writeFile(target, out); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrFileWrite, spec.Dest, err)
			}
			result.Warnings = append(result.Warnings, validateManifest(out)...)

		default:
			return nil, fmt.Errorf("%w: %s: unknown kind %q", ErrFileWrite, spec.Dest, spec.Kind)
		}

		result.Files = append(result.Files, spec.Dest)
	}

	return result, nil
}

// Substitute replaces every occurrence of each token in text with its value
// in a single left-to-right pass. Replacement text is never rescanned, so a
// value that happens to contain a token is written literally. When two tokens
// match at the same position the longer one wins.
func Substitute(text string, tokens map[string]string) string {
	if len(tokens) == 0 {
		return text
	}

	keys := make([]string, 0, len(tokens))
	for k := range tokens {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	oldnew := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		oldnew = append(oldnew, k, tokens[k])
	}
	return strings.NewReplacer(oldnew...).Replace(text)
}

func resolveTokens(replace map[string]string, vars *Vars) map[string]string {
	tokens := make(map[string]string, len(replace))
	for token, name := range replace {
		tokens[token] = vars.Lookup(name)
	}
	return tokens
}

// resolveFields maps manifest fields to values. Fields whose variable is
// empty are left as the payload has them, except name, which is always set.
func resolveFields(fields []registry.Field, vars *Vars) []manifest.FieldValue {
	values := make([]manifest.FieldValue, 0, len(fields))
	for _, f := range fields {
		v := vars.Lookup(f.Var)
		if v == "" && f.Name != "name" {
			continue
		}
		values = append(values, manifest.FieldValue{Field: f.Name, Value: v})
	}
	return values
}

func validateManifest(data []byte) []string {
	res, err := manifest.Validate(data)
	if err != nil {
		return []string{fmt.Sprintf("Could not validate package.json: %v", err)}
	}
	var warnings []string
	for _, issue := range res.Issues {
		warnings = append(warnings, "package.json "+issue.String())
	}
	return warnings
}

func readPayload(payloads fs.FS, spec registry.FileSpec) ([]byte, error) {
	data, err := fs.ReadFile(payloads, spec.Source)
	if err != nil {
		return nil, fmt.Errorf("%w: reading template payload %s: %v", ErrFileWrite, spec.Source, err)
	}
	return data, nil
}

// writeFile creates path exclusively so a racing entry, or a symlink planted
// in the fresh tree, is never written through.
func writeFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
