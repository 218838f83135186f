package registry

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

// Validate checks the template's structural invariants against the payload
// filesystem:
//   - every Dest is a clean, local, unique path;
//   - every file spec's parent is the project root or a directory created by
//     an earlier spec;
//   - sources exist, and every token and field binds to a known variable;
//   - a manifest spec always rewrites the "name" field.
func (t *Template) Validate(payloads fs.FS) error {
	if len(t.Files) == 0 {
		return fmt.Errorf("no files declared")
	}

	seen := make(map[string]bool, len(t.Files))
	dirs := map[string]bool{".": true}

	for i, spec := range t.Files {
		where := fmt.Sprintf("files[%d] (%s)", i, spec.Dest)

		if spec.Dest == "." || !fs.ValidPath(spec.Dest) || path.Clean(spec.Dest) != spec.Dest || strings.ContainsAny(spec.Dest, `\:`) {
			return fmt.Errorf("%s: destination must be a clean relative path", where)
		}
		if seen[spec.Dest] {
			return fmt.Errorf("%s: duplicate destination", where)
		}
		seen[spec.Dest] = true

		if spec.Kind == KindDirectory {
			if spec.Source != "" || len(spec.Replace) > 0 || len(spec.Fields) > 0 {
				return fmt.Errorf("%s: directory spec takes no source, replace or fields", where)
			}
			for d := spec.Dest; d != "."; d = path.Dir(d) {
				dirs[d] = true
			}
			continue
		}

		if !dirs[path.Dir(spec.Dest)] {
			return fmt.Errorf("%s: parent directory %q is not created before this file", where, path.Dir(spec.Dest))
		}
		if err := checkSource(payloads, spec.Source); err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}

		switch spec.Kind {
		case KindCopy:
			if len(spec.Replace) > 0 || len(spec.Fields) > 0 {
				return fmt.Errorf("%s: copy spec takes no replace or fields", where)
			}
		case KindSubstitute:
			if len(spec.Replace) == 0 {
				return fmt.Errorf("%s: substitute spec declares no tokens", where)
			}
			for token, v := range spec.Replace {
				if token == "" {
					return fmt.Errorf("%s: empty token", where)
				}
				if !slices.Contains(KnownVars, v) {
					return fmt.Errorf("%s: token %q bound to unknown variable %q", where, token, v)
				}
			}
		case KindManifest:
			hasName := false
			for _, f := range spec.Fields {
				if f.Name == "" {
					return fmt.Errorf("%s: empty field name", where)
				}
				if !slices.Contains(KnownVars, f.Var) {
					return fmt.Errorf("%s: field %q bound to unknown variable %q", where, f.Name, f.Var)
				}
				if f.Name == "name" {
					hasName = true
				}
			}
			if !hasName {
				return fmt.Errorf("%s: manifest spec must rewrite the name field", where)
			}
		default:
			return fmt.Errorf("%s: unknown kind %q", where, spec.Kind)
		}
	}

	return nil
}

func checkSource(payloads fs.FS, src string) error {
	if src == "" {
		return fmt.Errorf("missing source")
	}
	info, err := fs.Stat(payloads, src)
	if err != nil {
		return fmt.Errorf("source %q: %w", src, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("source %q is not a regular file", src)
	}
	return nil
}
