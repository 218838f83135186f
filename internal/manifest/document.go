package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// ErrParse is returned when a manifest payload is not a well-formed JSON object.
var ErrParse = errors.New("manifest parse error")

// indent is the re-serialization indentation. Width 0 keeps every array
// element on its own line, matching JSON.stringify(v, null, 2).
var indent = &pretty.Options{Width: 0, Prefix: "", Indent: "  ", SortKeys: false}

// Document is a JSON object whose key order survives edits.
type Document struct {
	raw []byte
}

// Parse validates data as a JSON object and wraps it in a Document.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrParse)
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrParse)
	}
	raw := make([]byte, len(data))
	copy(raw, data)
	return &Document{raw: raw}, nil
}

// Get returns the string form of a top-level field.
func (d *Document) Get(field string) (string, bool) {
	res := gjson.GetBytes(d.raw, escapePath(field))
	if !res.Exists() {
		return "", false
	}
	return res.String(), true
}

// Set overwrites a top-level field with a string value. Existing fields keep
// their position; new fields are appended.
func (d *Document) Set(field, value string) error {
	if field == "" {
		return fmt.Errorf("empty field name")
	}
	out, err := sjson.SetBytes(d.raw, escapePath(field), value)
	if err != nil {
		return fmt.Errorf("setting %q: %w", field, err)
	}
	d.raw = out
	return nil
}

// Bytes returns the document with stable two-space indentation and a
// trailing newline.
func (d *Document) Bytes() []byte {
	return pretty.PrettyOptions(d.raw, indent)
}

// Keys returns the top-level field names in document order.
func (d *Document) Keys() []string {
	var keys []string
	gjson.ParseBytes(d.raw).ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys
}

// FieldValue is one field assignment applied by Rewrite.
type FieldValue struct {
	Field string
	Value string
}

// Rewrite parses data, applies the assignments in order, and returns the
// re-serialized document.
func Rewrite(data []byte, values []FieldValue) ([]byte, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if err := doc.Set(v.Field, v.Value); err != nil {
			return nil, err
		}
	}
	return doc.Bytes(), nil
}

// escapePath makes a field name safe to use as a single gjson/sjson path
// component.
func escapePath(field string) string {
	var b strings.Builder
	for _, r := range field {
		switch r {
		case '\\', '.', '*', '?', '|', '#', '@', '!', '=', '<', '>', '%', ':':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
