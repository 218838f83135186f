package registry

// Kind selects how a FileSpec is materialized.
type Kind string

const (
	KindDirectory  Kind = "directory"  // create the directory and missing parents
	KindCopy       Kind = "copy"       // byte-for-byte copy of the payload
	KindSubstitute Kind = "substitute" // literal token replacement in a text payload
	KindManifest   Kind = "manifest"   // rewrite named fields of a JSON manifest
)

// Variable names a template may bind tokens and manifest fields to.
const (
	VarName        = "name"
	VarDescription = "description"
	VarVersion     = "version"
	VarAuthor      = "author"
	VarYear        = "year"
)

// KnownVars lists every variable a run provides.
var KnownVars = []string{VarName, VarDescription, VarVersion, VarAuthor, VarYear}

// Template is an ordered set of materialization instructions plus the
// packages the new project depends on.
type Template struct {
	ID              string     `yaml:"-"`
	Description     string     `yaml:"description"`
	Files           []FileSpec `yaml:"files"`
	Dependencies    []string   `yaml:"dependencies,omitempty"`
	DevDependencies []string   `yaml:"devDependencies,omitempty"`
}

// FileSpec is one materialization instruction. Dest and Source use forward
// slashes; Dest is relative to the project root and Source is relative to the
// registry's payload root.
type FileSpec struct {
	Dest    string            `yaml:"dest"`
	Kind    Kind              `yaml:"kind"`
	Source  string            `yaml:"source,omitempty"`
	Replace map[string]string `yaml:"replace,omitempty"` // token -> variable
	Fields  []Field           `yaml:"fields,omitempty"`
}

// Field binds a top-level manifest field to a variable.
type Field struct {
	Name string `yaml:"field"`
	Var  string `yaml:"var"`
}
