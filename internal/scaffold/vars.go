package scaffold

import (
	"strconv"
	"time"

	"github.com/juhanify-labs/juhanify/internal/registry"
)

// DefaultVersion is the version written into new manifests.
const DefaultVersion = "0.1.0"

// Vars holds every value a template token or manifest field can resolve to.
type Vars struct {
	Name        string // e.g., "my-app"
	Description string // optional
	Version     string // semver, e.g., "0.1.0"
	Author      string // optional, e.g., "Ada Lovelace <ada@example.com>"
	Year        int    // current year
}

// NewVars creates Vars for a project name with defaults populated.
func NewVars(name string) *Vars {
	return &Vars{
		Name:    name,
		Version: DefaultVersion,
		Year:    time.Now().Year(),
	}
}

// Lookup returns the value bound to a registry variable name.
func (v *Vars) Lookup(name string) string {
	switch name {
	case registry.VarName:
		return v.Name
	case registry.VarDescription:
		return v.Description
	case registry.VarVersion:
		return v.Version
	case registry.VarAuthor:
		return v.Author
	case registry.VarYear:
		if v.Year == 0 {
			return ""
		}
		return strconv.Itoa(v.Year)
	default:
		return ""
	}
}
