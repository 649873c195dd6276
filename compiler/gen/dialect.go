package gen

import (
	"sort"

	"github.com/pikia/meta/schema"
	"github.com/pikia/meta/schema/property"
)

// Dialect renders a class descriptor in one output language.
//
// The generator checks every name with Reserved and resolves every
// property type with Resolve before calling Render, so Render only sees
// classes whose names and types are usable.
type Dialect interface {
	// Name returns the name the dialect is selected by.
	Name() string
	// FileName returns the name of the file holding the given class.
	FileName(class string) string
	// Resolve reports whether the value type maps to a type of the language.
	Resolve(t property.Type) bool
	// Reserved reports whether name is a keyword of the language and so
	// cannot name a class or a property.
	Reserved(name string) bool
	// Render returns the source text of the class.
	Render(cfg *Config, c *schema.Class) ([]byte, error)
}

var dialects = map[string]Dialect{
	CSharp.Name(): CSharp,
	Go.Name():     Go,
}

// DialectNames returns the names of the built-in dialects, sorted.
func DialectNames() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
