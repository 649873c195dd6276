package gen

import (
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pikia/meta"
)

// BackingField returns the name of the private field storing a property:
// an underscore followed by the property name with its first character
// lower-cased. A one-character name is lower-cased entirely.
//
//	Ime     => _ime
//	Priimek => _priimek
//	A       => _a
func BackingField(name string) string {
	return "_" + lowerFirst(name)
}

// SetterName returns the name of the Go setter method of a property.
func SetterName(name string) string {
	return "Set" + upperFirst(name)
}

// receiver returns the receiver name used in methods of the given type.
func receiver(class string) string {
	r, size := utf8.DecodeRuneInString(class)
	if r == utf8.RuneError || r == '_' {
		return "x"
	}
	return lowerFirst(class[:size])
}

// members tracks the identifiers declared by a generated class. Fields,
// methods and properties share one namespace in both dialects.
type members struct {
	class string
	owner map[string]string
}

func newMembers(class string) *members {
	return &members{class: class, owner: make(map[string]string)}
}

// reserve marks name as taken by something other than a property.
func (m *members) reserve(name, owner string) {
	if name != "" {
		m.owner[name] = owner
	}
}

// declare adds the members generated for property prop.
func (m *members) declare(prop string, names ...string) error {
	for _, name := range names {
		if owner, ok := m.owner[name]; ok {
			return meta.NewDescriptorError(m.class, prop, "generated member "+name+" collides with "+owner)
		}
		m.owner[name] = "property " + strconv.Quote(prop)
	}
	return nil
}

// lowerFirst lower-cases the first rune of s. Casers are stateful, so one
// is created per call.
func lowerFirst(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return cases.Lower(language.Und).String(s[:size]) + s[size:]
}

func upperFirst(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}
