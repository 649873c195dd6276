package property

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/pikia/meta"
)

// A Descriptor describes one property of a class: its name and its
// semantic value type. Descriptors are immutable once built.
type Descriptor struct {
	name     string
	typ      Type
	nillable bool
	comment  string
	err      error
}

// New returns a descriptor for the property name of the given type.
// It fails with an invalid descriptor error if the name is empty or
// is not an identifier.
func New(name string, t Type) (*Descriptor, error) {
	d := newDescriptor(name, t)
	if d.err != nil {
		return nil, d.err
	}
	return d, nil
}

func newDescriptor(name string, t Type) *Descriptor {
	name = norm.NFC.String(name)
	d := &Descriptor{name: name, typ: t}
	d.err = ValidName(name)
	return d
}

// Name returns the declared name of the property.
func (d *Descriptor) Name() string { return d.name }

// Type returns the semantic value type of the property.
func (d *Descriptor) Type() Type { return d.typ }

// Nillable reports if the property may hold no value.
func (d *Descriptor) Nillable() bool { return d.nillable }

// Comment returns the documentation attached to the property.
func (d *Descriptor) Comment() string { return d.comment }

// Err returns the error recorded while the descriptor was built, if any.
func (d *Descriptor) Err() error { return d.err }

// ValidName reports an invalid descriptor error if name is not an
// identifier: a letter or underscore followed by letters, digits or
// underscores.
func ValidName(name string) error {
	if name == "" {
		return meta.NewDescriptorError("", "", "property name is empty")
	}
	if !utf8.ValidString(name) {
		return meta.NewDescriptorError("", name, "property name is not valid UTF-8")
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return meta.NewDescriptorError("", name, "property name is not an identifier")
	}
	return nil
}

// Builder is the fluent builder for property descriptors.
type Builder struct {
	desc *Descriptor
}

// Of returns a builder for a property of the given type.
func Of(name string, t Type) *Builder {
	return &Builder{desc: newDescriptor(name, t)}
}

// String returns a new builder for a string property.
func String(name string) *Builder { return Of(name, TypeString) }

// Bool returns a new builder for a boolean property.
func Bool(name string) *Builder { return Of(name, TypeBool) }

// Int returns a new builder for an int property.
func Int(name string) *Builder { return Of(name, TypeInt) }

// Int64 returns a new builder for an int64 property.
func Int64(name string) *Builder { return Of(name, TypeInt64) }

// Float64 returns a new builder for a float64 property.
func Float64(name string) *Builder { return Of(name, TypeFloat64) }

// Decimal returns a new builder for a fixed-point decimal property.
func Decimal(name string) *Builder { return Of(name, TypeDecimal) }

// Time returns a new builder for a timestamp property.
func Time(name string) *Builder { return Of(name, TypeTime) }

// UUID returns a new builder for a UUID property.
func UUID(name string) *Builder { return Of(name, TypeUUID) }

// Bytes returns a new builder for a byte slice property.
func Bytes(name string) *Builder { return Of(name, TypeBytes) }

// Nillable marks the property as able to hold no value.
// Dialects render it as a nullable or pointer type.
func (b *Builder) Nillable() *Builder {
	b.desc.nillable = true
	return b
}

// Comment sets the documentation of the property.
func (b *Builder) Comment(c string) *Builder {
	b.desc.comment = c
	return b
}

// Descriptor returns a snapshot of the property descriptor.
// Further builder calls do not affect the returned value.
func (b *Builder) Descriptor() *Descriptor {
	d := *b.desc
	return &d
}
