package schema

import (
	"fmt"
	"go/token"
	"reflect"
	"slices"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"github.com/pikia/meta"
	"github.com/pikia/meta/schema/property"
)

// Class describes one generatable class: its name and the properties it
// owns, in insertion order.
//
// A Class is populated by its caller before generation and read-only
// afterwards. It is not safe to call Add concurrently with generation.
type Class struct {
	name  string
	props []*property.Descriptor
	index map[string]int
}

// NewClass returns a class descriptor with the given name and properties.
// It fails with an invalid descriptor error if the name is not an
// identifier, or if any property is nil, was built with an error, or
// reuses the name of another property.
func NewClass(name string, props ...*property.Descriptor) (*Class, error) {
	name = norm.NFC.String(name)
	if name == "" {
		return nil, meta.NewDescriptorError("", "", "class name is empty")
	}
	if err := property.ValidName(name); err != nil {
		return nil, meta.NewDescriptorError(name, "", "class name is not an identifier")
	}
	c := &Class{
		name:  name,
		props: make([]*property.Descriptor, 0, len(props)),
		index: make(map[string]int, len(props)),
	}
	if err := c.Add(props...); err != nil {
		return nil, err
	}
	return c, nil
}

// ClassFor returns a class descriptor named after the Go type T.
func ClassFor[T any](props ...*property.Descriptor) (*Class, error) {
	t, err := namedType[T]()
	if err != nil {
		return nil, err
	}
	return NewClass(t.Name(), props...)
}

// ClassForStrict is like ClassFor, but every property must also name an
// exported field or method of T.
func ClassForStrict[T any](props ...*property.Descriptor) (*Class, error) {
	t, err := namedType[T]()
	if err != nil {
		return nil, err
	}
	c, err := NewClass(t.Name(), props...)
	if err != nil {
		return nil, err
	}
	for _, p := range c.props {
		if !hasMember(t, p.Name()) {
			return nil, meta.NewDescriptorError(c.name, p.Name(), "type "+t.String()+" has no exported field or method "+p.Name())
		}
	}
	return c, nil
}

func namedType[T any]() (reflect.Type, error) {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return nil, meta.NewDescriptorError("", "", "type "+t.String()+" has no name")
	}
	return t, nil
}

// hasMember reports if name is an exported field of the struct t or a
// method of *t.
func hasMember(t reflect.Type, name string) bool {
	if !token.IsExported(name) {
		return false
	}
	if t.Kind() == reflect.Struct {
		if f, ok := t.FieldByName(name); ok && f.IsExported() {
			return true
		}
	}
	_, ok := reflect.PointerTo(t).MethodByName(name)
	return ok
}

// Add appends properties to the class. Either all properties are added,
// or none and an invalid descriptor error is returned.
func (c *Class) Add(props ...*property.Descriptor) error {
	seen := make(map[string]struct{}, len(props))
	for i, p := range props {
		switch {
		case p == nil:
			return meta.NewDescriptorError(c.name, "", "property at position "+strconv.Itoa(i)+" is nil")
		case p.Err() != nil:
			return fmt.Errorf("class %s: %w", c.name, p.Err())
		}
		if _, ok := c.index[p.Name()]; ok {
			return meta.NewDescriptorError(c.name, p.Name(), "property redeclared")
		}
		if _, ok := seen[p.Name()]; ok {
			return meta.NewDescriptorError(c.name, p.Name(), "property redeclared")
		}
		seen[p.Name()] = struct{}{}
	}
	for _, p := range props {
		c.index[p.Name()] = len(c.props)
		c.props = append(c.props, p)
	}
	return nil
}

// Name returns the name of the generated class.
func (c *Class) Name() string { return c.name }

// Properties returns the properties of the class in insertion order.
// The returned slice is a copy.
func (c *Class) Properties() []*property.Descriptor {
	return slices.Clone(c.props)
}

// Property returns the property with the given name.
func (c *Class) Property(name string) (*property.Descriptor, bool) {
	i, ok := c.index[norm.NFC.String(name)]
	if !ok {
		return nil, false
	}
	return c.props[i], true
}

// Len returns the number of properties.
func (c *Class) Len() int { return len(c.props) }

// Mixin is a reusable set of properties shared by several classes.
// Mixins are passed by value; a nil pointer is rejected by Mix.
type Mixin interface {
	Properties() []*property.Descriptor
}

// Mix appends the properties of the given mixins in order. Like Add,
// either all properties are added or none.
func (c *Class) Mix(mixins ...Mixin) error {
	var props []*property.Descriptor
	for i, m := range mixins {
		if m == nil || isNilPointer(m) {
			return meta.NewDescriptorError(c.name, "", "mixin at position "+strconv.Itoa(i)+" is nil")
		}
		props = append(props, m.Properties()...)
	}
	return c.Add(props...)
}

func isNilPointer(m Mixin) bool {
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
