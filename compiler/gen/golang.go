package gen

import (
	"bytes"
	"go/token"
	"reflect"
	"strings"
	"time"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pikia/meta"
	"github.com/pikia/meta/schema"
	"github.com/pikia/meta/schema/property"
)

// Go is the Go dialect. Properties become unexported struct fields with a
// getter named after the property and a SetName setter that delegates to
// the hook method of the receiver.
var Go Dialect = goDialect{}

type goDialect struct{}

func (goDialect) Name() string { return "go" }

// FileName returns the snake_case file name of the class.
func (goDialect) FileName(class string) string {
	return inflect.Underscore(class) + ".go"
}

func (goDialect) Resolve(t property.Type) bool {
	_, ok := goType(t)
	return ok
}

// Reserved reports the Go keywords.
func (goDialect) Reserved(name string) bool {
	return token.IsKeyword(name)
}

// goTypeIdent returns the identifier the type expression of t refers to
// in the generated file: a predeclared type or a package name.
func goTypeIdent(t property.Type) string {
	switch t {
	case property.TypeDecimal:
		return "decimal"
	case property.TypeTime:
		return "time"
	case property.TypeUUID:
		return "uuid"
	case property.TypeBytes:
		return "byte"
	default:
		return t.String()
	}
}

// goType returns a fresh statement for the Go type of t.
func goType(t property.Type) (*jen.Statement, bool) {
	switch t {
	case property.TypeBool:
		return jen.Bool(), true
	case property.TypeString:
		return jen.String(), true
	case property.TypeInt:
		return jen.Int(), true
	case property.TypeInt64:
		return jen.Int64(), true
	case property.TypeFloat64:
		return jen.Float64(), true
	case property.TypeDecimal:
		return qualOf(decimal.Decimal{}), true
	case property.TypeTime:
		return qualOf(time.Time{}), true
	case property.TypeUUID:
		return qualOf(uuid.UUID{}), true
	case property.TypeBytes:
		return jen.Index().Byte(), true
	default:
		return nil, false
	}
}

// qualOf returns the qualified identifier of the named type of v.
func qualOf(v any) *jen.Statement {
	t := reflect.TypeOf(v)
	return jen.Qual(t.PkgPath(), t.Name())
}

type goProperty struct {
	desc  *property.Descriptor
	field string
	typ   *jen.Statement
}

func (d goDialect) Render(cfg *Config, c *schema.Class) ([]byte, error) {
	props := make([]goProperty, 0, c.Len())
	names := newMembers(c.Name())
	names.reserve(cfg.Hook, "the hook method")
	if cfg.Base != "" {
		base := cfg.Base
		if i := strings.LastIndexByte(base, '.'); i >= 0 {
			base = base[i+1:]
		}
		names.reserve(base, "the embedded base type")
	}
	for _, p := range c.Properties() {
		typ, ok := goType(p.Type())
		if !ok {
			return nil, meta.NewUnresolvedTypeError(c.Name(), p.Name(), p.Type().String(), d.Name())
		}
		if ident := goTypeIdent(p.Type()); ident == c.Name() {
			return nil, meta.NewDescriptorError(c.Name(), p.Name(), "class name shadows "+ident+" used by the property type")
		}
		if err := names.declare(p.Name(), p.Name(), BackingField(p.Name()), SetterName(p.Name())); err != nil {
			return nil, err
		}
		if p.Nillable() && p.Type() != property.TypeBytes {
			typ = jen.Op("*").Add(typ)
		}
		props = append(props, goProperty{desc: p, field: BackingField(p.Name()), typ: typ})
	}

	f := jen.NewFile(goPackage(cfg, c))
	if cfg.Header != "" {
		f.HeaderComment(cfg.Header)
	}
	name, recv := c.Name(), receiver(c.Name())
	f.Type().Id(name).StructFunc(func(g *jen.Group) {
		if cfg.Base != "" {
			g.Add(goBase(cfg.Base))
		}
		for _, p := range props {
			g.Id(p.field).Add(p.typ)
		}
	}).Line()
	for _, p := range props {
		if comment := p.desc.Comment(); comment != "" {
			f.Comment(p.desc.Name() + " " + comment)
		}
		f.Func().Params(jen.Id(recv).Op("*").Id(name)).Id(p.desc.Name()).Params().Add(p.typ.Clone()).Block(
			jen.Return(jen.Id(recv).Dot(p.field)),
		).Line()
		f.Func().Params(jen.Id(recv).Op("*").Id(name)).Id(SetterName(p.desc.Name())).Params(jen.Id("value").Add(p.typ.Clone())).Block(
			jen.Id(recv).Dot(cfg.Hook).Call(jen.Lit(p.desc.Name()), jen.Op("&").Id(recv).Dot(p.field), jen.Id("value")),
		).Line()
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, NewGenerationError(c.Name(), "", "render go source", err)
	}
	return buf.Bytes(), nil
}

// goPackage returns the package clause name: the last element of the
// namespace, or the lower-cased class name.
func goPackage(cfg *Config, c *schema.Class) string {
	ns := cfg.Namespace
	if i := strings.LastIndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	if ns == "" {
		ns = c.Name()
	}
	return strings.ToLower(ns)
}

// goBase returns the embedded base type. A base of the form
// "import/path.Name" is qualified.
func goBase(base string) *jen.Statement {
	if i := strings.LastIndexByte(base, '.'); i > 0 && strings.Contains(base[:i], "/") {
		return jen.Qual(base[:i], base[i+1:])
	}
	return jen.Id(base)
}
