package gen

import (
	"bytes"
	"sort"
	"strings"
	"text/template"

	"github.com/pikia/meta"
	"github.com/pikia/meta/schema"
	"github.com/pikia/meta/schema/property"
)

// CSharp is the C# dialect. It is the default dialect.
var CSharp Dialect = csharpDialect{}

type csharpType struct {
	name      string
	namespace string // required using directive, if any
}

var csharpTypes = map[property.Type]csharpType{
	property.TypeBool:    {name: "bool"},
	property.TypeString:  {name: "string"},
	property.TypeInt:     {name: "int"},
	property.TypeInt64:   {name: "long"},
	property.TypeFloat64: {name: "double"},
	property.TypeDecimal: {name: "decimal"},
	property.TypeTime:    {name: "DateTime", namespace: "System"},
	property.TypeUUID:    {name: "Guid", namespace: "System"},
	property.TypeBytes:   {name: "byte[]"},
}

// All layout of the emitted class lives in these templates: one blank line
// between property blocks, none before the closing brace.
var csharpTemplate = template.Must(template.New("csharp").Parse(`
{{- define "class" }}{{ with .Header }}{{ . }}

{{ end }}{{ range .Usings }}using {{ . }};
{{ end }}{{ if .Usings }}
{{ end }}{{ with .Namespace }}namespace {{ . }};

{{ end }}public class {{ .Name }}{{ with .Base }} : {{ . }}{{ end }}
{
{{ range $i, $p := .Properties }}{{ if $i }}
{{ end }}{{ template "property" $p }}{{ end }}}
{{ end }}

{{- define "property" }}{{ .In }}private {{ .Type }} {{ .Field }};
{{ with .Comment }}{{ $.In }}/// <summary>{{ . }}</summary>
{{ end }}{{ .In }}public {{ .Type }} {{ .Name }}
{{ .In }}{
{{ .In2 }}get => {{ .Field }};
{{ .In2 }}set => {{ .Hook }}("{{ .Name }}", ref {{ .Field }}, value);
{{ .In }}}
{{ end }}`))

type (
	csharpClass struct {
		Header     string
		Usings     []string
		Namespace  string
		Name       string
		Base       string
		Properties []csharpProperty
	}
	csharpProperty struct {
		Name    string
		Field   string
		Type    string
		Hook    string
		Comment string
		In, In2 string
	}
)

var csharpKeywords = func() map[string]struct{} {
	words := strings.Fields(`abstract as base bool break byte case catch char checked class
		const continue decimal default delegate do double else enum event explicit extern
		false finally fixed float for foreach goto if implicit in int interface internal is
		lock long namespace new null object operator out override params private protected
		public readonly ref return sbyte sealed short sizeof stackalloc static string struct
		switch this throw true try typeof uint ulong unchecked unsafe ushort using virtual
		void volatile while`)
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\r\n", " ", "\n", " ")

type csharpDialect struct{}

func (csharpDialect) Name() string { return "csharp" }

func (csharpDialect) FileName(class string) string { return class + ".cs" }

func (csharpDialect) Resolve(t property.Type) bool {
	_, ok := csharpTypes[t]
	return ok
}

// Reserved reports the C# keywords. Contextual keywords such as value or
// get are valid identifiers.
func (csharpDialect) Reserved(name string) bool {
	_, ok := csharpKeywords[name]
	return ok
}

func (d csharpDialect) Render(cfg *Config, c *schema.Class) ([]byte, error) {
	view, err := d.view(cfg, c)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := csharpTemplate.ExecuteTemplate(&buf, "class", view); err != nil {
		return nil, NewGenerationError(c.Name(), "", "execute template", err)
	}
	return buf.Bytes(), nil
}

// view resolves every property before anything is written.
func (d csharpDialect) view(cfg *Config, c *schema.Class) (*csharpClass, error) {
	in := strings.Repeat(" ", cfg.Indent)
	view := &csharpClass{
		Header:    cfg.Header,
		Namespace: cfg.Namespace,
		Name:      c.Name(),
		Base:      cfg.Base,
	}
	usings := make(map[string]struct{})
	names := newMembers(c.Name())
	names.reserve(c.Name(), "the class name")
	names.reserve(cfg.Hook, "the hook method")
	for _, p := range c.Properties() {
		typ, ok := csharpTypes[p.Type()]
		if !ok {
			return nil, meta.NewUnresolvedTypeError(c.Name(), p.Name(), p.Type().String(), d.Name())
		}
		if err := names.declare(p.Name(), p.Name(), BackingField(p.Name())); err != nil {
			return nil, err
		}
		if typ.namespace != "" {
			usings[typ.namespace] = struct{}{}
		}
		name := typ.name
		if p.Nillable() {
			name += "?"
		}
		view.Properties = append(view.Properties, csharpProperty{
			Name:    p.Name(),
			Field:   BackingField(p.Name()),
			Type:    name,
			Hook:    cfg.Hook,
			Comment: xmlEscaper.Replace(p.Comment()),
			In:      in,
			In2:     in + in,
		})
	}
	for ns := range usings {
		view.Usings = append(view.Usings, ns)
	}
	sort.Strings(view.Usings)
	return view, nil
}
