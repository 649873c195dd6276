package gen

import (
	"github.com/pikia/meta"
	"github.com/pikia/meta/schema"
)

// Generator renders class descriptors to source text.
//
// A Generator is immutable once created and safe for concurrent use.
// Generation reads only the given class and has no side effects.
type Generator struct {
	cfg Config
}

// NewGenerator creates a generator from the given options.
//
// Example:
//
//	g, err := gen.NewGenerator(
//	    gen.WithNamespace("Pikia.Model"),
//	    gen.WithBase("ObservableObject"),
//	)
//	src, err := g.Generate(class)
func NewGenerator(opts ...Option) (*Generator, error) {
	cfg := Config{}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.complete(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg}, nil
}

// Config returns a copy of the effective configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Dialect returns the output language of the generator.
func (g *Generator) Dialect() Dialect {
	return g.cfg.dialect
}

// Generate returns the source text of the class.
//
// It fails with meta.ErrNullInput if c is nil, with an invalid descriptor
// error if a name is a keyword of the dialect or two generated members
// collide, and with an unresolved type error naming the first property
// whose type the dialect cannot map. On failure no text is returned.
func (g *Generator) Generate(c *schema.Class) (string, error) {
	b, err := g.GenerateBytes(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// GenerateBytes is like Generate but returns the text as a byte slice.
func (g *Generator) GenerateBytes(c *schema.Class) ([]byte, error) {
	if c == nil {
		return nil, meta.ErrNullInput
	}
	d := g.cfg.dialect
	if d.Reserved(c.Name()) {
		return nil, meta.NewDescriptorError(c.Name(), "", "class name is reserved in "+d.Name())
	}
	for _, p := range c.Properties() {
		if d.Reserved(p.Name()) {
			return nil, meta.NewDescriptorError(c.Name(), p.Name(), "property name is reserved in "+d.Name())
		}
	}
	for _, p := range c.Properties() {
		if !d.Resolve(p.Type()) {
			return nil, meta.NewUnresolvedTypeError(c.Name(), p.Name(), p.Type().String(), d.Name())
		}
	}
	cfg := g.cfg
	b, err := d.Render(&cfg, c)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Generate renders the class with the default configuration: C#, two
// spaces of indentation and the SetPropertyValue hook.
func Generate(c *schema.Class) (string, error) {
	g, err := NewGenerator()
	if err != nil {
		return "", err
	}
	return g.Generate(c)
}
