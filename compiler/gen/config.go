package gen

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pikia/meta/schema/property"
)

// Defaults applied by NewGenerator to unset configuration values.
const (
	DefaultDialect = "csharp"
	DefaultHook    = "SetPropertyValue"
	DefaultIndent  = 2
)

// Config holds the global configuration of the generator.
// The zero value is valid and yields the defaults above.
type Config struct {
	// Dialect selects the output language: "csharp" or "go".
	Dialect string `yaml:"dialect,omitempty"`
	// Namespace of the generated class. For C# it is emitted as a
	// file-scoped namespace, for Go it is the package name.
	Namespace string `yaml:"namespace,omitempty"`
	// Header is written verbatim at the top of the output.
	Header string `yaml:"header,omitempty"`
	// Base is the type the generated class inherits (C#) or embeds (Go).
	// It is expected to provide the change-notification hook.
	Base string `yaml:"base,omitempty"`
	// Hook is the name of the method every setter delegates to.
	Hook string `yaml:"hook,omitempty"`
	// Indent is the number of spaces per indentation level (C# only).
	Indent int `yaml:"indent,omitempty"`

	dialect Dialect
}

// LoadConfig reads a YAML configuration file.
//
//	dialect: csharp
//	namespace: Pikia.Model
//	header: // <auto-generated />
//	base: ObservableObject
//	hook: SetPropertyValue
//	indent: 4
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Option: "ConfigFile", Value: path, Message: "cannot open", Cause: err}
	}
	defer f.Close()
	return ReadConfig(f)
}

// ReadConfig decodes a YAML configuration. Unknown keys are rejected.
func ReadConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	c := &Config{}
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ConfigError{Option: "ConfigFile", Message: "cannot decode", Cause: err}
	}
	return c, nil
}

// merge copies the values set in o into c.
func (c *Config) merge(o *Config) {
	if o.Dialect != "" {
		c.Dialect = o.Dialect
		c.dialect = nil
	}
	if o.Namespace != "" {
		c.Namespace = o.Namespace
	}
	if o.Header != "" {
		c.Header = o.Header
	}
	if o.Base != "" {
		c.Base = o.Base
	}
	if o.Hook != "" {
		c.Hook = o.Hook
	}
	if o.Indent != 0 {
		c.Indent = o.Indent
	}
}

// complete fills in defaults and validates the configuration.
func (c *Config) complete() error {
	if c.dialect != nil {
		c.Dialect = c.dialect.Name()
	} else {
		if c.Dialect == "" {
			c.Dialect = DefaultDialect
		}
		d, ok := dialects[c.Dialect]
		if !ok {
			return NewConfigError("Dialect", c.Dialect, fmt.Sprintf("unsupported dialect; use one of %s", strings.Join(DialectNames(), ", ")))
		}
		c.dialect = d
	}
	if c.Hook == "" {
		c.Hook = DefaultHook
	}
	if property.ValidName(c.Hook) != nil {
		return NewConfigError("Hook", c.Hook, "hook must be an identifier")
	}
	switch {
	case c.Indent == 0:
		c.Indent = DefaultIndent
	case c.Indent < 0 || c.Indent > 16:
		return NewConfigError("Indent", c.Indent, "indent must be between 1 and 16")
	}
	if c.Namespace != "" {
		for _, part := range strings.Split(c.Namespace, ".") {
			if property.ValidName(part) != nil {
				return NewConfigError("Namespace", c.Namespace, "namespace must be a dotted identifier")
			}
		}
	}
	if strings.ContainsAny(c.Base, "\n\r;{}") {
		return NewConfigError("Base", c.Base, "base type contains invalid characters")
	}
	c.Header = strings.TrimRight(c.Header, "\n")
	return nil
}
