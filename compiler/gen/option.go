package gen

// Option configures code generation.
type Option func(*Config) error

// WithDialect selects the output language by name.
// Supported dialects: "csharp", "go".
func WithDialect(name string) Option {
	return func(c *Config) error {
		if _, ok := dialects[name]; !ok {
			return NewConfigError("Dialect", name, "unsupported dialect")
		}
		c.Dialect = name
		c.dialect = nil
		return nil
	}
}

// WithCustomDialect sets a dialect implementation that is not built in.
func WithCustomDialect(d Dialect) Option {
	return func(c *Config) error {
		if d == nil {
			return NewConfigError("Dialect", nil, "dialect cannot be nil")
		}
		c.dialect = d
		return nil
	}
}

// WithNamespace sets the namespace (C#) or package name (Go) of the output.
func WithNamespace(ns string) Option {
	return func(c *Config) error {
		c.Namespace = ns
		return nil
	}
}

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithBase sets the base type of the generated class.
func WithBase(base string) Option {
	return func(c *Config) error {
		c.Base = base
		return nil
	}
}

// WithHook sets the name of the change-notification hook called by setters.
func WithHook(hook string) Option {
	return func(c *Config) error {
		if hook == "" {
			return NewConfigError("Hook", nil, "hook cannot be empty")
		}
		c.Hook = hook
		return nil
	}
}

// WithIndent sets the number of spaces per indentation level.
func WithIndent(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("Indent", n, "indent must be positive")
		}
		c.Indent = n
		return nil
	}
}

// WithConfig merges the values set in cfg into the configuration.
func WithConfig(cfg *Config) Option {
	return func(c *Config) error {
		if cfg == nil {
			return NewConfigError("Config", nil, "config cannot be nil")
		}
		c.merge(cfg)
		if cfg.dialect != nil {
			c.dialect = cfg.dialect
		}
		return nil
	}
}

// WithConfigFile merges the values of a YAML configuration file.
// Options given after it override the file.
func WithConfigFile(path string) Option {
	return func(c *Config) error {
		cfg, err := LoadConfig(path)
		if err != nil {
			return err
		}
		c.merge(cfg)
		return nil
	}
}
