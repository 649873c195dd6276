// Package gen generates class source code from class descriptors.
//
// # Architecture
//
// The generation pipeline follows this flow:
//
//	property.Descriptor (name + value type)
//	        ↓
//	schema.Class (ordered properties)
//	        ↓
//	Generator (configuration + dialect)
//	        ↓
//	source text
//
// Each property of the class becomes a private backing field, named by an
// underscore and the property name with its first character lower-cased,
// and a public accessor pair whose setter delegates to a hook method:
//
//	public class Testis
//	{
//	  private string _ime;
//	  public string Ime
//	  {
//	    get => _ime;
//	    set => SetPropertyValue("Ime", ref _ime, value);
//	  }
//	}
//
// The hook is not generated. The class is expected to implement or inherit
// it (see WithBase), which is where change notification plugs in.
//
// # Dialects
//
// Two dialects are built in:
//
//   - csharp (default): rendered with text/template
//   - go: rendered with Jennifer; setters are SetName methods calling
//     t.SetPropertyValue("Name", &t._name, value)
//
// Custom dialects implement the Dialect interface and are selected with
// WithCustomDialect.
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	g, err := gen.NewGenerator(
//	    gen.WithDialect("csharp"),
//	    gen.WithNamespace("Pikia.Model"),
//	    gen.WithHeader("// <auto-generated />"),
//	    gen.WithIndent(4),
//	)
//
// or from a YAML file:
//
//	g, err := gen.NewGenerator(gen.WithConfigFile("metagen.yaml"))
//
// # Error Handling
//
//   - meta.ErrNullInput: Generate was called with a nil class
//   - meta.UnresolvedTypeError: a property type has no mapping in the dialect
//   - ConfigError: invalid options or configuration file
//   - GenerationError: template, formatter or file system failures
//
// Generation is all-or-nothing: on error no text is returned.
//
// # Writing Files
//
// Writer renders many classes in parallel and writes one file per class:
//
//	w := gen.NewWriter(g, "./model").WithWorkers(4)
//	err := w.WriteAll(ctx, classes...)
package gen
