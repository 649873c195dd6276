// metagen generates the demo Testis class.
// Run: go run ./cmd/metagen -dialect go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pikia/meta/compiler/gen"
	"github.com/pikia/meta/schema"
	"github.com/pikia/meta/schema/property"
)

// Testis is the demo class. Its properties are declared below.
type Testis struct{}

func main() {
	var (
		config    = flag.String("config", "", "YAML configuration file")
		dialect   = flag.String("dialect", "", "output dialect (csharp, go)")
		namespace = flag.String("namespace", "", "namespace or package of the class")
		out       = flag.String("out", "", "output directory; print to stdout if empty")
		verbose   = flag.Bool("v", false, "log written files")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var opts []gen.Option
	if *config != "" {
		opts = append(opts, gen.WithConfigFile(*config))
	}
	if *dialect != "" {
		opts = append(opts, gen.WithDialect(*dialect))
	}
	if *namespace != "" {
		opts = append(opts, gen.WithNamespace(*namespace))
	}
	g, err := gen.NewGenerator(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	class, err := schema.ClassFor[Testis](
		property.String("Ime").Descriptor(),
		property.String("Priimek").Descriptor(),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid descriptor: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		src, err := g.Generate(class)
		if err != nil {
			fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(src)
		return
	}

	w := gen.NewWriter(g, *out).WithLogger(logger)
	if err := w.WriteAll(context.Background(), class); err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}
	m := w.Metrics()
	logger.Info("generation completed", "dir", *out, "files", m.FilesGenerated, "bytes", m.TotalBytes)
}
