package gen

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pikia/meta"
	"github.com/pikia/meta/schema"
)

// Writer renders classes in parallel and writes one file per class.
type Writer struct {
	gen     *Generator
	outDir  string
	workers int
	logger  *slog.Logger

	// Metrics for performance monitoring
	mu      sync.Mutex
	metrics WriterMetrics
}

// WriterMetrics tracks generation results.
type WriterMetrics struct {
	FilesGenerated int
	TotalBytes     int64
}

// NewWriter creates a writer that stores files generated by g in outDir.
func NewWriter(g *Generator, outDir string) *Writer {
	return &Writer{
		gen:     g,
		outDir:  outDir,
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.Default(),
	}
}

// WithWorkers sets the number of parallel workers.
func (w *Writer) WithWorkers(n int) *Writer {
	if n > 0 {
		w.workers = n
	}
	return w
}

// WithLogger sets the logger used to report written files.
func (w *Writer) WithLogger(l *slog.Logger) *Writer {
	if l != nil {
		w.logger = l
	}
	return w
}

// Metrics returns a snapshot of the generation metrics.
func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// fileTask represents a single rendered class.
type fileTask struct {
	class *schema.Class
	name  string // output file name (relative to outDir)
	src   []byte
}

// WriteAll renders all classes and writes them to the output directory.
// Rendering completes for every class before the first file is written,
// so a class that fails to render leaves the directory untouched.
func (w *Writer) WriteAll(ctx context.Context, classes ...*schema.Class) error {
	d := w.gen.Dialect()
	tasks := make([]fileTask, len(classes))
	seen := make(map[string]string, len(classes))
	for i, c := range classes {
		if c == nil {
			return fmt.Errorf("class at position %d: %w", i, meta.ErrNullInput)
		}
		name := d.FileName(c.Name())
		if other, ok := seen[name]; ok {
			return NewGenerationError(c.Name(), name, "file name collides with class "+other, nil)
		}
		seen[name] = c.Name()
		tasks[i] = fileTask{class: c, name: name}
	}

	eg, rctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for i := range tasks {
		eg.Go(func() error {
			if err := rctx.Err(); err != nil {
				return err
			}
			src, err := w.gen.GenerateBytes(tasks[i].class)
			if err != nil {
				return err
			}
			tasks[i].src = src
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return NewGenerationError("", w.outDir, "create output directory", err)
	}
	eg, wctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for _, f := range tasks {
		eg.Go(func() error {
			select {
			case <-wctx.Done():
				return wctx.Err()
			default:
				return w.writeFile(f)
			}
		})
	}
	return eg.Wait()
}

func (w *Writer) writeFile(f fileTask) error {
	path := filepath.Join(w.outDir, f.name)
	if err := os.WriteFile(path, f.src, 0o644); err != nil {
		return NewGenerationError(f.class.Name(), path, "write file", err)
	}
	w.mu.Lock()
	w.metrics.FilesGenerated++
	w.metrics.TotalBytes += int64(len(f.src))
	w.mu.Unlock()
	w.logger.Debug("generated class", "class", f.class.Name(), "file", path, "bytes", len(f.src))
	return nil
}
