package gen

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pikia/meta"
	"github.com/pikia/meta/schema"
	"github.com/pikia/meta/schema/property"
)

func TestWriter_WriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "model")
	g, err := NewGenerator()
	require.NoError(t, err)

	oseba, err := schema.NewClass("Oseba", property.Int("Starost").Descriptor())
	require.NoError(t, err)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	w := NewWriter(g, dir).WithWorkers(2).WithLogger(logger)
	require.NoError(t, w.WriteAll(context.Background(), testis(t), oseba))

	got, err := os.ReadFile(filepath.Join(dir, "Testis.cs"))
	require.NoError(t, err)
	assert.Equal(t, testisCSharp, string(got))
	assert.FileExists(t, filepath.Join(dir, "Oseba.cs"))

	m := w.Metrics()
	assert.Equal(t, 2, m.FilesGenerated)
	assert.Greater(t, m.TotalBytes, int64(len(testisCSharp)))
	assert.Contains(t, logs.String(), "generated class")
	assert.Contains(t, logs.String(), "class=Testis")
}

func TestWriter_GoDialect(t *testing.T) {
	dir := t.TempDir()
	g, err := NewGenerator(WithDialect("go"))
	require.NoError(t, err)

	c, err := schema.NewClass("PersonRecord", property.String("Name").Descriptor())
	require.NoError(t, err)
	require.NoError(t, NewWriter(g, dir).WriteAll(context.Background(), c))
	assert.FileExists(t, filepath.Join(dir, "person_record.go"))
}

func TestWriter_NilClass(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	g, err := NewGenerator()
	require.NoError(t, err)

	err = NewWriter(g, dir).WriteAll(context.Background(), testis(t), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, meta.ErrNullInput))
	assert.Contains(t, err.Error(), "position 1")
	assert.NoDirExists(t, dir)
}

func TestWriter_FileNameCollision(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)

	err = NewWriter(g, t.TempDir()).WriteAll(context.Background(), testis(t), testis(t))
	require.Error(t, err)
	assert.True(t, IsGenerationError(err))
	assert.Contains(t, err.Error(), "collides with class Testis")
}

func TestWriter_RenderFailureWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	g, err := NewGenerator()
	require.NoError(t, err)

	bad, err := property.New("Bad", property.TypeInvalid)
	require.NoError(t, err)
	broken, err := schema.NewClass("Broken", bad)
	require.NoError(t, err)

	w := NewWriter(g, dir)
	err = w.WriteAll(context.Background(), testis(t), broken)
	require.Error(t, err)
	assert.True(t, meta.IsUnresolvedType(err))
	assert.NoDirExists(t, dir)
	assert.Zero(t, w.Metrics().FilesGenerated)
}

func TestWriter_Canceled(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	g, err := NewGenerator()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = NewWriter(g, dir).WriteAll(ctx, testis(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.NoFileExists(t, filepath.Join(dir, "Testis.cs"))
}
