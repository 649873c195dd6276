package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pikia/meta"
	"github.com/pikia/meta/schema"
	"github.com/pikia/meta/schema/property"
)

type Testis struct{}

type Oseba struct {
	Ime    string
	hidden string
}

func (*Oseba) Priimek() string { return "" }

func TestNewClass(t *testing.T) {
	ime := property.String("Ime").Descriptor()
	priimek := property.String("Priimek").Descriptor()

	c, err := schema.NewClass("Testis", ime, priimek)
	require.NoError(t, err)
	assert.Equal(t, "Testis", c.Name())
	assert.Equal(t, 2, c.Len())

	props := c.Properties()
	require.Len(t, props, 2)
	assert.Same(t, ime, props[0])
	assert.Same(t, priimek, props[1])

	p, ok := c.Property("Priimek")
	require.True(t, ok)
	assert.Same(t, priimek, p)
	_, ok = c.Property("Missing")
	assert.False(t, ok)
}

func TestNewClass_Empty(t *testing.T) {
	c, err := schema.NewClass("Empty")
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.NotNil(t, c.Properties())
	assert.Empty(t, c.Properties())
}

func TestNewClass_InvalidName(t *testing.T) {
	for _, name := range []string{"", "1Class", "My Class"} {
		c, err := schema.NewClass(name)
		require.Error(t, err, name)
		assert.Nil(t, c)
		assert.True(t, meta.IsInvalidDescriptor(err), name)
	}
}

func TestNewClass_InvalidProperties(t *testing.T) {
	t.Run("nil property", func(t *testing.T) {
		_, err := schema.NewClass("Testis", property.String("Ime").Descriptor(), nil)
		require.Error(t, err)
		assert.True(t, meta.IsInvalidDescriptor(err))
		assert.Contains(t, err.Error(), "position 1 is nil")
	})

	t.Run("property built with error", func(t *testing.T) {
		_, err := schema.NewClass("Testis", property.String("").Descriptor())
		require.Error(t, err)
		assert.True(t, errors.Is(err, meta.ErrInvalidDescriptor))
		assert.Contains(t, err.Error(), "class Testis")
	})

	t.Run("duplicate names", func(t *testing.T) {
		_, err := schema.NewClass("Testis",
			property.String("Ime").Descriptor(),
			property.Int("Ime").Descriptor(),
		)
		require.Error(t, err)
		assert.True(t, meta.IsInvalidDescriptor(err))
		assert.EqualError(t, err, `meta: invalid descriptor on class Testis property "Ime": property redeclared`)
	})

	t.Run("same descriptor twice", func(t *testing.T) {
		ime := property.String("Ime").Descriptor()
		_, err := schema.NewClass("Testis", ime, ime)
		require.Error(t, err)
		assert.True(t, meta.IsInvalidDescriptor(err))
	})
}

func TestClass_Add(t *testing.T) {
	c, err := schema.NewClass("Testis")
	require.NoError(t, err)

	require.NoError(t, c.Add(property.String("Ime").Descriptor()))
	require.NoError(t, c.Add(property.String("Priimek").Descriptor(), property.Int("Starost").Descriptor()))

	var names []string
	for _, p := range c.Properties() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"Ime", "Priimek", "Starost"}, names)

	t.Run("all or nothing", func(t *testing.T) {
		err := c.Add(property.Bool("Aktiven").Descriptor(), property.String("Ime").Descriptor())
		require.Error(t, err)
		assert.True(t, meta.IsInvalidDescriptor(err))
		assert.Equal(t, 3, c.Len())
		_, ok := c.Property("Aktiven")
		assert.False(t, ok)
	})
}

func TestClass_PropertiesIsCopy(t *testing.T) {
	c, err := schema.NewClass("Testis", property.String("Ime").Descriptor())
	require.NoError(t, err)

	props := c.Properties()
	props[0] = property.String("Other").Descriptor()
	assert.Equal(t, "Ime", c.Properties()[0].Name())
}

func TestClass_OrderIsStable(t *testing.T) {
	names := []string{"Z", "A", "M", "B", "Y", "C", "X"}
	props := make([]*property.Descriptor, len(names))
	for i, n := range names {
		props[i] = property.String(n).Descriptor()
	}
	for range 10 {
		c, err := schema.NewClass("Ordered", props...)
		require.NoError(t, err)
		for i, p := range c.Properties() {
			assert.Equal(t, names[i], p.Name())
		}
	}
}

func TestClassFor(t *testing.T) {
	c, err := schema.ClassFor[Testis](property.String("Ime").Descriptor())
	require.NoError(t, err)
	assert.Equal(t, "Testis", c.Name())
	assert.Equal(t, 1, c.Len())

	c, err = schema.ClassFor[*Testis]()
	require.NoError(t, err)
	assert.Equal(t, "Testis", c.Name())

	_, err = schema.ClassFor[struct{ X int }]()
	require.Error(t, err)
	assert.True(t, meta.IsInvalidDescriptor(err))
}

func TestClassForStrict(t *testing.T) {
	t.Run("fields and methods", func(t *testing.T) {
		c, err := schema.ClassForStrict[Oseba](
			property.String("Ime").Descriptor(),
			property.String("Priimek").Descriptor(),
		)
		require.NoError(t, err)
		assert.Equal(t, "Oseba", c.Name())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("pointer type", func(t *testing.T) {
		_, err := schema.ClassForStrict[*Oseba](property.String("Priimek").Descriptor())
		require.NoError(t, err)
	})

	t.Run("missing member", func(t *testing.T) {
		c, err := schema.ClassForStrict[Oseba](property.String("Starost").Descriptor())
		require.Error(t, err)
		assert.Nil(t, c)
		assert.True(t, meta.IsInvalidDescriptor(err))
		assert.Equal(t, `meta: invalid descriptor on class Oseba property "Starost": type schema_test.Oseba has no exported field or method Starost`, err.Error())
	})

	t.Run("unexported field", func(t *testing.T) {
		_, err := schema.ClassForStrict[Oseba](property.String("hidden").Descriptor())
		assert.True(t, meta.IsInvalidDescriptor(err))
	})

	t.Run("anonymous type", func(t *testing.T) {
		_, err := schema.ClassForStrict[struct{ Ime string }](property.String("Ime").Descriptor())
		assert.True(t, meta.IsInvalidDescriptor(err))
	})
}
