package property_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pikia/meta"
	"github.com/pikia/meta/schema/property"
)

func TestNew(t *testing.T) {
	d, err := property.New("Ime", property.TypeString)
	require.NoError(t, err)
	assert.Equal(t, "Ime", d.Name())
	assert.Equal(t, property.TypeString, d.Type())
	assert.False(t, d.Nillable())
	assert.Empty(t, d.Comment())
	assert.NoError(t, d.Err())

	// The type is not checked at construction time.
	d, err = property.New("Weird", property.Type(200))
	require.NoError(t, err)
	assert.Equal(t, property.Type(200), d.Type())
}

func TestNew_InvalidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"leading digit", "1st"},
		{"space", "First Name"},
		{"dash", "first-name"},
		{"invalid utf8", "\xff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := property.New(tt.input, property.TypeString)
			require.Error(t, err)
			assert.Nil(t, d)
			assert.True(t, errors.Is(err, meta.ErrInvalidDescriptor))
			assert.True(t, meta.IsInvalidDescriptor(err))
		})
	}
}

func TestNew_ValidNames(t *testing.T) {
	for _, name := range []string{"A", "_hidden", "Priimek", "x1", "Čas", "Ψ"} {
		d, err := property.New(name, property.TypeInt)
		require.NoError(t, err, name)
		assert.Equal(t, name, d.Name())
	}
}

func TestNew_NormalizesName(t *testing.T) {
	// "C" followed by a combining caron composes to "\u010C".
	d, err := property.New("C\u030Cas", property.TypeString)
	require.NoError(t, err)
	assert.Equal(t, "\u010Cas", d.Name())
}

func TestBuilders(t *testing.T) {
	tests := []struct {
		builder *property.Builder
		want    property.Type
	}{
		{property.String("S"), property.TypeString},
		{property.Bool("B"), property.TypeBool},
		{property.Int("I"), property.TypeInt},
		{property.Int64("L"), property.TypeInt64},
		{property.Float64("F"), property.TypeFloat64},
		{property.Decimal("D"), property.TypeDecimal},
		{property.Time("T"), property.TypeTime},
		{property.UUID("U"), property.TypeUUID},
		{property.Bytes("X"), property.TypeBytes},
	}
	for _, tt := range tests {
		d := tt.builder.Descriptor()
		assert.NoError(t, d.Err())
		assert.Equal(t, tt.want, d.Type(), d.Name())
	}
}

func TestBuilder_Options(t *testing.T) {
	d := property.Int("Age").Nillable().Comment("Age in years").Descriptor()
	assert.NoError(t, d.Err())
	assert.True(t, d.Nillable())
	assert.Equal(t, "Age in years", d.Comment())
}

func TestBuilder_RecordsError(t *testing.T) {
	d := property.String("").Descriptor()
	require.Error(t, d.Err())
	assert.EqualError(t, d.Err(), "meta: invalid descriptor: property name is empty")

	d = property.String("9lives").Descriptor()
	assert.True(t, meta.IsInvalidDescriptor(d.Err()))
}

func TestBuilder_DescriptorIsSnapshot(t *testing.T) {
	b := property.String("Ime")
	d := b.Descriptor()
	b.Nillable().Comment("changed")
	assert.False(t, d.Nillable())
	assert.Empty(t, d.Comment())
	assert.True(t, b.Descriptor().Nillable())
}

func TestType(t *testing.T) {
	assert.Equal(t, "string", property.TypeString.String())
	assert.Equal(t, "uuid", property.TypeUUID.String())
	assert.Equal(t, "invalid", property.TypeInvalid.String())
	assert.Equal(t, "Type(99)", property.Type(99).String())

	assert.True(t, property.TypeBytes.Valid())
	assert.False(t, property.TypeInvalid.Valid())
	assert.False(t, property.Type(99).Valid())

	types := property.Types()
	assert.Len(t, types, 9)
	assert.Equal(t, property.TypeBool, types[0])
	assert.Equal(t, property.TypeBytes, types[len(types)-1])
}

func TestParseType(t *testing.T) {
	for _, typ := range property.Types() {
		got, ok := property.ParseType(typ.String())
		require.True(t, ok, typ.String())
		assert.Equal(t, typ, got)
	}
	_, ok := property.ParseType("invalid")
	assert.False(t, ok)
	_, ok = property.ParseType("complex128")
	assert.False(t, ok)
}
