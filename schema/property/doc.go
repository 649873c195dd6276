// Package property provides descriptors for the typed properties of a
// generated class.
//
// A descriptor is built either directly:
//
//	ime, err := property.New("Ime", property.TypeString)
//
// or through a fluent builder, one per value type:
//
//	property.String("Ime").Comment("First name").Descriptor()
//	property.Int("Age").Nillable().Descriptor()
//	property.Time("Born").Descriptor()
//
// Builders never fail. A builder created with an invalid name records the
// error on the descriptor, and the class descriptor refuses to own it:
//
//	d := property.String("").Descriptor()
//	d.Err() // meta: invalid descriptor: property name is empty
//
// # Value Types
//
// The supported semantic types are enumerated by [Type]:
//
//	bool, string, int, int64, float64, decimal, time, uuid, bytes
//
// Dialects of the generator map each of them to a type of the output
// language; [TypeInvalid] and values outside the enumeration fail
// generation with an unresolved type error.
package property
