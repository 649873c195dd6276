// Package schema provides the class descriptor consumed by the generator.
//
// A class is a name plus an ordered set of property descriptors built with
// the [property] package:
//
//	class, err := schema.NewClass("Testis",
//	    property.String("Ime").Descriptor(),
//	    property.String("Priimek").Descriptor(),
//	)
//
// The name may also be taken from a Go type:
//
//	type Testis struct{}
//
//	class, err := schema.ClassFor[Testis](property.String("Ime").Descriptor())
//
// # Mixins
//
// Properties shared by several classes can be declared once as a [Mixin]
// and added with [Class.Mix]. Ready-made mixins live in
// package schema/mixin.
//
// # Ordering
//
// Properties keep their insertion order. The generator emits them in that
// order, so the output for a given class is stable across runs.
//
// # Validation
//
// Names are checked when the class is built or extended: the class name
// must be an identifier, properties must be non-nil and error free, and
// two properties may not share a name. All failures are reported as
// invalid descriptor errors (see [meta.IsInvalidDescriptor]).
package schema
