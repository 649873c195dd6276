// Package mixin provides reusable property sets for class descriptors.
//
// A mixin is a set of properties that is added to several classes:
//
//	class, err := schema.NewClass("Invoice")
//	err = class.Mix(mixin.ID{}, mixin.Time{})
//	err = class.Add(property.Decimal("Amount").Descriptor())
//
// Mixins are plain values; pass them by value, not as pointers.
//
// Creating Custom Mixins:
//
// Embed Schema and override Properties:
//
//	type Audit struct {
//	    mixin.Schema
//	}
//
//	func (Audit) Properties() []*property.Descriptor {
//	    return []*property.Descriptor{
//	        property.String("CreatedBy").Descriptor(),
//	        property.String("UpdatedBy").Nillable().Descriptor(),
//	    }
//	}
package mixin

import (
	"slices"

	"github.com/pikia/meta/schema"
	"github.com/pikia/meta/schema/property"
)

// Schema is the default implementation for the schema.Mixin interface.
// It should be embedded in all custom mixin definitions.
type Schema struct{}

// Properties returns the properties of the mixin.
// Override this method to add custom properties.
func (Schema) Properties() []*property.Descriptor { return nil }

// schema mixin must implement `Mixin` interface.
var _ schema.Mixin = Schema{}

// =============================================================================
// Built-in Mixins
// =============================================================================

// ID adds a UUID identifier property named Id.
type ID struct {
	Schema
}

// Properties returns the identifier property.
func (ID) Properties() []*property.Descriptor {
	return []*property.Descriptor{
		property.UUID("Id").
			Comment("Unique identifier").
			Descriptor(),
	}
}

// Time adds Created and Updated timestamp properties.
//
// Example:
//
//	class.Mix(mixin.Time{})
type Time struct {
	Schema
}

// Properties returns the time tracking properties.
func (Time) Properties() []*property.Descriptor {
	return []*property.Descriptor{
		property.Time("Created").
			Comment("Time the object was created").
			Descriptor(),
		property.Time("Updated").
			Comment("Time the object was last updated").
			Descriptor(),
	}
}

// SoftDelete adds a nillable Deleted timestamp.
type SoftDelete struct {
	Schema
}

// Properties returns the soft delete property.
func (SoftDelete) Properties() []*property.Descriptor {
	return []*property.Descriptor{
		property.Time("Deleted").
			Nillable().
			Comment("Time the object was deleted, null if it was not").
			Descriptor(),
	}
}

// TimeSoftDelete combines Time and SoftDelete.
type TimeSoftDelete struct {
	Schema
}

// Properties returns all timestamp and soft delete properties.
func (TimeSoftDelete) Properties() []*property.Descriptor {
	return append(Time{}.Properties(), SoftDelete{}.Properties()...)
}

// Props returns a mixin holding the given properties.
func Props(props ...*property.Descriptor) schema.Mixin {
	return propertyList(props)
}

type propertyList []*property.Descriptor

func (p propertyList) Properties() []*property.Descriptor {
	return slices.Clone([]*property.Descriptor(p))
}
