package property

import "strconv"

// A Type represents the semantic value type of a property.
// The set is closed: dialects map every valid Type to a type name of
// their output language, and anything else is unresolvable.
type Type uint8

// List of semantic value types.
const (
	TypeInvalid Type = iota
	TypeBool
	TypeString
	TypeInt
	TypeInt64
	TypeFloat64
	TypeDecimal
	TypeTime
	TypeUUID
	TypeBytes
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeBool:    "bool",
	TypeString:  "string",
	TypeInt:     "int",
	TypeInt64:   "int64",
	TypeFloat64: "float64",
	TypeDecimal: "decimal",
	TypeTime:    "time",
	TypeUUID:    "uuid",
	TypeBytes:   "bytes",
}

// String returns the semantic name of the type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// Valid reports if the given type is one of the enumerated value types.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Types returns all valid value types in declaration order.
func Types() []Type {
	types := make([]Type, 0, endTypes-1)
	for t := TypeInvalid + 1; t < endTypes; t++ {
		types = append(types, t)
	}
	return types
}

// ParseType returns the value type named s. The boolean is false when s
// does not name a valid type.
func ParseType(s string) (Type, bool) {
	for t := TypeInvalid + 1; t < endTypes; t++ {
		if typeNames[t] == s {
			return t, true
		}
	}
	return TypeInvalid, false
}
