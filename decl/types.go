package decl

import (
	"fmt"
	"strings"
)

// PrimitiveType is the tag carried by every Value.  The set is closed.
type PrimitiveType int

const (
	TypeNone PrimitiveType = iota
	TypeInt
	TypeFloat
	TypeString
	TypeBool
	TypeCurrency
)

var typeNames = map[PrimitiveType]string{
	TypeNone:     "none",
	TypeInt:      "int",
	TypeFloat:    "float",
	TypeString:   "string",
	TypeBool:     "bool",
	TypeCurrency: "currency",
}

// String returns the keyword used for the type in Currex sources.
func (t PrimitiveType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("PrimitiveType(%d)", int(t))
}

func (t PrimitiveType) IsValid() bool {
	_, ok := typeNames[t]
	return ok
}

// IsNumeric is true for the types that can be cast to a currency.
func (t PrimitiveType) IsNumeric() bool {
	return t == TypeInt || t == TypeFloat
}

// ParsePrimitiveType maps a type keyword (case insensitive) to its PrimitiveType.
// "void" is accepted as an alias of none.
func ParsePrimitiveType(name string) (PrimitiveType, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "void" {
		return TypeNone, nil
	}
	for t, n := range typeNames {
		if n == lower {
			return t, nil
		}
	}
	return TypeNone, fmt.Errorf("unknown type: %q", name)
}
