package decl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is the payload of a CURRENCY value: an exact amount tagged with the
// name of its unit.
type Currency struct {
	Amount decimal.Decimal
	Name   string
}

func (c Currency) String() string {
	places := max(int32(2), -c.Amount.Exponent())
	return fmt.Sprintf("%s %s", c.Amount.StringFixed(places), c.Name)
}

// Value wraps a Go value with its type tag.  The payload is only reachable through
// the constructors and typed getters so it always matches the tag.
type Value struct {
	Type  PrimitiveType
	value any
}

// NewValue creates a value of type t from a Go value, checking that the Go value
// matches the type.
func NewValue(t PrimitiveType, v any) (Value, error) {
	switch t {
	case TypeNone:
		if v != nil {
			return Value{}, fmt.Errorf("type mismatch: expected nil, got %T", v)
		}
		return NoneValue(), nil

	case TypeBool:
		val, ok := v.(bool)
		if !ok {
			return Value{}, fmt.Errorf("type mismatch: expected bool, got %T", v)
		}
		return BoolValue(val), nil

	case TypeInt:
		switch val := v.(type) {
		case int64:
			return IntValue(val), nil
		case int:
			return IntValue(int64(val)), nil
		case int32:
			return IntValue(int64(val)), nil
		}
		return Value{}, fmt.Errorf("type mismatch: expected int64, got %T", v)

	case TypeFloat:
		switch val := v.(type) {
		case float64:
			return FloatValue(val), nil
		case float32:
			return FloatValue(float64(val)), nil
		}
		return Value{}, fmt.Errorf("type mismatch: expected float64, got %T", v)

	case TypeString:
		val, ok := v.(string)
		if !ok {
			return Value{}, fmt.Errorf("type mismatch: expected string, got %T", v)
		}
		return StringValue(val), nil

	case TypeCurrency:
		val, ok := v.(Currency)
		if !ok {
			return Value{}, fmt.Errorf("type mismatch: expected Currency, got %T", v)
		}
		if val.Name == "" {
			return Value{}, fmt.Errorf("currency value needs a currency name")
		}
		return CurrencyValue(val.Amount, val.Name), nil
	}
	return Value{}, fmt.Errorf("internal error: unhandled type tag %v in NewValue", t)
}

// Helpers to create specific simple values
func NoneValue() Value {
	return Value{Type: TypeNone}
}

func IntValue(val int64) Value {
	return Value{Type: TypeInt, value: val}
}

func FloatValue(val float64) Value {
	return Value{Type: TypeFloat, value: val}
}

func StringValue(val string) Value {
	return Value{Type: TypeString, value: val}
}

func BoolValue(val bool) Value {
	return Value{Type: TypeBool, value: val}
}

func CurrencyValue(amount decimal.Decimal, name string) Value {
	return Value{Type: TypeCurrency, value: Currency{Amount: amount, Name: name}}
}

func (r Value) IsNone() bool {
	return r.Type == TypeNone
}

// --- Custom getter methods
func (r Value) GetInt() (int64, error) {
	if r.Type != TypeInt {
		return 0, fmt.Errorf("type mismatch: cannot get int, value is type %s", r.Type)
	}
	return r.value.(int64), nil
}

func (r Value) GetFloat() (float64, error) {
	if r.Type != TypeFloat {
		return 0, fmt.Errorf("type mismatch: cannot get float, value is type %s", r.Type)
	}
	return r.value.(float64), nil
}

func (r Value) GetString() (string, error) {
	if r.Type != TypeString {
		return "", fmt.Errorf("type mismatch: cannot get string, value is type %s", r.Type)
	}
	return r.value.(string), nil
}

func (r Value) GetBool() (bool, error) {
	if r.Type != TypeBool {
		return false, fmt.Errorf("type mismatch: cannot get bool, value is type %s", r.Type)
	}
	return r.value.(bool), nil
}

func (r Value) GetCurrency() (Currency, error) {
	if r.Type != TypeCurrency {
		return Currency{}, fmt.Errorf("type mismatch: cannot get currency, value is type %s", r.Type)
	}
	return r.value.(Currency), nil
}

// Unchecked accessors for callers that have already switched on the tag.
func (r Value) IntVal() int64         { return r.value.(int64) }
func (r Value) FloatVal() float64     { return r.value.(float64) }
func (r Value) StringVal() string     { return r.value.(string) }
func (r Value) BoolVal() bool         { return r.value.(bool) }
func (r Value) CurrencyVal() Currency { return r.value.(Currency) }

// Equals reports whether both values have the same tag and payload.  Currency
// amounts are compared numerically so 9 and 9.00 are equal.
func (r Value) Equals(other Value) bool {
	if r.Type != other.Type {
		return false
	}
	switch r.Type {
	case TypeNone:
		return true
	case TypeCurrency:
		a, b := r.CurrencyVal(), other.CurrencyVal()
		return a.Name == b.Name && a.Amount.Equal(b.Amount)
	}
	return r.value == other.value
}

// String renders the value the way print writes it.
func (r Value) String() string {
	switch r.Type {
	case TypeNone:
		return "none"
	case TypeInt:
		return strconv.FormatInt(r.IntVal(), 10)
	case TypeFloat:
		return formatFloat(r.FloatVal())
	case TypeString:
		return r.StringVal()
	case TypeBool:
		return strconv.FormatBool(r.BoolVal())
	case TypeCurrency:
		return r.CurrencyVal().String()
	}
	return fmt.Sprintf("<invalid value of type %s>", r.Type)
}

// Floats always show a fractional part so they read differently from ints.
func formatFloat(f float64) string {
	out := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(out, ".eEnN") {
		out += ".0"
	}
	return out
}
