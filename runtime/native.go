package runtime

import (
	"fmt"
)

// Builtins returns the intrinsic functions every Runtime starts with.
func Builtins() []*Function {
	return []*Function{
		{Name: "print", ReturnType: TypeNone, Params: []PrimitiveType{TypeNone}, AnyArgs: true, Native: Native_print},
		{Name: "getBalance", ReturnType: TypeFloat, Params: []PrimitiveType{TypeCurrency}, Native: Native_getBalance},
		{Name: "getCurrency", ReturnType: TypeString, Params: []PrimitiveType{TypeCurrency}, Native: Native_getCurrency},
	}
}

// Writes the rendered value as one line to the output sink.
func Native_print(eval *SimpleEval, loc Location, args ...Value) (Value, error) {
	if _, err := fmt.Fprintln(eval.Out, args[0].String()); err != nil {
		return NoneValue(), fmt.Errorf("%s: writing output: %w", loc.LineColStr(), err)
	}
	return NoneValue(), nil
}

// Amount of a currency value as a float.
func Native_getBalance(eval *SimpleEval, loc Location, args ...Value) (Value, error) {
	return FloatValue(args[0].CurrencyVal().Amount.InexactFloat64()), nil
}

// Name of the unit of a currency value.
func Native_getCurrency(eval *SimpleEval, loc Location, args ...Value) (Value, error) {
	return StringValue(args[0].CurrencyVal().Name), nil
}
