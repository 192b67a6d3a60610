package runtime

import (
	"fmt"
	"strings"

	gfn "github.com/panyam/goutils/fn"
)

// NativeMethod is the Go implementation of a builtin.  Arguments have already been
// checked against the signature; for method style calls the receiver is args[0].
type NativeMethod func(eval *SimpleEval, loc Location, args ...Value) (Value, error)

// Function is an entry of the function namespace shared by builtins and user
// functions.  Exactly one of Native and Decl is set.
type Function struct {
	Name       string
	ReturnType PrimitiveType
	Params     []PrimitiveType

	// AnyArgs relaxes the signature check to arity only (eg print).
	AnyArgs bool

	Native NativeMethod
	Decl   *FunctionDecl
}

// UserFunction wraps a function defined in the program.
func UserFunction(d *FunctionDecl) *Function {
	return &Function{
		Name:       d.Name,
		ReturnType: d.ReturnType,
		Params:     d.ParamTypes(),
		Decl:       d,
	}
}

func (f *Function) IsNative() bool {
	return f.Native != nil
}

// CheckArgs verifies arity and positional types of a call.
func (f *Function) CheckArgs(args []Value) error {
	if len(args) != len(f.Params) {
		return fmt.Errorf("%w: %s expects %d arguments, got %d", ErrInvalidFunctionCall, f.Name, len(f.Params), len(args))
	}
	if f.AnyArgs {
		return nil
	}
	for i, arg := range args {
		if arg.Type != f.Params[i] {
			return fmt.Errorf("%w: %s called with (%s), expected (%s)", ErrInvalidFunctionCall, f.Name, typeList(gfn.Map(args, func(v Value) PrimitiveType { return v.Type })), typeList(f.Params))
		}
	}
	return nil
}

// CheckReceiver verifies the value a builtin is invoked on in `value.builtin()`
// form.
func (f *Function) CheckReceiver(receiver Value) error {
	if len(f.Params) == 0 {
		return fmt.Errorf("%w: %s does not take a receiver", ErrInvalidFunctionCall, f.Name)
	}
	if !f.AnyArgs && receiver.Type != f.Params[0] {
		return fmt.Errorf("%w: %s can only be called on %s, not %s", ErrInvalidVariableType, f.Name, f.Params[0], receiver.Type)
	}
	return nil
}

func (f *Function) String() string {
	kind := "func"
	if f.IsNative() {
		kind = "native"
	}
	return fmt.Sprintf("%s %s %s(%s)", kind, f.ReturnType, f.Name, typeList(f.Params))
}

func typeList(types []PrimitiveType) string {
	return strings.Join(gfn.Map(types, func(t PrimitiveType) string { return t.String() }), ", ")
}
