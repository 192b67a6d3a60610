package decl

import (
	"errors"
	"fmt"
	"strings"
)

// Failure kinds raised while evaluating a program.  Every failure surfaced by the
// engine wraps exactly one of these.
var (
	ErrMainFunctionNotDefined = errors.New("main function not defined")
	ErrVariableAlreadyExists  = errors.New("variable already exists")
	ErrVariableDoesNotExist   = errors.New("variable does not exist")
	ErrInvalidVariableType    = errors.New("invalid variable type")
	ErrInvalidFunctionCall    = errors.New("invalid function call")
	ErrInvalidReturnValue     = errors.New("invalid return value")
	ErrZeroDivision           = errors.New("zero division")
	ErrInvalidBoolValue       = errors.New("invalid bool value")
	ErrInvalidCurrencyName    = errors.New("invalid currency name")
	ErrFunctionDoesNotExist   = errors.New("function does not exist")
	ErrInvalidMethodCall      = errors.New("invalid method call")
	ErrIncompatibleTypes      = errors.New("incompatible types")
	ErrCallDepthExceeded      = errors.New("call depth exceeded")
)

var errorKinds = []struct {
	name string
	err  error
}{
	{"MainFunctionNotDefined", ErrMainFunctionNotDefined},
	{"VariableAlreadyExists", ErrVariableAlreadyExists},
	{"VariableDoesNotExist", ErrVariableDoesNotExist},
	{"InvalidVariableType", ErrInvalidVariableType},
	{"InvalidFunctionCall", ErrInvalidFunctionCall},
	{"InvalidReturnValue", ErrInvalidReturnValue},
	{"ZeroDivision", ErrZeroDivision},
	{"InvalidBoolValue", ErrInvalidBoolValue},
	{"InvalidCurrencyName", ErrInvalidCurrencyName},
	{"FunctionDoesNotExist", ErrFunctionDoesNotExist},
	{"InvalidMethodCall", ErrInvalidMethodCall},
	{"IncompatibleTypes", ErrIncompatibleTypes},
	{"CallDepthExceeded", ErrCallDepthExceeded},
}

// KindOf returns the name of the failure kind wrapped by err, or "" if err is not
// one of ours.
func KindOf(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return ""
}

// ErrorForKind is the inverse of KindOf.
func ErrorForKind(name string) error {
	for _, k := range errorKinds {
		if strings.EqualFold(k.name, name) {
			return k.err
		}
	}
	return nil
}

// RuntimeError ties a failure to the source location of the node that raised it.
type RuntimeError struct {
	Loc Location
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Loc.LineColStr(), e.Err.Error())
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// Errorf creates a positioned failure of the given kind.
func Errorf(loc Location, kind error, format string, args ...any) *RuntimeError {
	msg := fmt.Sprintf(format, args...)
	return &RuntimeError{Loc: loc, Err: fmt.Errorf("%w: %s", kind, msg)}
}

// AtLocation attaches loc to err unless err already carries a location.
func AtLocation(loc Location, err error) error {
	if err == nil {
		return nil
	}
	var rterr *RuntimeError
	if errors.As(err, &rterr) {
		return err
	}
	return &RuntimeError{Loc: loc, Err: err}
}
