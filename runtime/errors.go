package runtime

import (
	"errors"

	"github.com/panyam/currex/decl"
)

var (
	ErrMainFunctionNotDefined = decl.ErrMainFunctionNotDefined
	ErrVariableAlreadyExists  = decl.ErrVariableAlreadyExists
	ErrVariableDoesNotExist   = decl.ErrVariableDoesNotExist
	ErrInvalidVariableType    = decl.ErrInvalidVariableType
	ErrInvalidFunctionCall    = decl.ErrInvalidFunctionCall
	ErrInvalidReturnValue     = decl.ErrInvalidReturnValue
	ErrZeroDivision           = decl.ErrZeroDivision
	ErrInvalidBoolValue       = decl.ErrInvalidBoolValue
	ErrInvalidCurrencyName    = decl.ErrInvalidCurrencyName
	ErrFunctionDoesNotExist   = decl.ErrFunctionDoesNotExist
	ErrInvalidMethodCall      = decl.ErrInvalidMethodCall
	ErrIncompatibleTypes      = decl.ErrIncompatibleTypes
	ErrCallDepthExceeded      = decl.ErrCallDepthExceeded

	ErrMalformedTable     = errors.New("malformed currency table")
	ErrDuplicateNative    = errors.New("native function already registered")
	ErrNotImplemented     = errors.New("evaluation for this node type not implemented")
	ErrInvalidConfigValue = errors.New("invalid config value")
)

var errorf = decl.Errorf
