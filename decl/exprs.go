package decl

import (
	"fmt"
	"strings"

	gfn "github.com/panyam/goutils/fn"
)

// Expr represents an expression node (evaluates to a value).
type Expr interface {
	Node
	exprNode() // Marker method for expressions
}

type ExprBase struct {
	NodeInfo
}

func (e *ExprBase) exprNode() {}

// BinaryOp is the closed set of binary operators.
type BinaryOp int

const (
	OpOr BinaryOp = iota
	OpAnd
	OpEq
	OpNeq
	OpLt
	OpGt
	OpLte
	OpGte
	OpAdd
	OpSub
	OpMul
	OpDiv
)

var binaryOpSymbols = [...]string{"||", "&&", "==", "!=", "<", ">", "<=", ">=", "+", "-", "*", "/"}

func (op BinaryOp) String() string {
	if op >= 0 && int(op) < len(binaryOpSymbols) {
		return binaryOpSymbols[op]
	}
	return fmt.Sprintf("BinaryOp(%d)", int(op))
}

// ParseBinaryOp maps an operator symbol to its BinaryOp.
func ParseBinaryOp(sym string) (BinaryOp, error) {
	for i, s := range binaryOpSymbols {
		if s == sym {
			return BinaryOp(i), nil
		}
	}
	return 0, fmt.Errorf("unknown binary operator: %q", sym)
}

func (op BinaryOp) IsLogical() bool    { return op == OpOr || op == OpAnd }
func (op BinaryOp) IsEquality() bool   { return op == OpEq || op == OpNeq }
func (op BinaryOp) IsComparison() bool { return op >= OpLt && op <= OpGte }
func (op BinaryOp) IsArithmetic() bool { return op >= OpAdd && op <= OpDiv }

// UnaryOp is the closed set of prefix operators.
type UnaryOp int

const (
	OpNot   UnaryOp = iota // !expr
	OpMinus                // -expr
)

func (op UnaryOp) String() string {
	if op == OpNot {
		return "!"
	}
	return "-"
}

// --- Expressions ---

// BinaryExpr represents `left operator right`
type BinaryExpr struct {
	ExprBase
	Left     Expr
	Operator BinaryOp
	Right    Expr
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Operator, b.Right)
}

// UnaryExpr represents `operator operand`
type UnaryExpr struct {
	ExprBase
	Operator UnaryOp
	Right    Expr
}

func (u *UnaryExpr) String() string { return fmt.Sprintf("(%s%s)", u.Operator, u.Right) }

// CastExpr represents `expr @ CURRENCY` - tagging a number with a currency.
type CastExpr struct {
	ExprBase
	Value    Expr
	Currency *IdentifierExpr
}

func (c *CastExpr) String() string { return fmt.Sprintf("(%s @ %s)", c.Value, c.Currency) }

// ConversionExpr represents `expr -> CURRENCY` - converting through the rate table.
type ConversionExpr struct {
	ExprBase
	Value    Expr
	Currency *IdentifierExpr
}

func (c *ConversionExpr) String() string { return fmt.Sprintf("(%s -> %s)", c.Value, c.Currency) }

// AccessExpr represents `left.right` where right is an identifier (member read)
// or a call (method invocation).
type AccessExpr struct {
	ExprBase
	Left  Expr
	Right Expr
}

func (a *AccessExpr) String() string { return fmt.Sprintf("%s.%s", a.Left, a.Right) }

// CallExpr represents `function(arg1, arg2, ...)` (user functions and builtins)
type CallExpr struct {
	ExprBase
	Name *IdentifierExpr
	Args []Expr
}

func (c *CallExpr) String() string {
	args := gfn.Map(c.Args, func(e Expr) string { return e.String() })
	return fmt.Sprintf("%s(%s)", c.Name, strings.Join(args, ", "))
}

// IdentifierExpr represents variable, function or currency names
type IdentifierExpr struct {
	ExprBase
	Name string
}

func (i *IdentifierExpr) String() string { return i.Name }

// LiteralExpr represents literal values
type LiteralExpr struct {
	ExprBase
	Value Value
}

func (l *LiteralExpr) String() string {
	if l.Value.Type == TypeString {
		return fmt.Sprintf("%q", l.Value.StringVal())
	}
	return l.Value.String()
}
