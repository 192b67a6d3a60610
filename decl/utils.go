package decl

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// ParseLiteral converts the text of a literal token into a Value.  kind is one
// of INT, FLOAT, STRING or BOOL as emitted by the lexer.
func ParseLiteral(kind string, text string) (Value, error) {
	switch kind {
	case "STRING":
		return StringValue(text), nil
	case "INT":
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return IntValue(i), nil
	case "FLOAT":
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, err
		}
		return FloatValue(f), nil
	case "BOOL":
		b, err := strconv.ParseBool(text)
		if err != nil {
			return Value{}, err
		}
		return BoolValue(b), nil
	default:
		return Value{}, fmt.Errorf("cannot parse literal kind %s", kind)
	}
}

// Helpers to build AST nodes by hand (parsers and tests).

func NewIdent(name string) *IdentifierExpr {
	return &IdentifierExpr{Name: name}
}

func NewLiteral(v Value) *LiteralExpr {
	return &LiteralExpr{Value: v}
}

func NewIntLit(v int64) *LiteralExpr {
	return NewLiteral(IntValue(v))
}

func NewFloatLit(v float64) *LiteralExpr {
	return NewLiteral(FloatValue(v))
}

func NewStringLit(v string) *LiteralExpr {
	return NewLiteral(StringValue(v))
}

func NewBoolLit(v bool) *LiteralExpr {
	return NewLiteral(BoolValue(v))
}

func NewCurrencyLit(amount string, name string) *LiteralExpr {
	return NewLiteral(CurrencyValue(decimal.RequireFromString(amount), name))
}

func NewBinExpr(left Expr, op BinaryOp, right Expr) *BinaryExpr {
	return &BinaryExpr{Left: left, Operator: op, Right: right}
}

func NewUnaryExpr(op UnaryOp, right Expr) *UnaryExpr {
	return &UnaryExpr{Operator: op, Right: right}
}

func NewCastExpr(value Expr, currency string) *CastExpr {
	return &CastExpr{Value: value, Currency: NewIdent(currency)}
}

func NewConversionExpr(value Expr, currency string) *ConversionExpr {
	return &ConversionExpr{Value: value, Currency: NewIdent(currency)}
}

func NewCallExpr(name string, args ...Expr) *CallExpr {
	return &CallExpr{Name: NewIdent(name), Args: args}
}

func NewAccessExpr(left Expr, right Expr) *AccessExpr {
	return &AccessExpr{Left: left, Right: right}
}

func NewDeclStmt(t PrimitiveType, name string, value Expr) *DeclarationStmt {
	return &DeclarationStmt{Type: t, Name: NewIdent(name), Value: value}
}

func NewAssignStmt(name string, value Expr) *AssignmentStmt {
	return &AssignmentStmt{Target: NewIdent(name), Value: value}
}

func NewReturnStmt(value Expr) *ReturnStmt {
	return &ReturnStmt{ReturnValue: value}
}

func NewExprStmt(expr Expr) *ExprStmt {
	return &ExprStmt{Expression: expr}
}

func NewBlockStmt(stmts ...Stmt) *BlockStmt {
	return &BlockStmt{Statements: stmts}
}

func NewWhileStmt(cond Expr, body *BlockStmt) *WhileStmt {
	return &WhileStmt{Condition: cond, Body: body}
}

// NewIfStmt builds an if statement with a single branch.  Chain ElseIf and
// WithElse to add the rest of the arms.
func NewIfStmt(cond Expr, body *BlockStmt) *IfStmt {
	return &IfStmt{Branches: []*IfBranch{{Condition: cond, Body: body}}}
}

func (i *IfStmt) ElseIf(cond Expr, body *BlockStmt) *IfStmt {
	i.Branches = append(i.Branches, &IfBranch{Condition: cond, Body: body})
	return i
}

func (i *IfStmt) WithElse(body *BlockStmt) *IfStmt {
	i.Else = body
	return i
}

func NewParam(t PrimitiveType, name string) *ParamDecl {
	return &ParamDecl{Type: t, Name: name}
}

func NewFunction(ret PrimitiveType, name string, params []*ParamDecl, body ...Stmt) *FunctionDecl {
	return &FunctionDecl{ReturnType: ret, Name: name, Parameters: params, Body: NewBlockStmt(body...)}
}
