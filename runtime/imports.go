package runtime

import (
	"github.com/panyam/currex/decl"
)

type Location = decl.Location
type Node = decl.Node
type Program = decl.Program
type FunctionDecl = decl.FunctionDecl
type ParamDecl = decl.ParamDecl
type TableStmt = decl.TableStmt
type TableRow = decl.TableRow

type Stmt = decl.Stmt
type BlockStmt = decl.BlockStmt
type DeclarationStmt = decl.DeclarationStmt
type AssignmentStmt = decl.AssignmentStmt
type ReturnStmt = decl.ReturnStmt
type WhileStmt = decl.WhileStmt
type IfStmt = decl.IfStmt
type ExprStmt = decl.ExprStmt

type Expr = decl.Expr
type BinaryExpr = decl.BinaryExpr
type UnaryExpr = decl.UnaryExpr
type CastExpr = decl.CastExpr
type ConversionExpr = decl.ConversionExpr
type AccessExpr = decl.AccessExpr
type CallExpr = decl.CallExpr
type IdentifierExpr = decl.IdentifierExpr
type LiteralExpr = decl.LiteralExpr

type Value = decl.Value
type Currency = decl.Currency
type PrimitiveType = decl.PrimitiveType
type ContextStack = decl.ContextStack
type Context = decl.Context

const (
	TypeNone     = decl.TypeNone
	TypeInt      = decl.TypeInt
	TypeFloat    = decl.TypeFloat
	TypeString   = decl.TypeString
	TypeBool     = decl.TypeBool
	TypeCurrency = decl.TypeCurrency
)

var NoneValue = decl.NoneValue
var IntValue = decl.IntValue
var FloatValue = decl.FloatValue
var StringValue = decl.StringValue
var BoolValue = decl.BoolValue
var CurrencyValue = decl.CurrencyValue
