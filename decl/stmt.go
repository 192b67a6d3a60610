package decl

import (
	"fmt"
	"strings"

	gfn "github.com/panyam/goutils/fn"
)

// --- Statements ---

// Stmt represents a statement node (performs an action, controls flow).
type Stmt interface {
	Node
	stmtNode() // Marker method for statements
}

// BlockStmt represents a sequence of statements `{ stmt1; stmt2; ... }`
type BlockStmt struct {
	NodeInfo
	Statements []Stmt
}

func (b *BlockStmt) stmtNode() {}
func (b *BlockStmt) String() string {
	if b == nil || len(b.Statements) == 0 {
		return "{ }"
	}
	return fmt.Sprintf("{ %s }", strings.Join(gfn.Map(b.Statements, func(s Stmt) string { return s.String() }), " "))
}

// DeclarationStmt represents `type name = expr;`
type DeclarationStmt struct {
	NodeInfo
	Type  PrimitiveType
	Name  *IdentifierExpr
	Value Expr
}

func (d *DeclarationStmt) stmtNode() {}
func (d *DeclarationStmt) String() string {
	return fmt.Sprintf("%s %s = %s;", d.Type, d.Name, d.Value)
}

// AssignmentStmt represents `name = expr;`
type AssignmentStmt struct {
	NodeInfo
	Target *IdentifierExpr
	Value  Expr
}

func (a *AssignmentStmt) stmtNode()      {}
func (a *AssignmentStmt) String() string { return fmt.Sprintf("%s = %s;", a.Target, a.Value) }

// ReturnStmt represents `return expr;` or a bare `return;` (nil ReturnValue)
type ReturnStmt struct {
	NodeInfo
	ReturnValue Expr
}

func (r *ReturnStmt) stmtNode() {}
func (r *ReturnStmt) String() string {
	if r.ReturnValue == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", r.ReturnValue)
}

// WhileStmt represents `while (cond) { body }`
type WhileStmt struct {
	NodeInfo
	Condition Expr
	Body      *BlockStmt
}

func (w *WhileStmt) stmtNode() {}
func (w *WhileStmt) String() string {
	return fmt.Sprintf("while (%s) %s", w.Condition, w.Body)
}

// IfBranch is one `if (cond) { body }` or `else if (cond) { body }` arm.
type IfBranch struct {
	NodeInfo
	Condition Expr
	Body      *BlockStmt
}

// IfStmt represents an if / else if chain with an optional trailing else.
type IfStmt struct {
	NodeInfo
	Branches []*IfBranch
	Else     *BlockStmt // Optional
}

func (i *IfStmt) stmtNode() {}
func (i *IfStmt) String() string {
	arms := gfn.Map(i.Branches, func(b *IfBranch) string { return fmt.Sprintf("if (%s) %s", b.Condition, b.Body) })
	out := strings.Join(arms, " else ")
	if i.Else != nil {
		out += " else " + i.Else.String()
	}
	return out
}

// ExprStmt represents an expression used as a statement (e.g., a call)
type ExprStmt struct {
	NodeInfo
	Expression Expr
}

func (e *ExprStmt) stmtNode()      {}
func (e *ExprStmt) String() string { return e.Expression.String() + ";" }
