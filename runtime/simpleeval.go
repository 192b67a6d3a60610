package runtime

import (
	"context"
	"io"
	"math"

	"github.com/panyam/currex/decl"
	"github.com/shopspring/decimal"
)

// SimpleEval walks the AST of one program run.  It owns the context stack, the
// call depth and the output sink so a Runtime can serve many runs at once.
type SimpleEval struct {
	Runtime *Runtime
	Program *Program
	Out     io.Writer
	RunID   string

	// Records every call when set.
	Tracer *ExecutionTracer

	ctx     context.Context
	globals *Context
	stack   *ContextStack
	depth   int

	// function whose body is executing, nil at the top level
	currFunc *Function
}

func NewSimpleEval(ctx context.Context, rt *Runtime, program *Program, out io.Writer) *SimpleEval {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}
	globals := decl.NewContext()
	return &SimpleEval{
		Runtime: rt,
		Program: program,
		Out:     out,
		ctx:     ctx,
		globals: globals,
		stack:   decl.NewContextStack(globals),
	}
}

// Stack is the scope chain currently in effect.
func (s *SimpleEval) Stack() *ContextStack {
	return s.stack
}

func (s *SimpleEval) logger() Logger {
	return s.Runtime.Logger
}

// EvalMain calls `main` with no arguments and returns its result.
func (s *SimpleEval) EvalMain() (Value, error) {
	mainDecl, ok := s.Program.GetFunction("main")
	if !ok {
		var loc Location
		if s.Program != nil {
			loc = s.Program.Pos()
		}
		return NoneValue(), errorf(loc, ErrMainFunctionNotDefined, "program has no function named 'main'")
	}
	for name := range s.Program.Functions {
		if _, shadowed := s.Runtime.GetNative(name); shadowed {
			s.logger().Warn("run %s: function '%s' is shadowed by the builtin of the same name", s.RunID, name)
		}
	}
	return s.callFunction(s.resolveFunction(mainDecl.Name), mainDecl.Pos(), nil)
}

// Exec executes a statement.  returned is true when a return statement unwound
// through it, in which case result holds the returned value.
func (s *SimpleEval) Exec(stmt Stmt) (result Value, returned bool, err error) {
	switch n := stmt.(type) {
	case *BlockStmt:
		return s.execScoped(n)
	case *DeclarationStmt:
		return NoneValue(), false, s.execDeclarationStmt(n)
	case *AssignmentStmt:
		return NoneValue(), false, s.execAssignmentStmt(n)
	case *ReturnStmt:
		result, err = s.execReturnStmt(n)
		return result, err == nil, err
	case *WhileStmt:
		return s.execWhileStmt(n)
	case *IfStmt:
		return s.execIfStmt(n)
	case *ExprStmt:
		_, err = s.Eval(n.Expression)
		return NoneValue(), false, err
	}
	return NoneValue(), false, errorf(stmt.Pos(), ErrNotImplemented, "%T", stmt)
}

// Eval evaluates an expression to a value.
func (s *SimpleEval) Eval(expr Expr) (Value, error) {
	switch n := expr.(type) {
	case *LiteralExpr:
		return n.Value, nil
	case *IdentifierExpr:
		v, err := s.stack.LookupVariable(n.Name)
		return v, decl.AtLocation(n.Pos(), err)
	case *BinaryExpr:
		return s.evalBinaryExpr(n)
	case *UnaryExpr:
		return s.evalUnaryExpr(n)
	case *CastExpr:
		return s.evalCastExpr(n)
	case *ConversionExpr:
		return s.evalConversionExpr(n)
	case *AccessExpr:
		return s.evalAccessExpr(n)
	case *CallExpr:
		return s.evalCallExpr(n)
	}
	return NoneValue(), errorf(expr.Pos(), ErrNotImplemented, "%T", expr)
}

func (s *SimpleEval) execBlock(b *BlockStmt) (result Value, returned bool, err error) {
	if b == nil {
		return NoneValue(), false, nil
	}
	for _, statement := range b.Statements {
		result, returned, err = s.Exec(statement)
		if err != nil || returned {
			return
		}
	}
	return NoneValue(), false, nil
}

// Runs a block in a context of its own that is discarded when the block exits.
func (s *SimpleEval) execScoped(b *BlockStmt) (Value, bool, error) {
	s.stack.PushContext()
	defer s.stack.PopContext()
	return s.execBlock(b)
}

func (s *SimpleEval) execDeclarationStmt(d *DeclarationStmt) error {
	value, err := s.Eval(d.Value)
	if err != nil {
		return err
	}
	if value.Type != d.Type {
		return errorf(d.Pos(), ErrInvalidVariableType, "cannot initialize '%s' of type %s with a %s", d.Name.Name, d.Type, value.Type)
	}
	return decl.AtLocation(d.Pos(), s.stack.AddVariable(d.Name.Name, value))
}

func (s *SimpleEval) execAssignmentStmt(a *AssignmentStmt) error {
	value, err := s.Eval(a.Value)
	if err != nil {
		return err
	}
	return decl.AtLocation(a.Pos(), s.stack.UpdateVariable(a.Target.Name, value))
}

func (s *SimpleEval) execReturnStmt(r *ReturnStmt) (Value, error) {
	result := NoneValue()
	if r.ReturnValue != nil {
		var err error
		if result, err = s.Eval(r.ReturnValue); err != nil {
			return NoneValue(), err
		}
	}
	if err := s.checkReturn(r.Pos(), result); err != nil {
		return NoneValue(), err
	}
	return result, nil
}

func (s *SimpleEval) checkReturn(loc Location, result Value) error {
	if s.currFunc == nil || result.Type == s.currFunc.ReturnType {
		return nil
	}
	return errorf(loc, ErrInvalidReturnValue, "%s must return %s, not %s", s.currFunc.Name, s.currFunc.ReturnType, result.Type)
}

func (s *SimpleEval) evalCondition(cond Expr) (bool, error) {
	value, err := s.Eval(cond)
	if err != nil {
		return false, err
	}
	if value.Type != TypeBool {
		return false, errorf(cond.Pos(), ErrInvalidBoolValue, "condition must be a bool, found %s", value.Type)
	}
	return value.BoolVal(), nil
}

func (s *SimpleEval) execWhileStmt(w *WhileStmt) (result Value, returned bool, err error) {
	for {
		if err = s.checkCancelled(w.Pos()); err != nil {
			return
		}
		var ok bool
		if ok, err = s.evalCondition(w.Condition); err != nil || !ok {
			return NoneValue(), false, err
		}
		if result, returned, err = s.execScoped(w.Body); err != nil || returned {
			return
		}
	}
}

func (s *SimpleEval) execIfStmt(stmt *IfStmt) (Value, bool, error) {
	for _, branch := range stmt.Branches {
		ok, err := s.evalCondition(branch.Condition)
		if err != nil {
			return NoneValue(), false, err
		}
		if ok {
			return s.execScoped(branch.Body)
		}
	}
	if stmt.Else != nil {
		return s.execScoped(stmt.Else)
	}
	return NoneValue(), false, nil
}

func (s *SimpleEval) checkCancelled(loc Location) error {
	return decl.AtLocation(loc, s.ctx.Err())
}

// --- Operators ---

func (s *SimpleEval) evalBinaryExpr(b *BinaryExpr) (Value, error) {
	left, err := s.Eval(b.Left)
	if err != nil {
		return NoneValue(), err
	}
	right, err := s.Eval(b.Right)
	if err != nil {
		return NoneValue(), err
	}
	result, err := applyBinaryOp(b.Operator, left, right)
	return result, decl.AtLocation(b.Pos(), err)
}

func (s *SimpleEval) evalUnaryExpr(u *UnaryExpr) (Value, error) {
	operand, err := s.Eval(u.Right)
	if err != nil {
		return NoneValue(), err
	}
	result, err := applyUnaryOp(u.Operator, operand)
	return result, decl.AtLocation(u.Pos(), err)
}

func (s *SimpleEval) evalCastExpr(c *CastExpr) (Value, error) {
	value, err := s.Eval(c.Value)
	if err != nil {
		return NoneValue(), err
	}
	var amount decimal.Decimal
	switch value.Type {
	case TypeInt:
		amount = decimal.NewFromInt(value.IntVal())
	case TypeFloat:
		f := value.FloatVal()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return NoneValue(), errorf(c.Pos(), ErrIncompatibleTypes, "cannot cast non-finite float %s to a currency", value)
		}
		amount = decimal.NewFromFloat(f)
	default:
		return NoneValue(), errorf(c.Pos(), ErrIncompatibleTypes, "cannot cast %s to a currency", value.Type)
	}
	name := c.Currency.Name
	if !s.Runtime.Table.IsKnownCurrencyName(name) {
		return NoneValue(), errorf(c.Currency.Pos(), ErrInvalidCurrencyName, "'%s' is not in the currency table", name)
	}
	return CurrencyValue(amount, name), nil
}

func (s *SimpleEval) evalConversionExpr(c *ConversionExpr) (Value, error) {
	value, err := s.Eval(c.Value)
	if err != nil {
		return NoneValue(), err
	}
	if value.Type != TypeCurrency {
		return NoneValue(), errorf(c.Pos(), ErrIncompatibleTypes, "only currencies can be converted, found %s", value.Type)
	}
	converted, err := s.Runtime.Table.Convert(value.CurrencyVal(), c.Currency.Name)
	if err != nil {
		return NoneValue(), decl.AtLocation(c.Pos(), err)
	}
	return CurrencyValue(converted.Amount, converted.Name), nil
}

// --- Calls ---

func (s *SimpleEval) resolveFunction(name string) *Function {
	if f, ok := s.Runtime.GetNative(name); ok {
		return f
	}
	if d, ok := s.Program.GetFunction(name); ok {
		return UserFunction(d)
	}
	return nil
}

func (s *SimpleEval) evalArgs(exprs []Expr, into []Value) ([]Value, error) {
	for _, e := range exprs {
		v, err := s.Eval(e)
		if err != nil {
			return nil, err
		}
		into = append(into, v)
	}
	return into, nil
}

func (s *SimpleEval) evalCallExpr(c *CallExpr) (Value, error) {
	fn := s.resolveFunction(c.Name.Name)
	if fn == nil {
		return NoneValue(), errorf(c.Name.Pos(), ErrFunctionDoesNotExist, "'%s'", c.Name.Name)
	}
	args, err := s.evalArgs(c.Args, make([]Value, 0, len(c.Args)))
	if err != nil {
		return NoneValue(), err
	}
	return s.callFunction(fn, c.Pos(), args)
}

// `left.name` and `left.name(args)` call name with left as the first argument.
func (s *SimpleEval) evalAccessExpr(a *AccessExpr) (Value, error) {
	var callee *IdentifierExpr
	var argExprs []Expr
	switch right := a.Right.(type) {
	case *IdentifierExpr:
		callee = right
	case *CallExpr:
		callee, argExprs = right.Name, right.Args
	default:
		return NoneValue(), errorf(a.Pos(), ErrInvalidMethodCall, "cannot access '%s' on a value", a.Right)
	}

	receiver, err := s.Eval(a.Left)
	if err != nil {
		return NoneValue(), err
	}
	fn := s.resolveFunction(callee.Name)
	if fn == nil {
		return NoneValue(), errorf(callee.Pos(), ErrFunctionDoesNotExist, "'%s'", callee.Name)
	}
	if fn.IsNative() {
		if err := fn.CheckReceiver(receiver); err != nil {
			return NoneValue(), decl.AtLocation(a.Pos(), err)
		}
	}
	args, err := s.evalArgs(argExprs, []Value{receiver})
	if err != nil {
		return NoneValue(), err
	}
	return s.callFunction(fn, a.Pos(), args)
}

// callFunction checks the arguments against the signature of fn and invokes it.  User functions run on
// a stack of their own made of the globals and a context holding the parameters.
func (s *SimpleEval) callFunction(fn *Function, loc Location, args []Value) (result Value, err error) {
	if err = s.checkCancelled(loc); err != nil {
		return NoneValue(), err
	}
	if err = fn.CheckArgs(args); err != nil {
		return NoneValue(), decl.AtLocation(loc, err)
	}
	if s.Tracer != nil {
		s.Tracer.Enter(fn.Name, args...)
		defer func() { s.Tracer.Exit(fn.Name, result, err) }()
	}
	if fn.IsNative() {
		result, err = fn.Native(s, loc, args...)
		return result, decl.AtLocation(loc, err)
	}
	if s.depth >= s.Runtime.Config.MaxCallDepth {
		return NoneValue(), errorf(loc, ErrCallDepthExceeded, "calling %s nested more than %d calls deep", fn.Name, s.Runtime.Config.MaxCallDepth)
	}

	savedStack, savedFunc := s.stack, s.currFunc
	s.stack = decl.NewContextStack(s.globals)
	s.stack.PushContext()
	s.currFunc = fn
	s.depth++
	defer func() {
		s.stack, s.currFunc = savedStack, savedFunc
		s.depth--
	}()

	s.logger().Debug("run %s: calling %s at depth %d", s.RunID, fn.Name, s.depth)
	for i, param := range fn.Decl.Parameters {
		if err = s.stack.AddVariable(param.Name, args[i]); err != nil {
			return NoneValue(), decl.AtLocation(param.Pos(), err)
		}
	}

	result, returned, err := s.execBlock(fn.Decl.Body)
	if err != nil {
		return NoneValue(), err
	}
	if !returned {
		result = NoneValue()
		if err = s.checkReturn(fn.Decl.Pos(), result); err != nil {
			return NoneValue(), err
		}
	}
	return result, nil
}
