package runtime

import (
	"cmp"
	"fmt"

	"github.com/panyam/currex/decl"
)

func incompatible(op fmt.Stringer, left, right Value) error {
	return fmt.Errorf("%w: %s %s %s", ErrIncompatibleTypes, left.Type, op, right.Type)
}

// applyBinaryOp evaluates `left op right` on two already evaluated operands.
func applyBinaryOp(op decl.BinaryOp, left, right Value) (Value, error) {
	if left.Type != right.Type {
		return NoneValue(), incompatible(op, left, right)
	}
	switch {
	case op.IsLogical():
		return applyLogicalOp(op, left, right)
	case op.IsEquality():
		eq := left.Equals(right)
		return BoolValue(eq == (op == decl.OpEq)), nil
	case op.IsComparison():
		return applyComparisonOp(op, left, right)
	case op.IsArithmetic():
		return applyArithmeticOp(op, left, right)
	}
	return NoneValue(), fmt.Errorf("%w: binary operator %s", ErrNotImplemented, op)
}

func applyLogicalOp(op decl.BinaryOp, left, right Value) (Value, error) {
	if left.Type != TypeBool {
		return NoneValue(), incompatible(op, left, right)
	}
	if op == decl.OpAnd {
		return BoolValue(left.BoolVal() && right.BoolVal()), nil
	}
	return BoolValue(left.BoolVal() || right.BoolVal()), nil
}

func checkSameCurrency(left, right Currency) error {
	if left.Name != right.Name {
		return fmt.Errorf("%w: cannot combine %s with %s", ErrInvalidCurrencyName, left.Name, right.Name)
	}
	return nil
}

func applyComparisonOp(op decl.BinaryOp, left, right Value) (Value, error) {
	var order int
	switch left.Type {
	case TypeInt:
		order = cmp.Compare(left.IntVal(), right.IntVal())
	case TypeFloat:
		order = cmp.Compare(left.FloatVal(), right.FloatVal())
	case TypeCurrency:
		l, r := left.CurrencyVal(), right.CurrencyVal()
		if err := checkSameCurrency(l, r); err != nil {
			return NoneValue(), err
		}
		order = l.Amount.Cmp(r.Amount)
	default:
		return NoneValue(), incompatible(op, left, right)
	}
	switch op {
	case decl.OpLt:
		return BoolValue(order < 0), nil
	case decl.OpGt:
		return BoolValue(order > 0), nil
	case decl.OpLte:
		return BoolValue(order <= 0), nil
	default:
		return BoolValue(order >= 0), nil
	}
}

func applyArithmeticOp(op decl.BinaryOp, left, right Value) (Value, error) {
	switch left.Type {
	case TypeInt:
		a, b := left.IntVal(), right.IntVal()
		switch op {
		case decl.OpAdd:
			return IntValue(a + b), nil
		case decl.OpSub:
			return IntValue(a - b), nil
		case decl.OpMul:
			return IntValue(a * b), nil
		}
		if b == 0 {
			return NoneValue(), fmt.Errorf("%w: %d / 0", ErrZeroDivision, a)
		}
		return IntValue(a / b), nil

	case TypeFloat:
		a, b := left.FloatVal(), right.FloatVal()
		switch op {
		case decl.OpAdd:
			return FloatValue(a + b), nil
		case decl.OpSub:
			return FloatValue(a - b), nil
		case decl.OpMul:
			return FloatValue(a * b), nil
		}
		if b == 0 {
			return NoneValue(), fmt.Errorf("%w: %s / 0.0", ErrZeroDivision, left)
		}
		return FloatValue(a / b), nil

	case TypeString:
		if op != decl.OpAdd {
			return NoneValue(), incompatible(op, left, right)
		}
		return StringValue(left.StringVal() + right.StringVal()), nil

	case TypeCurrency:
		a, b := left.CurrencyVal(), right.CurrencyVal()
		if err := checkSameCurrency(a, b); err != nil {
			return NoneValue(), err
		}
		switch op {
		case decl.OpAdd:
			return CurrencyValue(a.Amount.Add(b.Amount), a.Name), nil
		case decl.OpSub:
			return CurrencyValue(a.Amount.Sub(b.Amount), a.Name), nil
		case decl.OpMul:
			return CurrencyValue(a.Amount.Mul(b.Amount), a.Name), nil
		}
		if b.Amount.IsZero() {
			return NoneValue(), fmt.Errorf("%w: %s / %s", ErrZeroDivision, a, b)
		}
		return CurrencyValue(a.Amount.Div(b.Amount), a.Name), nil
	}
	return NoneValue(), incompatible(op, left, right)
}

// applyUnaryOp evaluates `!operand` and `-operand`.
func applyUnaryOp(op decl.UnaryOp, operand Value) (Value, error) {
	if op == decl.OpNot {
		if operand.Type != TypeBool {
			return NoneValue(), fmt.Errorf("%w: cannot negate %s", ErrIncompatibleTypes, operand.Type)
		}
		return BoolValue(!operand.BoolVal()), nil
	}
	switch operand.Type {
	case TypeInt:
		return IntValue(-operand.IntVal()), nil
	case TypeFloat:
		return FloatValue(-operand.FloatVal()), nil
	case TypeCurrency:
		c := operand.CurrencyVal()
		return CurrencyValue(c.Amount.Neg(), c.Name), nil
	}
	return NoneValue(), fmt.Errorf("%w: cannot apply - to %s", ErrIncompatibleTypes, operand.Type)
}
