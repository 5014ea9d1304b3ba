package lox

// Evaluate reduces an expression tree to a runtime Value (spec §4.3).
// Evaluation is strictly left-to-right, depth-first; both operands of a
// binary node are evaluated before the operator is applied, and there is no
// short-circuiting since logical and/or are not part of this core.
func Evaluate(expr Expr) (Value, *Error) {
	switch e := expr.(type) {
	case Literal:
		return evalLiteral(e), nil
	case Grouping:
		return Evaluate(e.Inner)
	case Unary:
		return evalUnary(e)
	case Binary:
		return evalBinary(e)
	default:
		panic("lox: unhandled Expr variant in Evaluate")
	}
}

func evalLiteral(lit Literal) Value {
	switch lit.Value.Kind {
	case True:
		return BoolValue(true)
	case False:
		return BoolValue(false)
	case Nil:
		return NilValue
	case Number:
		return NumberValue(lit.Value.Literal.(float64))
	case String:
		return StringValue(lit.Value.Literal.(string))
	default:
		panic("lox: unhandled literal token kind in Evaluate")
	}
}

func evalUnary(u Unary) (Value, *Error) {
	operand, err := Evaluate(u.Operand)
	if err != nil {
		return Value{}, err
	}
	switch u.Operator.Kind {
	case Minus:
		if !operand.IsNumber() {
			return Value{}, newEvaluatorError(u.Operator, "'%s': Operand must be a number", u.Operator.Lexeme)
		}
		return NumberValue(-operand.Number()), nil
	case Bang:
		return BoolValue(!operand.IsTruthy()), nil
	default:
		panic("lox: unhandled unary operator in Evaluate")
	}
}

func evalBinary(b Binary) (Value, *Error) {
	left, err := Evaluate(b.Left)
	if err != nil {
		return Value{}, err
	}
	right, err := Evaluate(b.Right)
	if err != nil {
		return Value{}, err
	}

	op := b.Operator
	switch op.Kind {
	case Minus:
		return numericBinary(op, left, right, func(a, c float64) float64 { return a - c })
	case Slash:
		return numericBinary(op, left, right, func(a, c float64) float64 { return a / c })
	case Star:
		return numericBinary(op, left, right, func(a, c float64) float64 { return a * c })
	case Plus:
		return evalPlus(op, left, right)
	case Greater:
		return numericCompare(op, left, right, func(a, c float64) bool { return a > c })
	case GreaterEqual:
		return numericCompare(op, left, right, func(a, c float64) bool { return a >= c })
	case Less:
		return numericCompare(op, left, right, func(a, c float64) bool { return a < c })
	case LessEqual:
		return numericCompare(op, left, right, func(a, c float64) bool { return a <= c })
	case EqualEqual:
		return BoolValue(left.EqualTo(right)), nil
	case BangEqual:
		return BoolValue(!left.EqualTo(right)), nil
	default:
		panic("lox: unhandled binary operator in Evaluate")
	}
}

func evalPlus(op Token, left, right Value) (Value, *Error) {
	if left.IsNumber() && right.IsNumber() {
		return NumberValue(left.Number() + right.Number()), nil
	}
	if left.IsString() && right.IsString() {
		return StringValue(left.Text() + right.Text()), nil
	}
	return Value{}, newEvaluatorError(op, "'+': Operands must be numbers or strings")
}

func numericBinary(op Token, left, right Value, fn func(a, b float64) float64) (Value, *Error) {
	if !left.IsNumber() || !right.IsNumber() {
		return Value{}, newEvaluatorError(op, "'%s': Operands must be numbers", op.Lexeme)
	}
	return NumberValue(fn(left.Number(), right.Number())), nil
}

func numericCompare(op Token, left, right Value, fn func(a, b float64) bool) (Value, *Error) {
	if !left.IsNumber() || !right.IsNumber() {
		return Value{}, newEvaluatorError(op, "'%s': Operands must be numbers", op.Lexeme)
	}
	return BoolValue(fn(left.Number(), right.Number())), nil
}
