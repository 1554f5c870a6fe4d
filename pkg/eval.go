package brio

import "fmt"

// Evaluator walks the AST and produces the program value. It never mutates
// the tree; all side effects go through the Store handed to Eval.
type Evaluator struct {
	builtins map[string]builtinFunc

	// MaxSteps bounds the number of nodes evaluated in one Eval call,
	// guarding against non-terminating while loops. Zero disables the
	// budget.
	MaxSteps int
	steps    int
}

func NewEvaluator() *Evaluator {
	return &Evaluator{
		builtins: defineBuiltins(),
	}
}

// Eval evaluates expr against the caller-owned store and returns the
// resulting value.
func (e *Evaluator) Eval(expr Expr, store *Store) (Value, error) {
	e.steps = 0
	return e.eval(expr, store)
}

func (e *Evaluator) eval(expr Expr, store *Store) (Value, error) {
	if e.MaxSteps > 0 {
		e.steps++
		if e.steps > e.MaxSteps {
			return nil, &StepLimitError{Limit: e.MaxSteps}
		}
	}

	switch n := expr.(type) {
	case *NumberLiteral:
		return Number(n.Value), nil
	case *BooleanLiteral:
		return Boolean(n.Value), nil
	case *Identifier:
		v, ok := store.Get(n.Name)
		if !ok {
			return nil, &UndefinedVariableError{Name: n.Name}
		}

		return v, nil
	case *Assignment:
		v, err := e.eval(n.Value, store)
		if err != nil {
			return nil, err
		}

		store.Set(n.Name, v)
		return v, nil
	case *UnaryExpr:
		return e.evalUnary(n, store)
	case *BinaryExpr:
		return e.evalBinary(n, store)
	case *FuncCall:
		return e.evalCall(n, store)
	case *IfExpr:
		return e.evalIf(n, store)
	case *WhileExpr:
		return e.evalWhile(n, store)
	case *Block:
		return e.evalBlock(n, store)
	default:
		return nil, fmt.Errorf("unexpected node %T", expr)
	}
}

func (e *Evaluator) evalUnary(n *UnaryExpr, store *Store) (Value, error) {
	v, err := e.eval(n.Operand, store)
	if err != nil {
		return nil, err
	}

	switch n.Operation {
	case UnaryNegative:
		num, ok := v.(Number)
		if !ok {
			return nil, &TypeMismatchError{Op: string(n.Operation), Types: []Kind{v.Kind()}}
		}

		return -num, nil
	case UnaryNot:
		b, ok := v.(Boolean)
		if !ok {
			return nil, &TypeMismatchError{Op: string(n.Operation), Types: []Kind{v.Kind()}}
		}

		return !b, nil
	default:
		return nil, fmt.Errorf("unexpected unary operator '%s'", n.Operation)
	}
}

// evalBinary always evaluates both operands left to right before applying
// the operator; && and || do not short-circuit.
func (e *Evaluator) evalBinary(n *BinaryExpr, store *Store) (Value, error) {
	lhs, err := e.eval(n.Op1, store)
	if err != nil {
		return nil, err
	}

	rhs, err := e.eval(n.Op2, store)
	if err != nil {
		return nil, err
	}

	switch n.Operation {
	case BinaryAddition, BinarySubtraction, BinaryMultiplication, BinaryDivision,
		BinaryLess, BinaryGreater:
		l, lok := lhs.(Number)
		r, rok := rhs.(Number)
		if !lok || !rok {
			return nil, e.mismatch(n.Operation, lhs, rhs)
		}

		switch n.Operation {
		case BinaryAddition:
			return l + r, nil
		case BinarySubtraction:
			return l - r, nil
		case BinaryMultiplication:
			return l * r, nil
		case BinaryDivision:
			// Division by zero follows IEEE semantics
			return l / r, nil
		case BinaryLess:
			return Boolean(l < r), nil
		default:
			return Boolean(l > r), nil
		}
	case BinaryAnd, BinaryOr:
		l, lok := lhs.(Boolean)
		r, rok := rhs.(Boolean)
		if !lok || !rok {
			return nil, e.mismatch(n.Operation, lhs, rhs)
		}

		if n.Operation == BinaryAnd {
			return l && r, nil
		}

		return l || r, nil
	case BinaryEquals, BinaryNotEquals:
		if lhs.Kind() != rhs.Kind() || lhs.Kind() == KindNoValue {
			return nil, e.mismatch(n.Operation, lhs, rhs)
		}

		eq := lhs == rhs
		if n.Operation == BinaryNotEquals {
			eq = !eq
		}

		return Boolean(eq), nil
	default:
		return nil, fmt.Errorf("unexpected binary operator '%s'", n.Operation)
	}
}

func (e *Evaluator) mismatch(op BinaryOp, lhs, rhs Value) error {
	return &TypeMismatchError{Op: string(op), Types: []Kind{lhs.Kind(), rhs.Kind()}}
}

// evalCall evaluates every argument left to right, then dispatches to the
// builtin table.
func (e *Evaluator) evalCall(n *FuncCall, store *Store) (Value, error) {
	fn, ok := e.builtins[n.Name]
	if !ok {
		return nil, &UnknownFunctionError{Name: n.Name}
	}

	args := make([]Value, 0, len(n.Args))
	for _, arg := range n.Args {
		v, err := e.eval(arg, store)
		if err != nil {
			return nil, err
		}

		args = append(args, v)
	}

	return fn(args)
}

func (e *Evaluator) evalIf(n *IfExpr, store *Store) (Value, error) {
	cond, err := e.eval(n.Condition, store)
	if err != nil {
		return nil, err
	}

	b, ok := cond.(Boolean)
	if !ok {
		return nil, &TypeMismatchError{Op: "if", Types: []Kind{cond.Kind()}}
	}

	if bool(b) {
		return e.eval(n.Then, store)
	}

	if n.Else != nil {
		return e.eval(n.Else, store)
	}

	return NoValue{}, nil
}

// evalWhile returns the value of the last body run, or NoValue if the body
// never ran. The condition must be a boolean on every iteration.
func (e *Evaluator) evalWhile(n *WhileExpr, store *Store) (Value, error) {
	var result Value = NoValue{}
	for {
		cond, err := e.eval(n.Condition, store)
		if err != nil {
			return nil, err
		}

		b, ok := cond.(Boolean)
		if !ok {
			return nil, &TypeMismatchError{Op: "while", Types: []Kind{cond.Kind()}}
		}

		if !bool(b) {
			return result, nil
		}

		result, err = e.eval(n.Body, store)
		if err != nil {
			return nil, err
		}
	}
}

func (e *Evaluator) evalBlock(n *Block, store *Store) (Value, error) {
	var result Value = NoValue{}
	for _, stmt := range n.Statements {
		v, err := e.eval(stmt, store)
		if err != nil {
			return nil, err
		}

		result = v
	}

	return result, nil
}
