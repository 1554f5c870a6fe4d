package brio

import "math"

type builtinFunc func(args []Value) (Value, error)

func defineBuiltins() map[string]builtinFunc {
	return map[string]builtinFunc{
		"min": builtinMin,
		"max": builtinMax,
	}
}

func builtinMin(args []Value) (Value, error) {
	a, b, err := numberPair("min", args)
	if err != nil {
		return nil, err
	}

	return Number(math.Min(float64(a), float64(b))), nil
}

func builtinMax(args []Value) (Value, error) {
	a, b, err := numberPair("max", args)
	if err != nil {
		return nil, err
	}

	return Number(math.Max(float64(a), float64(b))), nil
}

// numberPair checks the exactly-two-numbers contract shared by min and max.
func numberPair(name string, args []Value) (Number, Number, error) {
	kinds := make([]Kind, len(args))
	for i, arg := range args {
		kinds[i] = arg.Kind()
	}

	if len(args) != 2 {
		return 0, 0, &TypeMismatchError{Op: name, Types: kinds}
	}

	a, aok := args[0].(Number)
	b, bok := args[1].(Number)
	if !aok || !bok {
		return 0, 0, &TypeMismatchError{Op: name, Types: kinds}
	}

	return a, b, nil
}
