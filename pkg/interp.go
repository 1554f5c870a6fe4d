package brio

import "io"

// Interpreter wires the pipeline: lexer, parser, evaluator. Each Run gets a
// fresh store; EvalString lets the caller keep a store across runs.
type Interpreter struct {
	evaluator *Evaluator
}

func NewInterpreter() *Interpreter {
	return &Interpreter{
		evaluator: NewEvaluator(),
	}
}

// SetStepLimit bounds every subsequent evaluation; zero disables the bound.
func (i *Interpreter) SetStepLimit(steps int) {
	i.evaluator.MaxSteps = steps
}

func (i *Interpreter) Run(filename string) (Value, error) {
	lexer, err := NewLexer(filename)
	if err != nil {
		return nil, err
	}

	return i.run(lexer, NewStore())
}

func (i *Interpreter) RunFromReader(reader io.Reader) (Value, error) {
	return i.run(NewLexerFromReader(reader), NewStore())
}

func (i *Interpreter) RunString(src string) (Value, error) {
	return i.run(NewLexerFromString(src), NewStore())
}

// EvalString evaluates src against the caller's store.
func (i *Interpreter) EvalString(src string, store *Store) (Value, error) {
	return i.run(NewLexerFromString(src), store)
}

func (i *Interpreter) run(lexer *Lexer, store *Store) (Value, error) {
	parser := NewParser(lexer)

	prog, err := parser.Run()
	if err != nil {
		return nil, err
	}

	return i.evaluator.Eval(prog, store)
}
