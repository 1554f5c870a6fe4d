package brio

import (
	"fmt"
	"strings"
)

// MalformedNumberError is a lexing failure for number literals with a
// leading, trailing or repeated dot.
type MalformedNumberError struct {
	Loc  *Location
	Text string
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("%s: malformed number '%s'", e.Loc, e.Text)
}

// UnexpectedCharacterError is a lexing failure for a rune outside the
// language's alphabet.
type UnexpectedCharacterError struct {
	Loc  *Location
	Char rune
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("%s: unexpected character '%c'", e.Loc, e.Char)
}

// UnexpectedTokenError is a parsing failure. Expected describes what the
// grammar required at that point; Found is the offending token.
type UnexpectedTokenError struct {
	Expected string
	Found    Token
}

func (e *UnexpectedTokenError) Error() string {
	found := "'" + e.Found.Value + "'"
	if e.Found.Typ == TokenEOF {
		found = "end of input"
	}

	return fmt.Sprintf("%s: expected %s, found %s", e.Found.Loc, e.Expected, found)
}

// UndefinedVariableError is an evaluation failure for reading a name that
// was never assigned.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable '%s'", e.Name)
}

// TypeMismatchError is an evaluation failure: an operator or builtin
// received operands of the wrong runtime type or arity. Types holds the
// operand kinds in evaluation order.
type TypeMismatchError struct {
	Op    string
	Types []Kind
}

func (e *TypeMismatchError) Error() string {
	names := make([]string, len(e.Types))
	for i, k := range e.Types {
		names[i] = k.String()
	}

	return fmt.Sprintf("type mismatch: '%s' is not defined for %s", e.Op, strings.Join(names, ", "))
}

// UnknownFunctionError is an evaluation failure for calling a name that is
// not a builtin.
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function '%s'", e.Name)
}

// StepLimitError reports that evaluation exceeded the configured step
// budget, usually because a while loop never terminates.
type StepLimitError struct {
	Limit int
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("evaluation exceeded %d steps", e.Limit)
}
