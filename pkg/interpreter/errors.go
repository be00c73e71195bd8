package interpreter

import (
	"errors"
	"fmt"
)

var (
	ErrLexical           = errors.New("lexical error")
	ErrSyntax            = errors.New("syntax error")
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrUndefinedFunction = errors.New("undefined function")
	ErrArity             = errors.New("arity mismatch")
	ErrType              = errors.New("type error")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrScopeUnderflow    = errors.New("scope underflow")
	ErrMaxSteps          = errors.New("maximum steps exceeded")
	ErrMaxDepth          = errors.New("maximum call depth exceeded")
)

// Error is the single failure kind raised while running a script.
// Kind is one of the sentinel errors above; Line is 0 when unknown.
type Error struct {
	Kind    error
	Message string
	Line    int
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("Error at line %d: %s", e.Line, e.Message)
	}

	return "Error: " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// fail builds an Error located at the current lexeme
func (i *Interpreter) fail(kind error, message string) error {
	return &Error{Kind: kind, Message: message, Line: i.cur.Pos.Line}
}

// failf is fail with formatting
func (i *Interpreter) failf(kind error, format string, args ...any) error {
	return i.fail(kind, fmt.Sprintf(format, args...))
}
