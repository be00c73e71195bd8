package interpreter

import (
	"arrow/pkg/lexer"
	"arrow/pkg/stack"
)

// Frame is one level of variable bindings.
type Frame map[string]Value

// Environment is the stack of binding frames shared by blocks, loops and calls.
// Lookups run innermost-first; assignments only ever touch the innermost frame.
type Environment struct {
	frames *stack.Stack[Frame]
}

// NewEnvironment creates an environment with no frames
func NewEnvironment() *Environment {
	return &Environment{frames: stack.NewStack[Frame]()}
}

// PushScope opens a new innermost frame
func (e *Environment) PushScope() {
	e.frames.Push(make(Frame))
}

// PopScope discards the innermost frame
func (e *Environment) PopScope() error {
	if _, ok := e.frames.Pop(); !ok {
		return ErrScopeUnderflow
	}

	return nil
}

// Lookup finds the innermost binding of name
func (e *Environment) Lookup(name string) (Value, bool) {
	frames := e.frames.Array()
	for idx := len(frames) - 1; idx >= 0; idx-- {
		if v, ok := frames[idx][name]; ok {
			return v, true
		}
	}

	return Value{}, false
}

// Set binds name in the innermost frame, shadowing any outer binding
func (e *Environment) Set(name string, v Value) error {
	top, ok := e.frames.Peek()
	if !ok {
		return ErrScopeUnderflow
	}

	top[name] = v
	return nil
}

// Update overwrites name in the innermost frame that already binds it
func (e *Environment) Update(name string, v Value) bool {
	frames := e.frames.Array()
	for idx := len(frames) - 1; idx >= 0; idx-- {
		if _, ok := frames[idx][name]; ok {
			frames[idx][name] = v
			return true
		}
	}

	return false
}

// Depth returns the number of frames
func (e *Environment) Depth() int {
	return e.frames.Size()
}

// Truncate pops frames until at most n remain
func (e *Environment) Truncate(n int) {
	e.frames.Truncate(n)
}

// bookmark is a resumable cursor: the lexer offset plus the lexeme that was
// current when it was taken.
type bookmark struct {
	pos lexer.Position
	tok lexer.Token
}

// FunctionInfo is what a definition leaves behind: where the body starts and
// the parameter names. It never changes after the definition is scanned.
type FunctionInfo struct {
	Body   bookmark
	Params []string
}

// callRecord remembers where to resume the caller.
type callRecord struct {
	name   string
	caller bookmark
}
