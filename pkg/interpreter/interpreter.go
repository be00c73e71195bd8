package interpreter

import (
	"fmt"
	"io"
	"os"

	"arrow/pkg/lexer"
	"arrow/pkg/stack"

	"github.com/charmbracelet/log"
)

// Interpreter recognises and executes a script in a single pass over a
// rewindable token stream. No syntax tree is kept: loops and calls re-enter
// code by moving the lexer back to a bookmark and scanning it again.
type Interpreter struct {
	lex *lexer.Lexer // token source for the loaded script
	cur lexer.Token  // pending lexeme

	env   *Environment            // variable frames
	funcs map[string]FunctionInfo // function table filled by hoisting and definitions
	calls *stack.Stack[callRecord] // call-return records

	result Value // captured return value of the most recent call

	out         io.Writer   // output writer for write()
	logger      *log.Logger // diagnostic sink
	diagnostics bool        // emit diagnostics
	contextSize int         // tokens shown either side in a context dump

	maxSteps int // maximum statements (0 = unlimited)
	steps    int // statements executed
	maxDepth int // maximum call depth (0 = unlimited)
}

// DefaultMaxDepth is the call depth limit unless WithMaxDepth overrides it
const DefaultMaxDepth = 10000

type Option func(*Interpreter)

// WithWriter sets the output writer for write statements
func WithWriter(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithLogger sets the logger diagnostics are sent to
func WithLogger(l *log.Logger) Option {
	return func(i *Interpreter) { i.logger = l }
}

// WithDiagnostics turns diagnostic messages on or off
func WithDiagnostics(enabled bool) Option {
	return func(i *Interpreter) { i.diagnostics = enabled }
}

// WithContextSize sets how many tokens a context dump shows around the cursor
func WithContextSize(n int) Option {
	return func(i *Interpreter) { i.contextSize = n }
}

// WithMaxSteps sets a maximum number of executed statements before returning ErrMaxSteps
func WithMaxSteps(n int) Option {
	return func(i *Interpreter) { i.maxSteps = n }
}

// WithMaxDepth limits call recursion depth (0 = unlimited)
func WithMaxDepth(n int) Option {
	return func(i *Interpreter) { i.maxDepth = n }
}

// NewInterpreter creates an interpreter with an empty global frame and no script loaded
func NewInterpreter(opts ...Option) *Interpreter {
	it := &Interpreter{
		env:         NewEnvironment(),
		funcs:       make(map[string]FunctionInfo),
		calls:       stack.NewStack[callRecord](),
		diagnostics: true,
		contextSize: 5,
		maxDepth:    DefaultMaxDepth,
	}

	for _, o := range opts {
		o(it)
	}

	if it.out == nil {
		it.out = os.Stdout
	}

	if it.logger == nil {
		it.logger = log.Default()
	}

	it.env.PushScope()
	it.Load("")

	return it
}

// Exec runs a whole script with a fresh interpreter
func Exec(src string, opts ...Option) error {
	return NewInterpreter(opts...).Exec(src)
}

// Exec loads src and runs it to completion. Global variables from earlier
// sources survive; functions do not, since their bodies live in the old text.
func (i *Interpreter) Exec(src string) error {
	i.Load(src)
	return i.Run()
}

// Load replaces the script, dropping functions and call state but keeping globals
func (i *Interpreter) Load(src string) {
	i.lex = lexer.NewLexer(src)
	i.funcs = make(map[string]FunctionInfo)
	i.calls = stack.NewStack[callRecord]()
	i.env.Truncate(1)
	i.result = NewInt(0)
	i.steps = 0
	i.cur = i.lex.NextToken()

	i.hoist()
}

// Reset clears all runtime state, including globals
func (i *Interpreter) Reset() {
	i.env = NewEnvironment()
	i.env.PushScope()
	i.Load("")
}

// Lookup reads a variable as the current innermost frame sees it
func (i *Interpreter) Lookup(name string) (Value, bool) {
	return i.env.Lookup(name)
}

// Functions returns the names in the function table
func (i *Interpreter) Functions() []string {
	names := make([]string, 0, len(i.funcs))
	for name := range i.funcs {
		names = append(names, name)
	}

	return names
}

// Step executes one top-level statement, returning (halted, error)
func (i *Interpreter) Step() (bool, error) {
	switch i.cur.Type {
	case lexer.EOF:
		return true, nil
	case lexer.ILLEGAL:
		return false, i.fail(ErrLexical, i.cur.Literal)
	case lexer.SEMICOLON, lexer.RBRACE:
		i.diag("Skipping stray token at top level", "token", i.cur.Text())
		return false, i.next()
	}

	sig, err := i.execStatement()
	if err != nil {
		return false, err
	}

	switch sig.Kind {
	case Returning:
		i.diag("Return at top level ends the program", "value", sig.Value)
		return true, nil
	case Break, Continue:
		i.diag("Ignoring loop signal outside a loop", "signal", sig.Kind)
	}

	return false, nil
}

// Run executes until end of input, a top-level return, or the first error
func (i *Interpreter) Run() error {
	for {
		halted, err := i.Step()
		if err != nil {
			i.diag("Execution failed", "error", err)
			i.dumpContext()
			i.unwind()
			return err
		}

		if halted {
			return nil
		}
	}
}

// unwind drops frames and call records left behind by an aborted statement
func (i *Interpreter) unwind() {
	i.env.Truncate(1)
	i.calls.Truncate(0)
}

// hoist registers every function definition before execution starts.
// A lexical or syntax error stops the scan quietly; execution reports it when it gets there.
func (i *Interpreter) hoist() {
	start := i.mark()
	defer i.rewind(start)

	for i.cur.Type != lexer.EOF && i.cur.Type != lexer.ILLEGAL {
		if i.cur.Type == lexer.FUNCTION {
			if err := i.defineFunction(); err != nil {
				return
			}
			continue
		}

		if err := i.next(); err != nil {
			return
		}
	}
}

// mark takes a bookmark at the current lexeme
func (i *Interpreter) mark() bookmark {
	return bookmark{pos: i.lex.GetPosition(), tok: i.cur}
}

// rewind resumes scanning at a bookmark
func (i *Interpreter) rewind(b bookmark) {
	i.lex.SetPosition(b.pos)
	i.cur = b.tok
}

// next advances to the following lexeme
func (i *Interpreter) next() error {
	i.cur = i.lex.NextToken()
	if i.cur.Type == lexer.ILLEGAL {
		return i.fail(ErrLexical, i.cur.Literal)
	}

	return nil
}

// expect consumes the current lexeme if it has type t
func (i *Interpreter) expect(t lexer.TokenType) error {
	if i.cur.Type == lexer.ILLEGAL {
		return i.fail(ErrLexical, i.cur.Literal)
	}

	if i.cur.Type != t {
		return i.failf(ErrSyntax, "Expected '%s' but found '%s'", t, i.cur.Text())
	}

	return i.next()
}

// peek returns the lexeme after the current one
func (i *Interpreter) peek() lexer.Token {
	return i.lex.PeekToken()
}

// lookup reads a variable or raises undefined-variable
func (i *Interpreter) lookup(name string) (Value, error) {
	v, ok := i.env.Lookup(name)
	if !ok {
		return Value{}, i.fail(ErrUndefinedVariable, "Undefined variable: "+name)
	}

	return v, nil
}

// bind writes name into the innermost frame
func (i *Interpreter) bind(name string, v Value) error {
	if err := i.env.Set(name, v); err != nil {
		return i.fail(ErrScopeUnderflow, "No variable scope available")
	}

	return nil
}

// pushScope opens a frame
func (i *Interpreter) pushScope() {
	i.env.PushScope()
}

// popScope closes a frame
func (i *Interpreter) popScope() error {
	if err := i.env.PopScope(); err != nil {
		return i.fail(ErrScopeUnderflow, "Variable scope stack underflow")
	}

	return nil
}

// write prints one value on its own line
func (i *Interpreter) write(v Value) error {
	if _, err := fmt.Fprintln(i.out, v.String()); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	return nil
}
