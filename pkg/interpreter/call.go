package interpreter

import (
	"arrow/pkg/lexer"
)

// defineFunction records `function name(params) {` and skips past the body.
// The body is never executed here.
func (i *Interpreter) defineFunction() error {
	if err := i.next(); err != nil {
		return err
	}

	if i.cur.Type != lexer.ID {
		return i.fail(ErrSyntax, "Expected function name")
	}
	name := i.cur.Lexeme
	if err := i.next(); err != nil {
		return err
	}

	if err := i.expect(lexer.LPAREN); err != nil {
		return err
	}

	params := []string{}
	for i.cur.Type != lexer.RPAREN {
		if i.cur.Type != lexer.ID {
			return i.fail(ErrSyntax, "Expected parameter name")
		}
		params = append(params, i.cur.Lexeme)
		if err := i.next(); err != nil {
			return err
		}

		if i.cur.Type != lexer.COMMA {
			break
		}
		if err := i.next(); err != nil {
			return err
		}
	}

	if err := i.expect(lexer.RPAREN); err != nil {
		return err
	}
	if err := i.expect(lexer.LBRACE); err != nil {
		return err
	}

	body := i.mark()
	i.funcs[name] = FunctionInfo{Body: body, Params: params}
	i.diag("Stored function", "func", name, "params", len(params), "pos", body.pos.Offset)

	if err := i.skipRest(1); err != nil {
		return err
	}

	return i.closeBlock()
}

// call invokes the function named by the current identifier and returns its result.
// The caller's cursor is pushed as a call-return record and restored afterwards.
func (i *Interpreter) call() (Value, error) {
	name := i.cur.Lexeme
	if err := i.next(); err != nil {
		return Value{}, err
	}

	args, err := i.arguments()
	if err != nil {
		return Value{}, err
	}

	fn, ok := i.funcs[name]
	if !ok {
		return Value{}, i.fail(ErrUndefinedFunction, "Undefined function: "+name)
	}

	if len(args) != len(fn.Params) {
		return Value{}, i.failf(ErrArity, "Function %s expects %d arguments, but got %d", name, len(fn.Params), len(args))
	}

	if i.maxDepth > 0 && i.calls.Size() >= i.maxDepth {
		return Value{}, i.failf(ErrMaxDepth, "Maximum call depth exceeded (%d) calling %s", i.maxDepth, name)
	}

	i.diag("Pushing return state", "func", name, "pos", i.lex.GetPosition().Offset)
	i.calls.Push(callRecord{name: name, caller: i.mark()})
	i.rewind(fn.Body)

	i.pushScope()
	for idx, param := range fn.Params {
		if err := i.bind(param, args[idx]); err != nil {
			return Value{}, err
		}
	}

	i.result = NewInt(0)
	sig, err := i.runBody()
	if err != nil {
		return Value{}, err
	}
	if sig.Kind == Returning {
		i.result = sig.Value
	}

	i.diag("Exiting function", "func", name, "value", i.result)
	if err := i.popScope(); err != nil {
		return Value{}, err
	}

	rec, _ := i.calls.Pop()
	i.rewind(rec.caller)

	return i.result, nil
}

// arguments reads `( atom, ... )` where an atom is a number, a string or a variable
func (i *Interpreter) arguments() ([]Value, error) {
	if err := i.expect(lexer.LPAREN); err != nil {
		return nil, err
	}

	var args []Value
	for i.cur.Type != lexer.RPAREN {
		var v Value

		switch i.cur.Type {
		case lexer.STRING:
			v = NewString(i.cur.Literal)
		case lexer.NUM:
			n, err := i.number()
			if err != nil {
				return nil, err
			}
			v = NewInt(n)
		case lexer.ID:
			var err error
			if v, err = i.lookup(i.cur.Lexeme); err != nil {
				return nil, err
			}
		default:
			return nil, i.fail(ErrSyntax, "Invalid argument in function call")
		}

		args = append(args, v)
		if err := i.next(); err != nil {
			return nil, err
		}

		if i.cur.Type != lexer.COMMA {
			break
		}
		if err := i.next(); err != nil {
			return nil, err
		}
	}

	i.diag("Completed parsing arguments", "count", len(args))
	return args, i.expect(lexer.RPAREN)
}
