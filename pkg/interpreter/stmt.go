package interpreter

import (
	"fmt"

	"arrow/pkg/lexer"
)

// execStatement dispatches on the current lexeme and executes one statement
func (i *Interpreter) execStatement() (Signal, error) {
	if i.maxSteps > 0 && i.steps >= i.maxSteps {
		return normal, i.failf(ErrMaxSteps, "Maximum steps exceeded (%d)", i.maxSteps)
	}
	i.steps++

	i.diag("Entering statement", "token", i.cur.Text(), "type", i.cur.Type)

	switch i.cur.Type {
	case lexer.EOF:
		return normal, nil
	case lexer.FOR:
		return i.forStatement()
	case lexer.DO:
		return i.doStatement()
	case lexer.WHILE:
		return i.whileStatement()
	case lexer.IF:
		return i.ifStatement()
	case lexer.BREAK:
		return i.keywordStatement(Signal{Kind: Break})
	case lexer.CONTINUE:
		return i.keywordStatement(Signal{Kind: Continue})
	case lexer.PASS:
		return i.keywordStatement(normal)
	case lexer.RETURN:
		return i.returnStatement()
	case lexer.ID:
		return normal, i.identifierStatement()
	case lexer.WRITE:
		return normal, i.writeStatement()
	case lexer.FUNCTION:
		return normal, i.defineFunction()
	case lexer.ILLEGAL:
		return normal, i.fail(ErrLexical, i.cur.Literal)
	default:
		return normal, i.fail(ErrSyntax, "Unknown statement starting with token: "+i.cur.Text())
	}
}

// keywordStatement handles `break;`, `continue;` and `pass;`
func (i *Interpreter) keywordStatement(sig Signal) (Signal, error) {
	i.diag(fmt.Sprintf("Processing %s statement", i.cur.Lexeme))

	if err := i.next(); err != nil {
		return normal, err
	}

	return sig, i.expect(lexer.SEMICOLON)
}

// returnStatement handles `return [expr];`; a bare return yields 0
func (i *Interpreter) returnStatement() (Signal, error) {
	if err := i.next(); err != nil {
		return normal, err
	}

	var n int64
	if i.cur.Type != lexer.SEMICOLON {
		var err error
		if n, err = i.expr(); err != nil {
			return normal, err
		}
	}

	if err := i.expect(lexer.SEMICOLON); err != nil {
		return normal, err
	}

	return Signal{Kind: Returning, Value: NewInt(n)}, nil
}

// identifierStatement handles `name -> value;` and `name(args);`
func (i *Interpreter) identifierStatement() error {
	name := i.cur.Lexeme

	switch next := i.peek(); next.Type {
	case lexer.ARROW:
		i.diag("Detected variable assignment", "name", name)
		if err := i.assignment(); err != nil {
			return err
		}

	case lexer.LPAREN:
		i.diag("Detected function call", "func", name)
		if _, err := i.call(); err != nil {
			return err
		}

	case lexer.ILLEGAL:
		return i.next()

	default:
		return i.failf(ErrSyntax, "Expected '->' or '(' after '%s'", name)
	}

	return i.expect(lexer.SEMICOLON)
}

// assignment reads `name -> string|expr` and binds it in the innermost frame
func (i *Interpreter) assignment() error {
	if i.cur.Type != lexer.ID {
		return i.fail(ErrSyntax, "Expected variable name but found '"+i.cur.Text()+"'")
	}

	name := i.cur.Lexeme
	if err := i.next(); err != nil {
		return err
	}
	if err := i.expect(lexer.ARROW); err != nil {
		return err
	}

	var v Value
	if i.cur.Type == lexer.STRING {
		v = NewString(i.cur.Literal)
		if err := i.next(); err != nil {
			return err
		}
	} else {
		n, err := i.expr()
		if err != nil {
			return err
		}
		v = NewInt(n)
	}

	i.diag("Assigned variable", "name", name, "value", v)
	return i.bind(name, v)
}

// writeStatement handles `write(string|identifier|expr);`
func (i *Interpreter) writeStatement() error {
	if err := i.next(); err != nil {
		return err
	}
	if err := i.expect(lexer.LPAREN); err != nil {
		return err
	}

	var v Value
	switch {
	case i.cur.Type == lexer.STRING:
		v = NewString(i.cur.Literal)
		if err := i.next(); err != nil {
			return err
		}

	case i.cur.Type == lexer.ID && i.peek().Type == lexer.RPAREN:
		// a lone identifier may hold text, which an expression cannot
		var err error
		if v, err = i.lookup(i.cur.Lexeme); err != nil {
			return err
		}
		if err := i.next(); err != nil {
			return err
		}

	default:
		n, err := i.expr()
		if err != nil {
			return err
		}
		v = NewInt(n)
	}

	if err := i.expect(lexer.RPAREN); err != nil {
		return err
	}
	if i.cur.Type != lexer.SEMICOLON {
		return i.expect(lexer.SEMICOLON)
	}

	// output happens before the lexeme after ';' is read
	if err := i.write(v); err != nil {
		return err
	}

	return i.next()
}

// execBlock runs `{ ... }`, in a new frame when scoped is set
func (i *Interpreter) execBlock(scoped bool) (Signal, error) {
	if err := i.expect(lexer.LBRACE); err != nil {
		return normal, err
	}

	if scoped {
		i.pushScope()
	}

	sig, err := i.runBody()
	if err != nil {
		return normal, err
	}

	if scoped {
		if err := i.popScope(); err != nil {
			return normal, err
		}
	}

	return sig, i.closeBlock()
}

// runBody executes statements after an opening brace until the matching
// closing brace, which is left as the current lexeme. Nested bare braces only
// change the depth. Any signal other than Normal stops execution and the rest
// of the body is skipped.
func (i *Interpreter) runBody() (Signal, error) {
	depth := 1
	for {
		switch i.cur.Type {
		case lexer.EOF:
			return normal, nil

		case lexer.LBRACE:
			depth++
			if err := i.next(); err != nil {
				return normal, err
			}

		case lexer.RBRACE:
			if depth == 1 {
				return normal, nil
			}
			depth--
			if err := i.next(); err != nil {
				return normal, err
			}

		default:
			sig, err := i.execStatement()
			if err != nil {
				return normal, err
			}

			if sig.Kind != Normal {
				i.diag("Leaving block early", "signal", sig.Kind)
				return sig, i.skipRest(depth)
			}
		}
	}
}

// skipRest discards lexemes up to the closing brace matching depth, leaving it current
func (i *Interpreter) skipRest(depth int) error {
	for {
		switch i.cur.Type {
		case lexer.EOF:
			return nil
		case lexer.LBRACE:
			depth++
		case lexer.RBRACE:
			if depth == 1 {
				return nil
			}
			depth--
		}

		if err := i.next(); err != nil {
			return err
		}
	}
}

// skipBlock passes over `{ ... }` without evaluating anything
func (i *Interpreter) skipBlock() error {
	if err := i.expect(lexer.LBRACE); err != nil {
		return err
	}

	if err := i.skipRest(1); err != nil {
		return err
	}

	return i.closeBlock()
}

// closeBlock consumes the closing brace; running off the end of input is tolerated
func (i *Interpreter) closeBlock() error {
	if i.cur.Type == lexer.EOF {
		return nil
	}

	return i.expect(lexer.RBRACE)
}

// skipParens passes over a parenthesised condition without evaluating it
func (i *Interpreter) skipParens() error {
	if err := i.expect(lexer.LPAREN); err != nil {
		return err
	}

	depth := 1
	for depth > 0 {
		switch i.cur.Type {
		case lexer.EOF:
			return i.fail(ErrSyntax, "Expected ')' but found end of input")
		case lexer.LPAREN:
			depth++
		case lexer.RPAREN:
			depth--
		}

		if err := i.next(); err != nil {
			return err
		}
	}

	return nil
}

// ifStatement handles if/elif/else. Only the taken arm is executed; conditions
// after it are skipped, not evaluated.
func (i *Interpreter) ifStatement() (Signal, error) {
	if err := i.next(); err != nil {
		return normal, err
	}

	ok, err := i.parenCondition()
	if err != nil {
		return normal, err
	}

	if ok {
		return i.takeArm()
	}

	if err := i.skipBlock(); err != nil {
		return normal, err
	}

	for {
		switch i.cur.Type {
		case lexer.ELIF:
			if err := i.next(); err != nil {
				return normal, err
			}

			ok, err := i.parenCondition()
			if err != nil {
				return normal, err
			}

			if ok {
				return i.takeArm()
			}

			if err := i.skipBlock(); err != nil {
				return normal, err
			}

		case lexer.ELSE:
			if err := i.next(); err != nil {
				return normal, err
			}

			return i.execBlock(true)

		default:
			return normal, nil
		}
	}
}

// takeArm executes the current arm and skips every arm after it
func (i *Interpreter) takeArm() (Signal, error) {
	sig, err := i.execBlock(true)
	if err != nil {
		return normal, err
	}

	for i.cur.Type == lexer.ELIF || i.cur.Type == lexer.ELSE {
		isElif := i.cur.Type == lexer.ELIF
		if err := i.next(); err != nil {
			return normal, err
		}

		if isElif {
			if err := i.skipParens(); err != nil {
				return normal, err
			}
		}

		if err := i.skipBlock(); err != nil {
			return normal, err
		}
	}

	return sig, nil
}
