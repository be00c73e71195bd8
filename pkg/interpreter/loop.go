package interpreter

import (
	"arrow/pkg/lexer"
)

type updateOp int

const (
	updateNone updateOp = iota
	updateIncrement
	updateDecrement
	updateAssign
)

// forUpdate is the parsed, not yet applied, third clause of a for loop
type forUpdate struct {
	op   updateOp
	name string
	expr bookmark // start of the right-hand side for updateAssign
}

// whileStatement handles `while (cond) { ... }`.
// The body runs in one loop frame that lives as long as the loop.
func (i *Interpreter) whileStatement() (Signal, error) {
	if err := i.next(); err != nil {
		return normal, err
	}
	if err := i.expect(lexer.LPAREN); err != nil {
		return normal, err
	}

	condStart := i.mark()
	ok, err := i.loopCondition()
	if err != nil {
		return normal, err
	}
	blockStart := i.mark()

	i.pushScope()
	for ok {
		i.diag("While loop iteration start")
		i.rewind(blockStart)

		sig, err := i.execBlock(false)
		if err != nil {
			return normal, err
		}

		switch sig.Kind {
		case Break:
			i.diag("Loop break encountered")
			return normal, i.popScope()
		case Returning:
			i.diag("Return encountered inside while loop")
			return sig, i.popScope()
		}

		i.rewind(condStart)
		if ok, err = i.loopCondition(); err != nil {
			return normal, err
		}
		i.diag("Condition result", "value", ok)
	}

	if err := i.popScope(); err != nil {
		return normal, err
	}

	i.rewind(blockStart)
	return normal, i.skipBlock()
}

// loopCondition reads `cond )`
func (i *Interpreter) loopCondition() (bool, error) {
	ok, err := i.condition()
	if err != nil {
		return false, err
	}

	return ok, i.expect(lexer.RPAREN)
}

// forStatement handles `for (init; cond; update) { ... }`
func (i *Interpreter) forStatement() (Signal, error) {
	i.diag("Parsing for loop")

	if err := i.next(); err != nil {
		return normal, err
	}
	if err := i.expect(lexer.LPAREN); err != nil {
		return normal, err
	}

	i.pushScope()

	if i.cur.Type != lexer.SEMICOLON {
		if err := i.assignment(); err != nil {
			return normal, err
		}
	}
	if err := i.expect(lexer.SEMICOLON); err != nil {
		return normal, err
	}

	condStart := i.mark()
	hasCond := i.cur.Type != lexer.SEMICOLON
	ok := true
	if hasCond {
		var err error
		if ok, err = i.condition(); err != nil {
			return normal, err
		}
		i.diag("Initial condition evaluated", "value", ok)
	}
	if err := i.expect(lexer.SEMICOLON); err != nil {
		return normal, err
	}

	update, err := i.parseUpdate()
	if err != nil {
		return normal, err
	}
	if err := i.expect(lexer.RPAREN); err != nil {
		return normal, err
	}
	blockStart := i.mark()

	for ok {
		i.diag("For loop iteration start")
		i.rewind(blockStart)

		sig, err := i.execBlock(false)
		if err != nil {
			return normal, err
		}

		switch sig.Kind {
		case Break:
			i.diag("Loop break encountered")
			return normal, i.popScope()
		case Returning:
			i.diag("Return encountered inside for loop")
			return sig, i.popScope()
		}

		if err := i.applyUpdate(update); err != nil {
			return normal, err
		}

		i.rewind(condStart)
		if hasCond {
			if ok, err = i.condition(); err != nil {
				return normal, err
			}
			i.diag("Condition result", "value", ok)
		}
	}

	i.diag("Popping for loop scope")
	if err := i.popScope(); err != nil {
		return normal, err
	}

	i.rewind(blockStart)
	return normal, i.skipBlock()
}

// parseUpdate reads `name++`, `name--` or `name -> expr` up to the closing
// parenthesis without applying it
func (i *Interpreter) parseUpdate() (forUpdate, error) {
	if i.cur.Type == lexer.RPAREN {
		return forUpdate{op: updateNone}, nil
	}

	if i.cur.Type != lexer.ID {
		return forUpdate{}, i.fail(ErrSyntax, "Invalid update expression in for loop")
	}

	u := forUpdate{name: i.cur.Lexeme}
	if err := i.next(); err != nil {
		return forUpdate{}, err
	}

	switch i.cur.Type {
	case lexer.INC:
		u.op = updateIncrement
	case lexer.DEC:
		u.op = updateDecrement
	case lexer.ARROW:
		if err := i.next(); err != nil {
			return forUpdate{}, err
		}
		u.op = updateAssign
		u.expr = i.mark()
		return u, i.skipUpdateExpr()
	default:
		return forUpdate{}, i.fail(ErrSyntax, "Invalid update expression in for loop")
	}

	i.diag("Parsed update", "var", u.name)
	return u, i.next()
}

// skipUpdateExpr passes over an expression up to the unmatched ')'
func (i *Interpreter) skipUpdateExpr() error {
	depth := 0
	for {
		switch i.cur.Type {
		case lexer.EOF, lexer.SEMICOLON, lexer.LBRACE, lexer.RBRACE:
			return i.fail(ErrSyntax, "Invalid update expression in for loop")
		case lexer.LPAREN:
			depth++
		case lexer.RPAREN:
			if depth == 0 {
				return nil
			}
			depth--
		}

		if err := i.next(); err != nil {
			return err
		}
	}
}

// applyUpdate changes the update variable in whichever frame binds it
func (i *Interpreter) applyUpdate(u forUpdate) error {
	var v Value

	switch u.op {
	case updateNone:
		return nil

	case updateIncrement, updateDecrement:
		old, err := i.lookup(u.name)
		if err != nil {
			return err
		}

		n, ok := old.AsInt64()
		if !ok {
			verb := "increment"
			if u.op == updateDecrement {
				verb = "decrement"
			}
			return i.failf(ErrType, "Cannot %s non-integer variable: %s", verb, u.name)
		}

		if u.op == updateIncrement {
			v = NewInt(n + 1)
		} else {
			v = NewInt(n - 1)
		}

	case updateAssign:
		i.rewind(u.expr)
		n, err := i.expr()
		if err != nil {
			return err
		}
		v = NewInt(n)
	}

	if !i.env.Update(u.name, v) {
		return i.fail(ErrUndefinedVariable, "Undefined variable: "+u.name)
	}

	i.diag("Applied update", "var", u.name, "value", v)
	return nil
}

// doStatement runs its block exactly once; there is no trailing condition
func (i *Interpreter) doStatement() (Signal, error) {
	if err := i.next(); err != nil {
		return normal, err
	}

	return i.execBlock(true)
}
