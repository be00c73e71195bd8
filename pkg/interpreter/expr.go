package interpreter

import (
	"strconv"

	"arrow/pkg/lexer"
)

// expr := term (('+'|'-') term)*
func (i *Interpreter) expr() (int64, error) {
	result, err := i.term()
	if err != nil {
		return 0, err
	}

	for i.cur.Type == lexer.PLUS || i.cur.Type == lexer.MINUS {
		op := i.cur.Type
		if err := i.next(); err != nil {
			return 0, err
		}

		rhs, err := i.term()
		if err != nil {
			return 0, err
		}

		if op == lexer.PLUS {
			result += rhs
		} else {
			result -= rhs
		}
	}

	return result, nil
}

// term := factor (('*'|'/') factor)*
func (i *Interpreter) term() (int64, error) {
	result, err := i.factor()
	if err != nil {
		return 0, err
	}

	for i.cur.Type == lexer.MULT || i.cur.Type == lexer.DIV {
		op := i.cur.Type
		if err := i.next(); err != nil {
			return 0, err
		}

		rhs, err := i.factor()
		if err != nil {
			return 0, err
		}

		if op == lexer.MULT {
			result *= rhs
			continue
		}

		if rhs == 0 {
			return 0, i.fail(ErrDivisionByZero, "Division by zero")
		}
		result /= rhs
	}

	return result, nil
}

// factor := integer | variable | call | '(' expr ')' | '-' factor
func (i *Interpreter) factor() (int64, error) {
	switch i.cur.Type {
	case lexer.LPAREN:
		if err := i.next(); err != nil {
			return 0, err
		}

		val, err := i.expr()
		if err != nil {
			return 0, err
		}

		return val, i.expect(lexer.RPAREN)

	case lexer.NUM:
		val, err := i.number()
		if err != nil {
			return 0, err
		}

		return val, i.next()

	case lexer.ID:
		if i.peek().Type == lexer.LPAREN {
			ret, err := i.call()
			if err != nil {
				return 0, err
			}

			n, _ := ret.AsInt64()
			return n, nil
		}

		name := i.cur.Lexeme
		v, err := i.lookup(name)
		if err != nil {
			return 0, err
		}

		n, ok := v.AsInt64()
		if !ok {
			return 0, i.fail(ErrType, "Variable is not an integer: "+name)
		}

		return n, i.next()

	case lexer.MINUS:
		if err := i.next(); err != nil {
			return 0, err
		}

		val, err := i.factor()
		return -val, err

	case lexer.ILLEGAL:
		return 0, i.fail(ErrLexical, i.cur.Literal)

	default:
		return 0, i.fail(ErrSyntax, "Unexpected token in factor: "+i.cur.Text())
	}
}

// condition evaluates `expr [cmp expr]`; without a comparator any non-zero value is true
func (i *Interpreter) condition() (bool, error) {
	left, err := i.expr()
	if err != nil {
		return false, err
	}

	if !i.cur.Type.IsComparison() {
		return left != 0, nil
	}

	op := i.cur.Type
	if err := i.next(); err != nil {
		return false, err
	}

	right, err := i.expr()
	if err != nil {
		return false, err
	}

	switch op {
	case lexer.EQ:
		return left == right, nil
	case lexer.NE:
		return left != right, nil
	case lexer.LT:
		return left < right, nil
	case lexer.LE:
		return left <= right, nil
	case lexer.GT:
		return left > right, nil
	default:
		return left >= right, nil
	}
}

// parenCondition reads `( condition )`
func (i *Interpreter) parenCondition() (bool, error) {
	if err := i.expect(lexer.LPAREN); err != nil {
		return false, err
	}

	ok, err := i.condition()
	if err != nil {
		return false, err
	}

	return ok, i.expect(lexer.RPAREN)
}

// number converts the current NUM lexeme
func (i *Interpreter) number() (int64, error) {
	n, err := strconv.ParseInt(i.cur.Lexeme, 10, 64)
	if err != nil {
		return 0, i.fail(ErrSyntax, "Integer literal out of range: "+i.cur.Lexeme)
	}

	return n, nil
}
