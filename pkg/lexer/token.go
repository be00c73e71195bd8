package lexer

import (
	"fmt"
)

type TokenType int
type TokenCategory int

type Token struct {
	Type    TokenType // Type of the token
	Lexeme  string    // Actual string from source code
	Literal string    // Literal value (string contents without quotes, error text for ILLEGAL)
	Pos     Position  // Position of the first byte of the token
}

// NewToken creates a new Token instance
func NewToken(tokenType TokenType, lexeme string, literal string, pos Position) Token {
	return Token{
		Type:    tokenType,
		Lexeme:  lexeme,
		Literal: literal,
		Pos:     pos,
	}
}

const (
	NONE TokenCategory = iota
	KEYWORD
	IDENTIFIER
	NUMBER
	STRING_LITERAL
	OPERATOR
	PUNCTUATION
	END
)

const (
	EOF TokenType = iota // End of input

	FUNCTION // function
	WRITE    // write
	FOR      // for
	DO       // do
	WHILE    // while
	BREAK    // break
	CONTINUE // continue
	PASS     // pass
	IF       // if
	ELIF     // elif
	ELSE     // else
	RETURN   // return

	ID     // identifier
	NUM    // integer literal
	STRING // string literal

	PLUS   // +
	MINUS  // -
	MULT   // *
	DIV    // /
	ASSIGN // =
	EQ     // ==
	NE     // !=
	LT     // <
	LE     // <=
	GT     // >
	GE     // >=
	ARROW  // ->
	INC    // ++
	DEC    // --

	SEMICOLON // ;
	COMMA     // ,
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }

	ILLEGAL // lexical error, Literal carries the message
)

var Keywords = map[string]TokenType{
	"function": FUNCTION,
	"write":    WRITE,
	"for":      FOR,
	"do":       DO,
	"while":    WHILE,
	"break":    BREAK,
	"continue": CONTINUE,
	"pass":     PASS,
	"if":       IF,
	"elif":     ELIF,
	"else":     ELSE,
	"return":   RETURN,
}

var tokenNames = map[TokenType]string{
	EOF:       "$",
	FUNCTION:  "function",
	WRITE:     "write",
	FOR:       "for",
	DO:        "do",
	WHILE:     "while",
	BREAK:     "break",
	CONTINUE:  "continue",
	PASS:      "pass",
	IF:        "if",
	ELIF:      "elif",
	ELSE:      "else",
	RETURN:    "return",
	ID:        "id",
	NUM:       "num",
	STRING:    "string",
	PLUS:      "+",
	MINUS:     "-",
	MULT:      "*",
	DIV:       "/",
	ASSIGN:    "=",
	EQ:        "==",
	NE:        "!=",
	LT:        "<",
	LE:        "<=",
	GT:        ">",
	GE:        ">=",
	ARROW:     "->",
	INC:       "++",
	DEC:       "--",
	SEMICOLON: ";",
	COMMA:     ",",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	ILLEGAL:   "illegal",
}

// String returns a string representation of the Token
func (t Token) String() string {
	if t.Literal == "" || t.Literal == t.Lexeme {
		return fmt.Sprintf("T_{%s, %v, nil, %s}", t.Type, t.Lexeme, t.Pos.String())
	}

	return fmt.Sprintf("T_{%s, %v, %q, %s}", t.Type, t.Lexeme, t.Literal, t.Pos.String())
}

// Text returns the text a user would recognise the token by
func (t Token) Text() string {
	switch t.Type {
	case EOF:
		return "end of input"
	case STRING:
		return t.Literal
	default:
		return t.Lexeme
	}
}

// String returns a string representation of the TokenType
func (t TokenType) String() string {
	if str, ok := tokenNames[t]; ok {
		return str
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// GetCategory returns the lexeme kind of the token
func (t TokenType) GetCategory() TokenCategory {
	switch t {
	case FUNCTION, WRITE, FOR, DO, WHILE, BREAK, CONTINUE, PASS, IF, ELIF, ELSE, RETURN:
		return KEYWORD
	case ID:
		return IDENTIFIER
	case NUM:
		return NUMBER
	case STRING:
		return STRING_LITERAL
	case PLUS, MINUS, MULT, DIV, ASSIGN, EQ, NE, LT, LE, GT, GE, ARROW, INC, DEC:
		return OPERATOR
	case SEMICOLON, COMMA, LPAREN, RPAREN, LBRACE, RBRACE:
		return PUNCTUATION
	case EOF:
		return END
	default:
		return NONE
	}
}

// IsComparison reports whether the token is one of the six comparators
func (t TokenType) IsComparison() bool {
	switch t {
	case EQ, NE, LT, LE, GT, GE:
		return true
	default:
		return false
	}
}

// IsKeyword checks if the given identifier is a keyword and returns its TokenType if it is
func IsKeyword(identifier string) (TokenType, bool) {
	tokenType, ok := Keywords[identifier]
	return tokenType, ok
}
