package lexer

import (
	"regexp"
)

// Token regex patterns
var tokenRegexes = map[TokenType]*regexp.Regexp{
	EQ:    regexp.MustCompile(`^==`),
	NE:    regexp.MustCompile(`^!=`),
	LE:    regexp.MustCompile(`^<=`),
	GE:    regexp.MustCompile(`^>=`),
	ARROW: regexp.MustCompile(`^->`),
	INC:   regexp.MustCompile(`^\+\+`),
	DEC:   regexp.MustCompile(`^--`),

	ASSIGN: regexp.MustCompile(`^=`),
	PLUS:   regexp.MustCompile(`^\+`),
	MINUS:  regexp.MustCompile(`^-`),
	MULT:   regexp.MustCompile(`^\*`),
	DIV:    regexp.MustCompile(`^/`),
	LT:     regexp.MustCompile(`^<`),
	GT:     regexp.MustCompile(`^>`),

	SEMICOLON: regexp.MustCompile(`^;`),
	COMMA:     regexp.MustCompile(`^,`),
	LPAREN:    regexp.MustCompile(`^\(`),
	RPAREN:    regexp.MustCompile(`^\)`),
	LBRACE:    regexp.MustCompile(`^\{`),
	RBRACE:    regexp.MustCompile(`^\}`),

	NUM:    regexp.MustCompile(`^[0-9]+`),
	STRING: regexp.MustCompile(`^"[^"]*"`),
	ID:     regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*`),
}

// Token precedence order for matching (two-character operators before their prefixes)
var tokenPrecedenceOrder = []TokenType{
	EQ, NE, LE, GE, ARROW, INC, DEC,
	ASSIGN, PLUS, MINUS, MULT, DIV, LT, GT,
	SEMICOLON, COMMA, LPAREN, RPAREN, LBRACE, RBRACE,
	NUM, STRING, ID,
}

// MatchToken matches the first token at the start of s.
// Identifiers are classified against the keyword set. Whitespace and comments
// are not recognised here; the lexer strips them before matching.
func MatchToken(s string) (TokenType, string, bool) {
	if s == "" {
		return EOF, "", false
	}

	for _, tokenType := range tokenPrecedenceOrder {
		if match := tokenRegexes[tokenType].FindString(s); match != "" {
			if tokenType == ID {
				if kw, ok := IsKeyword(match); ok {
					return kw, match, true
				}
			}
			return tokenType, match, true
		}
	}

	return ILLEGAL, string(s[0]), false
}

// Check if a byte is whitespace
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
