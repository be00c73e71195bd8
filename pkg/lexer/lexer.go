package lexer

import (
	"fmt"
	"strings"
)

type Lexer struct {
	input    string   // input string to be tokenized
	length   int      // length of the input string
	position int      // current position in the input string
	line     int      // current line number for error reporting
	column   int      // current column number for error reporting
	buffered *Token   // one-slot lookahead filled by PeekToken
	bufStart Position // cursor before the buffered token
}

// Create a new lexer instance
func NewLexer(s string) *Lexer {
	return &Lexer{
		input:    s,
		length:   len(s),
		position: 0,
		line:     1,
		column:   1,
	}
}

// NextToken consumes and returns the next token.
// At end of input it keeps returning EOF. Lexical errors come back as ILLEGAL
// tokens whose Literal holds the message.
func (l *Lexer) NextToken() Token {
	if l.buffered != nil {
		tok := *l.buffered
		l.buffered = nil
		return tok
	}

	if msg, at := l.skipWhitespace(); msg != "" {
		return NewToken(ILLEGAL, "/*", msg, at)
	}

	start := l.currentPosition()

	// End of input
	if l.position >= l.length {
		return NewToken(EOF, "", "", start)
	}

	remaining := l.input[l.position:]
	tokenType, lexeme, matched := MatchToken(remaining)

	if !matched {
		switch remaining[0] {
		case '"':
			l.advance(len(remaining))
			return NewToken(ILLEGAL, remaining, "Unterminated string literal", start)
		case '!':
			l.advance(1)
			return NewToken(ILLEGAL, "!", "Unexpected character '!'", start)
		default:
			l.advance(1)
			return NewToken(ILLEGAL, lexeme, fmt.Sprintf("Unknown character: %s", lexeme), start)
		}
	}

	literal := lexeme
	if tokenType == STRING {
		// Remove the surrounding quotes from the lexeme
		literal = lexeme[1 : len(lexeme)-1]
	}

	l.advance(len(lexeme))
	return NewToken(tokenType, lexeme, literal, start)
}

// PeekToken returns the next token without consuming it
func (l *Lexer) PeekToken() Token {
	if l.buffered == nil {
		from := l.currentPosition()
		tok := l.NextToken()
		l.buffered = &tok
		l.bufStart = from
	}

	return *l.buffered
}

// GetPosition returns the cursor, ignoring any token held by PeekToken
func (l *Lexer) GetPosition() Position {
	if l.buffered != nil {
		return l.bufStart
	}

	return l.currentPosition()
}

// SetPosition moves the cursor and drops the lookahead buffer
func (l *Lexer) SetPosition(p Position) {
	if p.Offset < 0 {
		p = NewPosition(1, 1, 0)
	}
	if p.Offset > l.length {
		p.Offset = l.length
	}
	if p.Line == 0 {
		p.Line = LineAt(l.input, p.Offset)
		p.Column = p.Offset - strings.LastIndexByte(l.input[:p.Offset], '\n')
	}

	l.position = p.Offset
	l.line = p.Line
	l.column = p.Column
	l.buffered = nil
}

// Tokens lexes the whole input from the start without touching this lexer's cursor.
// Each token is paired with the offset the cursor had before reading it.
// The scan stops after EOF or the first ILLEGAL token.
func (l *Lexer) Tokens() ([]Token, []int) {
	scan := NewLexer(l.input)

	var tokens []Token
	var offsets []int
	for {
		offsets = append(offsets, scan.GetPosition().Offset)
		tok := scan.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF || tok.Type == ILLEGAL {
			return tokens, offsets
		}
	}
}

// Skip whitespace and comments. An unterminated block comment returns a message
// and the position where the comment opened.
func (l *Lexer) skipWhitespace() (string, Position) {
	for l.position < l.length {
		ch := l.input[l.position]

		if isSpace(ch) {
			l.advance(1)
		} else if ch == '/' && l.position+1 < l.length && l.input[l.position+1] == '/' {
			for l.position < l.length && l.input[l.position] != '\n' {
				l.advance(1)
			}
		} else if ch == '/' && l.position+1 < l.length && l.input[l.position+1] == '*' {
			open := l.currentPosition()
			end := strings.Index(l.input[l.position+2:], "*/")
			if end < 0 {
				l.advance(l.length - l.position)
				return "Unterminated multi-line comment", open
			}
			l.advance(end + 4)
		} else {
			break
		}
	}

	return "", Position{}
}

// Advance the lexer position by n characters
func (l *Lexer) advance(n int) {
	for k := 0; k < n; k++ {
		if l.position >= l.length {
			break
		}

		if l.input[l.position] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}

		l.position++
	}
}

// Get the current position of the lexer
func (l *Lexer) currentPosition() Position {
	return Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}
}
