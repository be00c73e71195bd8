package lexer

import "fmt"

// Position is a resumable cursor into the source text.
// Offset alone identifies it; Line and Column are carried so a restored cursor
// reports the same line numbers it did when it was saved.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Returns a string representation of the Position
func (p Position) String() string {
	return fmt.Sprintf("%d, %d, %d", p.Line, p.Column, p.Offset)
}

// Creates a new Position instance
func NewPosition(line, column, offset int) Position {
	return Position{
		Line:   line,
		Column: column,
		Offset: offset,
	}
}

// LineAt derives the line number of a byte offset in s
func LineAt(s string, offset int) int {
	if offset > len(s) {
		offset = len(s)
	}

	line := 1
	for i := 0; i < offset; i++ {
		if s[i] == '\n' {
			line++
		}
	}

	return line
}
