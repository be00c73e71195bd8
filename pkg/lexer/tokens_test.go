package lexer_test

import (
	"arrow/pkg/lexer"
	"testing"
)

func TestTokens(t *testing.T) {
	input := "x -> 10 / 2;\n" + "while (x >= 0) {\n" + "	write(x);\n" + "	if (x == 5) { break; } elif (x != 4) { pass; } else { continue; }\n" + "	x -> x - 1;\n" + "}\n" +
		"function add(a, b) { return a + b; }\n" + "for (i -> 0; i <= 3; i++) { do { write(\"hi there\"); } }\n" + "j--"
	mylexer := lexer.NewLexer(input)

	expectedTokens := []lexer.TokenType{
		lexer.ID, lexer.ARROW, lexer.NUM, lexer.DIV, lexer.NUM, lexer.SEMICOLON,
		lexer.WHILE, lexer.LPAREN, lexer.ID, lexer.GE, lexer.NUM, lexer.RPAREN, lexer.LBRACE,
		lexer.WRITE, lexer.LPAREN, lexer.ID, lexer.RPAREN, lexer.SEMICOLON,
		lexer.IF, lexer.LPAREN, lexer.ID, lexer.EQ, lexer.NUM, lexer.RPAREN, lexer.LBRACE, lexer.BREAK, lexer.SEMICOLON, lexer.RBRACE,
		lexer.ELIF, lexer.LPAREN, lexer.ID, lexer.NE, lexer.NUM, lexer.RPAREN, lexer.LBRACE, lexer.PASS, lexer.SEMICOLON, lexer.RBRACE,
		lexer.ELSE, lexer.LBRACE, lexer.CONTINUE, lexer.SEMICOLON, lexer.RBRACE,
		lexer.ID, lexer.ARROW, lexer.ID, lexer.MINUS, lexer.NUM, lexer.SEMICOLON,
		lexer.RBRACE,
		lexer.FUNCTION, lexer.ID, lexer.LPAREN, lexer.ID, lexer.COMMA, lexer.ID, lexer.RPAREN,
		lexer.LBRACE, lexer.RETURN, lexer.ID, lexer.PLUS, lexer.ID, lexer.SEMICOLON, lexer.RBRACE,
		lexer.FOR, lexer.LPAREN, lexer.ID, lexer.ARROW, lexer.NUM, lexer.SEMICOLON, lexer.ID, lexer.LE, lexer.NUM, lexer.SEMICOLON,
		lexer.ID, lexer.INC, lexer.RPAREN, lexer.LBRACE, lexer.DO, lexer.LBRACE, lexer.WRITE, lexer.LPAREN, lexer.STRING, lexer.RPAREN,
		lexer.SEMICOLON, lexer.RBRACE, lexer.RBRACE,
		lexer.ID, lexer.DEC,
		lexer.EOF, lexer.EOF,
	}

	for i, expected := range expectedTokens {
		token := mylexer.NextToken()
		if token.Type != expected {
			t.Errorf("Token %d: expected %s, got %s (%q)", i, expected, token.Type, token.Lexeme)
		}
	}
}

func TestStringLiteral(t *testing.T) {
	mylexer := lexer.NewLexer(`"a \n b"`)

	tok := mylexer.NextToken()
	if tok.Type != lexer.STRING {
		t.Fatalf("expected string, got %s", tok.Type)
	}
	if tok.Literal != `a \n b` {
		t.Errorf("expected raw contents without escape processing, got %q", tok.Literal)
	}
}

func TestCategories(t *testing.T) {
	tests := []struct {
		input    string
		expected lexer.TokenCategory
	}{
		{"42", lexer.NUMBER},
		{"name", lexer.IDENTIFIER},
		{"_tmp1", lexer.IDENTIFIER},
		{"elif", lexer.KEYWORD},
		{"->", lexer.OPERATOR},
		{"++", lexer.OPERATOR},
		{"{", lexer.PUNCTUATION},
		{`"s"`, lexer.STRING_LITERAL},
		{"", lexer.END},
	}

	for _, test := range tests {
		tok := lexer.NewLexer(test.input).NextToken()
		if got := tok.Type.GetCategory(); got != test.expected {
			t.Errorf("Input %q: expected category %d, got %d", test.input, test.expected, got)
		}
	}
}

func TestLexicalErrors(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{`"open`, "Unterminated string literal"},
		{"/* never closed", "Unterminated multi-line comment"},
		{"@", "Unknown character: @"},
		{"!", "Unexpected character '!'"},
	}

	for _, test := range tests {
		tok := lexer.NewLexer(test.input).NextToken()
		if tok.Type != lexer.ILLEGAL {
			t.Errorf("Input %q: expected illegal token, got %s", test.input, tok.Type)
			continue
		}
		if tok.Literal != test.message {
			t.Errorf("Input %q: expected %q, got %q", test.input, test.message, tok.Literal)
		}
	}
}
