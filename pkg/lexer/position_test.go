package lexer_test

import (
	"arrow/pkg/lexer"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var snippets = []string{
	"x", "->", "42", ";", "\n", "while", "(", ")", "{", "}", "write", `"text"`,
	"<=", "++", "--", "-", "// note\n", "/* a\nb */", "  ", "if", "elif", ",",
}

func buildScript(picks []int) string {
	var sb strings.Builder
	for _, p := range picks {
		sb.WriteString(snippets[p])
		sb.WriteString(" ")
	}
	return sb.String()
}

func TestPeekDoesNotConsume(t *testing.T) {
	mylexer := lexer.NewLexer("a -> 1;")

	mylexer.NextToken()
	peeked := mylexer.PeekToken()
	again := mylexer.PeekToken()
	next := mylexer.NextToken()

	if peeked.Type != lexer.ARROW || again != peeked || next != peeked {
		t.Errorf("expected repeated peeks and the following read to agree, got %v %v %v", peeked, again, next)
	}
	if got := mylexer.NextToken(); got.Type != lexer.NUM {
		t.Errorf("expected num after arrow, got %s", got.Type)
	}
}

func TestPositionIgnoresLookahead(t *testing.T) {
	mylexer := lexer.NewLexer("a\nb\nc")

	mylexer.NextToken()
	before := mylexer.GetPosition()
	mylexer.PeekToken()
	if after := mylexer.GetPosition(); after != before {
		t.Errorf("peek moved the cursor: %v -> %v", before, after)
	}

	mylexer.NextToken()
	mylexer.NextToken()
	mylexer.SetPosition(before)
	if tok := mylexer.NextToken(); tok.Lexeme != "b" || tok.Pos.Line != 2 {
		t.Errorf("expected b on line 2 after restore, got %q on line %d", tok.Lexeme, tok.Pos.Line)
	}
}

func TestSetPositionFromOffset(t *testing.T) {
	input := "a\nbb\nccc"
	mylexer := lexer.NewLexer(input)

	mylexer.SetPosition(lexer.Position{Offset: strings.Index(input, "ccc")})
	tok := mylexer.NextToken()
	if tok.Lexeme != "ccc" || tok.Pos.Line != 3 || tok.Pos.Column != 1 {
		t.Errorf("expected ccc at 3:1, got %q at %d:%d", tok.Lexeme, tok.Pos.Line, tok.Pos.Column)
	}
}

func TestBookmarkRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("restoring a bookmark replays the same token and line", prop.ForAll(
		func(picks []int, skip int, wander int) bool {
			input := buildScript(picks)

			reference := lexer.NewLexer(input)
			for i := 0; i < skip; i++ {
				reference.NextToken()
			}
			want := reference.NextToken()

			mylexer := lexer.NewLexer(input)
			for i := 0; i < skip; i++ {
				mylexer.NextToken()
			}
			mark := mylexer.GetPosition()
			for i := 0; i < wander; i++ {
				if i%2 == 0 {
					mylexer.PeekToken()
				}
				mylexer.NextToken()
			}
			mylexer.SetPosition(mark)
			got := mylexer.NextToken()

			return got == want && got.Pos.Line == lexer.LineAt(input, got.Pos.Offset)
		},
		gen.SliceOf(gen.IntRange(0, len(snippets)-1)),
		gen.IntRange(0, 20),
		gen.IntRange(0, 20),
	))

	properties.TestingRun(t)
}
