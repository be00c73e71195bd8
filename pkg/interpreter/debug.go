package interpreter

import (
	"github.com/charmbracelet/log"
)

// diag emits a diagnostic tagged with the current line. It never changes state.
func (i *Interpreter) diag(msg string, keyvals ...any) {
	if !i.diagnostics {
		return
	}

	i.logger.Debug(msg, append([]any{"line", i.cur.Pos.Line}, keyvals...)...)
}

// dumpContext logs the tokens around the cursor, marking the current one.
// It lexes a private copy of the input, so the live cursor is untouched.
func (i *Interpreter) dumpContext() {
	if !i.diagnostics || i.lex == nil || i.logger.GetLevel() > log.DebugLevel {
		return
	}

	tokens, offsets := i.lex.Tokens()
	at := i.lex.GetPosition().Offset

	idx := 0
	for idx < len(tokens) && offsets[idx] < at {
		idx++
	}
	if idx >= len(tokens) {
		idx = len(tokens) - 1
	}

	start := max(0, idx-i.contextSize)
	end := min(len(tokens)-1, idx+i.contextSize)

	i.logger.Debug("---- Token Context ----")
	for k := start; k <= end; k++ {
		prefix := "   "
		if k == idx-1 {
			prefix = ">> "
		}
		i.logger.Debugf("%sToken[%d] at pos %d: %q (type=%s)", prefix, k, offsets[k], tokens[k].Text(), tokens[k].Type)
	}
	i.logger.Debug("------------------------")
}
