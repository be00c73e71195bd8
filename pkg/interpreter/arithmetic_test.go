package interpreter_test

import (
	"arrow/pkg/interpreter"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var operators = []string{"+", "-", "*", "/"}

func native(a, b int64, op string) int64 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	default:
		return a / b
	}
}

func TestArithmeticMatchesNative(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)

	properties.Property("x -> a OP b matches native integer arithmetic", prop.ForAll(
		func(a, b int64, opIdx int) bool {
			op := operators[opIdx]
			src := fmt.Sprintf("x -> %d %s %d; write(x);", a, op, b)
			got, err := run(t, src)

			if op == "/" && b == 0 {
				return errors.Is(err, interpreter.ErrDivisionByZero) && got == ""
			}

			return err == nil && got == strconv.FormatInt(native(a, b, op), 10)+"\n"
		},
		gen.Int64Range(-1000000000, 1000000000),
		gen.Int64Range(-1000, 1000),
		gen.IntRange(0, len(operators)-1),
	))

	properties.Property("conditions agree with native comparison", prop.ForAll(
		func(a, b int64) bool {
			src := fmt.Sprintf("if (%d < %d) { write(1); } else { write(0); }", a, b)
			got, err := run(t, src)

			want := "0\n"
			if a < b {
				want = "1\n"
			}
			return err == nil && got == want
		},
		gen.Int64Range(-1000, 1000),
		gen.Int64Range(-1000, 1000),
	))

	properties.TestingRun(t)
}
