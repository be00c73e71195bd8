package interpreter

import (
	"strconv"
)

type ValueKind int

const (
	KindInt ValueKind = iota
	KindString
)

// Value is a tagged scalar. Values are copied, never shared.
type Value struct {
	Kind ValueKind
	I64  int64
	Str  string
}

// String renders the value the way write() prints it.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	default:
		return strconv.FormatInt(v.I64, 10)
	}
}

// AsInt64 returns the integer payload; ok is false for text values.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}

	return v.I64, true
}

func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindString:
		return "text"
	default:
		return "unknown"
	}
}

// NewInt creates a new integer Value.
func NewInt(i int64) Value {
	return Value{Kind: KindInt, I64: i}
}

// NewString creates a new text Value.
func NewString(s string) Value {
	return Value{Kind: KindString, Str: s}
}
