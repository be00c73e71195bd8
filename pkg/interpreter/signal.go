package interpreter

// SignalKind says how a statement finished.
type SignalKind int

const (
	Normal SignalKind = iota
	Break
	Continue
	Returning
)

// Signal is returned by every statement, block and loop runner.
// Value is only meaningful for Returning.
type Signal struct {
	Kind  SignalKind
	Value Value
}

var normal = Signal{Kind: Normal}

func (k SignalKind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Break:
		return "break"
	case Continue:
		return "continue"
	case Returning:
		return "return"
	default:
		return "unknown"
	}
}
