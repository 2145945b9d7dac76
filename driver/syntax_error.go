package driver

import (
	"fmt"
	"strings"
)

// SyntaxErrorKind is the closed set of fatal parse failures. Every kind
// terminates the current parse; there is no recovery or multi-error
// collection.
type SyntaxErrorKind int

const (
	// ErrUnexpectedToken: a terminal was found where a single different
	// terminal was required.
	ErrUnexpectedToken SyntaxErrorKind = iota
	// ErrNoProduction: a non-terminal has no table entry for the current
	// terminal; the expectation set lists every terminal the non-terminal
	// accepts.
	ErrNoProduction
	// ErrUnexpectedEOF: the input ended while grammar symbols were still
	// pending.
	ErrUnexpectedEOF
)

func (k SyntaxErrorKind) String() string {
	switch k {
	case ErrUnexpectedToken:
		return "unexpected token"
	case ErrNoProduction:
		return "no production"
	case ErrUnexpectedEOF:
		return "unexpected end of input"
	default:
		return fmt.Sprintf("syntax error kind(%d)", int(k))
	}
}

// SyntaxError is the structured diagnostic surfaced to the caller. Row and
// Col are 1-based; Context is a rendered source window with a caret, empty
// when no source text is attached.
type SyntaxError struct {
	Kind     SyntaxErrorKind
	Row      int
	Col      int
	Found    string
	Expected []string
	Context  string
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v:%v: error: ", e.Row, e.Col)
	switch e.Kind {
	case ErrUnexpectedEOF:
		fmt.Fprintf(&b, "unexpected end of input, expected %v", e.expectation())
	case ErrNoProduction:
		fmt.Fprintf(&b, "unexpected token: found '%v', expected %v", e.Found, e.expectation())
	default:
		fmt.Fprintf(&b, "unexpected token: found '%v', expected %v", e.Found, e.expectation())
	}
	if e.Context != "" {
		fmt.Fprintf(&b, "\n%v", e.Context)
	}
	return b.String()
}

func (e *SyntaxError) expectation() string {
	switch len(e.Expected) {
	case 0:
		return "nothing"
	case 1:
		return fmt.Sprintf("'%v'", e.Expected[0])
	default:
		quoted := make([]string, len(e.Expected))
		for i, text := range e.Expected {
			quoted[i] = fmt.Sprintf("'%v'", text)
		}
		return fmt.Sprintf("one of %v", strings.Join(quoted, ", "))
	}
}
