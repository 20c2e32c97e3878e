package selectors

import (
	"fmt"
)

// ErrorKind classifies a parse failure.
type ErrorKind uint8

const (
	// SyntaxError: the tokens do not match any selector production.
	SyntaxError ErrorKind = iota + 1
	// RestrictionError: the selector is well-formed but not allowed, e.g. a
	// pseudo-class after a pseudo-element that does not accept it, nested
	// :has() or an undeclared namespace prefix.
	RestrictionError
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "syntax error"
	case RestrictionError:
		return "restriction error"
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Error is returned for invalid selectors.
type Error struct {
	Kind   ErrorKind
	Offset int // byte offset into the selector text
	Msg    string
}

// Error returns the formatted error message.
func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Msg)
}

// errEmpty is reported when the input holds no selector at all.
const errEmpty = "expected selector"
