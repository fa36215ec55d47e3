package ui

import (
	"errors"
	"fmt"
)

// Kinds of fatal engine errors. They describe malformed UI declaration code,
// not runtime conditions, so the engine panics with them instead of
// returning them.
var (
	ErrCapacity       = errors.New("capacity exhausted")
	ErrStackOverflow  = errors.New("stack overflow")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrUnbalanced     = errors.New("unbalanced scope")
	ErrMissingSetup   = errors.New("missing setup")
)

// Error is the panic value used for every fatal engine condition.
type Error struct {
	Kind   error  // one of the Err* sentinels
	Op     string // engine operation that failed
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("ui: %s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("ui: %s: %v (%s)", e.Op, e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.Kind }

func fatal(kind error, op, detail string) {
	panic(&Error{Kind: kind, Op: op, Detail: detail})
}

func expect(cond bool, kind error, op, detail string) {
	if !cond {
		fatal(kind, op, detail)
	}
}
