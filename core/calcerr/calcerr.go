// Package calcerr carries the two failure kinds a calculator can report:
// bad input and an input that is valid but cannot be satisfied.
package calcerr

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindInfeasible
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInfeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Error is a calculator failure. Msg is the user-facing text.
type Error struct {
	Kind  Kind
	Field string // input field the message is about, may be empty
	Msg   string
}

func (e *Error) Error() string { return e.Msg }

// Validation reports a missing, non-numeric or out-of-domain input.
func Validation(field, format string, a ...any) error {
	return errors.WithStack(&Error{Kind: KindValidation, Field: field, Msg: fmt.Sprintf(format, a...)})
}

// Infeasible reports inputs that are individually valid but admit no result.
func Infeasible(format string, a ...any) error {
	return errors.WithStack(&Error{Kind: KindInfeasible, Msg: fmt.Sprintf(format, a...)})
}

// As extracts the *Error from err's chain.
func As(err error) (*Error, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

func IsValidation(err error) bool {
	ce, ok := As(err)
	return ok && ce.Kind == KindValidation
}

func IsInfeasible(err error) bool {
	ce, ok := As(err)
	return ok && ce.Kind == KindInfeasible
}
