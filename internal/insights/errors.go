package insights

import (
	"context"
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindValidation         ErrorKind = "validation"
	KindModelService       ErrorKind = "model_service"
	KindModelConfiguration ErrorKind = "model_configuration"
	KindCancelled          ErrorKind = "cancelled"
)

// Error is the failure of one insights request, tagged with how callers
// should surface it.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain. Unclassified
// errors count as model service failures.
func KindOf(err error) ErrorKind {
	var insightsErr *Error
	if errors.As(err, &insightsErr) {
		return insightsErr.Kind
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCancelled
	}
	return KindModelService
}
