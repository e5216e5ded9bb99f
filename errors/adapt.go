package errors

import (
	"context"
	"errors"
)

// ToErrorResponse converts any error into ErrorResponse.
// Supported inputs:
// - ErrorResponse / *ErrorResponse (direct passthrough)
// - context.Canceled / context.DeadlineExceeded
// - ErrNotFound / ErrAlreadyExists (wrapped or not)
// - InvariantError (DomainInvariant/StateInvariant)
func ToErrorResponse(err error) ErrorResponse {
	if err == nil {
		return Internal().WithReason("unexpected_error")
	}

	if errors.Is(err, context.Canceled) {
		return Canceled()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return DeadlineExceeded()
	}

	if e, ok := err.(ErrorResponse); ok {
		return e
	}
	var ep *ErrorResponse
	if errors.As(err, &ep) && ep != nil {
		return *ep
	}

	if errors.Is(err, ErrNotFound) {
		return NotFound().WithMessage(err.Error())
	}
	if errors.Is(err, ErrAlreadyExists) {
		return AlreadyExists().WithMessage(err.Error())
	}

	var ie InvariantError
	if !errors.As(err, &ie) {
		return Internal().WithReason("unexpected_error")
	}

	switch ie.Kind {
	case KindState:
		return DataLoss().
			WithReason("invariant_violation").
			WithDetail("field", ie.Field).
			WithDetail("reason", ie.Reason)
	case KindDomain:
		if ie.Field == "" {
			return InvalidArgument().WithReason(ie.Reason)
		}
		return ValidationField(ie.Field, ie.Reason)
	default:
		return InvalidArgument().WithReason("unknown_invariant")
	}
}
