// Package shop holds the pieces shared by every storefront domain package:
// the error taxonomy, input validation, money formatting and identifiers.
package shop

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind represents the category of a rejected operation.
type Kind int

const (
	KindInvalidInput Kind = iota
	KindInvalidQuantity
	KindInsufficientStock
	KindNotFound
	KindAuthFailure
	KindEmptyCart
	KindPaymentDeclined
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "INVALID_INPUT"
	case KindInvalidQuantity:
		return "INVALID_QUANTITY"
	case KindInsufficientStock:
		return "INSUFFICIENT_STOCK"
	case KindNotFound:
		return "NOT_FOUND"
	case KindAuthFailure:
		return "AUTH_FAILURE"
	case KindEmptyCart:
		return "EMPTY_CART"
	case KindPaymentDeclined:
		return "PAYMENT_DECLINED"
	default:
		return "UNKNOWN"
	}
}

// Code returns the canonical gRPC code for the kind.
func (k Kind) Code() codes.Code {
	switch k {
	case KindInvalidInput, KindInvalidQuantity:
		return codes.InvalidArgument
	case KindInsufficientStock:
		return codes.ResourceExhausted
	case KindNotFound:
		return codes.NotFound
	case KindAuthFailure:
		return codes.Unauthenticated
	case KindEmptyCart:
		return codes.FailedPrecondition
	case KindPaymentDeclined:
		return codes.Aborted
	default:
		return codes.Unknown
	}
}

// Error is returned when an operation is rejected by business rules.
// None of these are fatal; callers report the message and carry on.
type Error struct {
	Kind    Kind
	Message string
}

// Sentinels for errors.Is matching on kind alone.
var (
	ErrInvalidInput      = &Error{Kind: KindInvalidInput}
	ErrInvalidQuantity   = &Error{Kind: KindInvalidQuantity}
	ErrInsufficientStock = &Error{Kind: KindInsufficientStock}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrAuthFailure       = &Error{Kind: KindAuthFailure}
	ErrEmptyCart         = &Error{Kind: KindEmptyCart}
	ErrPaymentDeclined   = &Error{Kind: KindPaymentDeclined}
)

func (e *Error) Error() string {
	if e.Message == "" {
		return strings.ToLower(strings.ReplaceAll(e.Kind.String(), "_", " "))
	}
	return e.Message
}

// Is matches a sentinel of the same kind. A target carrying a message
// must match it exactly.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

// GRPCStatus lets status.Code and status.FromError classify domain errors.
func (e *Error) GRPCStatus() *status.Status {
	return status.New(e.Kind.Code(), e.Error())
}

// New creates an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewInvalidInput creates an INVALID_INPUT error.
func NewInvalidInput(message string) *Error {
	return New(KindInvalidInput, message)
}

// NewInvalidQuantity creates an INVALID_QUANTITY error.
func NewInvalidQuantity(message string) *Error {
	return New(KindInvalidQuantity, message)
}

// NewNotFoundf creates a NOT_FOUND error with a formatted message.
func NewNotFoundf(format string, args ...interface{}) *Error {
	return Newf(KindNotFound, format, args...)
}
