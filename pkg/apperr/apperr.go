package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error into the outcome classes the HTTP
// layer knows how to report.
type Kind int

const (
	KindValidation Kind = iota // malformed or missing input
	KindConflict               // duplicate unique field
	KindAuth                   // missing/expired/invalid credential
	KindForbidden              // authenticated but not allowed
	KindNotFound               // referenced entity absent
	KindState                  // illegal state transition or business rule
	KindInternal               // storage failure or unhandled error
)

// Error carries a kind, a user-facing message and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status maps the kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap keeps the cause for logs while exposing only message to clients.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Internal wraps an unexpected failure with a generic client message.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal server error", Err: err}
}

// From extracts an *Error, or wraps err as internal when it is not one.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

func Is(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// Auth / account failures.
var (
	ErrInvalidCredentials = New(KindAuth, "invalid credentials")
	ErrAccountDeactivated = New(KindAuth, "account is deactivated")
	ErrTokenExpired       = New(KindAuth, "token has expired")
	ErrTokenMalformed     = New(KindAuth, "token is invalid")
	ErrSubjectNotFound    = New(KindAuth, "user not found")
	ErrDuplicateUsername  = New(KindConflict, "username already exists")
	ErrDuplicateEmail     = New(KindConflict, "email already exists")
)

// Cart failures.
var (
	ErrInvalidQuantity    = New(KindValidation, "quantity must be at least 1")
	ErrProductUnavailable = New(KindValidation, "product is not available")
	ErrCartItemNotFound   = New(KindNotFound, "cart item not found")
)

// Order failures.
var (
	ErrEmptyCart         = New(KindState, "cart is empty")
	ErrBelowMinimumOrder = New(KindState, "order subtotal is below the restaurant minimum")
	ErrRestaurantOffline = New(KindState, "restaurant is not accepting orders")
	ErrInvalidTransition = New(KindState, "invalid order status transition")
	ErrOrderNotFound     = New(KindNotFound, "order not found")
)

// Review failures.
var (
	ErrInvalidRating    = New(KindValidation, "rating must be between 1 and 5")
	ErrOrderNotEligible = New(KindState, "order is not eligible for review")
)
