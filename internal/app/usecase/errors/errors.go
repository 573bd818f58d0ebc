package usecase

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

const (
	errInternalMessage = "internal error"
)

type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindNotFound
	KindConflict
	KindInsufficientStock
	KindInvalidState
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInsufficientStock:
		return "insufficient_stock"
	case KindInvalidState:
		return "invalid_state"
	default:
		return "internal"
	}
}

// Error is the failure returned by every use case operation. Stock carries
// the current stock for KindInsufficientStock.
type Error struct {
	Kind    Kind
	Message string
	Stock   int
}

func (e *Error) Error() string {
	return e.Message
}

func InvalidInput(format string, args ...any) error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func InsufficientStock(stock, requested int) error {
	return &Error{
		Kind:    KindInsufficientStock,
		Message: fmt.Sprintf("only %d items left, but requested %d", stock, requested),
		Stock:   stock,
	}
}

func InvalidState(format string, args ...any) error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func Internal() error {
	return &Error{Kind: KindInternal, Message: errInternalMessage}
}

// KindOf returns KindInternal for errors not produced by this package.
func KindOf(err error) Kind {
	var usecaseErr *Error
	if errors.As(err, &usecaseErr) {
		return usecaseErr.Kind
	}

	return KindInternal
}

// Resolve passes use case errors through and converts anything else into a
// generic internal error after logging it with the given context.
func Resolve(err error, msg string, fields ...zap.Field) error {
	if err == nil {
		return nil
	}

	var usecaseErr *Error
	if errors.As(err, &usecaseErr) {
		return usecaseErr
	}

	zap.L().Error(msg, append(fields, zap.Error(err))...)

	return Internal()
}
