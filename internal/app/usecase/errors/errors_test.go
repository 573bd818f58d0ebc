package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "invalid input", err: InvalidInput("quantity must be positive"), want: KindInvalidInput},
		{name: "not found", err: NotFound("book %s not found", "b1"), want: KindNotFound},
		{name: "conflict", err: Conflict("customer exists"), want: KindConflict},
		{name: "insufficient stock", err: InsufficientStock(1, 2), want: KindInsufficientStock},
		{name: "invalid state", err: InvalidState("order already processed"), want: KindInvalidState},
		{name: "wrapped usecase error", err: fmt.Errorf("wrap: %w", NotFound("x")), want: KindNotFound},
		{name: "foreign error", err: errors.New("connection refused"), want: KindInternal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, KindOf(test.err))
		})
	}
}

func TestInsufficientStock(t *testing.T) {
	err := InsufficientStock(3, 10)

	var usecaseErr *Error
	require.True(t, errors.As(err, &usecaseErr))
	assert.Equal(t, 3, usecaseErr.Stock)
	assert.Equal(t, "only 3 items left, but requested 10", err.Error())
}

func TestResolve(t *testing.T) {
	assert.NoError(t, Resolve(nil, "unused"))

	notFound := NotFound("order o1 not found")
	assert.Same(t, notFound, Resolve(fmt.Errorf("in tx: %w", notFound), "unused"))

	internal := Resolve(errors.New("pq: deadlock detected"), "error while processing order")
	assert.Equal(t, KindInternal, KindOf(internal))
	assert.Equal(t, errInternalMessage, internal.Error())
}
