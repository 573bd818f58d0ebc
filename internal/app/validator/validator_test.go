package validator

import (
	"math"
	"testing"

	err_usecase "github.com/avGenie/go-bookstore-inventory/internal/app/usecase/errors"
	"github.com/stretchr/testify/assert"
)

func TestOrderSubmission(t *testing.T) {
	tests := []struct {
		name     string
		bookID   string
		quantity int
		wantErr  bool
	}{
		{name: "valid submission", bookID: "b1", quantity: 2, wantErr: false},
		{name: "empty book id", bookID: "", quantity: 2, wantErr: true},
		{name: "whitespace book id", bookID: "   ", quantity: 2, wantErr: true},
		{name: "zero quantity", bookID: "b1", quantity: 0, wantErr: true},
		{name: "negative quantity", bookID: "b1", quantity: -3, wantErr: true},
		{name: "largest quantity", bookID: "b1", quantity: MaxQuantity, wantErr: false},
		{name: "quantity above int32", bookID: "b1", quantity: MaxQuantity + 1, wantErr: true},
		{name: "max int quantity", bookID: "b1", quantity: math.MaxInt, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := OrderSubmission(test.bookID, test.quantity)
			if !test.wantErr {
				assert.NoError(t, err)
				return
			}

			assert.Equal(t, err_usecase.KindInvalidInput, err_usecase.KindOf(err))
		})
	}
}

func TestStockChange(t *testing.T) {
	assert.NoError(t, StockChange("b1", 1))
	assert.EqualError(t, StockChange("", 1), "book ID is required")
	assert.EqualError(t, StockChange("b1", 0), "quantity must be a positive number")
	assert.EqualError(t, StockChange("b1", math.MaxInt), "quantity must not exceed 2147483647")
}

func TestIdentifier(t *testing.T) {
	assert.NoError(t, Identifier("order", "5b2f"))
	assert.EqualError(t, Identifier("order", ""), "order ID is required")
}

func TestCustomerProfile(t *testing.T) {
	tests := []struct {
		name    string
		cname   string
		email   string
		wantErr bool
	}{
		{name: "valid profile", cname: "Ada", email: "ada@example.com", wantErr: false},
		{name: "empty name", cname: "", email: "ada@example.com", wantErr: true},
		{name: "invalid email", cname: "Ada", email: "not-an-email", wantErr: true},
		{name: "empty email", cname: "Ada", email: "", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := CustomerProfile(test.cname, test.email)
			if test.wantErr {
				assert.Equal(t, err_usecase.KindInvalidInput, err_usecase.KindOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
