package validator

import (
	"math"
	"net/mail"
	"strings"

	err_usecase "github.com/avGenie/go-bookstore-inventory/internal/app/usecase/errors"
)

// MaxQuantity is the largest quantity that fits the stock column.
const MaxQuantity = math.MaxInt32

func Quantity(quantity int) error {
	if quantity <= 0 {
		return err_usecase.InvalidInput("quantity must be a positive number")
	}

	if quantity > MaxQuantity {
		return err_usecase.InvalidInput("quantity must not exceed %d", MaxQuantity)
	}

	return nil
}

// Identifier rejects empty or whitespace-only ids; name is used in the message.
func Identifier(name, id string) error {
	if len(strings.TrimSpace(id)) == 0 {
		return err_usecase.InvalidInput("%s ID is required", name)
	}

	return nil
}

func StockChange(bookID string, quantity int) error {
	if err := Identifier("book", bookID); err != nil {
		return err
	}

	return Quantity(quantity)
}

func OrderSubmission(bookID string, quantity int) error {
	if err := Identifier("book", bookID); err != nil {
		return err
	}

	return Quantity(quantity)
}

func CustomerProfile(name, email string) error {
	if len(strings.TrimSpace(name)) == 0 {
		return err_usecase.InvalidInput("customer name is required")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return err_usecase.InvalidInput("customer email %q is invalid", email)
	}

	return nil
}
