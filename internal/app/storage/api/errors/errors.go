package storage

import (
	"errors"
	"fmt"
)

var (
	ErrBookNotFound   = errors.New("book with given id doesn't exist in storage")
	ErrNotEnoughStock = errors.New("book stock is lower than requested quantity")
	ErrStockOverflow  = errors.New("book stock exceeds the storable maximum")

	ErrCustomerNotFound = errors.New("customer with given id doesn't exist in storage")
	ErrCustomerExists   = errors.New("customer with given id or email already exists in storage")

	ErrOrderNotFound      = errors.New("order with given id doesn't exist in storage")
	ErrOrderStatusChanged = errors.New("order status differs from the expected one")
)

// StockError reports the stock observed when a conditional decrement
// matched no row. It unwraps to ErrNotEnoughStock.
type StockError struct {
	BookID string
	Stock  int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("book %s has only %d items in stock", e.BookID, e.Stock)
}

func (e *StockError) Unwrap() error {
	return ErrNotEnoughStock
}
