package entity

import "github.com/shopspring/decimal"

type BookID string

func (id BookID) String() string {
	return string(id)
}

type Book struct {
	ID    BookID
	Title string
	Stock int
	Price decimal.Decimal
}

type BookStock struct {
	ID    BookID
	Stock int
}
