package model

import "github.com/shopspring/decimal"

type StockRequest struct {
	Quantity int `json:"quantity"`
}

type StockResponse struct {
	ID    string `json:"id"`
	Stock int    `json:"stock"`
}

type BookResponse struct {
	ID    string          `json:"id"`
	Title string          `json:"title"`
	Stock int             `json:"stock"`
	Price decimal.Decimal `json:"price"`
}
