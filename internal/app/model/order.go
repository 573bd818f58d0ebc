package model

import "github.com/shopspring/decimal"

type SubmitOrderRequest struct {
	Customer string `json:"customer,omitempty"`
	Book     string `json:"book"`
	Quantity int    `json:"quantity"`
}

type SubmitOrderResponse struct {
	OrderID    string          `json:"orderID"`
	CustomerID string          `json:"customerID"`
	Status     string          `json:"status"`
	Book       string          `json:"book"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Message    string          `json:"message"`
}

type OrderStatusResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type OrderItemResponse struct {
	Book     string          `json:"book"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type OrderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customerID"`
	Status     string              `json:"status"`
	CreatedAt  string              `json:"createdAt"`
	Items      []OrderItemResponse `json:"items"`
}
