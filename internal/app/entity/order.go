package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusNewOrder       OrderStatus = `New`
	StatusProcessedOrder OrderStatus = `Processed`
	StatusShippedOrder   OrderStatus = `Shipped`
	StatusCancelledOrder OrderStatus = `Cancelled`
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	StatusNewOrder:       {StatusProcessedOrder, StatusCancelledOrder},
	StatusProcessedOrder: {StatusShippedOrder, StatusCancelledOrder},
}

func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

type OrderID string

func (id OrderID) String() string {
	return string(id)
}

type OrderItems []OrderItem

// OrderItem is immutable once created; Price is the book price at submission.
type OrderItem struct {
	OrderID  OrderID
	BookID   BookID
	Quantity int
	Price    decimal.Decimal
}

type Orders []Order

type Order struct {
	ID         OrderID
	CustomerID CustomerID
	Status     OrderStatus
	CreatedAt  time.Time
	Items      OrderItems
}

func CreateNewOrder(id OrderID, customerID CustomerID, createdAt time.Time, book Book, quantity int) Order {
	return Order{
		ID:         id,
		CustomerID: customerID,
		Status:     StatusNewOrder,
		CreatedAt:  createdAt,
		Items: OrderItems{
			{
				OrderID:  id,
				BookID:   book.ID,
				Quantity: quantity,
				Price:    book.Price,
			},
		},
	}
}

type OrderSubmission struct {
	OrderID    OrderID
	CustomerID CustomerID
	Status     OrderStatus
	BookID     BookID
	Quantity   int
	Price      decimal.Decimal
}

type OrderState struct {
	ID     OrderID
	Status OrderStatus
}
