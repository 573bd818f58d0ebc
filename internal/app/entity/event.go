package entity

import "time"

type EventType string

const (
	EventOrderSubmitted EventType = `OrderSubmitted`
	EventOrderProcessed EventType = `OrderProcessed`
	EventOrderShipped   EventType = `OrderShipped`
	EventOrderCancelled EventType = `OrderCancelled`
	EventStockChanged   EventType = `StockChanged`
)

type Events []Event

// Event is a lifecycle notification emitted after a committed change.
type Event struct {
	Type       EventType
	OccurredAt time.Time
	OrderID    OrderID
	Status     OrderStatus
	BookID     BookID
	Stock      int
}

// Key returns the partitioning key: the order id for order events and the
// book id for stock events.
func (e Event) Key() string {
	if len(e.OrderID) != 0 {
		return e.OrderID.String()
	}

	return e.BookID.String()
}

func CreateOrderEvent(eventType EventType, state OrderState, occurredAt time.Time) Event {
	return Event{
		Type:       eventType,
		OccurredAt: occurredAt,
		OrderID:    state.ID,
		Status:     state.Status,
	}
}

func CreateStockEvent(stock BookStock, occurredAt time.Time) Event {
	return Event{
		Type:       EventStockChanged,
		OccurredAt: occurredAt,
		BookID:     stock.ID,
		Stock:      stock.Stock,
	}
}
