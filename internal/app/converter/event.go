package converter

import (
	"github.com/avGenie/go-bookstore-inventory/internal/app/entity"
	"github.com/avGenie/go-bookstore-inventory/internal/app/model"
)

func ConvertEventToMessage(event entity.Event) model.EventMessage {
	message := model.EventMessage{
		Type:       string(event.Type),
		OccurredAt: event.OccurredAt.UTC(),
		OrderID:    event.OrderID.String(),
		Status:     event.Status.String(),
		Book:       event.BookID.String(),
	}

	if event.Type == entity.EventStockChanged {
		stock := event.Stock
		message.Stock = &stock
	}

	return message
}
