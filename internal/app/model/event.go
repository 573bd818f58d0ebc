package model

import "time"

// EventMessage is the payload of a lifecycle event on the message bus.
type EventMessage struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	OrderID    string    `json:"orderID,omitempty"`
	Status     string    `json:"status,omitempty"`
	Book       string    `json:"book,omitempty"`
	Stock      *int      `json:"stock,omitempty"`
}
