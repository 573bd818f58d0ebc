package entity

import "fmt"

const (
	GuestCustomerName    = "Guest"
	GuestCustomerAddress = "N/A"
)

type CustomerID string

func (id CustomerID) String() string {
	return string(id)
}

func (id CustomerID) Valid() bool {
	return len(id) != 0
}

type Customer struct {
	ID      CustomerID
	Name    string
	Email   string
	Address string
}

// CreateGuestCustomer builds the placeholder profile persisted for orders
// submitted without a customer id.
func CreateGuestCustomer(id CustomerID) Customer {
	return Customer{
		ID:      id,
		Name:    GuestCustomerName,
		Email:   fmt.Sprintf("guest-%s@bookstore.local", id),
		Address: GuestCustomerAddress,
	}
}
