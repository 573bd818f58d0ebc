package model

import (
	"context"

	"github.com/avGenie/go-bookstore-inventory/internal/app/entity"
)

// Repository is the persistence boundary shared by the storage itself and by
// the transaction scope handed to WithTx callbacks.
type Repository interface {
	GetBook(ctx context.Context, bookID entity.BookID) (entity.Book, error)
	// ReserveStock decrements stock only if it stays non-negative, in one
	// atomic statement. A miss returns ErrBookNotFound or *StockError.
	ReserveStock(ctx context.Context, bookID entity.BookID, quantity int) (entity.BookStock, error)
	ReleaseStock(ctx context.Context, bookID entity.BookID, quantity int) (entity.BookStock, error)

	CreateCustomer(ctx context.Context, customer entity.Customer) error
	GetCustomer(ctx context.Context, customerID entity.CustomerID) (entity.Customer, error)

	CreateOrder(ctx context.Context, order entity.Order) error
	GetOrder(ctx context.Context, orderID entity.OrderID) (entity.Order, error)
	// LockOrder reads the order and holds it against concurrent transitions
	// until the surrounding transaction ends.
	LockOrder(ctx context.Context, orderID entity.OrderID) (entity.Order, error)
	// UpdateOrderStatus applies the change only while the order is still in
	// status from; otherwise it returns ErrOrderStatusChanged.
	UpdateOrderStatus(ctx context.Context, orderID entity.OrderID, from, to entity.OrderStatus) error
}

type Storage interface {
	Repository

	// WithTx commits when fn returns nil and rolls back otherwise. The error
	// returned by fn is passed through.
	WithTx(ctx context.Context, fn func(tx Repository) error) error
	Close() error
}
