package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/avGenie/go-bookstore-inventory/internal/app/entity"
	err_storage "github.com/avGenie/go-bookstore-inventory/internal/app/storage/api/errors"
	"github.com/avGenie/go-bookstore-inventory/internal/app/storage/api/model"
	err_usecase "github.com/avGenie/go-bookstore-inventory/internal/app/usecase/errors"
	"github.com/avGenie/go-bookstore-inventory/internal/app/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StockKeeper interface {
	Reserve(ctx context.Context, repo model.Repository, bookID entity.BookID, quantity int) (entity.BookStock, error)
	Release(ctx context.Context, repo model.Repository, bookID entity.BookID, quantity int) (entity.BookStock, error)
}

type CustomerResolver interface {
	FindOrCreate(ctx context.Context, repo model.Repository, customerID string) (entity.Customer, error)
}

type EventNotifier interface {
	Notify(event entity.Event)
}

// Lifecycle drives orders through New, Processed, Shipped and Cancelled.
// Every operation runs in a single storage transaction.
type Lifecycle struct {
	storage   model.Storage
	inventory StockKeeper
	customers CustomerResolver
	notifier  EventNotifier
	now       func() time.Time
}

func New(storage model.Storage, inventory StockKeeper, customers CustomerResolver, notifier EventNotifier) *Lifecycle {
	return &Lifecycle{
		storage:   storage,
		inventory: inventory,
		customers: customers,
		notifier:  notifier,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// SubmitOrder creates a New order with one item. The stock check here is
// advisory: stock is only taken by ProcessOrder.
func (l *Lifecycle) SubmitOrder(ctx context.Context, customerID, bookID string, quantity int) (entity.OrderSubmission, error) {
	bookID = strings.TrimSpace(bookID)
	if err := validator.OrderSubmission(bookID, quantity); err != nil {
		return entity.OrderSubmission{}, err
	}

	var order entity.Order
	err := l.storage.WithTx(ctx, func(tx model.Repository) error {
		customer, err := l.customers.FindOrCreate(ctx, tx, customerID)
		if err != nil {
			return err
		}

		book, err := tx.GetBook(ctx, entity.BookID(bookID))
		if err != nil {
			if errors.Is(err, err_storage.ErrBookNotFound) {
				return err_usecase.NotFound("book with ID %s not found", bookID)
			}

			return err
		}

		if book.Stock < quantity {
			return err_usecase.InsufficientStock(book.Stock, quantity)
		}

		order = entity.CreateNewOrder(createOrderID(), customer.ID, l.now(), book, quantity)

		return tx.CreateOrder(ctx, order)
	})
	if err != nil {
		return entity.OrderSubmission{}, err_usecase.Resolve(err, "error while submitting order", zap.String("book_id", bookID), zap.String("customer_id", customerID))
	}

	item := order.Items[0]
	zap.L().Info("order has been submitted", zap.String("order_id", order.ID.String()), zap.String("book_id", bookID), zap.Int("quantity", quantity))
	l.notifier.Notify(entity.CreateOrderEvent(entity.EventOrderSubmitted, entity.OrderState{ID: order.ID, Status: order.Status}, order.CreatedAt))

	return entity.OrderSubmission{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Status:     order.Status,
		BookID:     item.BookID,
		Quantity:   item.Quantity,
		Price:      item.Price,
	}, nil
}

// ProcessOrder reserves stock for every item and moves the order to
// Processed. A failed reservation rolls back all of them.
func (l *Lifecycle) ProcessOrder(ctx context.Context, orderID string) (entity.OrderState, error) {
	return l.transition(ctx, orderID, entity.StatusProcessedOrder, entity.EventOrderProcessed, func(tx model.Repository, order entity.Order) error {
		for _, item := range order.Items {
			if _, err := l.inventory.Reserve(ctx, tx, item.BookID, item.Quantity); err != nil {
				return err
			}
		}

		return nil
	})
}

func (l *Lifecycle) ShipOrder(ctx context.Context, orderID string) (entity.OrderState, error) {
	return l.transition(ctx, orderID, entity.StatusShippedOrder, entity.EventOrderShipped, nil)
}

// CancelOrder releases the reserved stock of a Processed order; a New order
// never reserved anything.
func (l *Lifecycle) CancelOrder(ctx context.Context, orderID string) (entity.OrderState, error) {
	return l.transition(ctx, orderID, entity.StatusCancelledOrder, entity.EventOrderCancelled, func(tx model.Repository, order entity.Order) error {
		if order.Status != entity.StatusProcessedOrder {
			return nil
		}

		for _, item := range order.Items {
			if _, err := l.inventory.Release(ctx, tx, item.BookID, item.Quantity); err != nil {
				return err
			}
		}

		return nil
	})
}

func (l *Lifecycle) GetOrder(ctx context.Context, orderID string) (entity.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if err := validator.Identifier("order", orderID); err != nil {
		return entity.Order{}, err
	}

	order, err := l.storage.GetOrder(ctx, entity.OrderID(orderID))
	if err != nil {
		if errors.Is(err, err_storage.ErrOrderNotFound) {
			return entity.Order{}, err_usecase.NotFound("order %s not found", orderID)
		}

		return entity.Order{}, err_usecase.Resolve(err, "error while getting order", zap.String("order_id", orderID))
	}

	return order, nil
}

// transition locks the order, checks the move to target, runs the side
// effect and stores the new status, all in one transaction.
func (l *Lifecycle) transition(
	ctx context.Context,
	orderID string,
	target entity.OrderStatus,
	eventType entity.EventType,
	effect func(tx model.Repository, order entity.Order) error,
) (entity.OrderState, error) {
	orderID = strings.TrimSpace(orderID)
	if err := validator.Identifier("order", orderID); err != nil {
		return entity.OrderState{}, err
	}

	id := entity.OrderID(orderID)
	err := l.storage.WithTx(ctx, func(tx model.Repository) error {
		order, err := tx.LockOrder(ctx, id)
		if err != nil {
			if errors.Is(err, err_storage.ErrOrderNotFound) {
				return err_usecase.NotFound("order %s not found", orderID)
			}

			return err
		}

		if !order.Status.CanTransitionTo(target) {
			return invalidTransition(order, target)
		}

		if effect != nil {
			if err := effect(tx, order); err != nil {
				return err
			}
		}

		err = tx.UpdateOrderStatus(ctx, id, order.Status, target)
		if errors.Is(err, err_storage.ErrOrderStatusChanged) {
			return err_usecase.InvalidState("order %s has been changed concurrently", orderID)
		}

		return err
	})
	if err != nil {
		return entity.OrderState{}, err_usecase.Resolve(err, "error while changing order status", zap.String("order_id", orderID), zap.String("target_status", target.String()))
	}

	state := entity.OrderState{ID: id, Status: target}
	zap.L().Info("order status has been changed", zap.String("order_id", orderID), zap.String("status", target.String()))
	l.notifier.Notify(entity.CreateOrderEvent(eventType, state, l.now()))

	return state, nil
}

func invalidTransition(order entity.Order, target entity.OrderStatus) error {
	switch {
	case order.Status == entity.StatusCancelledOrder:
		return err_usecase.InvalidState("order %s already cancelled", order.ID)
	case order.Status == entity.StatusShippedOrder && target == entity.StatusCancelledOrder:
		return err_usecase.InvalidState("cannot cancel shipped order %s", order.ID)
	case order.Status == entity.StatusShippedOrder:
		return err_usecase.InvalidState("order %s already shipped", order.ID)
	case target == entity.StatusProcessedOrder:
		return err_usecase.InvalidState("order %s already processed", order.ID)
	case target == entity.StatusShippedOrder:
		return err_usecase.InvalidState("order %s must be processed first", order.ID)
	default:
		return err_usecase.InvalidState("order %s cannot move from %s to %s", order.ID, order.Status, target)
	}
}

func createOrderID() entity.OrderID {
	uuid := uuid.New()
	orderID := entity.OrderID(uuid.String())

	return orderID
}
