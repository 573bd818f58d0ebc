package inventory

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
	"go.uber.org/zap"
)

type EventNotifier interface {
	Notify(event entity.Event)
}

// Inventory is the only place where book stock changes. Reserve and Release
// run against the repository they are given, so callers decide whether the
// change joins a wider transaction.
type Inventory struct {
	storage  model.Storage
	notifier EventNotifier
}

func New(storage model.Storage, notifier EventNotifier) *Inventory {
	return &Inventory{
		storage:  storage,
		notifier: notifier,
	}
}

// Reserve atomically decrements stock when at least quantity is available.
func (i *Inventory) Reserve(ctx context.Context, repo model.Repository, bookID entity.BookID, quantity int) (entity.BookStock, error) {
	stock, err := repo.ReserveStock(ctx, bookID, quantity)
	if err != nil {
		var stockErr *err_storage.StockError
		switch {
		case errors.Is(err, err_storage.ErrBookNotFound):
			return entity.BookStock{}, err_usecase.NotFound("book with ID %s not found", bookID)
		case errors.As(err, &stockErr):
			zap.L().Info(
				"not enough stock for reservation",
				zap.String("book_id", bookID.String()),
				zap.Int("stock", stockErr.Stock),
				zap.Int("quantity", quantity),
			)
			return entity.BookStock{}, err_usecase.InsufficientStock(stockErr.Stock, quantity)
		}

		return entity.BookStock{}, err_usecase.Resolve(err, "error while reserving book stock", zap.String("book_id", bookID.String()))
	}

	return stock, nil
}

// Release atomically increments stock, compensating an earlier reservation.
func (i *Inventory) Release(ctx context.Context, repo model.Repository, bookID entity.BookID, quantity int) (entity.BookStock, error) {
	stock, err := repo.ReleaseStock(ctx, bookID, quantity)
	if err != nil {
		switch {
		case errors.Is(err, err_storage.ErrBookNotFound):
			return entity.BookStock{}, err_usecase.NotFound("book with ID %s not found", bookID)
		case errors.Is(err, err_storage.ErrStockOverflow):
			return entity.BookStock{}, err_usecase.InvalidInput("stock of book %s cannot exceed %d", bookID, validator.MaxQuantity)
		}

		return entity.BookStock{}, err_usecase.Resolve(err, "error while releasing book stock", zap.String("book_id", bookID.String()))
	}

	return stock, nil
}

func (i *Inventory) IncreaseStock(ctx context.Context, bookID string, quantity int) (entity.BookStock, error) {
	bookID = strings.TrimSpace(bookID)
	if err := validator.StockChange(bookID, quantity); err != nil {
		return entity.BookStock{}, err
	}

	stock, err := i.Release(ctx, i.storage, entity.BookID(bookID), quantity)
	if err != nil {
		return entity.BookStock{}, err
	}

	i.notifier.Notify(entity.CreateStockEvent(stock, time.Now().UTC()))

	return stock, nil
}

func (i *Inventory) DecreaseStock(ctx context.Context, bookID string, quantity int) (entity.BookStock, error) {
	bookID = strings.TrimSpace(bookID)
	if err := validator.StockChange(bookID, quantity); err != nil {
		return entity.BookStock{}, err
	}

	stock, err := i.Reserve(ctx, i.storage, entity.BookID(bookID), quantity)
	if err != nil {
		return entity.BookStock{}, err
	}

	i.notifier.Notify(entity.CreateStockEvent(stock, time.Now().UTC()))

	return stock, nil
}

func (i *Inventory) GetBook(ctx context.Context, bookID string) (entity.Book, error) {
	bookID = strings.TrimSpace(bookID)
	if err := validator.Identifier("book", bookID); err != nil {
		return entity.Book{}, err
	}

	book, err := i.storage.GetBook(ctx, entity.BookID(bookID))
	if err != nil {
		if errors.Is(err, err_storage.ErrBookNotFound) {
			return entity.Book{}, err_usecase.NotFound("book with ID %s not found", bookID)
		}

		return entity.Book{}, err_usecase.Resolve(err, "error while getting book", zap.String("book_id", bookID))
	}

	return book, nil
}
