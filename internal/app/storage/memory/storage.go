package memory

import (
	"context"
	"math"
	"sync"

	"github.com/avGenie/go-bookstore-inventory/internal/app/entity"
	err_storage "github.com/avGenie/go-bookstore-inventory/internal/app/storage/api/errors"
	"github.com/avGenie/go-bookstore-inventory/internal/app/storage/api/model"
)

// Storage keeps the inventory in process memory. Every call and every
// transaction holds a single store-wide lock, so transactions are serial.
type Storage struct {
	mutex sync.Mutex
	data  *data
}

type data struct {
	books     map[entity.BookID]entity.Book
	customers map[entity.CustomerID]entity.Customer
	emails    map[string]entity.CustomerID
	orders    map[entity.OrderID]entity.Order
}

func New(books ...entity.Book) *Storage {
	s := &Storage{
		data: &data{
			books:     make(map[entity.BookID]entity.Book, len(books)),
			customers: make(map[entity.CustomerID]entity.Customer),
			emails:    make(map[string]entity.CustomerID),
			orders:    make(map[entity.OrderID]entity.Order),
		},
	}

	for _, book := range books {
		s.data.books[book.ID] = book
	}

	return s
}

// PutBook inserts or replaces a catalog entry.
func (s *Storage) PutBook(book entity.Book) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data.books[book.ID] = book
}

func (s *Storage) WithTx(ctx context.Context, fn func(tx model.Repository) error) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx := &repository{data: s.data, journal: &journal{}}
	committed := false
	defer func() {
		if !committed {
			tx.journal.rollback()
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		return err
	}

	committed = true

	return nil
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) GetBook(ctx context.Context, bookID entity.BookID) (entity.Book, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.repository().GetBook(ctx, bookID)
}

func (s *Storage) ReserveStock(ctx context.Context, bookID entity.BookID, quantity int) (entity.BookStock, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.repository().ReserveStock(ctx, bookID, quantity)
}

func (s *Storage) ReleaseStock(ctx context.Context, bookID entity.BookID, quantity int) (entity.BookStock, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.repository().ReleaseStock(ctx, bookID, quantity)
}

func (s *Storage) CreateCustomer(ctx context.Context, customer entity.Customer) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.repository().CreateCustomer(ctx, customer)
}

func (s *Storage) GetCustomer(ctx context.Context, customerID entity.CustomerID) (entity.Customer, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.repository().GetCustomer(ctx, customerID)
}

func (s *Storage) CreateOrder(ctx context.Context, order entity.Order) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.repository().CreateOrder(ctx, order)
}

func (s *Storage) GetOrder(ctx context.Context, orderID entity.OrderID) (entity.Order, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.repository().GetOrder(ctx, orderID)
}

func (s *Storage) LockOrder(ctx context.Context, orderID entity.OrderID) (entity.Order, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.repository().LockOrder(ctx, orderID)
}

func (s *Storage) UpdateOrderStatus(ctx context.Context, orderID entity.OrderID, from, to entity.OrderStatus) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.repository().UpdateOrderStatus(ctx, orderID, from, to)
}

func (s *Storage) repository() *repository {
	return &repository{data: s.data}
}

// journal collects undo steps of a transaction in application order.
type journal struct {
	undo []func()
}

func (j *journal) record(undo func()) {
	if j == nil {
		return
	}

	j.undo = append(j.undo, undo)
}

func (j *journal) rollback() {
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
	j.undo = nil
}

// repository operates on data without locking; the caller holds the lock.
type repository struct {
	data    *data
	journal *journal
}

func (r *repository) GetBook(_ context.Context, bookID entity.BookID) (entity.Book, error) {
	book, ok := r.data.books[bookID]
	if !ok {
		return entity.Book{}, err_storage.ErrBookNotFound
	}

	return book, nil
}

func (r *repository) ReserveStock(_ context.Context, bookID entity.BookID, quantity int) (entity.BookStock, error) {
	book, ok := r.data.books[bookID]
	if !ok {
		return entity.BookStock{}, err_storage.ErrBookNotFound
	}

	if book.Stock < quantity {
		return entity.BookStock{}, &err_storage.StockError{BookID: bookID.String(), Stock: book.Stock}
	}

	r.setStock(book, book.Stock-quantity)

	return entity.BookStock{ID: bookID, Stock: book.Stock - quantity}, nil
}

func (r *repository) ReleaseStock(_ context.Context, bookID entity.BookID, quantity int) (entity.BookStock, error) {
	book, ok := r.data.books[bookID]
	if !ok {
		return entity.BookStock{}, err_storage.ErrBookNotFound
	}

	if book.Stock > math.MaxInt32-quantity {
		return entity.BookStock{}, err_storage.ErrStockOverflow
	}

	r.setStock(book, book.Stock+quantity)

	return entity.BookStock{ID: bookID, Stock: book.Stock + quantity}, nil
}

func (r *repository) setStock(book entity.Book, stock int) {
	previous := book.Stock
	book.Stock = stock
	r.data.books[book.ID] = book

	r.journal.record(func() {
		restored := r.data.books[book.ID]
		restored.Stock = previous
		r.data.books[book.ID] = restored
	})
}

func (r *repository) CreateCustomer(_ context.Context, customer entity.Customer) error {
	if _, ok := r.data.customers[customer.ID]; ok {
		return err_storage.ErrCustomerExists
	}

	if _, ok := r.data.emails[customer.Email]; ok {
		return err_storage.ErrCustomerExists
	}

	r.data.customers[customer.ID] = customer
	r.data.emails[customer.Email] = customer.ID

	r.journal.record(func() {
		delete(r.data.customers, customer.ID)
		delete(r.data.emails, customer.Email)
	})

	return nil
}

func (r *repository) GetCustomer(_ context.Context, customerID entity.CustomerID) (entity.Customer, error) {
	customer, ok := r.data.customers[customerID]
	if !ok {
		return entity.Customer{}, err_storage.ErrCustomerNotFound
	}

	return customer, nil
}

func (r *repository) CreateOrder(_ context.Context, order entity.Order) error {
	if _, ok := r.data.customers[order.CustomerID]; !ok {
		return err_storage.ErrCustomerNotFound
	}

	for _, item := range order.Items {
		if _, ok := r.data.books[item.BookID]; !ok {
			return err_storage.ErrBookNotFound
		}
	}

	order.Items = append(entity.OrderItems(nil), order.Items...)
	r.data.orders[order.ID] = order

	r.journal.record(func() {
		delete(r.data.orders, order.ID)
	})

	return nil
}

func (r *repository) GetOrder(_ context.Context, orderID entity.OrderID) (entity.Order, error) {
	order, ok := r.data.orders[orderID]
	if !ok {
		return entity.Order{}, err_storage.ErrOrderNotFound
	}

	order.Items = append(entity.OrderItems(nil), order.Items...)

	return order, nil
}

// LockOrder is a plain read: the store-wide lock already serializes
// transactions.
func (r *repository) LockOrder(ctx context.Context, orderID entity.OrderID) (entity.Order, error) {
	return r.GetOrder(ctx, orderID)
}

func (r *repository) UpdateOrderStatus(_ context.Context, orderID entity.OrderID, from, to entity.OrderStatus) error {
	order, ok := r.data.orders[orderID]
	if !ok {
		return err_storage.ErrOrderNotFound
	}

	if order.Status != from {
		return err_storage.ErrOrderStatusChanged
	}

	order.Status = to
	r.data.orders[orderID] = order

	r.journal.record(func() {
		restored := r.data.orders[orderID]
		restored.Status = from
		r.data.orders[orderID] = restored
	})

	return nil
}
