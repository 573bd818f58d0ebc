package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/avGenie/go-bookstore-inventory/internal/app/entity"
	err_storage "github.com/avGenie/go-bookstore-inventory/internal/app/storage/api/errors"
)

const (
	dialectPostgres = "postgres"

	tableBooks      = "books"
	tableCustomers  = "customers"
	tableOrders     = "orders"
	tableOrderItems = "order_items"

	colID         = "id"
	colTitle      = "title"
	colStock      = "stock"
	colPrice      = "price"
	colName       = "name"
	colEmail      = "email"
	colAddress    = "address"
	colCustomerID = "customer_id"
	colStatus     = "status"
	colCreatedAt  = "created_at"
	colOrderID    = "order_id"
	colBookID     = "book_id"
	colQuantity   = "quantity"

	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNumericOutOfRange   = "22003"

	constraintOrderCustomer = "orders_customer_id_fkey"
	constraintItemBook      = "order_items_book_id_fkey"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type repository struct {
	db      querier
	builder goqu.DialectWrapper
}

func (r *repository) GetBook(ctx context.Context, bookID entity.BookID) (entity.Book, error) {
	query, args, err := r.builder.
		From(tableBooks).
		Select(colID, colTitle, colStock, colPrice).
		Where(goqu.C(colID).Eq(bookID.String())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return entity.Book{}, fmt.Errorf("error while building get book query: %w", err)
	}

	var (
		id    string
		title string
		stock int
		price decimal.Decimal
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(&id, &title, &stock, &price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, err_storage.ErrBookNotFound
		}

		return entity.Book{}, fmt.Errorf("error while getting book %s: %w", bookID, err)
	}

	return entity.Book{
		ID:    entity.BookID(id),
		Title: title,
		Stock: stock,
		Price: price,
	}, nil
}

func (r *repository) ReserveStock(ctx context.Context, bookID entity.BookID, quantity int) (entity.BookStock, error) {
	query, args, err := r.builder.
		Update(tableBooks).
		Set(goqu.Record{colStock: goqu.L(colStock+" - ?", quantity)}).
		Where(
			goqu.C(colID).Eq(bookID.String()),
			goqu.C(colStock).Gte(quantity),
		).
		Returning(colStock).
		Prepared(true).
		ToSQL()
	if err != nil {
		return entity.BookStock{}, fmt.Errorf("error while building reserve stock query: %w", err)
	}

	var stock int
	err = r.db.QueryRow(ctx, query, args...).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.BookStock{}, r.explainStockMiss(ctx, bookID)
		}

		return entity.BookStock{}, fmt.Errorf("error while reserving stock of book %s: %w", bookID, err)
	}

	return entity.BookStock{ID: bookID, Stock: stock}, nil
}

func (r *repository) ReleaseStock(ctx context.Context, bookID entity.BookID, quantity int) (entity.BookStock, error) {
	query, args, err := r.builder.
		Update(tableBooks).
		Set(goqu.Record{colStock: goqu.L(colStock+" + ?", quantity)}).
		Where(goqu.C(colID).Eq(bookID.String())).
		Returning(colStock).
		Prepared(true).
		ToSQL()
	if err != nil {
		return entity.BookStock{}, fmt.Errorf("error while building release stock query: %w", err)
	}

	var stock int
	err = r.db.QueryRow(ctx, query, args...).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.BookStock{}, err_storage.ErrBookNotFound
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgNumericOutOfRange {
			return entity.BookStock{}, err_storage.ErrStockOverflow
		}

		return entity.BookStock{}, fmt.Errorf("error while releasing stock of book %s: %w", bookID, err)
	}

	return entity.BookStock{ID: bookID, Stock: stock}, nil
}

// explainStockMiss tells a missing book apart from an insufficient stock
// after a conditional decrement matched no row.
func (r *repository) explainStockMiss(ctx context.Context, bookID entity.BookID) error {
	book, err := r.GetBook(ctx, bookID)
	if err != nil {
		return err
	}

	return &err_storage.StockError{BookID: bookID.String(), Stock: book.Stock}
}

func (r *repository) CreateCustomer(ctx context.Context, customer entity.Customer) error {
	query, args, err := r.builder.
		Insert(tableCustomers).
		Rows(goqu.Record{
			colID:      customer.ID.String(),
			colName:    customer.Name,
			colEmail:   customer.Email,
			colAddress: customer.Address,
		}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("error while building create customer query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return err_storage.ErrCustomerExists
		}

		return fmt.Errorf("error while creating customer %s: %w", customer.ID, err)
	}

	return nil
}

func (r *repository) GetCustomer(ctx context.Context, customerID entity.CustomerID) (entity.Customer, error) {
	query, args, err := r.builder.
		From(tableCustomers).
		Select(colID, colName, colEmail, colAddress).
		Where(goqu.C(colID).Eq(customerID.String())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return entity.Customer{}, fmt.Errorf("error while building get customer query: %w", err)
	}

	var id, name, email, address string
	err = r.db.QueryRow(ctx, query, args...).Scan(&id, &name, &email, &address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Customer{}, err_storage.ErrCustomerNotFound
		}

		return entity.Customer{}, fmt.Errorf("error while getting customer %s: %w", customerID, err)
	}

	return entity.Customer{
		ID:      entity.CustomerID(id),
		Name:    name,
		Email:   email,
		Address: address,
	}, nil
}

// CreateOrder inserts the order and its items atomically. Inside a
// transaction the nested Begin becomes a savepoint.
func (r *repository) CreateOrder(ctx context.Context, order entity.Order) error {
	orderQuery, orderArgs, err := r.builder.
		Insert(tableOrders).
		Rows(goqu.Record{
			colID:         order.ID.String(),
			colCustomerID: order.CustomerID.String(),
			colStatus:     order.Status.String(),
			colCreatedAt:  order.CreatedAt,
		}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("error while building create order query: %w", err)
	}

	rows := make([]any, 0, len(order.Items))
	for _, item := range order.Items {
		rows = append(rows, goqu.Record{
			colOrderID:  order.ID.String(),
			colBookID:   item.BookID.String(),
			colQuantity: item.Quantity,
			colPrice:    item.Price,
		})
	}

	itemsQuery, itemsArgs, err := r.builder.
		Insert(tableOrderItems).
		Rows(rows...).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("error while building create order items query: %w", err)
	}

	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, orderQuery, orderArgs...); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, itemsQuery, itemsArgs...)

		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			switch pgErr.ConstraintName {
			case constraintOrderCustomer:
				return err_storage.ErrCustomerNotFound
			case constraintItemBook:
				return err_storage.ErrBookNotFound
			}
		}

		return fmt.Errorf("error while creating order %s: %w", order.ID, err)
	}

	return nil
}

func (r *repository) GetOrder(ctx context.Context, orderID entity.OrderID) (entity.Order, error) {
	return r.getOrder(ctx, orderID, false)
}

func (r *repository) LockOrder(ctx context.Context, orderID entity.OrderID) (entity.Order, error) {
	return r.getOrder(ctx, orderID, true)
}

func (r *repository) getOrder(ctx context.Context, orderID entity.OrderID, forUpdate bool) (entity.Order, error) {
	selectStmt := r.builder.
		From(tableOrders).
		Select(colID, colCustomerID, colStatus, colCreatedAt).
		Where(goqu.C(colID).Eq(orderID.String()))

	if forUpdate {
		selectStmt = selectStmt.ForUpdate(exp.Wait)
	}

	query, args, err := selectStmt.Prepared(true).ToSQL()
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while building get order query: %w", err)
	}

	var (
		id, customerID, status string
		createdAt              time.Time
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(&id, &customerID, &status, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Order{}, err_storage.ErrOrderNotFound
		}

		return entity.Order{}, fmt.Errorf("error while getting order %s: %w", orderID, err)
	}

	items, err := r.getOrderItems(ctx, orderID)
	if err != nil {
		return entity.Order{}, err
	}

	return entity.Order{
		ID:         entity.OrderID(id),
		CustomerID: entity.CustomerID(customerID),
		Status:     entity.OrderStatus(status),
		CreatedAt:  createdAt.UTC(),
		Items:      items,
	}, nil
}

func (r *repository) getOrderItems(ctx context.Context, orderID entity.OrderID) (entity.OrderItems, error) {
	query, args, err := r.builder.
		From(tableOrderItems).
		Select(colBookID, colQuantity, colPrice).
		Where(goqu.C(colOrderID).Eq(orderID.String())).
		Order(goqu.I(colBookID).Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("error while building get order items query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error while getting items of order %s: %w", orderID, err)
	}
	defer rows.Close()

	items := make(entity.OrderItems, 0)
	for rows.Next() {
		var (
			bookID   string
			quantity int
			price    decimal.Decimal
		)
		if err := rows.Scan(&bookID, &quantity, &price); err != nil {
			return nil, fmt.Errorf("error while scanning item of order %s: %w", orderID, err)
		}

		items = append(items, entity.OrderItem{
			OrderID:  orderID,
			BookID:   entity.BookID(bookID),
			Quantity: quantity,
			Price:    price,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error while reading items of order %s: %w", orderID, err)
	}

	return items, nil
}

func (r *repository) UpdateOrderStatus(ctx context.Context, orderID entity.OrderID, from, to entity.OrderStatus) error {
	query, args, err := r.builder.
		Update(tableOrders).
		Set(goqu.Record{colStatus: to.String()}).
		Where(
			goqu.C(colID).Eq(orderID.String()),
			goqu.C(colStatus).Eq(from.String()),
		).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("error while building update order status query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error while updating status of order %s: %w", orderID, err)
	}

	if tag.RowsAffected() == 0 {
		if _, err := r.getOrder(ctx, orderID, false); err != nil {
			return err
		}

		return err_storage.ErrOrderStatusChanged
	}

	return nil
}
