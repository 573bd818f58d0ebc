package customer

import (
	"context"
	"errors"
	"strings"

	"github.com/avGenie/go-bookstore-inventory/internal/app/entity"
	err_storage "github.com/avGenie/go-bookstore-inventory/internal/app/storage/api/errors"
	"github.com/avGenie/go-bookstore-inventory/internal/app/storage/api/model"
	err_usecase "github.com/avGenie/go-bookstore-inventory/internal/app/usecase/errors"
	"github.com/avGenie/go-bookstore-inventory/internal/app/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Registry struct {
	storage     model.Storage
	allowGuests bool
}

// New creates the registry. With allowGuests an order without customer id
// registers a guest profile, otherwise the id is required.
func New(storage model.Storage, allowGuests bool) *Registry {
	return &Registry{
		storage:     storage,
		allowGuests: allowGuests,
	}
}

func (r *Registry) FindOrCreate(ctx context.Context, repo model.Repository, customerID string) (entity.Customer, error) {
	customerID = strings.TrimSpace(customerID)
	if len(customerID) == 0 {
		if !r.allowGuests {
			return entity.Customer{}, err_usecase.InvalidInput("customer ID is required")
		}

		return r.createGuest(ctx, repo)
	}

	customer, err := repo.GetCustomer(ctx, entity.CustomerID(customerID))
	if err != nil {
		if errors.Is(err, err_storage.ErrCustomerNotFound) {
			return entity.Customer{}, err_usecase.NotFound("customer %s not found", customerID)
		}

		return entity.Customer{}, err_usecase.Resolve(err, "error while getting customer", zap.String("customer_id", customerID))
	}

	return customer, nil
}

func (r *Registry) Register(ctx context.Context, name, email, address string) (entity.Customer, error) {
	if err := validator.CustomerProfile(name, email); err != nil {
		return entity.Customer{}, err
	}

	customer := entity.Customer{
		ID:      createCustomerID(),
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Address: strings.TrimSpace(address),
	}

	err := r.storage.CreateCustomer(ctx, customer)
	if err != nil {
		if errors.Is(err, err_storage.ErrCustomerExists) {
			return entity.Customer{}, err_usecase.Conflict("customer with email %s already exists", customer.Email)
		}

		return entity.Customer{}, err_usecase.Resolve(err, "error while creating customer", zap.String("email", customer.Email))
	}

	return customer, nil
}

func (r *Registry) Get(ctx context.Context, customerID string) (entity.Customer, error) {
	if err := validator.Identifier("customer", customerID); err != nil {
		return entity.Customer{}, err
	}

	return r.FindOrCreate(ctx, r.storage, customerID)
}

func (r *Registry) createGuest(ctx context.Context, repo model.Repository) (entity.Customer, error) {
	customer := entity.CreateGuestCustomer(createCustomerID())

	err := repo.CreateCustomer(ctx, customer)
	if err != nil {
		return entity.Customer{}, err_usecase.Resolve(err, "error while creating guest customer", zap.String("customer_id", customer.ID.String()))
	}

	zap.L().Info("guest customer has been registered", zap.String("customer_id", customer.ID.String()))

	return customer, nil
}

func createCustomerID() entity.CustomerID {
	uuid := uuid.New()
	customerID := entity.CustomerID(uuid.String())

	return customerID
}
