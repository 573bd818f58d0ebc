package customers

import (
	"context"
	"net/http"

	httputils "github.com/avGenie/go-bookstore-inventory/internal/app/controller/http/utils"
	"github.com/avGenie/go-bookstore-inventory/internal/app/converter"
	"github.com/avGenie/go-bookstore-inventory/internal/app/entity"
	"github.com/avGenie/go-bookstore-inventory/internal/app/model"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CustomerProcessor interface {
	Register(ctx context.Context, name, email, address string) (entity.Customer, error)
	Get(ctx context.Context, customerID string) (entity.Customer, error)
}

type Customer struct {
	processor CustomerProcessor
}

func New(processor CustomerProcessor) Customer {
	return Customer{
		processor: processor,
	}
}

func (c *Customer) CreateCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.CreateCustomerRequest
		err := httputils.DecodeJSON(r, &request)
		if err != nil {
			zap.L().Info("error while parsing create customer request", zap.Error(err))
			httputils.WriteBadRequest(w, httputils.ErrInvalidBody)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		customer, err := c.processor.Register(ctx, request.Name, request.Email, request.Address)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusCreated, converter.ConvertCustomerToResponse(customer))
	}
}

func (c *Customer) GetCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		customer, err := c.processor.Get(ctx, chi.URLParam(r, "id"))
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertCustomerToResponse(customer))
	}
}
