package orders

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

type OrderProcessor interface {
	SubmitOrder(ctx context.Context, customerID, bookID string, quantity int) (entity.OrderSubmission, error)
	ProcessOrder(ctx context.Context, orderID string) (entity.OrderState, error)
	ShipOrder(ctx context.Context, orderID string) (entity.OrderState, error)
	CancelOrder(ctx context.Context, orderID string) (entity.OrderState, error)
	GetOrder(ctx context.Context, orderID string) (entity.Order, error)
}

type Order struct {
	processor OrderProcessor
}

func New(processor OrderProcessor) Order {
	return Order{
		processor: processor,
	}
}

func (o *Order) SubmitOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.SubmitOrderRequest
		err := httputils.DecodeJSON(r, &request)
		if err != nil {
			zap.L().Info("error while parsing submit order request", zap.Error(err))
			httputils.WriteBadRequest(w, httputils.ErrInvalidBody)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		submission, err := o.processor.SubmitOrder(ctx, request.Customer, request.Book, request.Quantity)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusCreated, converter.ConvertSubmissionToResponse(submission))
	}
}

func (o *Order) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		order, err := o.processor.GetOrder(ctx, chi.URLParam(r, "id"))
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderToResponse(order))
	}
}

func (o *Order) ProcessOrder() http.HandlerFunc {
	return o.changeStatus(o.processor.ProcessOrder)
}

func (o *Order) ShipOrder() http.HandlerFunc {
	return o.changeStatus(o.processor.ShipOrder)
}

func (o *Order) CancelOrder() http.HandlerFunc {
	return o.changeStatus(o.processor.CancelOrder)
}

func (o *Order) changeStatus(change func(ctx context.Context, orderID string) (entity.OrderState, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		state, err := change(ctx, chi.URLParam(r, "id"))
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderStateToResponse(state))
	}
}
