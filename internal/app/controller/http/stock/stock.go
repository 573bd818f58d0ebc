package stock

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

type StockProcessor interface {
	IncreaseStock(ctx context.Context, bookID string, quantity int) (entity.BookStock, error)
	DecreaseStock(ctx context.Context, bookID string, quantity int) (entity.BookStock, error)
	GetBook(ctx context.Context, bookID string) (entity.Book, error)
}

type Stock struct {
	processor StockProcessor
}

func New(processor StockProcessor) Stock {
	return Stock{
		processor: processor,
	}
}

func (s *Stock) GetBook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		book, err := s.processor.GetBook(ctx, chi.URLParam(r, "id"))
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertBookToResponse(book))
	}
}

func (s *Stock) IncreaseStock() http.HandlerFunc {
	return s.changeStock(s.processor.IncreaseStock)
}

func (s *Stock) DecreaseStock() http.HandlerFunc {
	return s.changeStock(s.processor.DecreaseStock)
}

func (s *Stock) changeStock(change func(ctx context.Context, bookID string, quantity int) (entity.BookStock, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.StockRequest
		err := httputils.DecodeJSON(r, &request)
		if err != nil {
			zap.L().Info("error while parsing stock request", zap.Error(err))
			httputils.WriteBadRequest(w, httputils.ErrInvalidBody)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		stock, err := change(ctx, chi.URLParam(r, "id"), request.Quantity)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertBookStockToResponse(stock))
	}
}
