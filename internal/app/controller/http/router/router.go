package http

import (
	"github.com/avGenie/go-bookstore-inventory/internal/app/controller/http/customers"
	"github.com/avGenie/go-bookstore-inventory/internal/app/controller/http/middleware/logger"
	"github.com/avGenie/go-bookstore-inventory/internal/app/controller/http/orders"
	"github.com/avGenie/go-bookstore-inventory/internal/app/controller/http/stock"
	"github.com/go-chi/chi/v5"
)

func CreateRouter(orders orders.Order, stock stock.Stock, customers customers.Customer) *chi.Mux {
	r := chi.NewRouter()

	r.Use(logger.LoggerMiddleware)

	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", orders.SubmitOrder())
		r.Get("/{id}", orders.GetOrder())
		r.Post("/{id}/process", orders.ProcessOrder())
		r.Post("/{id}/ship", orders.ShipOrder())
		r.Post("/{id}/cancel", orders.CancelOrder())
	})

	r.Route("/api/books/{id}", func(r chi.Router) {
		r.Get("/", stock.GetBook())
		r.Post("/stock/increase", stock.IncreaseStock())
		r.Post("/stock/decrease", stock.DecreaseStock())
	})

	r.Post("/api/customers", customers.CreateCustomer())
	r.Get("/api/customers/{id}", customers.GetCustomer())

	return r
}
