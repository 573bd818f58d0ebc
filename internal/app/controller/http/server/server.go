package http

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avGenie/go-bookstore-inventory/internal/app/config"
	"github.com/avGenie/go-bookstore-inventory/internal/app/controller/http/customers"
	"github.com/avGenie/go-bookstore-inventory/internal/app/controller/http/orders"
	router "github.com/avGenie/go-bookstore-inventory/internal/app/controller/http/router"
	"github.com/avGenie/go-bookstore-inventory/internal/app/controller/http/stock"
	"go.uber.org/zap"
)

const (
	shutdownTimeout = 10 * time.Second
)

type HTTPServer struct {
	server *http.Server
}

func New(config config.Config, orderProcessor orders.OrderProcessor, stockProcessor stock.StockProcessor, customerProcessor customers.CustomerProcessor) *HTTPServer {
	mux := router.CreateRouter(
		orders.New(orderProcessor),
		stock.New(stockProcessor),
		customers.New(customerProcessor),
	)

	server := &http.Server{
		Addr:              config.NetAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &HTTPServer{
		server: server,
	}
}

// StartHTTPServer serves until SIGTERM or interrupt and then shuts down
// gracefully.
func (s *HTTPServer) StartHTTPServer() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	go func() {
		zap.L().Info("starting HTTP server", zap.String("address", s.server.Addr))
		err := s.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("fatal error while starting server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	zap.L().Info("Got interruption signal. Shutting down HTTP server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	err := s.server.Shutdown(shutdownCtx)
	if err != nil {
		zap.L().Error("error while shutting down server", zap.Error(err))
	}
}
