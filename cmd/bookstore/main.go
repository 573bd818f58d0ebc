package main

import (
	"context"

	"github.com/avGenie/go-bookstore-inventory/internal/app/config"
	server "github.com/avGenie/go-bookstore-inventory/internal/app/controller/http/server"
	"github.com/avGenie/go-bookstore-inventory/internal/app/logger"
	storage "github.com/avGenie/go-bookstore-inventory/internal/app/storage/api"
	"github.com/avGenie/go-bookstore-inventory/internal/app/usecase/customer"
	"github.com/avGenie/go-bookstore-inventory/internal/app/usecase/inventory"
	"github.com/avGenie/go-bookstore-inventory/internal/app/usecase/notify"
	"github.com/avGenie/go-bookstore-inventory/internal/app/usecase/order"
	"go.uber.org/zap"
)

func main() {
	config := config.InitConfig()

	err := logger.Initialize(config)
	if err != nil {
		panic(err)
	}

	storage, err := storage.InitStorage(context.Background(), config)
	if err != nil {
		zap.L().Fatal("error while initializing storage", zap.Error(err))
	}
	defer func() {
		if err := storage.Close(); err != nil {
			zap.L().Error("error while closing storage", zap.Error(err))
		}
	}()

	notifier := notify.New(createPublisher(config))
	defer notifier.Stop()

	stock := inventory.New(storage, notifier)
	customers := customer.New(storage, config.GuestCustomers)
	lifecycle := order.New(storage, stock, customers, notifier)

	server := server.New(config, lifecycle, stock, customers)
	server.StartHTTPServer()
}

func createPublisher(config config.Config) notify.Publisher {
	brokers := config.Brokers()
	if len(brokers) == 0 {
		zap.L().Info("kafka brokers are not set, lifecycle events are not published")
		return notify.NopPublisher{}
	}

	return notify.NewKafkaPublisher(brokers, config.KafkaTopic)
}
