package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/example/ec-commerce/internal/api"
	"github.com/example/ec-commerce/internal/command"
	"github.com/example/ec-commerce/internal/config"
	"github.com/example/ec-commerce/internal/infrastructure/kafka"
	"github.com/example/ec-commerce/internal/infrastructure/store"
	"github.com/example/ec-commerce/internal/query"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	log := logrus.WithField("component", "api")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := store.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to mongodb")
	}
	defer client.Disconnect(context.Background())
	log.WithField("database", cfg.MongoDatabase).Info("connected to mongodb")

	db := client.Database(cfg.MongoDatabase)
	catalogStore := store.NewMongoCatalogStore(db)
	orderStore := store.NewMongoOrderStore(db)
	txRunner := store.NewMongoTxRunner(client)

	producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer producer.Close()

	cmdHandler := command.NewHandler(catalogStore, orderStore, txRunner, producer)
	queryHandler := query.NewHandler(catalogStore, orderStore)

	handlers := api.NewHandlers(cmdHandler, queryHandler)
	router := api.NewRouter(handlers)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("server started")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown error")
	}
}
