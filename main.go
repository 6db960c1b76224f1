package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Aleale0612/swift-fin/api"
	"github.com/Aleale0612/swift-fin/internal/alert"
	"github.com/Aleale0612/swift-fin/internal/config"
	"github.com/Aleale0612/swift-fin/internal/logging"
	"github.com/Aleale0612/swift-fin/internal/operator"
	"github.com/Aleale0612/swift-fin/internal/service"
	"github.com/Aleale0612/swift-fin/internal/storage"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logger := logging.SetupLogging()
	logrus.Info("swift-fin starting")

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config.Load")
		return
	}

	store, err := storage.NewStorage(context.Background(), &cfg.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	svc := service.NewService(store)

	delegator := operator.NewOperatorDelegator(store, cfg.Operator.Workers)
	delegator.Start()

	center := alert.NewCenter(svc.Transaction, svc.Debt, logger)
	poller := alert.NewPoller(center, cfg.Alerts.RefreshInterval, logger)
	poller.Start()

	rest := &api.Rest{
		Logger:   logger,
		Port:     cfg.Server.Port,
		Service:  svc,
		Center:   center,
		Operator: delegator,
	}
	go rest.Serve()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logrus.Info("swift-fin shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := rest.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("HttpServer.Shutdown")
	}

	poller.Stop()
	delegator.Stop()
	store.Close()

	logrus.Info("swift-fin stopped")
}
