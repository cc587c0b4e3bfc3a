package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-tracker/api"
	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/notify"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logger := logging.SetupLogging()
	logrus.Info("finance-tracker starting")

	// A missing .env is fine, the environment may already be set.
	if err := godotenv.Load(); err != nil {
		logger.WithError(err).Debug("godotenv.Load")
	}

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err := logging.SetLevel(logger, envConfig.LogLevel); err != nil {
		logrus.WithError(err).Fatal("logging.SetLevel")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()

	svc := service.NewService(dbStorage, delegator, service.Options{
		Location:    envConfig.Location,
		RecentLimit: envConfig.RecentTransactionsLimit,
	})

	var alerter *notify.Alerter
	if envConfig.AlertsEnabled() {
		client, err := notify.NewClient(envConfig.AMQPURL, envConfig.AMQPExchange, envConfig.AMQPRoutingKey, logger)
		if err != nil {
			logrus.WithError(err).Fatal("notify.NewClient")
			return
		}
		defer client.Close()

		alerter = notify.NewAlerter(svc.Analytics, client, envConfig.Location, logger)
		svc.Transaction.SetObserver(alerter)
		svc.Budget.SetObserver(alerter)
		logger.WithField("exchange", envConfig.AMQPExchange).Info("Budget alerts enabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpRest := &api.Rest{
		Logger:         logger,
		Port:           envConfig.Port,
		Storage:        dbStorage,
		Service:        svc,
		CurrencySymbol: envConfig.CurrencySymbol,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(httpRest.Serve)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpRest.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("finance-tracker stopped with error")
	}

	delegator.Stop()
	if alerter != nil {
		alerter.Wait()
	}
	logger.Info("finance-tracker stopped")
}
