package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/analytics"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/budget"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/category"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

type Rest struct {
	Logger         *logrus.Logger
	Port           string
	Storage        *storage.Storage
	Service        *service.Service
	CurrencySymbol string

	server *http.Server
}

// Handler builds the mux with every route registered.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Finance Tracker API", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	category.NewCreateCategoryHandler(r.Service.Category).Register(api)
	category.NewListCategoriesHandler(r.Service.Category).Register(api)

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewModifyTransactionHandler(r.Service.Transaction).Register(api)

	budget.NewCreateBudgetHandler(r.Service.Budget).Register(api)
	budget.NewListBudgetsHandler(r.Service.Budget).Register(api)
	budget.NewModifyBudgetHandler(r.Service.Budget).Register(api)

	analytics.NewHandler(r.Service.Analytics, analytics.NewRenderer(r.CurrencySymbol)).Register(api)

	return mux
}

// Serve blocks until the server stops. A clean Shutdown is not an error.
func (r *Rest) Serve() error {
	r.server = &http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := r.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
	return nil
}

func (r *Rest) Shutdown(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	return r.server.Shutdown(ctx)
}
