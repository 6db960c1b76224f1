package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/Aleale0612/swift-fin/internal/alert"
	"github.com/Aleale0612/swift-fin/internal/handlers/v1/debt"
	"github.com/Aleale0612/swift-fin/internal/handlers/v1/goal"
	"github.com/Aleale0612/swift-fin/internal/handlers/v1/notification"
	"github.com/Aleale0612/swift-fin/internal/handlers/v1/report"
	"github.com/Aleale0612/swift-fin/internal/handlers/v1/status"
	"github.com/Aleale0612/swift-fin/internal/handlers/v1/transaction"
	"github.com/Aleale0612/swift-fin/internal/logging"
	"github.com/Aleale0612/swift-fin/internal/operator"
	"github.com/Aleale0612/swift-fin/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Center   *alert.Center
	Operator *operator.OperatorDelegator

	server *http.Server
}

// Serve registers every endpoint and blocks until the server stops.
func (r *Rest) Serve() {
	mux := http.NewServeMux()
	humaAPI := humago.New(mux, huma.DefaultConfig("swift-fin", "1.0.0"))
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))

	status.NewHandler().Register(humaAPI)

	transaction.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)

	debt.NewCreateDebtHandler(r.Operator).Register(humaAPI)
	debt.NewListDebtsHandler(r.Service.Debt).Register(humaAPI)
	debt.NewSettleDebtHandler(r.Operator).Register(humaAPI)

	goal.NewCreateGoalHandler(r.Operator).Register(humaAPI)
	goal.NewListGoalsHandler(r.Service.Goal).Register(humaAPI)
	goal.NewContributeGoalHandler(r.Operator).Register(humaAPI)
	goal.NewDeleteGoalHandler(r.Service.Goal).Register(humaAPI)

	report.NewSummaryHandler(r.Service.Report).Register(humaAPI)

	notification.NewListNotificationsHandler(r.Center).Register(humaAPI)
	notification.NewRefreshNotificationsHandler(r.Center).Register(humaAPI)
	notification.NewMarkReadHandler(r.Center).Register(humaAPI)
	notification.NewMarkAllReadHandler(r.Center).Register(humaAPI)
	notification.NewDeleteNotificationHandler(r.Center).Register(humaAPI)

	r.server = &http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := r.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

// Shutdown stops accepting new requests and waits for in-flight ones.
func (r *Rest) Shutdown(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	return r.server.Shutdown(ctx)
}
