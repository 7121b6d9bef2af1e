package handlers

import (
	"net/http"

	_ "github.com/Daemon-Craft/MaplePath/docs"
	scanhandlers "github.com/Daemon-Craft/MaplePath/internal/handlers/scan"
	transactionhandlers "github.com/Daemon-Craft/MaplePath/internal/handlers/transactions"
	"github.com/Daemon-Craft/MaplePath/internal/service"
	"github.com/Daemon-Craft/MaplePath/pkg/auth"
	"github.com/Daemon-Craft/MaplePath/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ScanHandler interface {
	ScanReceipt(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	GetTransactions(w http.ResponseWriter, r *http.Request)
	CreateTransaction(w http.ResponseWriter, r *http.Request)
	GetInsights(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	ScanHandler        ScanHandler
	TransactionHandler TransactionHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		ScanHandler:        scanhandlers.New(s.ScanService),
		TransactionHandler: transactionhandlers.New(s.TransactionService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/receipts/scan", h.ScanHandler.ScanReceipt)
			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", h.TransactionHandler.GetTransactions)
				r.Post("/", h.TransactionHandler.CreateTransaction)
				r.Get("/insights", h.TransactionHandler.GetInsights)
			})
		})
	})

	return r
}
