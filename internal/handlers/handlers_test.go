package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/Daemon-Craft/MaplePath/docs"
	"github.com/Daemon-Craft/MaplePath/internal/handlers/scan"
	"github.com/Daemon-Craft/MaplePath/internal/handlers/transactions"
	"github.com/Daemon-Craft/MaplePath/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		ScanService:        scan.NewMockService(ctrl),
		TransactionService: transactions.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScanHandler := NewMockScanHandler(ctrl)
	mockTransactionHandler := NewMockTransactionHandler(ctrl)

	mockScanHandler.EXPECT().ScanReceipt(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().GetInsights(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		ScanHandler:        mockScanHandler,
		TransactionHandler: mockTransactionHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/health", http.StatusOK},
		{"POST", "/api/user/receipts/scan", http.StatusUnauthorized},
		{"GET", "/api/user/transactions", http.StatusUnauthorized},
		{"POST", "/api/user/transactions", http.StatusUnauthorized},
		{"GET", "/api/user/transactions/insights", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
