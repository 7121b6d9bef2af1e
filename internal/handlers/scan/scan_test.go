package scan

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Daemon-Craft/MaplePath/internal/domain"
	"github.com/Daemon-Craft/MaplePath/internal/dto"
	"github.com/Daemon-Craft/MaplePath/internal/receipt"
	"github.com/Daemon-Craft/MaplePath/internal/service/quotaservice"
	"github.com/Daemon-Craft/MaplePath/internal/service/scanservice"
	"github.com/Daemon-Craft/MaplePath/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ScanHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func multipartBody(t *testing.T, fieldName string, content []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, "receipt.jpg")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestScanReceiptHandler(t *testing.T) {
	handler, service := NewMock(t)

	imageBytes := []byte("fake-jpeg-bytes")
	savedTransaction := &domain.Transaction{
		ID:       1,
		UserID:   1,
		Type:     domain.ExpenseType,
		Category: "Groceries",
		Amount:   6.49,
		Merchant: "Walmart",
	}
	parsed := receipt.ParsedReceipt{
		Merchant: "Walmart",
		Total:    6.49,
		Items:    []receipt.Item{{Name: "Milk 2%", Price: 6.49}},
		RawText:  "Walmart\nMilk 2% 6.49\nTOTAL 6.49",
	}

	tests := []struct {
		name          string
		fieldName     string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Successful scan",
			fieldName: "receipt",
			prepareMock: func() {
				service.EXPECT().
					IngestReceipt(gomock.Any(), 1, domain.FreeTier, imageBytes, gomock.Any()).
					Return(savedTransaction, parsed, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Missing file field",
			fieldName:     "attachment",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Receipt file is required",
		},
		{
			name:      "Quota exceeded",
			fieldName: "receipt",
			prepareMock: func() {
				service.EXPECT().
					IngestReceipt(gomock.Any(), 1, domain.FreeTier, imageBytes, gomock.Any()).
					Return(nil, receipt.ParsedReceipt{}, quotaservice.ErrQuotaExceeded)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "Upgrade to Premium",
		},
		{
			name:      "Empty file",
			fieldName: "receipt",
			prepareMock: func() {
				service.EXPECT().
					IngestReceipt(gomock.Any(), 1, domain.FreeTier, imageBytes, gomock.Any()).
					Return(nil, receipt.ParsedReceipt{}, scanservice.ErrNoFile)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Receipt file is empty",
		},
		{
			name:      "File too large",
			fieldName: "receipt",
			prepareMock: func() {
				service.EXPECT().
					IngestReceipt(gomock.Any(), 1, domain.FreeTier, imageBytes, gomock.Any()).
					Return(nil, receipt.ParsedReceipt{}, scanservice.ErrFileTooLarge)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Receipt file is too large",
		},
		{
			name:      "Internal server error",
			fieldName: "receipt",
			prepareMock: func() {
				service.EXPECT().
					IngestReceipt(gomock.Any(), 1, domain.FreeTier, imageBytes, gomock.Any()).
					Return(nil, receipt.ParsedReceipt{}, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			body, contentType := multipartBody(t, tt.fieldName, imageBytes)
			r := httptest.NewRequest(http.MethodPost, "/api/user/receipts/scan", body)
			r.Header.Set("Content-Type", contentType)
			ctx := context.WithValue(r.Context(), auth.UserIDKey, 1)
			ctx = context.WithValue(ctx, auth.SubscriptionKey, domain.FreeTier)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.ScanReceipt(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var resp dto.ScanReceiptResponseDTO
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, *savedTransaction, resp.Transaction)
				assert.Equal(t, parsed, resp.Parsed)
			}
		})
	}
}
