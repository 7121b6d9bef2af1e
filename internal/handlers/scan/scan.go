package scan

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/Daemon-Craft/MaplePath/internal/domain"
	"github.com/Daemon-Craft/MaplePath/internal/dto"
	"github.com/Daemon-Craft/MaplePath/internal/receipt"
	"github.com/Daemon-Craft/MaplePath/internal/service/quotaservice"
	"github.com/Daemon-Craft/MaplePath/internal/service/scanservice"
	"github.com/Daemon-Craft/MaplePath/pkg/auth"
	"github.com/Daemon-Craft/MaplePath/pkg/utils"
)

type Service interface {
	IngestReceipt(ctx context.Context, userID int, tier string, file []byte, mimeType string) (*domain.Transaction, receipt.ParsedReceipt, error)
}

type ScanHandler struct {
	scanService Service
}

func New(scanService Service) *ScanHandler {
	return &ScanHandler{
		scanService: scanService,
	}
}

// ScanReceipt godoc
//
//	@Summary		Scan a receipt image
//	@Description	Upload a receipt photo; the text is recognized, parsed and saved as an expense transaction.
//	@Tags			Receipts
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			receipt	formData	file	true	"Receipt image"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ScanReceiptResponseDTO
//	@Failure		400	{object}	utils.Response	"Missing or unreadable receipt file"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Monthly scan limit reached"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/receipts/scan [post]
func (h *ScanHandler) ScanReceipt(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	tier, _ := r.Context().Value(auth.SubscriptionKey).(string)

	file, header, err := r.FormFile("receipt")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Receipt file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, scanservice.MaxFileSize+1))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read receipt file")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	transaction, parsed, err := h.scanService.IngestReceipt(r.Context(), userID, tier, data, mimeType)
	if err != nil {
		switch {
		case errors.Is(err, quotaservice.ErrQuotaExceeded):
			utils.RespondWithError(w, http.StatusForbidden, "Monthly scan limit reached. Upgrade to Premium for unlimited scans.")
		case errors.Is(err, scanservice.ErrNoFile):
			utils.RespondWithError(w, http.StatusBadRequest, "Receipt file is empty")
		case errors.Is(err, scanservice.ErrFileTooLarge):
			utils.RespondWithError(w, http.StatusBadRequest, "Receipt file is too large")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ScanReceiptResponseDTO{
		Transaction: *transaction,
		Parsed:      parsed,
	})
}
