package transactions

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Daemon-Craft/MaplePath/internal/domain"
	"github.com/Daemon-Craft/MaplePath/internal/dto"
	"github.com/Daemon-Craft/MaplePath/pkg/auth"
	"github.com/Daemon-Craft/MaplePath/pkg/utils"
	"github.com/go-playground/validator/v10"
)

type Service interface {
	GetTransactions(ctx context.Context, userID int, filter domain.TransactionFilter) ([]domain.Transaction, error)
	CreateTransaction(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	GetInsights(ctx context.Context, userID int, month time.Time) (*domain.Insights, error)
}

const monthLayout = "2006-01"

type TransactionHandler struct {
	transactionService Service
	validate           *validator.Validate
}

func New(transactionService Service) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		validate:           validator.New(),
	}
}

// GetTransactions godoc
//
//	@Summary		Get transactions list for user
//	@Description	Retrieve transactions for the authorized user, optionally filtered by type, category and month.
//	@Tags			Transactions
//	@Produce		json
//	@Param			type		query	string	false	"Transaction type"	Enums(INCOME, EXPENSE)
//	@Param			category	query	string	false	"Category name"
//	@Param			month		query	string	false	"Calendar month"	example(2025-11)
//	@Param			limit		query	int		false	"Max rows returned"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.GetTransactionsResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		400	{object}	utils.Response	"Invalid query parameters"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	filter := domain.TransactionFilter{
		Type:     r.URL.Query().Get("type"),
		Category: r.URL.Query().Get("category"),
	}
	if monthParam := r.URL.Query().Get("month"); monthParam != "" {
		month, err := time.Parse(monthLayout, monthParam)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid month format, expected YYYY-MM")
			return
		}
		filter.From = month
		filter.To = month.AddDate(0, 1, 0)
	}
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		filter.Limit = limit
	}

	transactions, err := h.transactionService.GetTransactions(r.Context(), userID, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	var response []dto.GetTransactionsResponseDTO
	for _, transaction := range transactions {
		response = append(response, dto.GetTransactionsResponseDTO{
			ID:         transaction.ID,
			Type:       transaction.Type,
			Category:   transaction.Category,
			Amount:     transaction.Amount,
			Merchant:   transaction.Merchant,
			Date:       transaction.Date,
			ReceiptURL: transaction.ReceiptURL,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateTransaction godoc
//
//	@Summary		Record a transaction manually
//	@Description	Create an income or expense transaction without a receipt.
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Param			transaction	body	dto.CreateTransactionRequestDTO	true	"Transaction to record"
//	@Security		BearerAuth
//	@Success		201	{object}	domain.Transaction
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/transactions [post]
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateTransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}
	transaction, err := h.transactionService.CreateTransaction(r.Context(), &domain.Transaction{
		UserID:   userID,
		Type:     req.Type,
		Category: req.Category,
		Amount:   req.Amount,
		Merchant: req.Merchant,
		Date:     date,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, transaction)
}

// GetInsights godoc
//
//	@Summary		Get monthly spending insights
//	@Description	Aggregate one calendar month of transactions into totals, category breakdown and top merchants.
//	@Tags			Transactions
//	@Produce		json
//	@Param			month	query	string	false	"Calendar month, defaults to the current one"	example(2025-11)
//	@Security		BearerAuth
//	@Success		200	{object}	domain.Insights
//	@Failure		400	{object}	utils.Response	"Invalid month format"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/transactions/insights [get]
func (h *TransactionHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	month := time.Now()
	if monthParam := r.URL.Query().Get("month"); monthParam != "" {
		parsed, err := time.Parse(monthLayout, monthParam)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid month format, expected YYYY-MM")
			return
		}
		month = parsed
	}

	insights, err := h.transactionService.GetInsights(r.Context(), userID, month)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, insights)
}
