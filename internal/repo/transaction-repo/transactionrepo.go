package transactionrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Daemon-Craft/MaplePath/internal/domain"
	"github.com/Daemon-Craft/MaplePath/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Save(ctx context.Context, transaction *domain.Transaction) error {
	query := `
        INSERT INTO transactions (user_id, type, category, amount, merchant, date, receipt_url, ocr_text, items)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at
    `
	items, err := json.Marshal(transaction.Items)
	if err != nil {
		zap.L().Error("can't marshal transaction items", zap.Error(err))
		return err
	}

	err = r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			transaction.UserID, transaction.Type, transaction.Category, transaction.Amount,
			transaction.Merchant, transaction.Date, transaction.ReceiptURL, transaction.OCRText, items,
		)
		if err := row.Scan(&transaction.ID, &transaction.CreatedAt); err != nil {
			zap.L().Error("can't save transaction", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) CountReceiptScans(ctx context.Context, userID int, from, to time.Time) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM transactions
        WHERE user_id = $1 AND receipt_url <> '' AND date >= $2 AND date < $3
    `
	var count int
	err := r.db.QueryRow(ctx, query, userID, from, to).Scan(&count)
	if err != nil {
		zap.L().Error("can't count receipt scans", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`
        SELECT id, user_id, type, category, amount, merchant, date, receipt_url, ocr_text, items, created_at
        FROM transactions
        WHERE user_id = $1
    `)
	args := []any{userID}

	if filter.Type != "" {
		args = append(args, filter.Type)
		sb.WriteString(" AND type = $" + strconv.Itoa(len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		sb.WriteString(" AND category = $" + strconv.Itoa(len(args)))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		sb.WriteString(" AND date >= $" + strconv.Itoa(len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		sb.WriteString(" AND date < $" + strconv.Itoa(len(args)))
	}
	sb.WriteString(" ORDER BY date DESC")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	}

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		var items []byte
		err := rows.Scan(
			&transaction.ID, &transaction.UserID, &transaction.Type, &transaction.Category,
			&transaction.Amount, &transaction.Merchant, &transaction.Date, &transaction.ReceiptURL,
			&transaction.OCRText, &items, &transaction.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		if err := json.Unmarshal(items, &transaction.Items); err != nil {
			return nil, fmt.Errorf("can't unmarshal transaction items: %w", err)
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}

func (r *Repository) ExistsByReceiptURL(ctx context.Context, receiptURL string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM transactions WHERE receipt_url = $1
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, receiptURL).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check receipt url", zap.Error(err))
		return false, err
	}
	return exists, nil
}
