package scanservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Daemon-Craft/MaplePath/internal/domain"
	"github.com/Daemon-Craft/MaplePath/internal/receipt"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, transaction *domain.Transaction) error
}

type Storage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type OCRClient interface {
	DetectText(ctx context.Context, imageURL string) (string, error)
}

type QuotaChecker interface {
	CheckAndAuthorize(ctx context.Context, userID int, tier string, now time.Time) error
}

const (
	// MaxFileSize bounds the accepted receipt image payload.
	MaxFileSize = 10 << 20

	// scanCategory is a placeholder until a classifier derives the
	// category from merchant and items.
	scanCategory = "Groceries"
)

var (
	ErrNoFile       = errors.New("no file uploaded")
	ErrFileTooLarge = errors.New("file exceeds the size limit")
)

type Service struct {
	repo    Repo
	storage Storage
	ocr     OCRClient
	quota   QuotaChecker
	parser  *receipt.Parser
}

func New(repo Repo, storage Storage, ocr OCRClient, quota QuotaChecker) *Service {
	return &Service{
		repo:    repo,
		storage: storage,
		ocr:     ocr,
		quota:   quota,
		parser:  receipt.NewParser(),
	}
}

// IngestReceipt runs the pipeline quota check -> validation -> blob upload
// -> OCR -> parse -> persist. Each step failure aborts the remaining steps
// and surfaces once, with no retry. A blob uploaded before a later failure
// stays in storage; the janitor sweeps it up out of band.
func (s *Service) IngestReceipt(ctx context.Context, userID int, tier string, file []byte, mimeType string) (*domain.Transaction, receipt.ParsedReceipt, error) {
	now := time.Now()

	if err := s.quota.CheckAndAuthorize(ctx, userID, tier, now); err != nil {
		return nil, receipt.ParsedReceipt{}, err
	}

	if len(file) == 0 {
		return nil, receipt.ParsedReceipt{}, ErrNoFile
	}
	if len(file) > MaxFileSize {
		return nil, receipt.ParsedReceipt{}, ErrFileTooLarge
	}

	key := fmt.Sprintf("%d/%d.jpg", userID, now.UnixMilli())
	receiptURL, err := s.storage.Put(ctx, key, file, mimeType)
	if err != nil {
		zap.L().Error("can't upload receipt", zap.Int("userID", userID), zap.Error(err))
		return nil, receipt.ParsedReceipt{}, fmt.Errorf("can't upload receipt: %w", err)
	}

	text, err := s.ocr.DetectText(ctx, receiptURL)
	if err != nil {
		zap.L().Error("can't recognize receipt text",
			zap.Int("userID", userID),
			zap.String("receiptURL", receiptURL),
			zap.Error(err),
		)
		return nil, receipt.ParsedReceipt{}, fmt.Errorf("can't recognize receipt text: %w", err)
	}

	parsed := s.parser.Parse(text)

	transaction := &domain.Transaction{
		UserID:     userID,
		Type:       domain.ExpenseType,
		Category:   scanCategory,
		Amount:     parsed.Total,
		Merchant:   parsed.Merchant,
		Date:       now,
		ReceiptURL: receiptURL,
		OCRText:    text,
		Items:      toTransactionItems(parsed.Items),
	}
	if err := s.repo.Save(ctx, transaction); err != nil {
		zap.L().Error("can't save scanned transaction", zap.Int("userID", userID), zap.Error(err))
		return nil, receipt.ParsedReceipt{}, fmt.Errorf("can't save scanned transaction: %w", err)
	}

	zap.L().Info("receipt ingested",
		zap.Int("userID", userID),
		zap.String("merchant", parsed.Merchant),
		zap.Float64("total", parsed.Total),
		zap.Int("items", len(parsed.Items)),
	)
	return transaction, parsed, nil
}

func toTransactionItems(items []receipt.Item) []domain.TransactionItem {
	converted := make([]domain.TransactionItem, 0, len(items))
	for _, item := range items {
		converted = append(converted, domain.TransactionItem{Name: item.Name, Price: item.Price})
	}
	return converted
}
