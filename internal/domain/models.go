package domain

import "time"

const (
	IncomeType  string = "INCOME"
	ExpenseType string = "EXPENSE"
)

const (
	FreeTier    string = "FREE"
	PremiumTier string = "PREMIUM"
	FamilyTier  string = "FAMILY"
)

type Transaction struct {
	ID         int               `db:"id" json:"id"`
	UserID     int               `db:"user_id" json:"user_id"`
	Type       string            `db:"type" json:"type"`
	Category   string            `db:"category" json:"category"`
	Amount     float64           `db:"amount" json:"amount"`
	Merchant   string            `db:"merchant" json:"merchant"`
	Date       time.Time         `db:"date" json:"date"`
	ReceiptURL string            `db:"receipt_url" json:"receipt_url,omitempty"`
	OCRText    string            `db:"ocr_text" json:"ocr_text,omitempty"`
	Items      []TransactionItem `db:"items" json:"items"`
	CreatedAt  time.Time         `db:"created_at" json:"created_at"`
}

type TransactionItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
