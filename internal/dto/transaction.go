package dto

import "time"

type CreateTransactionRequestDTO struct {
	Type     string    `json:"type" validate:"required,oneof=INCOME EXPENSE" example:"EXPENSE"`
	Category string    `json:"category" validate:"required,min=1,max=50" example:"Groceries"`
	Amount   float64   `json:"amount" validate:"required,gt=0" example:"42.37"`
	Merchant string    `json:"merchant" validate:"max=100" example:"Walmart"`
	Date     time.Time `json:"date" example:"2025-11-09T16:09:57-05:00"`
}

type GetTransactionsResponseDTO struct {
	ID         int       `json:"id" example:"17"`
	Type       string    `json:"type" example:"EXPENSE"`
	Category   string    `json:"category" example:"Groceries"`
	Amount     float64   `json:"amount" example:"42.37"`
	Merchant   string    `json:"merchant" example:"Walmart"`
	Date       time.Time `json:"date" example:"2025-11-09T16:09:57-05:00"`
	ReceiptURL string    `json:"receipt_url,omitempty" example:"https://receipts.s3.ca-central-1.amazonaws.com/1/1731187797000.jpg"`
}
