package dto

import (
	"github.com/Daemon-Craft/MaplePath/internal/domain"
	"github.com/Daemon-Craft/MaplePath/internal/receipt"
)

type ScanReceiptResponseDTO struct {
	Transaction domain.Transaction    `json:"transaction"`
	Parsed      receipt.ParsedReceipt `json:"parsed"`
}
