package service

import (
	scanhandlers "github.com/Daemon-Craft/MaplePath/internal/handlers/scan"
	transactionhandlers "github.com/Daemon-Craft/MaplePath/internal/handlers/transactions"

	"github.com/Daemon-Craft/MaplePath/internal/repo"
	quotaservice "github.com/Daemon-Craft/MaplePath/internal/service/quotaservice"
	scanservice "github.com/Daemon-Craft/MaplePath/internal/service/scanservice"
	transactionservice "github.com/Daemon-Craft/MaplePath/internal/service/transactionservice"
)

type Services struct {
	ScanService        scanhandlers.Service
	TransactionService transactionhandlers.Service
}

func New(repo *repo.Repositories, storage scanservice.Storage, ocrClient scanservice.OCRClient) *Services {
	quotaService := quotaservice.New(repo.TransactionRepo)
	scanService := scanservice.New(repo.TransactionRepo, storage, ocrClient, quotaService)
	transactionService := transactionservice.New(repo.TransactionRepo)

	return &Services{
		ScanService:        scanService,
		TransactionService: transactionService,
	}
}
