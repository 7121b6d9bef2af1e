package repo

import (
	"github.com/Daemon-Craft/MaplePath/internal/janitor"
	"github.com/Daemon-Craft/MaplePath/internal/pg"
	transactionrepo "github.com/Daemon-Craft/MaplePath/internal/repo/transaction-repo"
	"github.com/Daemon-Craft/MaplePath/internal/service/quotaservice"
	"github.com/Daemon-Craft/MaplePath/internal/service/transactionservice"
)

type TransactionRepo interface {
	transactionservice.Repo
	quotaservice.Repo
	janitor.Repo
}

type Repositories struct {
	TransactionRepo TransactionRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		TransactionRepo: transactionrepo.New(conn, txManager),
	}
}
