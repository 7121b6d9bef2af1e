package transactionservice

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/Daemon-Craft/MaplePath/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, transaction *domain.Transaction) error
	FindByUserID(ctx context.Context, userID int, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

const defaultListLimit = 50

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetTransactions(ctx context.Context, userID int, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	transactions, err := s.repo.FindByUserID(ctx, userID, filter)
	if err != nil {
		zap.L().Error("failed to get transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) CreateTransaction(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	if err := s.repo.Save(ctx, transaction); err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

// GetInsights aggregates one calendar month of transactions into spending
// totals, a per-category expense breakdown and the top five merchants.
func (s *Service) GetInsights(ctx context.Context, userID int, month time.Time) (*domain.Insights, error) {
	from := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	to := from.AddDate(0, 1, 0)

	transactions, err := s.repo.FindByUserID(ctx, userID, domain.TransactionFilter{From: from, To: to})
	if err != nil {
		zap.L().Error("failed to get transactions for insights", zap.Error(err))
		return nil, err
	}

	insights := &domain.Insights{
		Month:      from.Format("2006-01"),
		ByCategory: map[string]float64{},
	}
	merchantTotals := map[string]float64{}

	for _, transaction := range transactions {
		switch transaction.Type {
		case domain.IncomeType:
			insights.TotalIncome += transaction.Amount
		case domain.ExpenseType:
			insights.TotalExpenses += transaction.Amount
			insights.ByCategory[transaction.Category] += transaction.Amount
			merchantTotals[transaction.Merchant] += transaction.Amount
		}
	}
	insights.TransactionCount = len(transactions)
	insights.Savings = insights.TotalIncome - insights.TotalExpenses
	if insights.TotalIncome > 0 {
		rate := insights.Savings / insights.TotalIncome * 100
		insights.SavingsRate = math.Round(rate*10) / 10
	}
	insights.TopMerchants = topMerchants(merchantTotals, 5)

	return insights, nil
}

func topMerchants(totals map[string]float64, limit int) []domain.MerchantSpend {
	merchants := make([]domain.MerchantSpend, 0, len(totals))
	for merchant, amount := range totals {
		merchants = append(merchants, domain.MerchantSpend{Merchant: merchant, Amount: amount})
	}
	sort.Slice(merchants, func(i, j int) bool {
		if merchants[i].Amount != merchants[j].Amount {
			return merchants[i].Amount > merchants[j].Amount
		}
		return merchants[i].Merchant < merchants[j].Merchant
	})
	if len(merchants) > limit {
		merchants = merchants[:limit]
	}
	return merchants
}
