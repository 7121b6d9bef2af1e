package quotaservice

import (
	"context"
	"errors"
	"time"

	"github.com/Daemon-Craft/MaplePath/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	CountReceiptScans(ctx context.Context, userID int, from, to time.Time) (int, error)
}

var ErrQuotaExceeded = errors.New("monthly scan limit reached")

const unlimited = -1

// tierLimits maps a subscription tier to its receipt scans per calendar
// month. Adding a tier is one entry here. Tiers missing from the table get
// the FREE limit.
var tierLimits = map[string]int{
	domain.FreeTier:    3,
	domain.PremiumTier: unlimited,
	domain.FamilyTier:  unlimited,
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// CheckAndAuthorize reports whether the user may run one more scan now.
// The usage count is derived from committed transactions with a receipt
// reference inside the current calendar month, so it is always consistent
// with what has actually been persisted. Pure read, no reservation.
func (s *Service) CheckAndAuthorize(ctx context.Context, userID int, tier string, now time.Time) error {
	limit, ok := tierLimits[tier]
	if !ok {
		limit = tierLimits[domain.FreeTier]
	}
	if limit == unlimited {
		return nil
	}

	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)

	used, err := s.repo.CountReceiptScans(ctx, userID, from, to)
	if err != nil {
		zap.L().Error("can't count receipt scans", zap.Error(err))
		return err
	}
	if used >= limit {
		zap.L().Info("scan quota exceeded",
			zap.Int("userID", userID),
			zap.String("tier", tier),
			zap.Int("used", used),
			zap.Int("limit", limit),
		)
		return ErrQuotaExceeded
	}
	return nil
}
