package janitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Daemon-Craft/MaplePath/internal/config"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Storage interface {
	ListOlderThan(ctx context.Context, cutoff time.Time) ([]string, error)
	Delete(ctx context.Context, key string) error
	URLFor(key string) string
}

type Repo interface {
	ExistsByReceiptURL(ctx context.Context, receiptURL string) (bool, error)
}

var sweepingKeys sync.Map

// Service sweeps receipt blobs whose upload outlived the ingestion that
// created them: a blob older than the retention window with no transaction
// referencing its URL is an orphan and gets deleted. Runs outside the
// request path; a failed sweep is logged and retried on the next tick.
type Service struct {
	storage       Storage
	repo          Repo
	retention     time.Duration
	sweepInterval time.Duration
	workerPool    WorkerPoolI
}

func New(cfg *config.Config, storage Storage, repo Repo) *Service {
	return &Service{
		storage:       storage,
		repo:          repo,
		retention:     cfg.JanitorRetention,
		sweepInterval: cfg.JanitorInterval,
		workerPool:    NewWorkerPool(10),
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Blob janitor started",
		zap.Duration("interval", s.sweepInterval),
		zap.Duration("retention", s.retention),
	)
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping janitor")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.retention)
	keys, err := s.storage.ListOlderThan(ctx, cutoff)
	if err != nil {
		zap.L().Error("Failed to list receipt blobs", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, key := range keys {
		key := key

		if _, loaded := sweepingKeys.LoadOrStore(key, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer sweepingKeys.Delete(key)
				return s.handleKey(ctx, key)
			})
			if err != nil {
				sweepingKeys.Delete(key)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping receipt blobs", zap.Error(err))
	}
}

func (s *Service) handleKey(ctx context.Context, key string) error {
	receiptURL := s.storage.URLFor(key)

	exists, err := s.repo.ExistsByReceiptURL(ctx, receiptURL)
	if err != nil {
		return fmt.Errorf("can't check blob %s: %w", key, err)
	}
	if exists {
		return nil
	}

	if err := s.storage.Delete(ctx, key); err != nil {
		return fmt.Errorf("can't delete orphaned blob %s: %w", key, err)
	}
	zap.L().Info("Orphaned receipt blob deleted", zap.String("key", key))
	return nil
}
