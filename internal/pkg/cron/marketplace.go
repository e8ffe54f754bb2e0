package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/job"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/payment"
)

// MarketplaceJobs holds the periodic maintenance tasks for listings and billing.
type MarketplaceJobs struct {
	jobRepo   job.JobRepository
	orderRepo payment.OrderRepository
}

func NewMarketplaceJobs(jobRepo job.JobRepository, orderRepo payment.OrderRepository) *MarketplaceJobs {
	return &MarketplaceJobs{
		jobRepo:   jobRepo,
		orderRepo: orderRepo,
	}
}

func (j *MarketplaceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("close_expired_jobs", 1*time.Hour, j.CloseExpiredJobs)
	scheduler.AddJob("expire_stale_orders", 1*time.Hour, j.ExpireStaleOrders)
}

// CloseExpiredJobs closes open jobs whose application deadline has passed.
func (j *MarketplaceJobs) CloseExpiredJobs(ctx context.Context) error {
	count, err := j.jobRepo.CloseExpired(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Info("Cron: Closed expired jobs", "count", count)
	}
	return nil
}

// ExpireStaleOrders expires pending payment orders that were never paid.
func (j *MarketplaceJobs) ExpireStaleOrders(ctx context.Context) error {
	count, err := j.orderRepo.ExpireStale(ctx, 24*time.Hour)
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Info("Cron: Expired stale payment orders", "count", count)
	}
	return nil
}
