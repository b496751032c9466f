// Package scheduler runs the periodic maintenance jobs: the monthly
// sales rollover and the stock-status gauge refresh.
package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"inventory-analytics-service/internal/model"
	"inventory-analytics-service/internal/stock"
	"inventory-analytics-service/pkg/config"
	"inventory-analytics-service/pkg/logger"
	"inventory-analytics-service/prometheus"
)

// Scheduler owns the cron runner and its registered jobs
type Scheduler struct {
	cron *cron.Cron
	db   *gorm.DB
	log  *zap.Logger
}

// New builds a scheduler with the rollover and gauge-refresh jobs
// registered per configuration
func New(db *gorm.DB, cfg *config.Config) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(),
		db:   db,
		log:  logger.GetLogger(),
	}

	if _, err := s.cron.AddFunc(cfg.Scheduler.RolloverSpec, func() {
		if err := s.RunRollover(time.Now()); err != nil {
			s.log.Error("Monthly sales rollover failed", zap.Error(err))
		}
	}); err != nil {
		return nil, fmt.Errorf("registering rollover job: %w", err)
	}

	refreshSpec := fmt.Sprintf("@every %s", cfg.Scheduler.GaugeRefreshInterval)
	if _, err := s.cron.AddFunc(refreshSpec, func() {
		if err := s.RefreshStockGauges(); err != nil {
			s.log.Error("Stock status gauge refresh failed", zap.Error(err))
		}
	}); err != nil {
		return nil, fmt.Errorf("registering gauge refresh job: %w", err)
	}

	return s, nil
}

// Start launches the cron runner in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("Scheduler started")
}

// Stop halts the cron runner and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("Scheduler stopped")
}

// RunRollover closes the sales month that just ended. The current
// month counter moves to the prior month slot, folds into the quarter
// and year accumulators, and resets to zero. Quarter and year
// accumulators restart instead of folding when now begins a new
// quarter or year.
func (s *Scheduler) RunRollover(now time.Time) error {
	defer prometheus.TrackDBOperation("sales_rollover")(time.Now())

	result := s.db.Model(&model.Product{}).
		Where("is_active = ?", true).
		Updates(map[string]interface{}{
			"sales_quarter":       quarterRollover(now.Month()),
			"sales_year":          yearRollover(now.Month()),
			"sales_prior_month":   gorm.Expr("sales_current_month"),
			"sales_current_month": 0,
		})
	if result.Error != nil {
		return result.Error
	}

	s.log.Info("Monthly sales rollover completed",
		zap.Int64("products", result.RowsAffected),
		zap.String("month", now.Format("2006-01")))
	return nil
}

// RefreshStockGauges recomputes the per-band product counts exposed
// on /metrics
func (s *Scheduler) RefreshStockGauges() error {
	defer prometheus.TrackDBOperation("stock_gauge_refresh")(time.Now())

	var products []model.Product
	err := s.db.Model(&model.Product{}).
		Select("stock_current", "stock_minimum", "reorder_point").
		Where("is_active = ?", true).
		Find(&products).Error
	if err != nil {
		return err
	}

	counts := map[string]int{
		stock.StatusOut:      0,
		stock.StatusCritical: 0,
		stock.StatusLow:      0,
		stock.StatusNormal:   0,
	}
	for _, p := range products {
		counts[stock.Classify(p.StockCurrent, p.StockMinimum, p.ReorderPoint)]++
	}
	for status, count := range counts {
		prometheus.UpdateStockStatus(status, float64(count))
	}
	return nil
}

// quarterRollover folds the closing month into the quarter
// accumulator, or restarts it when m opens a new quarter
func quarterRollover(m time.Month) clause.Expr {
	if startsQuarter(m) {
		return gorm.Expr("0")
	}
	return gorm.Expr("sales_quarter + sales_current_month")
}

// yearRollover folds the closing month into the year accumulator, or
// restarts it in January
func yearRollover(m time.Month) clause.Expr {
	if m == time.January {
		return gorm.Expr("0")
	}
	return gorm.Expr("sales_year + sales_current_month")
}

func startsQuarter(m time.Month) bool {
	switch m {
	case time.January, time.April, time.July, time.October:
		return true
	}
	return false
}
