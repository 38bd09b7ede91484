package scheduler

import (
	"math"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"gitops-dashboard/internal/model"
	"gitops-dashboard/internal/pkg/config"
	"gitops-dashboard/internal/pkg/logger"
	"gitops-dashboard/internal/service"
	"gitops-dashboard/internal/store"
	"gitops-dashboard/internal/websocket"
)

// Scheduler periodically derives the cluster health gauge from the
// health of the registered applications.
type Scheduler struct {
	cron        *cron.Cron
	store       *store.Store
	broadcaster service.Broadcaster
	cfg         *config.ClusterConfig
}

func New(s *store.Store, b service.Broadcaster, cfg *config.ClusterConfig) *Scheduler {
	return &Scheduler{
		cron:        cron.New(cron.WithSeconds()),
		store:       s,
		broadcaster: b,
		cfg:         cfg,
	}
}

// Start registers the refresh job and launches the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.HealthCron, s.refreshClusterHealth); err != nil {
		return err
	}

	s.cron.Start()
	logger.Info("scheduler started", zap.String("healthCron", s.cfg.HealthCron))
	return nil
}

// Stop halts the cron loop and waits for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("scheduler stopped")
}

// refreshClusterHealth recomputes the gauge from the fraction of
// healthy applications. With no applications registered the previous
// gauge is kept, so an empty store never reports an outage.
func (s *Scheduler) refreshClusterHealth() {
	apps := s.store.ListApplications()
	if len(apps) == 0 {
		return
	}

	healthyCount := lo.CountBy(apps, func(app *model.Application) bool {
		return strings.EqualFold(app.Health, "healthy")
	})
	percentage := round1(float64(healthyCount) / float64(len(apps)) * 100)

	previous := s.store.ClusterHealth()
	health := model.ClusterHealth{
		Healthy:    percentage >= s.cfg.HealthyThreshold,
		Percentage: percentage,
		Trend:      round1(percentage - previous.Percentage),
	}
	s.store.SetClusterHealth(health)

	s.broadcaster.Publish(websocket.EventClusterHealthUpdated, health)

	logger.Debug("cluster health refreshed",
		zap.Float64("percentage", percentage),
		zap.Int("healthy", healthyCount),
		zap.Int("total", len(apps)))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
