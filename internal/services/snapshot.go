package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/gadotour/gado-stats/internal/sheets"
	"github.com/gadotour/gado-stats/internal/stats"
)

// SnapshotService assembles the full workbook snapshot the aggregation
// functions consume. Reads go through the cache when one is configured; a
// scheduled warmer keeps the cached snapshot fresh so dashboard requests
// rarely pay the Sheets round trip.
type SnapshotService struct {
	workbook *sheets.Workbook
	cache    *CacheService
	logger   *logrus.Logger
	cron     *cron.Cron

	cacheTTL        time.Duration
	refreshInterval time.Duration

	mu        sync.Mutex
	isRunning bool
}

func NewSnapshotService(
	workbook *sheets.Workbook,
	cache *CacheService,
	logger *logrus.Logger,
	cacheTTL time.Duration,
	refreshInterval time.Duration,
) *SnapshotService {
	return &SnapshotService{
		workbook:        workbook,
		cache:           cache,
		logger:          logger,
		cron:            cron.New(),
		cacheTTL:        cacheTTL,
		refreshInterval: refreshInterval,
	}
}

// Snapshot returns the current workbook snapshot, from cache when possible.
func (s *SnapshotService) Snapshot(ctx context.Context) (*stats.Snapshot, error) {
	if s.cache != nil {
		var cached stats.Snapshot
		if err := s.cache.Get(ctx, SnapshotCacheKey, &cached); err == nil {
			return &cached, nil
		} else if err != ErrCacheMiss {
			s.logger.WithError(err).Warn("Snapshot cache read failed, falling back to store")
		}
	}
	return s.refresh(ctx)
}

// refresh reads every sheet and repopulates the cache.
func (s *SnapshotService) refresh(ctx context.Context) (*stats.Snapshot, error) {
	snap := &stats.Snapshot{}
	var err error

	if snap.Players, err = s.workbook.Players(ctx); err != nil {
		return nil, err
	}
	if snap.Courses, err = s.workbook.Courses(ctx); err != nil {
		return nil, err
	}
	if snap.Tees, err = s.workbook.CourseTees(ctx); err != nil {
		return nil, err
	}
	if snap.Holes, err = s.workbook.Holes(ctx); err != nil {
		return nil, err
	}
	if snap.Events, err = s.workbook.Events(ctx); err != nil {
		return nil, err
	}
	if snap.Rounds, err = s.workbook.Rounds(ctx); err != nil {
		return nil, err
	}
	if snap.Summaries, err = s.workbook.RoundSummaries(ctx); err != nil {
		return nil, err
	}
	if snap.HoleEntries, err = s.workbook.HoleEntries(ctx); err != nil {
		return nil, err
	}
	if snap.Motivations, err = s.workbook.Motivations(ctx); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, SnapshotCacheKey, snap, s.cacheTTL); err != nil {
			s.logger.WithError(err).Warn("Snapshot cache write failed")
		}
	}
	return snap, nil
}

// Invalidate drops the cached snapshot. Called after a capture write so the
// next read sees the new rows.
func (s *SnapshotService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, SnapshotCacheKey); err != nil {
		s.logger.WithError(err).Warn("Snapshot cache invalidation failed")
	}
}

// Start schedules the background warmer. No-op scheduling when the cache is
// absent, since there is nothing to warm.
func (s *SnapshotService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("snapshot warmer is already running")
	}
	if s.cache == nil {
		return nil
	}

	schedule := fmt.Sprintf("@every %s", s.refreshInterval.String())
	_, err := s.cron.AddFunc(schedule, s.warm)
	if err != nil {
		return fmt.Errorf("failed to schedule snapshot warmer: %w", err)
	}

	s.cron.Start()
	s.isRunning = true

	go s.warm()

	s.logger.Info("Snapshot warmer started")
	return nil
}

// Stop halts the warmer.
func (s *SnapshotService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	s.cron.Stop()
	s.isRunning = false
	s.logger.Info("Snapshot warmer stopped")
}

func (s *SnapshotService) warm() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	start := time.Now()
	if _, err := s.refresh(ctx); err != nil {
		s.logger.WithError(err).Error("Snapshot warm failed")
		return
	}
	s.logger.WithField("duration", time.Since(start).String()).Debug("Snapshot warmed")
}
