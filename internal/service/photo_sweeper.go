package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/limbo/kakune/internal/repository"
	"github.com/limbo/kakune/pkg/clock"
)

const sweepTimeout = 30 * time.Second

// PhotoSweeper periodically drops photo references older than the
// retention period. The check-ins themselves are kept.
type PhotoSweeper struct {
	checkInsRepo repository.CheckInsRepositoryI
	clock        clock.Clock
	retention    time.Duration
	logger       *slog.Logger
	cron         *cron.Cron
}

func NewPhotoSweeper(checkInsRepo repository.CheckInsRepositoryI, clk clock.Clock, retention time.Duration, logger *slog.Logger) *PhotoSweeper {
	if checkInsRepo == nil || clk == nil {
		log.Fatal("on photo sweeper provided nil dependencies")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PhotoSweeper{
		checkInsRepo: checkInsRepo,
		clock:        clk,
		retention:    retention,
		logger:       logger,
	}
}

// Sweep clears photo references of check-ins older than now - retention
// and returns how many were cleared.
func (ps *PhotoSweeper) Sweep(ctx context.Context) (int64, error) {
	cutoff := ps.clock.Now().Add(-ps.retention)
	n, err := ps.checkInsRepo.ClearPhotosBefore(ctx, cutoff)
	if err != nil {
		return 0, errors.New("repository error: " + err.Error())
	}
	return n, nil
}

func (ps *PhotoSweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()
	n, err := ps.Sweep(ctx)
	if err != nil {
		ps.logger.Error("photo sweep failed", slog.String("error", err.Error()))
		return
	}
	ps.logger.Info("photo sweep finished", slog.Int64("cleared", n))
}

// Start schedules sweeps with a standard 5-field cron expression evaluated
// in UTC. Overlapping runs are skipped.
func (ps *PhotoSweeper) Start(schedule string) error {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	if _, err := c.AddFunc(schedule, ps.run); err != nil {
		return errors.New("scheduling photo sweep error: " + err.Error())
	}
	ps.cron = c
	c.Start()
	ps.logger.Info("photo sweeper started", slog.String("schedule", schedule), slog.Duration("retention", ps.retention))
	return nil
}

// Stop halts scheduling and waits for a running sweep to finish.
func (ps *PhotoSweeper) Stop() {
	if ps.cron == nil {
		return
	}
	<-ps.cron.Stop().Done()
}
