package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/limbo/kakune/internal/cache"
	errorvalues "github.com/limbo/kakune/internal/error_values"
	"github.com/limbo/kakune/internal/repository"
	"github.com/limbo/kakune/internal/stats"
	"github.com/limbo/kakune/pkg/civiltime"
	"github.com/limbo/kakune/pkg/clock"
	"github.com/limbo/kakune/pkg/entity"
)

type CheckInsService struct {
	itemsRepo    repository.ItemsRepositoryI
	checkInsRepo repository.CheckInsRepositoryI
	cache        cache.HistoryCacheI
	clock        clock.Clock
	zone         civiltime.Zone
}

func NewCheckInsService(
	itemsRepo repository.ItemsRepositoryI,
	checkInsRepo repository.CheckInsRepositoryI,
	historyCache cache.HistoryCacheI,
	clk clock.Clock,
	zone civiltime.Zone,
) *CheckInsService {
	if itemsRepo == nil || checkInsRepo == nil || historyCache == nil || clk == nil {
		log.Fatal("on check-ins service provided nil dependencies")
	}
	return &CheckInsService{
		itemsRepo:    itemsRepo,
		checkInsRepo: checkInsRepo,
		cache:        historyCache,
		clock:        clk,
		zone:         zone,
	}
}

// Record appends a check-in. Repeated check-ins of the same item are the
// normal case and are never merged.
func (cs *CheckInsService) Record(ctx context.Context, uid, itemID uuid.UUID, photoRef *string) (*entity.RecordedCheckIn, error) {
	item, err := ownedItem(ctx, cs.itemsRepo, uid, itemID)
	if err != nil {
		return nil, err
	}
	if item.Archived {
		return nil, errorvalues.ErrItemArchived
	}
	now := cs.clock.Now()
	event := stats.NewCheckIn(uid, itemID, now, photoRef)
	event.ID, err = cs.checkInsRepo.Create(ctx, &event)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	invalidateHistory(ctx, cs.cache, uid)

	today := cs.zone.DayBounds(cs.zone.Today(now))
	count, err := cs.checkInsRepo.CountByRange(ctx, uid, &itemID, today.Start, today.End)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &entity.RecordedCheckIn{Event: event, TodayCount: count}, nil
}

func (cs *CheckInsService) Home(ctx context.Context, uid uuid.UUID, pending map[uuid.UUID]int) ([]entity.HomeItem, error) {
	items, err := cs.itemsRepo.ListByUser(ctx, uid, false)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	now := cs.clock.Now()
	today := cs.zone.DayBounds(cs.zone.Today(now))
	events, err := cs.checkInsRepo.ListByRange(ctx, uid, nil, today.Start, today.End)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	counts := stats.TodayCounts(cs.zone, now, events)

	home := make([]entity.HomeItem, len(items))
	for i, it := range items {
		home[i] = entity.HomeItem{
			CheckItem:  it,
			TodayCount: stats.OptimisticTodayCount(counts.Get(it.ID), pending[it.ID]),
		}
	}
	return home, nil
}

func (cs *CheckInsService) TodayLog(ctx context.Context, uid, itemID uuid.UUID) (*entity.TodayLog, error) {
	item, err := ownedItem(ctx, cs.itemsRepo, uid, itemID)
	if err != nil {
		return nil, err
	}
	today := cs.zone.DayBounds(cs.zone.Today(cs.clock.Now()))
	events, err := cs.checkInsRepo.ListByRange(ctx, uid, &itemID, today.Start, today.End)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &entity.TodayLog{
		Item:           *item,
		Events:         events,
		LatestPhotoRef: stats.LatestPhoto(events),
	}, nil
}
