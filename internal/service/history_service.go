package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	"github.com/limbo/kakune/internal/cache"
	errorvalues "github.com/limbo/kakune/internal/error_values"
	"github.com/limbo/kakune/internal/repository"
	"github.com/limbo/kakune/internal/stats"
	"github.com/limbo/kakune/pkg/civiltime"
	"github.com/limbo/kakune/pkg/clock"
	"github.com/limbo/kakune/pkg/entity"
)

type HistoryService struct {
	itemsRepo    repository.ItemsRepositoryI
	checkInsRepo repository.CheckInsRepositoryI
	cache        cache.HistoryCacheI
	clock        clock.Clock
	zone         civiltime.Zone
}

func NewHistoryService(
	itemsRepo repository.ItemsRepositoryI,
	checkInsRepo repository.CheckInsRepositoryI,
	historyCache cache.HistoryCacheI,
	clk clock.Clock,
	zone civiltime.Zone,
) *HistoryService {
	if itemsRepo == nil || checkInsRepo == nil || historyCache == nil || clk == nil {
		log.Fatal("on history service provided nil dependencies")
	}
	return &HistoryService{
		itemsRepo:    itemsRepo,
		checkInsRepo: checkInsRepo,
		cache:        historyCache,
		clock:        clk,
		zone:         zone,
	}
}

// Views depend on "today", so the civil date is part of every cache key.
func viewKey(kind string, today civiltime.Date, parts ...string) string {
	key := kind
	for _, p := range parts {
		key += ":" + p
	}
	return key + ":" + today.String()
}

// fromCache reports a hit and returns the generation the lookup used. Views
// computed after a miss are written back under that generation.
func (hs *HistoryService) fromCache(ctx context.Context, uid uuid.UUID, view string, dst any) (string, bool) {
	gen, err := hs.cache.Get(ctx, uid, view, dst)
	if err == nil {
		return gen, true
	}
	if !errors.Is(err, errorvalues.ErrCacheMiss) {
		slog.WarnContext(ctx, "history cache read failed", slog.String("view", view), slog.String("error", err.Error()))
	}
	return gen, false
}

func (hs *HistoryService) toCache(ctx context.Context, uid uuid.UUID, gen, view string, value any) {
	if gen == "" {
		return
	}
	if err := hs.cache.Set(ctx, uid, gen, view, value); err != nil {
		slog.WarnContext(ctx, "history cache write failed", slog.String("view", view), slog.String("error", err.Error()))
	}
}

// load reads every item of the user, archived included, and the events in
// window.
func (hs *HistoryService) load(ctx context.Context, uid uuid.UUID, window civiltime.Window) ([]entity.CheckItem, []entity.CheckInEvent, error) {
	items, err := hs.itemsRepo.ListByUser(ctx, uid, true)
	if err != nil {
		return nil, nil, errors.New("repository error: " + err.Error())
	}
	events, err := hs.checkInsRepo.ListByRange(ctx, uid, nil, window.Start, window.End)
	if err != nil {
		return nil, nil, errors.New("repository error: " + err.Error())
	}
	return items, events, nil
}

// Calendar never shows months after the current one: such selectors are
// clamped to the current month.
func (hs *HistoryService) Calendar(ctx context.Context, uid uuid.UUID, selector string) (*entity.CalendarMonth, error) {
	now := hs.clock.Now()
	ym := hs.zone.ParseMonth(selector, now)
	if current := hs.zone.CurrentMonth(now); current.Before(ym) {
		ym = current
	}
	view := viewKey("calendar", hs.zone.Today(now), ym.String())

	var month entity.CalendarMonth
	gen, hit := hs.fromCache(ctx, uid, view, &month)
	if hit {
		return &month, nil
	}
	items, events, err := hs.load(ctx, uid, hs.zone.MonthBounds(ym.Year, int(ym.Month)))
	if err != nil {
		return nil, err
	}
	month = stats.BuildMonth(hs.zone, now, ym, events, stats.NewDirectory(items))
	hs.toCache(ctx, uid, gen, view, month)
	return &month, nil
}

// Series builds both periods from one fetch and caches both. Any period other
// than weekly is daily.
func (hs *HistoryService) Series(ctx context.Context, uid uuid.UUID, period string) (*entity.Series, error) {
	if period != stats.PeriodWeekly {
		period = stats.PeriodDaily
	}
	now := hs.clock.Now()
	today := hs.zone.Today(now)

	var series entity.Series
	gen, hit := hs.fromCache(ctx, uid, viewKey("series", today, period), &series)
	if hit {
		return &series, nil
	}
	items, events, err := hs.load(ctx, uid, stats.HistoryWindow(hs.zone, now))
	if err != nil {
		return nil, err
	}
	daily := entity.Series{
		Period: stats.PeriodDaily,
		Items:  items,
		Points: stats.BuildDailySeries(hs.zone, now, events, items),
	}
	weekly := entity.Series{
		Period: stats.PeriodWeekly,
		Items:  items,
		Points: stats.BuildWeeklySeries(hs.zone, now, events, items),
	}
	hs.toCache(ctx, uid, gen, viewKey("series", today, stats.PeriodDaily), daily)
	hs.toCache(ctx, uid, gen, viewKey("series", today, stats.PeriodWeekly), weekly)

	if period == stats.PeriodWeekly {
		return &weekly, nil
	}
	return &daily, nil
}

func (hs *HistoryService) Summary(ctx context.Context, uid uuid.UUID) (*entity.WeekSummary, error) {
	now := hs.clock.Now()
	view := viewKey("summary", hs.zone.Today(now))

	var summary entity.WeekSummary
	gen, hit := hs.fromCache(ctx, uid, view, &summary)
	if hit {
		return &summary, nil
	}
	window := civiltime.Window{
		Start: hs.zone.WeekBounds(now, -1).Start,
		End:   hs.zone.WeekBounds(now, 0).End,
	}
	events, err := hs.checkInsRepo.ListByRange(ctx, uid, nil, window.Start, window.End)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	summary = stats.Summarize(hs.zone, now, events)
	hs.toCache(ctx, uid, gen, view, summary)
	return &summary, nil
}
