package stats

import (
	"time"

	"github.com/limbo/kakune/pkg/civiltime"
	"github.com/limbo/kakune/pkg/entity"
)

const (
	DailyPoints  = 30
	WeeklyPoints = 12

	PeriodDaily  = "daily"
	PeriodWeekly = "weekly"

	CurrentWeekLabel = "this week"
	lastWeekLabel    = "last week"
)

// DailyDates returns the n civil dates ending today, oldest first.
func DailyDates(zone civiltime.Zone, now time.Time, n int) []civiltime.Date {
	today := zone.Today(now)
	dates := make([]civiltime.Date, n)
	for i := range dates {
		dates[i] = today.AddDays(i - (n - 1))
	}
	return dates
}

// WeekWindows returns n consecutive Monday-start weeks ending with the
// current one, oldest first. The current week is labelled CurrentWeekLabel,
// the rest by their Monday as "M/D~".
func WeekWindows(zone civiltime.Zone, now time.Time, n int) []WeekWindow {
	weeks := make([]WeekWindow, n)
	for i := range weeks {
		offset := i - (n - 1)
		w := zone.WeekBounds(now, offset)
		label := CurrentWeekLabel
		if offset != 0 {
			label = zone.ToDate(w.Start).ShortLabel() + "~"
		}
		weeks[i] = WeekWindow{Window: w, Label: label, Current: offset == 0}
	}
	return weeks
}

// HistoryWindow is the single range of events needed to build both the
// daily and the weekly series.
func HistoryWindow(zone civiltime.Zone, now time.Time) civiltime.Window {
	start := zone.WeekBounds(now, -(WeeklyPoints - 1)).Start
	dailyStart := zone.Midnight(DailyDates(zone, now, DailyPoints)[0])
	if dailyStart.Before(start) {
		start = dailyStart
	}
	return civiltime.Window{Start: start, End: zone.WeekBounds(now, 0).End}
}

// BuildDailySeries returns DailyPoints points ending today, labelled "M/D".
// Every point carries a count for every item in items, zero included.
func BuildDailySeries(zone civiltime.Zone, now time.Time, events []entity.CheckInEvent, items []entity.CheckItem) []entity.SeriesPoint {
	dates := DailyDates(zone, now, DailyPoints)
	last := dates[len(dates)-1]
	window := civiltime.Window{
		Start: zone.Midnight(dates[0]),
		End:   zone.DayBounds(last).End,
	}
	byDay := AggregateByDay(zone, events, window)

	points := make([]entity.SeriesPoint, len(dates))
	for i, d := range dates {
		points[i] = newPoint(d.ShortLabel(), d == last, byDay[d], items)
	}
	return points
}

// BuildWeeklySeries returns WeeklyPoints points ending with the current
// week.
func BuildWeeklySeries(zone civiltime.Zone, now time.Time, events []entity.CheckInEvent, items []entity.CheckItem) []entity.SeriesPoint {
	weeks := WeekWindows(zone, now, WeeklyPoints)
	counts := AggregateByWeek(events, weeks)

	points := make([]entity.SeriesPoint, len(weeks))
	for i, w := range weeks {
		points[i] = newPoint(w.Label, w.Current, counts[i], items)
	}
	return points
}

func newPoint(label string, current bool, counts *ItemCounts, items []entity.CheckItem) entity.SeriesPoint {
	perItem := make(map[string]int, len(items))
	for _, it := range items {
		perItem[it.ID.String()] = counts.Get(it.ID)
	}
	return entity.SeriesPoint{Label: label, Current: current, PerItem: perItem}
}

// Summarize compares the total number of check-ins of the current week with
// the previous one.
func Summarize(zone civiltime.Zone, now time.Time, events []entity.CheckInEvent) entity.WeekSummary {
	weeks := []WeekWindow{
		{Window: zone.WeekBounds(now, -1), Label: lastWeekLabel},
		{Window: zone.WeekBounds(now, 0), Label: CurrentWeekLabel, Current: true},
	}
	counts := AggregateByWeek(events, weeks)
	thisWeek, lastWeek := counts[1].Total(), counts[0].Total()
	return entity.WeekSummary{
		ThisWeek: thisWeek,
		LastWeek: lastWeek,
		Diff:     thisWeek - lastWeek,
	}
}
