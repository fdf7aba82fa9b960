package stats_test

import (
	"testing"
	"time"

	"github.com/limbo/kakune/internal/stats"
	"github.com/limbo/kakune/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekWindows(t *testing.T) {
	weeks := stats.WeekWindows(jst, now, stats.WeeklyPoints)

	require.Len(t, weeks, stats.WeeklyPoints)
	assert.Equal(t, "3/18~", weeks[0].Label)
	assert.Equal(t, "5/27~", weeks[10].Label)
	assert.Equal(t, stats.CurrentWeekLabel, weeks[11].Label)
	assert.True(t, weeks[11].Current)
	assert.Equal(t, at(time.June, 3, 0, 0), weeks[11].Start)
	for i := 1; i < len(weeks); i++ {
		assert.False(t, weeks[i-1].Current)
		assert.Equal(t, weeks[i-1].End, weeks[i].Start)
		assert.Equal(t, 7*24*time.Hour, weeks[i].End.Sub(weeks[i].Start))
	}
}

func TestHistoryWindow(t *testing.T) {
	window := stats.HistoryWindow(jst, now)

	assert.Equal(t, at(time.March, 18, 0, 0), window.Start)
	assert.Equal(t, at(time.June, 10, 0, 0), window.End)
	assert.True(t, window.Contains(at(time.May, 7, 0, 0)))
}

func TestBuildDailySeries(t *testing.T) {
	items := []entity.CheckItem{{ID: itemA, Name: "Door"}, {ID: itemB, Name: "Stove", Archived: true}}
	events := []entity.CheckInEvent{
		event(itemA, at(time.June, 5, 8, 0)),
		event(itemA, at(time.June, 5, 8, 1)),
		event(itemB, at(time.May, 7, 0, 0)),
		// A day before the oldest point.
		event(itemB, at(time.May, 6, 23, 59)),
		// Tomorrow.
		event(itemA, at(time.June, 6, 0, 0)),
	}

	points := stats.BuildDailySeries(jst, now, events, items)

	require.Len(t, points, stats.DailyPoints)
	assert.Equal(t, "5/7", points[0].Label)
	assert.Equal(t, "6/5", points[29].Label)
	assert.True(t, points[29].Current)
	assert.Equal(t, 1, points[0].PerItem[itemB.String()])
	assert.Equal(t, 0, points[0].PerItem[itemA.String()])
	assert.Equal(t, 2, points[29].PerItem[itemA.String()])
	for _, p := range points {
		assert.Len(t, p.PerItem, 2)
	}
}

func TestBuildWeeklySeries(t *testing.T) {
	items := []entity.CheckItem{{ID: itemA, Name: "Door"}}
	events := []entity.CheckInEvent{
		event(itemA, at(time.June, 3, 0, 0)),
		event(itemA, at(time.June, 2, 23, 59)),
		event(itemA, at(time.March, 18, 0, 0)),
		event(itemA, at(time.March, 17, 23, 59)),
		// Deleted item stays out of the per-item map.
		event(itemC, at(time.June, 4, 0, 0)),
	}

	points := stats.BuildWeeklySeries(jst, now, events, items)

	require.Len(t, points, stats.WeeklyPoints)
	assert.Equal(t, stats.CurrentWeekLabel, points[11].Label)
	assert.True(t, points[11].Current)
	assert.Equal(t, 1, points[11].PerItem[itemA.String()])
	assert.Equal(t, 1, points[10].PerItem[itemA.String()])
	assert.Equal(t, 1, points[0].PerItem[itemA.String()])
	assert.Len(t, points[11].PerItem, 1)
}

func TestSeriesWithoutEvents(t *testing.T) {
	items := []entity.CheckItem{{ID: itemA}, {ID: itemB}, {ID: itemC}}

	daily := stats.BuildDailySeries(jst, now, nil, items)
	weekly := stats.BuildWeeklySeries(jst, now, nil, items)

	require.Len(t, daily, stats.DailyPoints)
	require.Len(t, weekly, stats.WeeklyPoints)
	for _, p := range append(daily, weekly...) {
		require.Len(t, p.PerItem, 3)
		for _, n := range p.PerItem {
			assert.Zero(t, n)
		}
	}
}

func TestArchivedItemKeepsHistory(t *testing.T) {
	archived := entity.CheckItem{ID: itemB, Name: "Old lock", Archived: true}
	events := []entity.CheckInEvent{event(itemB, at(time.June, 1, 10, 0))}

	weekly := stats.BuildWeeklySeries(jst, now, events, []entity.CheckItem{archived})
	assert.Equal(t, 1, weekly[10].PerItem[itemB.String()])

	days := stats.AggregateByDay(jst, events, jst.MonthBounds(2024, 6))
	cells := stats.AttachCounts(jst.CurrentMonth(now), stats.BuildCells(2024, 6), days, stats.NewDirectory([]entity.CheckItem{archived}))
	require.Len(t, cells[5].PerItem, 1)
	assert.Equal(t, "Old lock", cells[5].PerItem[0].Name)
}

func TestSummarize(t *testing.T) {
	events := []entity.CheckInEvent{
		event(itemA, at(time.June, 3, 0, 0)),
		event(itemB, at(time.June, 9, 23, 59)),
		event(itemA, at(time.May, 27, 0, 0)),
		event(itemA, at(time.May, 30, 12, 0)),
		event(itemA, at(time.June, 2, 23, 59)),
		event(itemA, at(time.May, 26, 23, 59)),
	}

	assert.Equal(t, entity.WeekSummary{ThisWeek: 2, LastWeek: 3, Diff: -1}, stats.Summarize(jst, now, events))
	assert.Equal(t, entity.WeekSummary{}, stats.Summarize(jst, now, nil))
}
