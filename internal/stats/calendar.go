package stats

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/kakune/pkg/civiltime"
	"github.com/limbo/kakune/pkg/entity"
)

// DeletedItemName is shown for events whose item no longer exists.
const DeletedItemName = "(deleted)"

// Directory resolves item ids to display attributes. Archived items stay in
// the directory; only hard-deleted ones fall back to DeletedItemName.
type Directory map[uuid.UUID]entity.CheckItem

func NewDirectory(items []entity.CheckItem) Directory {
	dir := make(Directory, len(items))
	for _, it := range items {
		dir[it.ID] = it
	}
	return dir
}

func (d Directory) Resolve(id uuid.UUID) (string, *string) {
	if it, ok := d[id]; ok {
		return it.Name, it.Icon
	}
	return DeletedItemName, nil
}

// BuildCells lays out a Monday-start month grid. Padding slots are 0, real
// days are 1..N, and the length is always a multiple of 7.
func BuildCells(year, month int) []int {
	ym := civiltime.NormalizeMonth(year, month)
	lead := civiltime.MondayIndex(ym.FirstDay().Weekday())
	days := ym.DaysIn()

	cells := make([]int, lead, (lead+days+6)/7*7)
	for d := 1; d <= days; d++ {
		cells = append(cells, d)
	}
	for len(cells)%7 != 0 {
		cells = append(cells, 0)
	}
	return cells
}

// AttachCounts decorates grid slots with the day's totals. Per-item tallies
// are sorted by count descending; ties keep first-occurrence order.
func AttachCounts(ym civiltime.YearMonth, cells []int, days DayCounts, dir Directory) []entity.CalendarCell {
	result := make([]entity.CalendarCell, len(cells))
	for i, day := range cells {
		if day == 0 {
			result[i] = entity.CalendarCell{PerItem: []entity.ItemTally{}}
			continue
		}
		date := civiltime.Date{Year: ym.Year, Month: ym.Month, Day: day}
		counts := days[date]

		ids := counts.IDs()
		perItem := make([]entity.ItemTally, 0, len(ids))
		for _, id := range ids {
			name, icon := dir.Resolve(id)
			perItem = append(perItem, entity.ItemTally{
				ItemID: id,
				Name:   name,
				Icon:   icon,
				Count:  counts.Get(id),
			})
		}
		sort.SliceStable(perItem, func(a, b int) bool {
			return perItem[a].Count > perItem[b].Count
		})

		result[i] = entity.CalendarCell{
			Date:       &date,
			Day:        day,
			TotalCount: counts.Total(),
			PerItem:    perItem,
		}
	}
	return result
}

// BuildMonth assembles the calendar view for ym from events of that month.
func BuildMonth(zone civiltime.Zone, now time.Time, ym civiltime.YearMonth, events []entity.CheckInEvent, dir Directory) entity.CalendarMonth {
	window := zone.MonthBounds(ym.Year, int(ym.Month))
	byDay := AggregateByDay(zone, events, window)
	return entity.CalendarMonth{
		Month:     ym,
		Today:     zone.Today(now),
		CanGoNext: zone.CanGoNext(ym, now),
		Cells:     AttachCounts(ym, BuildCells(ym.Year, int(ym.Month)), byDay, dir),
	}
}
