// Package stats turns raw check-in events into per-day and per-week counts,
// the month calendar grid and fixed-length chart series.
//
// Everything here is pure: callers pass a snapshot of events and the
// current instant, and get derived structures back. Events are never
// mutated, and presentation ordering is applied only by the builders, never
// by the aggregation functions.
package stats

import (
	"sort"

	"github.com/google/uuid"
	"github.com/limbo/kakune/pkg/civiltime"
	"github.com/limbo/kakune/pkg/entity"
)

// ItemCounts counts events per item id and remembers the order in which ids
// were first seen, so downstream stable sorts are deterministic. A nil
// *ItemCounts reads as empty; Add on nil is a no-op.
type ItemCounts struct {
	counts map[uuid.UUID]int
	order  []uuid.UUID
}

func NewItemCounts() *ItemCounts {
	return &ItemCounts{counts: make(map[uuid.UUID]int)}
}

func (c *ItemCounts) Add(id uuid.UUID) {
	if c == nil {
		return
	}
	if c.counts == nil {
		c.counts = make(map[uuid.UUID]int)
	}
	if _, ok := c.counts[id]; !ok {
		c.order = append(c.order, id)
	}
	c.counts[id]++
}

func (c *ItemCounts) Get(id uuid.UUID) int {
	if c == nil {
		return 0
	}
	return c.counts[id]
}

func (c *ItemCounts) Total() int {
	if c == nil {
		return 0
	}
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// IDs returns the counted ids in first-occurrence order.
func (c *ItemCounts) IDs() []uuid.UUID {
	if c == nil {
		return nil
	}
	ids := make([]uuid.UUID, len(c.order))
	copy(ids, c.order)
	return ids
}

// DayCounts maps a civil date to the per-item counts of that day.
type DayCounts map[civiltime.Date]*ItemCounts

// Total sums every bucket.
func (dc DayCounts) Total() int {
	total := 0
	for _, c := range dc {
		total += c.Total()
	}
	return total
}

// WeekWindow is one caller-supplied bucket for AggregateByWeek.
type WeekWindow struct {
	civiltime.Window
	Label   string
	Current bool
}

// AggregateByDay keeps events inside window, buckets them by civil date and
// then by item id. Ids without a matching item are kept as they are; name
// resolution happens downstream.
func AggregateByDay(zone civiltime.Zone, events []entity.CheckInEvent, window civiltime.Window) DayCounts {
	result := make(DayCounts)
	for _, e := range events {
		if !window.Contains(e.OccurredAt) {
			continue
		}
		day := zone.ToDate(e.OccurredAt)
		bucket, ok := result[day]
		if !ok {
			bucket = NewItemCounts()
			result[day] = bucket
		}
		bucket.Add(e.ItemID)
	}
	return result
}

// AggregateByWeek buckets events into weeks, which must be ordered by start
// and must not overlap. The result is aligned with weeks; events outside
// every window are dropped.
func AggregateByWeek(events []entity.CheckInEvent, weeks []WeekWindow) []*ItemCounts {
	result := make([]*ItemCounts, len(weeks))
	for i := range result {
		result[i] = NewItemCounts()
	}
	for _, e := range events {
		i := sort.Search(len(weeks), func(i int) bool {
			return weeks[i].End.After(e.OccurredAt)
		})
		if i < len(weeks) && weeks[i].Contains(e.OccurredAt) {
			result[i].Add(e.ItemID)
		}
	}
	return result
}
