package stats

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/kakune/pkg/civiltime"
	"github.com/limbo/kakune/pkg/entity"
)

// NewCheckIn builds the event to persist for a check-in made at instant at.
// An empty photo reference is stored as no photo.
func NewCheckIn(userID, itemID uuid.UUID, at time.Time, photoRef *string) entity.CheckInEvent {
	var ref *string
	if photoRef != nil && *photoRef != "" {
		r := *photoRef
		ref = &r
	}
	return entity.CheckInEvent{
		UserID:     userID,
		ItemID:     itemID,
		OccurredAt: at.UTC(),
		PhotoRef:   ref,
	}
}

// OptimisticTodayCount is the count shown while a write is still in flight.
// Negative in-flight values are treated as none.
func OptimisticTodayCount(persisted, inFlight int) int {
	if inFlight < 0 {
		inFlight = 0
	}
	return persisted + inFlight
}

// TodayCounts counts today's events per item. The result is never nil.
func TodayCounts(zone civiltime.Zone, now time.Time, events []entity.CheckInEvent) *ItemCounts {
	today := zone.Today(now)
	if c := AggregateByDay(zone, events, zone.DayBounds(today))[today]; c != nil {
		return c
	}
	return NewItemCounts()
}

// LatestPhoto returns the most recent photo reference among events, or nil.
func LatestPhoto(events []entity.CheckInEvent) *string {
	var (
		latest *string
		at     time.Time
	)
	for _, e := range events {
		if e.HasPhoto() && (latest == nil || e.OccurredAt.After(at)) {
			latest, at = e.PhotoRef, e.OccurredAt
		}
	}
	return latest
}
