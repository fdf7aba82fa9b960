package stats_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/kakune/pkg/civiltime"
	"github.com/limbo/kakune/pkg/entity"
)

var (
	jst    = civiltime.NewZone(civiltime.DefaultOffset)
	jstLoc = time.FixedZone("JST", 9*60*60)

	// Wednesday 2024-06-05 12:00 JST.
	now = time.Date(2024, time.June, 5, 3, 0, 0, 0, time.UTC)

	itemA = uuid.MustParse("0b5e8a52-6c43-4d1a-9a0e-3e4f2a1d0001")
	itemB = uuid.MustParse("0b5e8a52-6c43-4d1a-9a0e-3e4f2a1d0002")
	itemC = uuid.MustParse("0b5e8a52-6c43-4d1a-9a0e-3e4f2a1d0003")
)

func at(month time.Month, day, hour, min int) time.Time {
	return time.Date(2024, month, day, hour, min, 0, 0, jstLoc).UTC()
}

func event(item uuid.UUID, occurred time.Time) entity.CheckInEvent {
	return entity.CheckInEvent{ID: uuid.New(), ItemID: item, OccurredAt: occurred}
}

func date(month time.Month, day int) civiltime.Date {
	return civiltime.Date{Year: 2024, Month: month, Day: day}
}
