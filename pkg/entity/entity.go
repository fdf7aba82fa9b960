package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/kakune/pkg/civiltime"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

// CheckItem is something the user repeatedly confirms (front door, stove).
// Archived items are hidden from the home screen but keep resolving in
// history.
type CheckItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Name      string    `json:"name"`
	Icon      *string   `json:"icon"`
	SortOrder int       `json:"sort_order"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CheckInEvent is one "I checked it" record. Events are append-only and
// never reference the item row by foreign key, so they survive item
// deletion.
type CheckInEvent struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"uid"`
	ItemID     uuid.UUID `json:"item_id"`
	OccurredAt time.Time `json:"occurred_at"`
	PhotoRef   *string   `json:"photo_ref,omitempty"`
}

func (e CheckInEvent) HasPhoto() bool {
	return e.PhotoRef != nil && *e.PhotoRef != ""
}

// MarshalJSON adds the derived "has_photo" flag.
func (e CheckInEvent) MarshalJSON() ([]byte, error) {
	type plain CheckInEvent
	return json.Marshal(struct {
		plain
		HasPhoto bool `json:"has_photo"`
	}{plain: plain(e), HasPhoto: e.HasPhoto()})
}

type ItemTally struct {
	ItemID uuid.UUID `json:"item_id"`
	Name   string    `json:"name"`
	Icon   *string   `json:"icon"`
	Count  int       `json:"count"`
}

// CalendarCell is one slot of the month grid. Padding slots have Day == 0
// and a nil Date.
type CalendarCell struct {
	Date       *civiltime.Date `json:"date"`
	Day        int             `json:"day"`
	TotalCount int             `json:"total_count"`
	PerItem    []ItemTally     `json:"per_item"`
}

func (c CalendarCell) IsPadding() bool {
	return c.Day == 0
}

// SeriesPoint is one x-axis position of a chart. PerItem is keyed by item
// id string and always holds every known item.
type SeriesPoint struct {
	Label   string         `json:"label"`
	Current bool           `json:"current"`
	PerItem map[string]int `json:"per_item"`
}

type WeekSummary struct {
	ThisWeek int `json:"this_week"`
	LastWeek int `json:"last_week"`
	Diff     int `json:"diff"`
}

type CalendarMonth struct {
	Month     civiltime.YearMonth `json:"month"`
	Today     civiltime.Date      `json:"today"`
	CanGoNext bool                `json:"can_go_next"`
	Cells     []CalendarCell      `json:"cells"`
}

type Series struct {
	Period string        `json:"period"`
	Items  []CheckItem   `json:"items"`
	Points []SeriesPoint `json:"points"`
}

// HomeItem is an active item with its same-day count as displayed on the
// home screen.
type HomeItem struct {
	CheckItem
	TodayCount int `json:"today_count"`
}

type TodayLog struct {
	Item           CheckItem      `json:"item"`
	Events         []CheckInEvent `json:"events"`
	LatestPhotoRef *string        `json:"latest_photo_ref"`
}

type RecordedCheckIn struct {
	Event      CheckInEvent `json:"event"`
	TodayCount int          `json:"today_count"`
}
