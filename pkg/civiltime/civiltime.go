// Package civiltime converts between UTC instants and wall-clock dates in a
// single fixed civil offset.
//
// All boundaries produced here are half-open windows [Start, End) expressed
// in UTC, so an instant always belongs to exactly one civil day, week and
// month. Offsets never change: there is no DST handling.
package civiltime

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DefaultOffset is the civil offset used when none is configured (UTC+9).
const DefaultOffset = 9 * time.Hour

const daysPerWeek = 7

var monthSelector = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// Window is a half-open UTC range [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside [Start, End).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Zone is a fixed civil offset from UTC.
type Zone struct {
	offset time.Duration
	loc    *time.Location
}

func NewZone(offset time.Duration) Zone {
	return Zone{
		offset: offset,
		loc:    time.FixedZone(formatOffset(offset), int(offset/time.Second)),
	}
}

// ParseOffset builds a Zone from an ISO-8601 offset such as "+09:00",
// "-05:30" or "Z".
func ParseOffset(s string) (Zone, error) {
	t, err := time.Parse("Z07:00", s)
	if err != nil {
		return Zone{}, errors.New("parsing civil offset error: " + err.Error())
	}
	_, seconds := t.Zone()
	return NewZone(time.Duration(seconds) * time.Second), nil
}

func formatOffset(offset time.Duration) string {
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	minutes := int(offset / time.Minute)
	return fmt.Sprintf("%c%02d:%02d", sign, minutes/60, minutes%60)
}

func (z Zone) Offset() time.Duration { return z.offset }

func (z Zone) String() string { return formatOffset(z.offset) }

func (z Zone) location() *time.Location {
	if z.loc == nil {
		return time.UTC
	}
	return z.loc
}

// ToDate returns the civil date of instant t.
func (z Zone) ToDate(t time.Time) Date {
	return DateOf(t.In(z.location()))
}

// Midnight returns the UTC instant at which civil date d begins.
func (z Zone) Midnight(d Date) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, z.location()).UTC()
}

// DayBounds returns the UTC window covering civil date d.
func (z Zone) DayBounds(d Date) Window {
	return Window{Start: z.Midnight(d), End: z.Midnight(d.AddDays(1))}
}

// MonthBounds returns the UTC window covering the civil month. month is
// 1-based and carries into the year: 13 is January of year+1, 0 is December
// of year-1.
func (z Zone) MonthBounds(year, month int) Window {
	first := NormalizeMonth(year, month)
	next := first.Next()
	return Window{
		Start: z.Midnight(first.FirstDay()),
		End:   z.Midnight(next.FirstDay()),
	}
}

// WeekBounds returns the Monday-start civil week containing now, shifted by
// weekOffset whole weeks (negative values go back in time).
func (z Zone) WeekBounds(now time.Time, weekOffset int) Window {
	today := z.ToDate(now)
	monday := today.AddDays(-MondayIndex(today.Weekday()) + weekOffset*daysPerWeek)
	return Window{
		Start: z.Midnight(monday),
		End:   z.Midnight(monday.AddDays(daysPerWeek)),
	}
}

func (z Zone) Today(now time.Time) Date {
	return z.ToDate(now)
}

func (z Zone) CurrentMonth(now time.Time) YearMonth {
	return z.ToDate(now).YearMonth()
}

// ParseMonth reads a "YYYY-MM" selector. Malformed or empty selectors fall
// back to the current civil month; out-of-range months carry.
func (z Zone) ParseMonth(selector string, now time.Time) YearMonth {
	m := monthSelector.FindStringSubmatch(selector)
	if m == nil {
		return z.CurrentMonth(now)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	return NormalizeMonth(year, month)
}

// CanGoNext reports whether navigation past ym is allowed. Months after the
// current civil month are never shown.
func (z Zone) CanGoNext(ym YearMonth, now time.Time) bool {
	return ym.Before(z.CurrentMonth(now))
}

// MondayIndex maps a Sunday-based weekday to a Monday-based index
// (Monday=0 ... Sunday=6).
func MondayIndex(w time.Weekday) int {
	return (int(w) + 6) % daysPerWeek
}
