package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DateLayout    = "2006-01-02"
	minutesPerDay = 24 * 60
)

type Category struct {
	ID     uuid.UUID  `json:"id"`
	UserID *uuid.UUID `json:"uid,omitempty"`
	Name   string     `json:"name"`
	Color  string     `json:"color"`
}

type Activity struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"uid"`
	Name          string    `json:"name"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	CategoryID    uuid.UUID `json:"category_id"`
	CategoryName  string    `json:"category_name"`
	EffectiveDate time.Time `json:"effective_date"`
	CreatedAt     time.Time `json:"created_at"`
}

// DurationMinutes returns the length of the activity. End before start means
// the activity ran past midnight. Malformed clock values give 0.
func (a *Activity) DurationMinutes() int {
	start, err := ParseClock(a.StartTime)
	if err != nil {
		return 0
	}
	end, err := ParseClock(a.EndTime)
	if err != nil {
		return 0
	}
	return DurationMinutes(start, end)
}

// StartHour returns the hour the activity started at, -1 if unparsable.
func (a *Activity) StartHour() int {
	start, err := ParseClock(a.StartTime)
	if err != nil {
		return -1
	}
	return start / 60
}

// DurationMinutes works on minutes since midnight.
func DurationMinutes(start, end int) int {
	d := end - start
	if d < 0 {
		d += minutesPerDay
	}
	return d
}

// ParseClock parses "HH:MM" or "HH:MM:SS" into minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, &ClockError{Value: s}
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, &ClockError{Value: s}
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, &ClockError{Value: s}
	}
	return h*60 + m, nil
}

type ClockError struct {
	Value string
}

func (e *ClockError) Error() string {
	return "invalid clock value: " + strconv.Quote(e.Value)
}

// EffectiveDateFor attributes activities started before dayStartHour to the
// previous calendar day, so a session at 01:30 counts for the evening it
// belongs to.
func EffectiveDateFor(logDate time.Time, startTime string, dayStartHour int) time.Time {
	day := DateOnly(logDate)
	start, err := ParseClock(startTime)
	if err != nil {
		return day
	}
	if start/60 < dayStartHour {
		return day.AddDate(0, 0, -1)
	}
	return day
}

// DateOnly truncates t to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween counts whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}
