// File: services/scheduler/slots.go
package scheduler

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Clinic window. Evenings only, fixed-length consultations.
const (
	ClinicOpenHour  = 19
	ClinicCloseHour = 22
	SlotMinutes     = 15

	DateLayout = "2006-01-02"
)

var (
	ErrSlotsExhausted = errors.New("no slots available in the clinic window for this date")
	ErrInvalidDateKey = errors.New("date must be in YYYY-MM-DD format")
)

// Slot is one allocated consultation interval.
type Slot struct {
	Start         time.Time
	End           time.Time
	PatientNumber int
}

// Window describes the daily operating hours slots are carved from.
type Window struct {
	OpenHour     int
	CloseHour    int
	SlotDuration time.Duration
	Location     *time.Location
}

// DefaultWindow returns the clinic's fixed window in loc (time.Local when nil).
func DefaultWindow(loc *time.Location) Window {
	if loc == nil {
		loc = time.Local
	}
	return Window{
		OpenHour:     ClinicOpenHour,
		CloseHour:    ClinicCloseHour,
		SlotDuration: SlotMinutes * time.Minute,
		Location:     loc,
	}
}

func (w Window) location() *time.Location {
	if w.Location == nil {
		return time.Local
	}
	return w.Location
}

// TotalSlots is the per-day capacity. The window length is assumed to be a
// multiple of the slot duration.
func (w Window) TotalSlots() int {
	if w.SlotDuration <= 0 || w.CloseHour <= w.OpenHour {
		return 0
	}
	return int(time.Duration(w.CloseHour-w.OpenHour) * time.Hour / w.SlotDuration)
}

// NextSlot computes the slot handed to the next booking on dateKey given how
// many bookings that date already holds. The result depends only on its inputs.
func (w Window) NextSlot(dateKey string, booked int64) (Slot, error) {
	day, err := ParseDateKey(dateKey, w.location())
	if err != nil {
		return Slot{}, err
	}
	if booked < 0 {
		return Slot{}, fmt.Errorf("booked count must be non-negative, got %d", booked)
	}
	if booked >= int64(w.TotalSlots()) {
		return Slot{}, ErrSlotsExhausted
	}

	open := time.Date(day.Year(), day.Month(), day.Day(), w.OpenHour, 0, 0, 0, w.location())
	start := open.Add(time.Duration(booked) * w.SlotDuration)
	return Slot{
		Start:         start,
		End:           start.Add(w.SlotDuration),
		PatientNumber: int(booked) + 1,
	}, nil
}

// Label renders the window for user-facing messages, e.g. "7 PM and 10 PM".
func (w Window) Label() string {
	open := time.Date(2000, 1, 1, w.OpenHour, 0, 0, 0, time.UTC)
	closing := time.Date(2000, 1, 1, w.CloseHour, 0, 0, 0, time.UTC)
	return fmt.Sprintf("%s and %s", open.Format("3 PM"), closing.Format("3 PM"))
}

// DateKey normalises an optional date: blank input becomes today in loc.
func DateKey(date string, now time.Time, loc *time.Location) string {
	date = strings.TrimSpace(date)
	if date != "" {
		return date
	}
	if loc == nil {
		loc = time.Local
	}
	return now.In(loc).Format(DateLayout)
}

// ParseDateKey validates a "YYYY-MM-DD" key and returns its midnight in loc.
func ParseDateKey(dateKey string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	day, err := time.ParseInLocation(DateLayout, dateKey, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, dateKey)
	}
	return day, nil
}
