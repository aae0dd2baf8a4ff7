package celengan

import (
	"fmt"
	"math"
	"time"
)

// Day represents a calendar day, the granularity at which history views
// are grouped. The day is taken in the timestamp's own location.
type Day struct {
	y int
	m time.Month
	d int
}

// NewDay returns a normalized Day for the given year, month, and day.
func NewDay(year int, month time.Month, day int) Day {
	d := Day{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// DayOf returns the calendar day of a timestamp.
func DayOf(t time.Time) Day {
	return NewDay(t.Date())
}

// time returns a canonical time for the day (midnight UTC), so that two
// equal days always compare equal.
func (d Day) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// String formats the day in ISO form, e.g. "2026-08-30".
func (d Day) String() string { return d.time().Format("2006-01-02") }

// Before reports whether the day d is before x.
func (d Day) Before(x Day) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Day) After(x Day) bool { return d.time().After(x.time()) }

// Indonesian day and month names used for the history group labels.
var (
	weekdayNames = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}
	monthNames   = [...]string{
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	}
)

// Label formats the day for display, e.g. "Senin, 5 Januari 2026".
func (d Day) Label() string {
	return fmt.Sprintf("%s, %d %s %d", weekdayNames[d.time().Weekday()], d.d, monthNames[d.m-1], d.y)
}

// elapsedDays counts the days between two instants, rounding any partial
// day up. It never returns a negative count.
func elapsedDays(from, to time.Time) int {
	delta := to.Sub(from)
	if delta <= 0 {
		return 0
	}
	return int(math.Ceil(delta.Hours() / 24))
}
