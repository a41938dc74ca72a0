package dates

import (
	"fmt"
	"time"
)

// Interval is the calendar distance between two instants. All fields are
// non-negative; Invert records that the second instant precedes the first.
type Interval struct {
	Years, Months, Days     int
	Hours, Minutes, Seconds int

	// Invert is true when the interval runs backwards in time.
	Invert bool

	// TotalDays is the whole number of days between the two instants.
	TotalDays int
}

// between computes the interval from a to b on their wall clocks. Whole
// months are counted first, clamping the day to the end of shorter months,
// and the remainder is split into days and clock units.
func between(a, b time.Time) Interval {
	a, b = wall(a), wall(b)
	var iv Interval
	if b.Before(a) {
		a, b = b, a
		iv.Invert = true
	}

	y1, m1, _ := a.Date()
	y2, m2, _ := b.Date()
	months := (y2-y1)*12 + int(m2-m1)
	anchor := addMonthsClamped(a, months)
	for months > 0 && anchor.After(b) {
		months--
		anchor = addMonthsClamped(a, months)
	}

	rest := b.Sub(anchor)
	iv.Years, iv.Months = months/12, months%12
	iv.Days = int(rest / (24 * time.Hour))
	rest -= time.Duration(iv.Days) * 24 * time.Hour
	iv.Hours = int(rest / time.Hour)
	rest -= time.Duration(iv.Hours) * time.Hour
	iv.Minutes = int(rest / time.Minute)
	rest -= time.Duration(iv.Minutes) * time.Minute
	iv.Seconds = int(rest / time.Second)
	iv.TotalDays = int((b.Unix() - a.Unix()) / 86400)
	return iv
}

// addMonthsClamped moves t forward by n months, keeping the clock and
// clamping the day to the length of the target month.
func addMonthsClamped(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	h, mi, s := t.Clock()
	target := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	d = min(d, daysIn(target.Month(), target.Year()))
	return time.Date(target.Year(), target.Month(), d, h, mi, s, 0, time.UTC)
}

// wall re-reads the clock of t in UTC so daylight-saving shifts do not
// change day lengths.
func wall(t time.Time) time.Time {
	y, m, d := t.Date()
	h, n, s := t.Clock()
	return time.Date(y, m, d, h, n, s, 0, time.UTC)
}

// daysIn returns the length of month in year.
func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// String renders the interval in ISO 8601 duration form, e.g. "P1Y2M3D"
// or "-P0Y0M1DT2H0M0S".
func (iv Interval) String() string {
	sign := ""
	if iv.Invert {
		sign = "-"
	}
	s := fmt.Sprintf("%sP%dY%dM%dD", sign, iv.Years, iv.Months, iv.Days)
	if iv.Hours != 0 || iv.Minutes != 0 || iv.Seconds != 0 {
		s += fmt.Sprintf("T%dH%dM%dS", iv.Hours, iv.Minutes, iv.Seconds)
	}
	return s
}
