package dates

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Date is a calendar day. The zero value is January 1, year 1, UTC.
type Date struct {
	t time.Time
}

// NewDate returns the day t falls on, in t's location.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

// DateOf builds a Date from its parts in loc. Out-of-range parts are
// normalized the way [time.Date] does: October 32 becomes November 1.
func DateOf(year int, month time.Month, day int, loc *time.Location) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, loc)}
}

// Time returns the start of the day as a [time.Time].
func (d Date) Time() time.Time { return d.t }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Day returns the day of the month, 1 to 31.
func (d Date) Day() int { return d.t.Day() }

// Month returns the month of the year.
func (d Date) Month() time.Month { return d.t.Month() }

// Year returns the year.
func (d Date) Year() int { return d.t.Year() }

// WeekDay returns the day of the week with Monday as 0 and Sunday as 6.
func (d Date) WeekDay() int { return weekDay(d.t) }

// IsWeekend reports whether d is a Saturday or a Sunday.
func (d Date) IsWeekend() bool { return d.WeekDay() >= 5 }

// SetDay returns d moved to day of the same month. day must be between 1
// and 31; days past the end of the month roll into the next one.
func (d Date) SetDay(day int) (Date, error) {
	if day < 1 || day > 31 {
		return d, fmt.Errorf("%w: day %d not between 1 and 31", ErrInvalidArgument, day)
	}
	return DateOf(d.Year(), d.Month(), day, d.t.Location()), nil
}

// AddDate returns d shifted by the given number of years, months and days.
func (d Date) AddDate(years, months, days int) Date {
	return NewDate(d.t.AddDate(years, months, days))
}

// AddDays returns d moved n days forward.
func (d Date) AddDays(n int) Date { return d.AddDate(0, 0, n) }

// SubDays returns d moved n days back.
func (d Date) SubDays(n int) Date { return d.AddDate(0, 0, -n) }

// AddMonths returns d moved n months forward. Days past the end of the
// target month roll into the next one.
func (d Date) AddMonths(n int) Date { return d.AddDate(0, n, 0) }

// SubMonths returns d moved n months back.
func (d Date) SubMonths(n int) Date { return d.AddDate(0, -n, 0) }

// Diff returns the calendar interval from d to other. Invert is set when
// other is before d.
func (d Date) Diff(other Date) Interval { return between(d.t, other.t) }

// Format formats d with a [time] layout.
func (d Date) Format(layout string) string { return d.t.Format(layout) }

// ISO returns d as "2006-01-02".
func (d Date) ISO() string { return d.t.Format(ISODateLayout) }

// ShortFormat returns d as "02/01/2006".
func (d Date) ShortFormat() string { return d.t.Format(ShortDateLayout) }

// LongFormat returns d as "2nd of January 2006".
func (d Date) LongFormat() string { return longFormat(d.t) }

// String returns d in ISO form.
func (d Date) String() string { return d.ISO() }

// Unix returns the Unix time of the start of the day.
func (d Date) Unix() int64 { return d.t.Unix() }

// CompareTo orders dates by calendar day, ignoring their locations.
func (d Date) CompareTo(other Date) int { return wall(d.t).Compare(wall(other.t)) }

// Equal reports whether d and other are the same calendar day.
func (d Date) Equal(other Date) bool { return d.CompareTo(other) == 0 }

// MarshalText encodes d in ISO form.
func (d Date) MarshalText() ([]byte, error) { return []byte(d.ISO()), nil }

// UnmarshalText accepts any layout of [DefaultConfig].
func (d *Date) UnmarshalText(b []byte) error {
	v, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func weekDay(t time.Time) int { return (int(t.Weekday()) + 6) % 7 }

func longFormat(t time.Time) string {
	return fmt.Sprintf("%s of %s %d", humanize.Ordinal(t.Day()), t.Month(), t.Year())
}
