package dates

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// DateTime is a wall-clock instant with one-second precision.
type DateTime struct {
	t time.Time
}

// NewDateTime returns t truncated to whole seconds.
func NewDateTime(t time.Time) DateTime {
	return DateTime{t: t.Truncate(time.Second)}
}

// Time returns dt as a [time.Time].
func (dt DateTime) Time() time.Time { return dt.t }

// Date returns the calendar day of dt.
func (dt DateTime) Date() Date { return NewDate(dt.t) }

// IsZero reports whether dt is the zero DateTime.
func (dt DateTime) IsZero() bool { return dt.t.IsZero() }

// Day returns the day of the month, 1 to 31.
func (dt DateTime) Day() int { return dt.t.Day() }

// Month returns the month of the year.
func (dt DateTime) Month() time.Month { return dt.t.Month() }

// Year returns the year.
func (dt DateTime) Year() int { return dt.t.Year() }

// Hour returns the hour, 0 to 23.
func (dt DateTime) Hour() int { return dt.t.Hour() }

// Minute returns the minute, 0 to 59.
func (dt DateTime) Minute() int { return dt.t.Minute() }

// Second returns the second, 0 to 59.
func (dt DateTime) Second() int { return dt.t.Second() }

// WeekDay returns the day of the week with Monday as 0 and Sunday as 6.
func (dt DateTime) WeekDay() int { return weekDay(dt.t) }

// IsWeekend reports whether dt falls on a Saturday or a Sunday.
func (dt DateTime) IsWeekend() bool { return dt.WeekDay() >= 5 }

// SetDay returns dt moved to day of the same month, keeping the clock.
func (dt DateTime) SetDay(day int) (DateTime, error) {
	if day < 1 || day > 31 {
		return dt, fmt.Errorf("%w: day %d not between 1 and 31", ErrInvalidArgument, day)
	}
	h, m, s := dt.t.Clock()
	return DateTime{t: time.Date(dt.Year(), dt.Month(), day, h, m, s, 0, dt.t.Location())}, nil
}

// Add returns dt shifted by d, truncated to seconds.
func (dt DateTime) Add(d time.Duration) DateTime { return NewDateTime(dt.t.Add(d)) }

// Sub returns dt shifted back by d.
func (dt DateTime) Sub(d time.Duration) DateTime { return dt.Add(-d) }

// AddDate returns dt shifted by the given number of years, months and days.
func (dt DateTime) AddDate(years, months, days int) DateTime {
	return DateTime{t: dt.t.AddDate(years, months, days)}
}

// Diff returns the calendar interval from dt to other.
func (dt DateTime) Diff(other DateTime) Interval { return between(dt.t, other.t) }

// Relative describes dt relative to ref, e.g. "3 days ago" or
// "2 hours from now".
func (dt DateTime) Relative(ref DateTime) string {
	return humanize.RelTime(dt.t, ref.t, "ago", "from now")
}

// Format formats dt with a [time] layout.
func (dt DateTime) Format(layout string) string { return dt.t.Format(layout) }

// ISO returns dt as "2006-01-02 15:04:05".
func (dt DateTime) ISO() string { return dt.t.Format(ISODateTimeLayout) }

// ShortFormat returns the day of dt as "02/01/2006".
func (dt DateTime) ShortFormat() string { return dt.t.Format(ShortDateLayout) }

// LongFormat returns the day of dt as "2nd of January 2006".
func (dt DateTime) LongFormat() string { return longFormat(dt.t) }

// String returns dt in ISO form.
func (dt DateTime) String() string { return dt.ISO() }

// Unix returns dt as Unix time in seconds.
func (dt DateTime) Unix() int64 { return dt.t.Unix() }

// CompareTo orders values by their wall-clock reading, ignoring their
// locations.
func (dt DateTime) CompareTo(other DateTime) int { return wall(dt.t).Compare(wall(other.t)) }

// MarshalText encodes dt as "2006-01-02 15:04:05".
func (dt DateTime) MarshalText() ([]byte, error) { return []byte(dt.ISO()), nil }

// UnmarshalText accepts any layout of [DefaultConfig].
func (dt *DateTime) UnmarshalText(b []byte) error {
	v, err := ParseDateTime(string(b))
	if err != nil {
		return err
	}
	*dt = v
	return nil
}
