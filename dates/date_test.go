package dates_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-types/arr"
	"github.com/hasbyte1/go-types/collections"
	"github.com/hasbyte1/go-types/dates"
)

func day(y int, m time.Month, d int) dates.Date { return dates.DateOf(y, m, d, time.UTC) }

func utcParser() *dates.Parser {
	cfg := dates.DefaultConfig()
	cfg.Location = time.UTC
	return dates.NewParser(cfg)
}

func TestParseDate(t *testing.T) {
	p := utcParser()

	d, err := p.ParseDate("2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", d.ISO())

	d, err = p.ParseDate("31/12/2023")
	require.NoError(t, err)
	assert.Equal(t, "2023-12-31", d.ISO())

	d, err = p.ParseDate("March 1, 2024", "January 2, 2006")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", d.ISO())
}

func TestParseDateInvalid(t *testing.T) {
	p := utcParser()
	for _, in := range []string{"", "2024-13-01", "yesterday", "2024-01-02 10:00:00"} {
		_, err := p.ParseDate(in)
		assert.ErrorIs(t, err, dates.ErrInvalidDate, in)
	}
	_, err := p.ParseDate("2024-01-02", "02/01/2006")
	assert.ErrorIs(t, err, dates.ErrInvalidDate)
}

func TestParserUsesConfiguredClock(t *testing.T) {
	p := dates.NewParser(dates.Config{
		Location: time.UTC,
		Now: func() time.Time {
			return time.Date(2024, 5, 17, 23, 30, 0, 0, time.FixedZone("west", -2*3600))
		},
	})
	assert.Equal(t, "2024-05-18", p.Today().ISO())
	assert.Equal(t, "2024-05-18 01:30:00", p.Now().ISO())

	d, err := p.ParseDate("18/05/2024")
	require.NoError(t, err)
	assert.True(t, d.Equal(p.Today()))
}

func TestNewDateDropsClock(t *testing.T) {
	d := dates.NewDate(time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), d.Time())
	assert.Equal(t, 2, d.Day())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 2024, d.Year())
	assert.False(t, d.IsZero())
	assert.True(t, dates.Date{}.IsZero())
}

func TestWeekDay(t *testing.T) {
	assert.Equal(t, 0, day(2024, 1, 1).WeekDay())
	assert.False(t, day(2024, 1, 5).IsWeekend())
	assert.Equal(t, 5, day(2024, 1, 6).WeekDay())
	assert.True(t, day(2024, 1, 6).IsWeekend())
	assert.Equal(t, 6, day(2024, 1, 7).WeekDay())
}

func TestSetDay(t *testing.T) {
	d, err := day(2024, 2, 10).SetDay(20)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-20", d.ISO())

	d, err = day(2024, 2, 10).SetDay(31)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-02", d.ISO())

	for _, bad := range []int{0, 32, -1} {
		_, err = day(2024, 2, 10).SetDay(bad)
		assert.ErrorIs(t, err, dates.ErrInvalidArgument)
	}
}

func TestArithmetic(t *testing.T) {
	d := day(2024, 1, 31)
	assert.Equal(t, "2024-02-10", d.AddDays(10).ISO())
	assert.Equal(t, "2024-01-21", d.SubDays(10).ISO())
	assert.Equal(t, "2024-03-02", d.AddMonths(1).ISO())
	assert.Equal(t, "2023-12-31", d.SubMonths(1).ISO())
	assert.Equal(t, "2025-01-31", d.AddDate(1, 0, 0).ISO())
	assert.Equal(t, "2024-01-31", d.ISO(), "arithmetic must not modify the receiver")
}

func TestDiff(t *testing.T) {
	iv := day(2024, 1, 31).Diff(day(2024, 3, 1))
	assert.Equal(t, dates.Interval{Months: 1, Days: 1, TotalDays: 30}, iv)

	iv = day(2024, 3, 1).Diff(day(2023, 1, 15))
	assert.Equal(t, dates.Interval{Years: 1, Months: 1, Days: 15, Invert: true, TotalDays: 411}, iv)
	assert.Equal(t, "-P1Y1M15D", iv.String())

	assert.Equal(t, dates.Interval{}, day(2024, 1, 1).Diff(day(2024, 1, 1)))
}

func TestFormats(t *testing.T) {
	d := day(2024, 1, 2)
	assert.Equal(t, "2024-01-02", d.String())
	assert.Equal(t, "02/01/2024", d.ShortFormat())
	assert.Equal(t, "2nd of January 2024", d.LongFormat())
	assert.Equal(t, "11th of March 2024", day(2024, 3, 11).LongFormat())
	assert.Equal(t, "23rd of May 2024", day(2024, 5, 23).LongFormat())
	assert.Equal(t, "Tue 2 Jan", d.Format("Mon 2 Jan"))
	assert.Equal(t, int64(1704153600), d.Unix())
}

func TestCompareTo(t *testing.T) {
	a, b := day(2024, 1, 2), day(2024, 2, 1)
	assert.Negative(t, a.CompareTo(b))
	assert.Positive(t, b.CompareTo(a))
	assert.Zero(t, a.CompareTo(day(2024, 1, 2)))
}

func TestCompareToOutsideFourDigitYears(t *testing.T) {
	assert.Positive(t, day(10000, 1, 1).CompareTo(day(9999, 12, 31)))
	assert.Negative(t, day(-1, 1, 1).CompareTo(day(1, 1, 1)))
	assert.Negative(t, day(-20, 1, 1).CompareTo(day(-3, 1, 1)))
}

func TestCompareToIgnoresLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	assert.Zero(t, dates.DateOf(2024, 1, 2, tokyo).CompareTo(day(2024, 1, 2)))
}

func TestDatesSortInCollection(t *testing.T) {
	c := collections.New(day(2024, 3, 1), day(2023, 12, 31), day(2024, 1, 15))
	require.True(t, c.Sort(nil))
	assert.Equal(t, "2023-12-31,2024-01-15,2024-03-01", c.String())
}

func TestDateText(t *testing.T) {
	type payload struct {
		Born dates.Date `json:"born"`
	}
	b, err := json.Marshal(payload{Born: day(2024, 1, 2)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"born":"2024-01-02"}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"born":"02/01/2024"}`), &p))
	assert.Equal(t, "2024-01-02", p.Born.ISO())

	assert.Error(t, json.Unmarshal([]byte(`{"born":"soon"}`), &p))

	flat := arr.ToFlat(map[string]any{"born": day(2024, 1, 2), "name": "Ann"})
	assert.Equal(t, map[string]string{"born": "2024-01-02", "name": "Ann"}, flat)
}
