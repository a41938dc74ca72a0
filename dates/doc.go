// Package dates provides calendar-day and second-precision wrappers around
// [time.Time], together with the week day and month name tables used when
// rendering dates for people.
//
// # Types
//
//   - [Date]: a calendar day. The time of day is always midnight in the
//     date's location, so two Dates for the same day compare equal.
//   - [DateTime]: a wall-clock instant truncated to whole seconds.
//   - [Interval]: the calendar difference between two values, split into
//     years, months, days, hours, minutes and seconds.
//
// Both Date and DateTime are immutable values: every arithmetic method
// returns a new value. Both implement CompareTo, so a
// collections.Collection of either sorts with Sort(nil).
//
// # Parsing
//
// A [Parser] tries a list of layouts in order. The package-level
// [ParseDate] and [ParseDateTime] use [DefaultConfig]:
//
//	d, err := dates.ParseDate("2024-03-01")   // ISO
//	d, err  = dates.ParseDate("01/03/2024")   // day/month/year
//	dt, err := dates.ParseDateTime("2024-03-01 14:30:00")
//
// Custom layouts or a fixed location are set through [Config]:
//
//	cfg := dates.DefaultConfig()
//	cfg.Location = time.UTC
//	p := dates.NewParser(cfg)
//	d, err := p.ParseDate("March 1, 2024", "January 2, 2006")
//
// # Formatting
//
//	d.ISO()         // "2024-03-01"
//	d.ShortFormat() // "01/03/2024"
//	d.LongFormat()  // "1st of March 2024"
package dates
