package dates

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-types/collections"
)

var (
	weekDaysShort = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	weekDaysLong  = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	monthsShort   = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	monthsLong    = []string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}
	monthLengths  = []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
)

// WeekDays returns the names of the week days starting with Monday, either
// abbreviated ("Mon") or in full ("Monday").
func WeekDays(long bool) *collections.StringCollection {
	if long {
		return collections.NewStringCollection(weekDaysLong...)
	}
	return collections.NewStringCollection(weekDaysShort...)
}

// MonthNames returns the names of the months starting with January.
func MonthNames(long bool) *collections.StringCollection {
	if long {
		return collections.NewStringCollection(monthsLong...)
	}
	return collections.NewStringCollection(monthsShort...)
}

// MonthName returns the name of month 1..12.
func MonthName(month int, long bool) (string, error) {
	if err := checkMonth(month); err != nil {
		return "", err
	}
	if long {
		return monthsLong[month-1], nil
	}
	return monthsShort[month-1], nil
}

// MonthLength returns the number of days in month 1..12 of year, using the
// Gregorian leap year rule for February.
func MonthLength(month, year int) (int, error) {
	if err := checkMonth(month); err != nil {
		return 0, err
	}
	if month == 2 && isLeap(year) {
		return 29, nil
	}
	return monthLengths[month-1], nil
}

// MySQLToHuman rewrites a "2006-01-02" date as "02/01/2006" without
// validating the calendar values.
func MySQLToHuman(s string) (string, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: %q is not year-month-day", ErrInvalidDate, s)
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0], nil
}

func checkMonth(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12, %d provided", ErrInvalidArgument, month)
	}
	return nil
}

func isLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
