package util

import (
	"fmt"
	"time"
)

// IsMonthKey reports whether s is a valid YYYY-MM month key.
func IsMonthKey(s string) bool {
	_, err := time.Parse("2006-01", s)
	return err == nil
}

// IsDateKey reports whether s is a valid YYYY-MM-DD date.
func IsDateKey(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// MonthOfDate returns the month key owning a date: its first 7 characters.
func MonthOfDate(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// MonthKey formats a year and month into a YYYY-MM key.
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// DaysInMonth returns the number of days in the given month, handling
// leap-year February. Returns 0 for a malformed key.
func DaysInMonth(monthKey string) int {
	t, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return 0
	}
	// Day 0 of the next month is the last day of this one
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the first day of the month,
// 0 = Sunday, matching the calendar grid's column order.
func FirstWeekday(monthKey string) int {
	t, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return 0
	}
	return int(time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// PreviousMonth returns the month key one month earlier, rolling the year
// back across January.
func PreviousMonth(monthKey string) string {
	t, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return ""
	}
	if t.Month() == time.January {
		return MonthKey(t.Year()-1, time.December)
	}
	return MonthKey(t.Year(), t.Month()-1)
}

// NextMonth returns the month key one month later, rolling the year
// forward across December.
func NextMonth(monthKey string) string {
	t, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return ""
	}
	if t.Month() == time.December {
		return MonthKey(t.Year()+1, time.January)
	}
	return MonthKey(t.Year(), t.Month()+1)
}

// MonthDates returns every date of the month in ascending order.
func MonthDates(monthKey string) []string {
	days := DaysInMonth(monthKey)
	dates := make([]string, 0, days)
	for day := 1; day <= days; day++ {
		dates = append(dates, fmt.Sprintf("%s-%02d", monthKey, day))
	}
	return dates
}

// CurrentMonth returns the wall-clock month key.
func CurrentMonth() string {
	now := time.Now()
	return MonthKey(now.Year(), now.Month())
}

// CurrentDate returns the wall-clock date key.
func CurrentDate() string {
	return time.Now().Format("2006-01-02")
}

// DaysRemainingInMonth returns how many days are left in now's month,
// not counting today.
func DaysRemainingInMonth(now time.Time) int {
	lastDay := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	return lastDay - now.Day()
}
