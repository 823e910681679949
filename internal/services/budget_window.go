package services

import (
	"strconv"
	"strings"
	"time"

	"finance-tracker/internal/models"
)

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last representable instant of t's day in UTC.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Microsecond)
}

// CalendarWindow returns the calendar window of period containing now.
// Weeks start on Monday. ok is false for periods without a calendar window.
func CalendarWindow(period string, now time.Time) (models.DateRange, bool) {
	day := StartOfDay(now)

	var start, next time.Time
	switch period {
	case models.BudgetPeriodWeekly:
		offset := (int(day.Weekday()) + 6) % 7
		start = day.AddDate(0, 0, -offset)
		next = start.AddDate(0, 0, 7)
	case models.BudgetPeriodMonthly:
		start = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		next = start.AddDate(0, 1, 0)
	case models.BudgetPeriodYearly:
		start = time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		next = start.AddDate(1, 0, 0)
	default:
		return models.DateRange{}, false
	}

	return models.DateRange{Start: start, End: next.Add(-time.Microsecond)}, true
}

// DeriveBudgetWindow resolves the stored window of a budget. Calendar periods
// ignore the supplied dates. Other periods start at start (or now) and end at
// the end of the day of end (or one month from now).
func DeriveBudgetWindow(period string, now time.Time, start, end *time.Time) models.DateRange {
	now = now.UTC()
	if window, ok := CalendarWindow(period, now); ok {
		return window
	}

	from := now
	if start != nil {
		from = start.UTC()
	}
	to := now.AddDate(0, 1, 0)
	if end != nil {
		to = end.UTC()
	}

	return models.DateRange{Start: from, End: EndOfDay(to)}
}

// ParseAutoReset reads the auto_reset flag. Absent or unrecognised values mean true.
func ParseAutoReset(raw string) bool {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case "":
		return true
	case "yes", "on":
		return true
	case "no", "off":
		return false
	}
	if parsed, err := strconv.ParseBool(value); err == nil {
		return parsed
	}
	return true
}
