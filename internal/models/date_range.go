package models

import "time"

// DateRange is an inclusive [Start, End] window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies inside the window, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// IsValid reports whether End is not before Start.
func (r DateRange) IsValid() bool {
	return !r.End.Before(r.Start)
}

// UTC returns the same window with both bounds converted to UTC.
func (r DateRange) UTC() DateRange {
	return DateRange{Start: r.Start.UTC(), End: r.End.UTC()}
}
