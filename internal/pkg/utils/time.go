package utils

import (
	"carelink-service/internal/pkg/constvars"
	"regexp"
	"time"
)

var clockPattern = regexp.MustCompile(constvars.RegexClockHHMM)

// ParseCalendarDate parses a YYYY-MM-DD string into UTC midnight of that date.
func ParseCalendarDate(value string) (time.Time, error) {
	return time.ParseInLocation(constvars.DateLayout, value, time.UTC)
}

func FormatCalendarDate(t time.Time) string {
	return t.Format(constvars.DateLayout)
}

func IsValidClock(value string) bool {
	return clockPattern.MatchString(value)
}

// DaysInRange counts calendar days from start to end, both inclusive.
func DaysInRange(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
