package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	periodAM = "오전"
	periodPM = "오후"
)

// ParseClock converts a civil "HH:MM" string into minutes since midnight.
// Malformed values report ok=false and never match any minute.
func ParseClock(value string) (minutes int, ok bool) {
	hourPart, minutePart, found := strings.Cut(strings.TrimSpace(value), ":")
	if !found {
		return 0, false
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 0 {
		return 0, false
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}

	return hour*60 + minute, true
}

// FormatClock renders "HH:MM" as a Korean 12-hour time, e.g. "오전 8시" or "오후 2시 30분".
// Unparseable input is returned as is.
func FormatClock(value string) string {
	total, ok := ParseClock(value)
	if !ok {
		return value
	}
	hour, minute := total/60, total%60

	period := periodPM
	if hour < 12 {
		period = periodAM
	}

	displayHour := hour
	switch {
	case hour == 0:
		displayHour = 12
	case hour > 12:
		displayHour = hour - 12
	}

	if minute > 0 {
		return fmt.Sprintf("%s %d시 %d분", period, displayHour, minute)
	}

	return fmt.Sprintf("%s %d시", period, displayHour)
}
