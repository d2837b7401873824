// Package schedule holds the pure notification rules: resolving the civil minute in the
// service timezone and deciding which reminders are due for a subscription record.
package schedule

import (
	"fmt"
	"time"
	// Embedded IANA database so a host without zoneinfo still resolves the service timezone.
	_ "time/tzdata"

	"danyowa/internal/domain/entity"
	"danyowa/internal/errors"
)

// DefaultTimezone is the civil timezone all schedules are expressed in.
const DefaultTimezone = "Asia/Seoul"

// LoadLocation resolves an IANA timezone name. An empty name resolves DefaultTimezone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %q", name)
	}

	return loc, nil
}

// Resolve converts an instant into the civil minute observed in loc.
func Resolve(instant time.Time, loc *time.Location) entity.CivilTime {
	local := instant.In(loc)
	hour, minute := local.Hour(), local.Minute()

	return entity.CivilTime{
		DayOfWeek:    int(local.Weekday()),
		Hour:         hour,
		Minute:       minute,
		HHMM:         fmt.Sprintf("%02d:%02d", hour, minute),
		TotalMinutes: hour*60 + minute,
	}
}

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the host clock.
var SystemClock Clock = ClockFunc(time.Now)
