package datemath

import (
	"regexp"
	"time"
)

const (
	isoLayout = "2006-01-02"

	// maxYear is the last calendar year a resolved date may fall in. Later
	// dates cannot be encoded as RFC 3339 or stored in a timestamp column.
	maxYear = 9999

	// maxDays rejects offsets that overshoot maxYear from any reference
	// before they reach date arithmetic.
	maxDays = 366 * (maxYear + 1)
)

var (
	isoDateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	inAmountRe = regexp.MustCompile(`^in\s+(\d+)\s+(day|days|week|weeks)$`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)
