package datemath

import (
	"strconv"
	"strings"
	"time"
)

// Resolve converts a due-date phrase into an absolute UTC instant relative to ref.
// The second return value is false when the phrase is not understood; callers
// should then leave the due date unset. Resolve never fails.
//
// Accepted forms, first match wins: "today", "asap", "tomorrow", a strict
// YYYY-MM-DD date, "next <weekday>" and "in <N> day(s)|week(s)".
func Resolve(text string, ref time.Time) (time.Time, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return time.Time{}, false
	}

	today := StartOfDay(ref)

	switch text {
	case "today", "asap":
		return today, true
	case "tomorrow":
		return today.AddDate(0, 0, 1), true
	}

	if isoDateRe.MatchString(text) {
		t, err := time.Parse(isoLayout, text)
		if err != nil {
			return time.Time{}, false
		}
		return t.UTC(), true
	}

	if strings.HasPrefix(text, "next") {
		return resolveNextWeekday(text, today)
	}

	if strings.HasPrefix(text, "in") {
		return resolveInAmount(text, today)
	}

	return time.Time{}, false
}

// resolveNextWeekday handles "next monday" ... "next sunday". The result is
// always strictly after today, so the same weekday lands a week later.
func resolveNextWeekday(text string, today time.Time) (time.Time, bool) {
	fields := strings.Fields(text)
	if len(fields) != 2 || fields[0] != "next" {
		return time.Time{}, false
	}
	target, ok := weekdays[fields[1]]
	if !ok {
		return time.Time{}, false
	}

	daysUntil := int(target - today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return today.AddDate(0, 0, daysUntil), true
}

// resolveInAmount handles "in 3 days", "in 1 week", "in 0 days".
func resolveInAmount(text string, today time.Time) (time.Time, bool) {
	matches := inAmountRe.FindStringSubmatch(text)
	if len(matches) != 3 {
		return time.Time{}, false
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount > maxDays {
		return time.Time{}, false
	}

	if strings.HasPrefix(matches[2], "week") {
		if amount > maxDays/7 {
			return time.Time{}, false
		}
		amount *= 7
	}

	v := today.AddDate(0, 0, amount)
	if v.Year() > maxYear {
		return time.Time{}, false
	}
	return v, true
}

// StartOfDay returns 00:00:00 UTC of the UTC calendar day containing t.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
