// Package hours evaluates free-text business-hours strings as they appear in
// the festival catalog ("8 a.m. – 6 p.m.", "noon to 5 p.m.", "Closed Sunday").
package hours

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	timePattern  = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(a\.?m\.?|p\.?m\.?)`)
	rangePattern = regexp.MustCompile(`(?i)(\d{1,2}(?::\d{2})?\s*(?:a\.?m\.?|p\.?m\.?)|noon|midnight)\s*(?:–|-|to)\s*(\d{1,2}(?::\d{2})?\s*(?:a\.?m\.?|p\.?m\.?)|noon|midnight)`)
)

var shortDays = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

var fullDays = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// TimeOfDay is a wall-clock time within a single day.
type TimeOfDay struct {
	Hours   int
	Minutes int
}

// TotalMinutes returns minutes since midnight.
func (t TimeOfDay) TotalMinutes() int {
	return t.Hours*60 + t.Minutes
}

// ParseTime parses a single time token such as "8 a.m.", "8:30pm", "noon" or
// "midnight". The boolean is false when the token is not recognized.
func ParseTime(s string) (TimeOfDay, bool) {
	lower := strings.ToLower(strings.TrimSpace(s))

	switch lower {
	case "noon":
		return TimeOfDay{Hours: 12}, true
	case "midnight":
		return TimeOfDay{}, true
	}

	m := timePattern.FindStringSubmatch(lower)
	if m == nil {
		return TimeOfDay{}, false
	}

	h, _ := strconv.Atoi(m[1])
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}
	pm := strings.HasPrefix(m[3], "p")

	if pm && h != 12 {
		h += 12
	}
	if !pm && h == 12 {
		h = 0
	}

	return TimeOfDay{Hours: h, Minutes: minutes}, true
}

// IsOpen reports whether a store with the given hours string is open at now.
//
// A closure marker for now's weekday ("closed sun", "closed sunday",
// "closed on sun") always wins. Otherwise the first time range found is
// evaluated as open <= now < close; a range that spans midnight is never
// satisfied. Strings with no parseable range default to open, so stores with
// unreadable hours are not hidden from open-now filters.
func IsOpen(hoursStr string, now time.Time) bool {
	lower := strings.ToLower(hoursStr)
	day := int(now.Weekday())

	if strings.Contains(lower, "closed "+shortDays[day]) ||
		strings.Contains(lower, "closed "+fullDays[day]) ||
		strings.Contains(lower, "closed on "+shortDays[day]) {
		return false
	}

	m := rangePattern.FindStringSubmatch(hoursStr)
	if m != nil {
		open, okOpen := ParseTime(m[1])
		close, okClose := ParseTime(m[2])
		if okOpen && okClose {
			current := now.Hour()*60 + now.Minute()
			return current >= open.TotalMinutes() && current < close.TotalMinutes()
		}
	}

	return true
}
