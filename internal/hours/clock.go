package hours

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ClockTime is a wall-clock time of day. Values are only produced by
// ParseClock, which guarantees 0 <= Hour <= 23 and 0 <= Minute <= 59.
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

var clockTokenRegexp = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*([AaPp][Mm])?$`)

// ParseClock parses a single clock token such as "9am", "10:30 PM" or
// "09:00". Minutes and the meridiem marker are optional; without a marker
// the token is treated as already being in 24-hour form. Out-of-range
// tokens fail closed, they are never clamped.
func ParseClock(token string) (ClockTime, bool) {
	m := clockTokenRegexp.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return ClockTime{}, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if minute > 59 {
		return ClockTime{}, false
	}

	if m[3] != "" {
		// 12-hour form: the hour must be within 1-12.
		if hour < 1 || hour > 12 {
			return ClockTime{}, false
		}
		pm := strings.EqualFold(m[3], "pm")
		if pm && hour != 12 {
			hour += 12
		}
		if !pm && hour == 12 {
			hour = 0
		}
	} else if hour > 23 {
		return ClockTime{}, false
	}

	return ClockTime{Hour: hour, Minute: minute}, true
}

// Display renders the time in 12-hour listing form: "12 AM" for midnight,
// "12 PM" for noon, minute omitted when zero ("9 AM"), zero-padded
// otherwise ("9:05 AM").
func (c ClockTime) Display() string {
	hour := c.Hour % 12
	if hour == 0 {
		hour = 12
	}
	meridiem := "AM"
	if c.Hour >= 12 {
		meridiem = "PM"
	}
	if c.Minute == 0 {
		return fmt.Sprintf("%d %s", hour, meridiem)
	}
	return fmt.Sprintf("%d:%02d %s", hour, c.Minute, meridiem)
}
