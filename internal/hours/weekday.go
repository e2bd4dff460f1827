package hours

import "strings"

// Weekday is a weekday index with Sunday = 0 through Saturday = 6.
// Rendered output always uses the Monday-first presentation order
// (weekdayOrder), independent of the numeric index.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Day-name tables, Sunday-first. The order is part of the resolution
// contract: short forms are checked before long forms, in table order.
var (
	shortDayNames = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}
	longDayNames  = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
)

// weekdayOrder is the fixed Monday-first presentation order used for all
// rendered output.
var weekdayOrder = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Name returns the full English day name.
func (d Weekday) Name() string {
	if d < 0 || d > 6 {
		return ""
	}
	return longDayNames[d]
}

// ParseDayName resolves a day name or abbreviation ("Mon", "Thurs",
// "monday") to its weekday index. Matching is a case-insensitive prefix
// match: the token must start with a short-form table entry, or failing
// that with a long-form entry.
func ParseDayName(s string) (Weekday, bool) {
	token := strings.ToLower(strings.TrimSpace(s))
	if token == "" {
		return 0, false
	}
	for i, name := range shortDayNames {
		if strings.HasPrefix(token, name) {
			return Weekday(i), true
		}
	}
	for i, name := range longDayNames {
		if strings.HasPrefix(token, strings.ToLower(name)) {
			return Weekday(i), true
		}
	}
	return 0, false
}

// DayRange expands an inclusive day range by walking forward from start
// until end, wrapping past Saturday, so "Fri-Mon" covers Fri, Sat, Sun,
// Mon. The walk is capped at 7 steps.
func DayRange(start, end Weekday) []Weekday {
	days := []Weekday{start}
	day := start
	for steps := 0; day != end && steps < 7; steps++ {
		day = (day + 1) % 7
		days = append(days, day)
	}
	return days
}
