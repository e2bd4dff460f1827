package hours

import (
	"regexp"
	"strings"
)

// A Rule is one self-contained recognizer for one supported free-text
// opening-hours format. Match attempts to interpret the entire trimmed
// input under that format and reports false on a miss; it never guesses.
type Rule interface {
	Name() string
	Match(input string) (*Schedule, bool)
}

// DefaultRules is the recognizer cascade in precedence order. Order
// matters: some formats are strict subsets of looser ones (an inline
// per-day enumeration would otherwise be swallowed by the generic
// day-range rule), so the first rule that matches wins and the rest are
// not tried.
var DefaultRules = []Rule{
	enumeratedDaysRule{},
	dailySingleRule{},
	dailySuffixRule{},
	dailyMultiRule{},
	dayRangePrefixRule{},
	dayRangeSuffixRule{},
	allHoursRule{},
	bareRangeRule{},
}

// Parse normalizes a free-text opening-hours string into the canonical
// weekly schedule. It reports false when no recognizer understands the
// input; callers must leave such records untouched rather than apply a
// default schedule.
func Parse(raw string) (*Schedule, bool) {
	schedule, _, ok := ParseWithRule(raw)
	return schedule, ok
}

// ParseWithRule is Parse plus the name of the recognizer that matched,
// for callers that surface which format an input was interpreted as.
func ParseWithRule(raw string) (*Schedule, string, bool) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return nil, "", false
	}
	for _, rule := range DefaultRules {
		if schedule, ok := rule.Match(input); ok {
			return schedule, rule.Name(), true
		}
	}
	return nil, "", false
}

// Shared pattern fragments. A clock token is permissive here; ParseClock
// is the authority on whether a captured token is actually valid.
const (
	clockPattern    = `\d{1,2}(?::\d{2})?\s*(?:[AaPp][Mm])?`
	rangeSepPattern = `\s*(?:[-–—~]|to)\s*`
)

var (
	enumeratedClauseRegexp = regexp.MustCompile(`(?i)\b([a-z]+)\b\s*:?\s*(` + clockPattern + `)` + rangeSepPattern + `(` + clockPattern + `)`)
	dailySingleRegexp      = regexp.MustCompile(`(?i)^daily\s*:?\s*(` + clockPattern + `)` + rangeSepPattern + `(` + clockPattern + `)$`)
	dailySuffixRegexp      = regexp.MustCompile(`(?i)^(` + clockPattern + `)` + rangeSepPattern + `(` + clockPattern + `)\s*\(\s*daily\s*\)$`)
	dailyMultiRegexp       = regexp.MustCompile(`(?i)^daily\s*:?\s*(.+)$`)
	prefixClauseRegexp     = regexp.MustCompile(`(?i)\b([a-z]+)(?:\s*[-–—]\s*([a-z]+))?\s*:?\s+(` + clockPattern + `)` + rangeSepPattern + `(` + clockPattern + `)`)
	suffixClauseRegexp     = regexp.MustCompile(`(?i)(` + clockPattern + `)` + rangeSepPattern + `(` + clockPattern + `)\s*\(([^)]*)\)`)
	parenRangeRegexp       = regexp.MustCompile(`(?i)^([a-z]+)(?:\s*[-–—]\s*([a-z]+))?$`)
	bareRangeRegexp        = regexp.MustCompile(`(?i)^(` + clockPattern + `)` + rangeSepPattern + `(` + clockPattern + `)$`)
)

// allHoursMarkers flag round-the-clock operation anywhere in the input.
var allHoursMarkers = []string{"24 hours", "24 hour", "24/7"}

// enumeratedDaysRule handles listings that spell out each weekday inline:
// "Monday: 8:00 AM – 10:00 PM Tuesday: 8:00 AM – 10:00 PM ...".
type enumeratedDaysRule struct{}

func (enumeratedDaysRule) Name() string { return "per-day-enumerated" }

func (r enumeratedDaysRule) Match(input string) (*Schedule, bool) {
	dayPeriods := r.scan(input)
	// An inline enumeration needs most of the week spelled out; below
	// that the clauses are more likely fragments of another format.
	if len(dayPeriods) < 5 {
		return nil, false
	}
	return buildSchedule(dayPeriods), true
}

func (enumeratedDaysRule) scan(input string) map[Weekday][]Period {
	dayPeriods := make(map[Weekday][]Period)
	for _, m := range enumeratedClauseRegexp.FindAllStringSubmatch(input, -1) {
		day, ok := ParseDayName(m[1])
		if !ok {
			continue
		}
		open, ok := ParseClock(m[2])
		if !ok {
			continue
		}
		closeAt, ok := ParseClock(m[3])
		if !ok {
			continue
		}
		dayPeriods[day] = append(dayPeriods[day], timeRange{open: open, close: closeAt}.periodOn(day))
	}
	return dayPeriods
}

// dailySingleRule handles "Daily 8 AM – 8 PM" and "Daily: 9am - 10pm".
type dailySingleRule struct{}

func (dailySingleRule) Name() string { return "daily-single" }

func (dailySingleRule) Match(input string) (*Schedule, bool) {
	m := dailySingleRegexp.FindStringSubmatch(input)
	if m == nil {
		return nil, false
	}
	tr, ok := parseTimeRange(m[1], m[2])
	if !ok {
		return nil, false
	}
	return buildSchedule(uniformPeriods([]timeRange{tr})), true
}

// dailySuffixRule handles the time-first variant "10 AM – 7 PM (Daily)".
type dailySuffixRule struct{}

func (dailySuffixRule) Name() string { return "daily-suffixed" }

func (dailySuffixRule) Match(input string) (*Schedule, bool) {
	m := dailySuffixRegexp.FindStringSubmatch(input)
	if m == nil {
		return nil, false
	}
	tr, ok := parseTimeRange(m[1], m[2])
	if !ok {
		return nil, false
	}
	return buildSchedule(uniformPeriods([]timeRange{tr})), true
}

// dailyMultiRule handles split-shift listings applied to every day:
// "Daily 11 AM – 3 PM, 5 PM – 8:30 PM". Every comma segment must be a
// valid time range for the rule to claim the input.
type dailyMultiRule struct{}

func (dailyMultiRule) Name() string { return "daily-multi" }

func (dailyMultiRule) Match(input string) (*Schedule, bool) {
	m := dailyMultiRegexp.FindStringSubmatch(input)
	if m == nil {
		return nil, false
	}
	segments := strings.Split(m[1], ",")
	if len(segments) < 2 {
		return nil, false
	}
	ranges := make([]timeRange, 0, len(segments))
	for _, segment := range segments {
		rm := bareRangeRegexp.FindStringSubmatch(strings.TrimSpace(segment))
		if rm == nil {
			return nil, false
		}
		tr, ok := parseTimeRange(rm[1], rm[2])
		if !ok {
			return nil, false
		}
		ranges = append(ranges, tr)
	}
	return buildSchedule(uniformPeriods(ranges)), true
}

// dayRangePrefixRule handles one or more "<Day>[–<Day>] <open>–<close>"
// clauses: "Sun – Thurs 11 AM – 9 PM, Fri – Sat 11 AM – 9:15 PM". A later
// clause overwrites days set by an earlier one. A clause with a malformed
// day or time token is skipped; the rule succeeds if any clause held.
type dayRangePrefixRule struct{}

func (dayRangePrefixRule) Name() string { return "day-range-prefixed" }

func (dayRangePrefixRule) Match(input string) (*Schedule, bool) {
	dayPeriods := make(map[Weekday][]Period)
	matched := 0
	for _, m := range prefixClauseRegexp.FindAllStringSubmatch(input, -1) {
		start, ok := ParseDayName(m[1])
		if !ok {
			continue
		}
		end := start
		if m[2] != "" {
			if end, ok = ParseDayName(m[2]); !ok {
				continue
			}
		}
		tr, ok := parseTimeRange(m[3], m[4])
		if !ok {
			continue
		}
		for _, day := range DayRange(start, end) {
			dayPeriods[day] = []Period{tr.periodOn(day)}
		}
		matched++
	}
	if matched == 0 {
		return nil, false
	}
	return buildSchedule(dayPeriods), true
}

// dayRangeSuffixRule handles clauses with the day range parenthesized
// after the times, plus explicit closed markers:
// "7:30 AM – 2:30 PM (Mon – Fri), 7:30 AM – 1:30 PM (Sat), Closed (Sun)".
// Closed clauses produce no period (the day stays closed by omission);
// the rule succeeds if at least one time clause was extracted.
type dayRangeSuffixRule struct{}

func (dayRangeSuffixRule) Name() string { return "day-range-suffixed" }

func (dayRangeSuffixRule) Match(input string) (*Schedule, bool) {
	dayPeriods := make(map[Weekday][]Period)
	matched := 0
	for _, m := range suffixClauseRegexp.FindAllStringSubmatch(input, -1) {
		tr, ok := parseTimeRange(m[1], m[2])
		if !ok {
			continue
		}
		days, ok := parseParenDays(m[3])
		if !ok {
			continue
		}
		for _, day := range days {
			dayPeriods[day] = []Period{tr.periodOn(day)}
		}
		matched++
	}
	if matched == 0 {
		return nil, false
	}
	return buildSchedule(dayPeriods), true
}

// allHoursRule handles round-the-clock listings: "24 hours", "Open 24
// hours", "24/7". Every day gets a single 00:00–23:59 period.
type allHoursRule struct{}

func (allHoursRule) Name() string { return "24-hour" }

func (allHoursRule) Match(input string) (*Schedule, bool) {
	lower := strings.ToLower(input)
	for _, marker := range allHoursMarkers {
		if strings.Contains(lower, marker) {
			tr := timeRange{open: ClockTime{Hour: 0, Minute: 0}, close: ClockTime{Hour: 23, Minute: 59}}
			return buildSchedule(uniformPeriods([]timeRange{tr})), true
		}
	}
	return nil, false
}

// bareRangeRule handles a lone time range with no day qualifier, "9am -
// 10pm", which applies uniformly to all 7 days.
type bareRangeRule struct{}

func (bareRangeRule) Name() string { return "bare-range" }

func (bareRangeRule) Match(input string) (*Schedule, bool) {
	m := bareRangeRegexp.FindStringSubmatch(input)
	if m == nil {
		return nil, false
	}
	tr, ok := parseTimeRange(m[1], m[2])
	if !ok {
		return nil, false
	}
	return buildSchedule(uniformPeriods([]timeRange{tr})), true
}

func parseTimeRange(openToken, closeToken string) (timeRange, bool) {
	open, ok := ParseClock(openToken)
	if !ok {
		return timeRange{}, false
	}
	closeAt, ok := ParseClock(closeToken)
	if !ok {
		return timeRange{}, false
	}
	return timeRange{open: open, close: closeAt}, true
}

// parseParenDays resolves the parenthesized day qualifier of a suffixed
// clause: a single day ("Sat") or an inclusive range ("Mon – Fri").
func parseParenDays(content string) ([]Weekday, bool) {
	m := parenRangeRegexp.FindStringSubmatch(strings.TrimSpace(content))
	if m == nil {
		return nil, false
	}
	start, ok := ParseDayName(m[1])
	if !ok {
		return nil, false
	}
	end := start
	if m[2] != "" {
		if end, ok = ParseDayName(m[2]); !ok {
			return nil, false
		}
	}
	return DayRange(start, end), true
}
