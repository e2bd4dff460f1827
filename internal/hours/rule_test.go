package hours

import (
	"reflect"
	"strings"
	"testing"
)

func mustParse(t *testing.T, input string) *Schedule {
	t.Helper()
	schedule, ok := Parse(input)
	if !ok {
		t.Fatalf("Parse(%q) did not match any rule", input)
	}
	return schedule
}

func TestParseDailySinglePeriod(t *testing.T) {
	schedule := mustParse(t, "Daily 9am - 10pm")

	if len(schedule.Periods) != 7 {
		t.Fatalf("got %d periods, want 7", len(schedule.Periods))
	}
	for _, p := range schedule.Periods {
		if p.Open.Time != (ClockTime{Hour: 9, Minute: 0}) || p.Close.Time != (ClockTime{Hour: 22, Minute: 0}) {
			t.Errorf("period %+v, want open 09:00 close 22:00", p)
		}
		if p.Open.Day != p.Close.Day {
			t.Errorf("period spans days: %+v", p)
		}
	}
	if schedule.WeekdayText[0] != "Monday: 9 AM – 10 PM" {
		t.Errorf("weekday_text[0] = %q", schedule.WeekdayText[0])
	}
}

func TestParseDayRangePrefixed(t *testing.T) {
	schedule := mustParse(t, "Sun – Thurs 11 AM – 9 PM, Fri – Sat 11 AM – 9:15 PM")

	if len(schedule.Periods) != 7 {
		t.Fatalf("got %d periods, want 7", len(schedule.Periods))
	}
	for _, p := range schedule.Periods {
		wantClose := ClockTime{Hour: 21, Minute: 0}
		if p.Open.Day == Friday || p.Open.Day == Saturday {
			wantClose = ClockTime{Hour: 21, Minute: 15}
		}
		if p.Close.Time != wantClose {
			t.Errorf("day %v closes at %+v, want %+v", p.Open.Day, p.Close.Time, wantClose)
		}
		if p.Open.Time != (ClockTime{Hour: 11, Minute: 0}) {
			t.Errorf("day %v opens at %+v, want 11:00", p.Open.Day, p.Open.Time)
		}
	}
	for _, line := range schedule.WeekdayText {
		if strings.HasSuffix(line, "Closed") {
			t.Errorf("no day should be closed, got %q", line)
		}
	}
}

func TestParseDayRangeSuffixedWithClosed(t *testing.T) {
	schedule := mustParse(t, "7:30 AM – 2:30 PM (Mon – Fri), 7:30 AM – 1:30 PM (Sat), Closed (Sun)")

	if schedule.WeekdayText[6] != "Sunday: Closed" {
		t.Errorf("weekday_text[6] = %q, want %q", schedule.WeekdayText[6], "Sunday: Closed")
	}
	for _, p := range schedule.Periods {
		if p.Open.Day == Sunday {
			t.Errorf("Sunday must have no period, got %+v", p)
		}
		if p.Open.Day == Saturday && p.Close.Time != (ClockTime{Hour: 13, Minute: 30}) {
			t.Errorf("Saturday closes at %+v, want 13:30", p.Close.Time)
		}
	}
	if len(schedule.Periods) != 6 {
		t.Errorf("got %d periods, want 6", len(schedule.Periods))
	}
}

func TestParseGibberish(t *testing.T) {
	for _, input := range []string{"gibberish not a time", "", "   ", "call for hours", "13:00"} {
		if schedule, ok := Parse(input); ok {
			t.Errorf("Parse(%q) matched unexpectedly: %+v", input, schedule)
		}
	}
}

func TestParseTwentyFourHours(t *testing.T) {
	for _, input := range []string{"24 hours", "Open 24 hours", "open 24/7"} {
		schedule := mustParse(t, input)
		if len(schedule.Periods) != 7 {
			t.Fatalf("Parse(%q): got %d periods, want 7", input, len(schedule.Periods))
		}
		for _, p := range schedule.Periods {
			if p.Open.Time != (ClockTime{Hour: 0, Minute: 0}) || p.Close.Time != (ClockTime{Hour: 23, Minute: 59}) {
				t.Errorf("Parse(%q): period %+v, want 00:00-23:59", input, p)
			}
		}
	}
}

func TestParseEnumeratedDays(t *testing.T) {
	input := "Monday: 8:00 AM – 10:00 PM Tuesday: 8:00 AM – 10:00 PM Wednesday: 8:00 AM – 10:00 PM " +
		"Thursday: 8:00 AM – 10:00 PM Friday: 8:00 AM – 11:00 PM Saturday: 9 AM – 11 PM Sunday: 9 AM – 10 PM"
	schedule := mustParse(t, input)

	if len(schedule.Periods) != 7 {
		t.Fatalf("got %d periods, want 7", len(schedule.Periods))
	}
	if schedule.WeekdayText[4] != "Friday: 8 AM – 11 PM" {
		t.Errorf("weekday_text[4] = %q", schedule.WeekdayText[4])
	}
	// Periods come out Monday-first no matter the input order.
	if schedule.Periods[0].Open.Day != Monday || schedule.Periods[6].Open.Day != Sunday {
		t.Errorf("periods not in Monday-first order: first %v last %v",
			schedule.Periods[0].Open.Day, schedule.Periods[6].Open.Day)
	}
}

func TestParseEnumeratedDaysThreshold(t *testing.T) {
	// Fewer than five extractable days must not be claimed by the
	// enumeration rule; this input falls through to the day-range rule.
	input := "Monday: 9 AM – 5 PM Tuesday: 9 AM – 5 PM"
	schedule := mustParse(t, input)
	if len(schedule.Periods) != 2 {
		t.Fatalf("got %d periods, want 2", len(schedule.Periods))
	}
	if schedule.WeekdayText[2] != "Wednesday: Closed" {
		t.Errorf("weekday_text[2] = %q", schedule.WeekdayText[2])
	}
}

func TestParseDailyMultiPeriod(t *testing.T) {
	schedule := mustParse(t, "Daily 11 AM – 3 PM, 5 PM – 8:30 PM")

	if len(schedule.Periods) != 14 {
		t.Fatalf("got %d periods, want 14", len(schedule.Periods))
	}
	if schedule.WeekdayText[0] != "Monday: 11 AM – 3 PM, 5 PM – 8:30 PM" {
		t.Errorf("weekday_text[0] = %q", schedule.WeekdayText[0])
	}
	// Periods on the same day stay in discovery order.
	first, second := schedule.Periods[0], schedule.Periods[1]
	if first.Open.Day != Monday || second.Open.Day != Monday {
		t.Fatalf("first two periods should both be Monday")
	}
	if first.Open.Time.Hour != 11 || second.Open.Time.Hour != 17 {
		t.Errorf("periods out of discovery order: %+v then %+v", first, second)
	}
}

func TestParseDailySuffixed(t *testing.T) {
	schedule := mustParse(t, "10 AM – 7 PM (Daily)")
	if len(schedule.Periods) != 7 {
		t.Fatalf("got %d periods, want 7", len(schedule.Periods))
	}
	if schedule.WeekdayText[0] != "Monday: 10 AM – 7 PM" {
		t.Errorf("weekday_text[0] = %q", schedule.WeekdayText[0])
	}
}

func TestParseBareRange(t *testing.T) {
	schedule := mustParse(t, "9am - 10pm")
	if len(schedule.Periods) != 7 {
		t.Fatalf("got %d periods, want 7", len(schedule.Periods))
	}
	if schedule.WeekdayText[6] != "Sunday: 9 AM – 10 PM" {
		t.Errorf("weekday_text[6] = %q", schedule.WeekdayText[6])
	}
}

func TestParseLastClauseWins(t *testing.T) {
	// The second clause overwrites Friday set by the first range.
	schedule := mustParse(t, "Mon – Fri 9 AM – 6 PM, Fri 9 AM – 9 PM")
	for _, p := range schedule.Periods {
		if p.Open.Day == Friday && p.Close.Time.Hour != 21 {
			t.Errorf("Friday closes at %+v, want 21:00", p.Close.Time)
		}
	}
}

func TestParseSkipsMalformedClause(t *testing.T) {
	// The malformed middle clause is dropped; the surrounding clauses
	// still produce a schedule.
	schedule := mustParse(t, "Mon 9 AM – 5 PM, Tue 99:99 – 5 PM, Wed 9 AM – 5 PM")
	var days []Weekday
	for _, p := range schedule.Periods {
		days = append(days, p.Open.Day)
	}
	if !reflect.DeepEqual(days, []Weekday{Monday, Wednesday}) {
		t.Errorf("open days = %v, want [Monday Wednesday]", days)
	}
}

func TestParseDeterministic(t *testing.T) {
	inputs := []string{
		"Daily 9am - 10pm",
		"Sun – Thurs 11 AM – 9 PM, Fri – Sat 11 AM – 9:15 PM",
		"7:30 AM – 2:30 PM (Mon – Fri), 7:30 AM – 1:30 PM (Sat), Closed (Sun)",
		"24 hours",
		"Daily 11 AM – 3 PM, 5 PM – 8:30 PM",
	}
	for _, input := range inputs {
		a := mustParse(t, input)
		b := mustParse(t, input)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Parse(%q) is not deterministic", input)
		}
	}
}

func TestScheduleInvariants(t *testing.T) {
	inputs := []string{
		"Daily 8 AM – 8 PM",
		"Mon – Wed 10 AM – 4 PM",
		"7:30 AM – 2:30 PM (Mon – Fri), Closed (Sat – Sun)",
		"Fri – Mon 6 PM – 11 PM",
	}
	wantPrefixes := []string{"Monday:", "Tuesday:", "Wednesday:", "Thursday:", "Friday:", "Saturday:", "Sunday:"}

	for _, input := range inputs {
		schedule := mustParse(t, input)
		if len(schedule.WeekdayText) != 7 {
			t.Fatalf("Parse(%q): weekday_text has %d lines", input, len(schedule.WeekdayText))
		}
		openDays := make(map[Weekday]bool)
		for _, p := range schedule.Periods {
			openDays[p.Open.Day] = true
		}
		for i, line := range schedule.WeekdayText {
			if !strings.HasPrefix(line, wantPrefixes[i]) {
				t.Errorf("Parse(%q): weekday_text[%d] = %q, want prefix %q", input, i, line, wantPrefixes[i])
			}
			day := weekdayOrder[i]
			if strings.HasSuffix(line, "Closed") == openDays[day] {
				t.Errorf("Parse(%q): closed marker and periods disagree for %s", input, day.Name())
			}
		}
	}
}

func TestDisplayRoundTrip(t *testing.T) {
	// A single-day line rendered by the builder must re-parse to the same
	// open/close pair through the enumeration rule's clause scanner.
	cases := []timeRange{
		{open: ClockTime{Hour: 9, Minute: 0}, close: ClockTime{Hour: 22, Minute: 0}},
		{open: ClockTime{Hour: 0, Minute: 0}, close: ClockTime{Hour: 12, Minute: 0}},
		{open: ClockTime{Hour: 7, Minute: 30}, close: ClockTime{Hour: 14, Minute: 5}},
		{open: ClockTime{Hour: 11, Minute: 45}, close: ClockTime{Hour: 23, Minute: 59}},
	}

	for day := Sunday; day <= Saturday; day++ {
		for _, tr := range cases {
			line := day.Name() + ": " + tr.open.Display() + " – " + tr.close.Display()
			scanned := enumeratedDaysRule{}.scan(line)
			periods := scanned[day]
			if len(periods) != 1 {
				t.Fatalf("scan(%q) found %d periods for %s", line, len(periods), day.Name())
			}
			if periods[0].Open.Time != tr.open || periods[0].Close.Time != tr.close {
				t.Errorf("scan(%q) = %+v, want open %+v close %+v", line, periods[0], tr.open, tr.close)
			}
		}
	}
}

func TestRulePrecedence(t *testing.T) {
	tests := []struct {
		input string
		rule  string
	}{
		{"Monday: 9 AM – 5 PM Tuesday: 9 AM – 5 PM Wednesday: 9 AM – 5 PM Thursday: 9 AM – 5 PM Friday: 9 AM – 5 PM", "per-day-enumerated"},
		{"Daily 8 AM – 8 PM", "daily-single"},
		{"10 AM – 7 PM (Daily)", "daily-suffixed"},
		{"Daily 11 AM – 3 PM, 5 PM – 8:30 PM", "daily-multi"},
		{"Sun – Thurs 11 AM – 9 PM", "day-range-prefixed"},
		{"7:30 AM – 2:30 PM (Mon – Fri)", "day-range-suffixed"},
		{"Open 24 hours", "24-hour"},
		{"9am - 10pm", "bare-range"},
	}

	for _, tt := range tests {
		matched := ""
		for _, rule := range DefaultRules {
			if _, ok := rule.Match(strings.TrimSpace(tt.input)); ok {
				matched = rule.Name()
				break
			}
		}
		if matched != tt.rule {
			t.Errorf("input %q matched rule %q, want %q", tt.input, matched, tt.rule)
		}
	}
}
