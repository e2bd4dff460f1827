package hours

import "strings"

// TimePoint is one endpoint of a period: a weekday plus a wall-clock time.
type TimePoint struct {
	Day  Weekday   `json:"day"`
	Time ClockTime `json:"time"`
}

// Period is one contiguous open interval. A day with a lunch/dinner split
// produces two periods sharing the same day. Open/close ordering is stored
// as given by the source listing and is not validated here.
type Period struct {
	Open  TimePoint `json:"open"`
	Close TimePoint `json:"close"`
}

// Schedule is the canonical weekly representation: a flat period list plus
// a seven-line human-readable summary. WeekdayText always has exactly 7
// entries in Monday-first order, and Periods follows the same day order.
type Schedule struct {
	Periods     []Period `json:"periods"`
	WeekdayText []string `json:"weekday_text"`
}

// buildSchedule assembles the canonical schedule from a per-day period map.
// Days are emitted in the fixed Monday-first order regardless of how the
// recognizer populated the map, so output is deterministic. Days without an
// entry render as "<Day>: Closed" and contribute no period.
func buildSchedule(dayPeriods map[Weekday][]Period) *Schedule {
	schedule := &Schedule{
		Periods:     []Period{},
		WeekdayText: make([]string, 0, 7),
	}
	for _, day := range weekdayOrder {
		periods := dayPeriods[day]
		if len(periods) == 0 {
			schedule.WeekdayText = append(schedule.WeekdayText, day.Name()+": Closed")
			continue
		}
		segments := make([]string, 0, len(periods))
		for _, p := range periods {
			segments = append(segments, p.Open.Time.Display()+" – "+p.Close.Time.Display())
		}
		schedule.WeekdayText = append(schedule.WeekdayText, day.Name()+": "+strings.Join(segments, ", "))
		schedule.Periods = append(schedule.Periods, periods...)
	}
	return schedule
}

// uniformPeriods applies the same set of time ranges to all 7 days.
func uniformPeriods(ranges []timeRange) map[Weekday][]Period {
	dayPeriods := make(map[Weekday][]Period, 7)
	for day := Sunday; day <= Saturday; day++ {
		for _, tr := range ranges {
			dayPeriods[day] = append(dayPeriods[day], tr.periodOn(day))
		}
	}
	return dayPeriods
}

// timeRange is an open/close pair before it is bound to a day.
type timeRange struct {
	open  ClockTime
	close ClockTime
}

func (tr timeRange) periodOn(day Weekday) Period {
	return Period{
		Open:  TimePoint{Day: day, Time: tr.open},
		Close: TimePoint{Day: day, Time: tr.close},
	}
}
