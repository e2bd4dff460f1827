package hours

import (
	"reflect"
	"testing"
)

func TestParseDayName(t *testing.T) {
	tests := []struct {
		token string
		want  Weekday
		ok    bool
	}{
		{"Mon", Monday, true},
		{"monday", Monday, true},
		{"MONDAY", Monday, true},
		{"Tue", Tuesday, true},
		{"Tues", Tuesday, true},
		{"Thu", Thursday, true},
		{"Thurs", Thursday, true},
		{"Thursday", Thursday, true},
		{"Sun", Sunday, true},
		{"Sat", Saturday, true},
		{" Wed ", Wednesday, true},
		{"", 0, false},
		{"Mo", 0, false},
		{"Daily", 0, false},
		{"noon", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseDayName(tt.token)
		if ok != tt.ok {
			t.Errorf("ParseDayName(%q) ok = %v, want %v", tt.token, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseDayName(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestDayRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end Weekday
		want       []Weekday
	}{
		{name: "forward", start: Monday, end: Friday, want: []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}},
		{name: "single day", start: Wednesday, end: Wednesday, want: []Weekday{Wednesday}},
		{name: "wraps past saturday", start: Friday, end: Monday, want: []Weekday{Friday, Saturday, Sunday, Monday}},
		{name: "full week from sunday", start: Sunday, end: Saturday, want: []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayRange(tt.start, tt.end); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DayRange(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestDayRangeCapped(t *testing.T) {
	// Even with an out-of-domain end value the walk must stop after at
	// most 7 steps instead of looping forever.
	got := DayRange(Monday, Weekday(12))
	if len(got) > 8 {
		t.Fatalf("DayRange walk not capped, got %d days", len(got))
	}
}
