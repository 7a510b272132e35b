package fincast

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},
		{"2025-13-01", Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseDate(%q) error = %v, want error %v", tt.input, err, tt.err)
			}
			if got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDate_YearsUntil(t *testing.T) {
	asOf := NewDate(2026, time.August, 29)
	tests := []struct {
		name     string
		deadline Date
		want     int
	}{
		{"same day", asOf, 0},
		{"in the past", NewDate(2020, time.January, 1), 0},
		{"exact anniversary", NewDate(2031, time.August, 29), 5},
		{"partial year rounds up", NewDate(2027, time.March, 1), 1},
		{"just under four years", NewDate(2030, time.June, 15), 4},
		{"just over four years", NewDate(2030, time.September, 1), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := asOf.YearsUntil(tt.deadline); got != tt.want {
				t.Errorf("YearsUntil(%s) = %d, want %d", tt.deadline, got, tt.want)
			}
		})
	}
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2030, time.June, 1)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `"2030-06-01"` {
		t.Errorf("got %s, want \"2030-06-01\"", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip: got %v, want %v", back, d)
	}
}

func TestDate_Ordering(t *testing.T) {
	a := NewDate(2026, time.January, 1)
	b := NewDate(2026, time.January, 2)
	if !a.Before(b) || !b.After(a) || a.After(b) {
		t.Error("date ordering is inconsistent")
	}
	if a.IsZero() || !(Date{}).IsZero() {
		t.Error("IsZero is inconsistent")
	}
}
