package stockbook

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2025-03-01", NewDate(2025, time.March, 1), false},
		{"2025-3-1", NewDate(2025, time.March, 1), false},
		{"01-03-2025", Date{}, true},
		{"not a date", Date{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDate_normalizationAndArithmetic(t *testing.T) {
	// Out-of-range days normalize like time.Date does.
	if got := NewDate(2025, time.January, 32); got != NewDate(2025, time.February, 1) {
		t.Errorf("NewDate normalization = %v", got)
	}
	if got := MustParseDate("2025-02-28").Add(1); got != NewDate(2025, time.March, 1) {
		t.Errorf("Add(1) = %v, want 2025-03-01", got)
	}
	if got := MustParseDate("2025-03-01").Add(-1); got != NewDate(2025, time.February, 28) {
		t.Errorf("Add(-1) = %v, want 2025-02-28", got)
	}
}

func TestDate_ordering(t *testing.T) {
	a := MustParseDate("2025-03-01")
	b := MustParseDate("2025-03-02")
	if !a.Before(b) || b.Before(a) || !b.After(a) {
		t.Error("date ordering is wrong")
	}
	if a.Before(a) || a.After(a) {
		t.Error("a date neither precedes nor follows itself")
	}
}

func TestDate_jsonRoundTrip(t *testing.T) {
	d := MustParseDate("2025-03-01")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2025-03-01"` {
		t.Errorf("marshalled = %s, want \"2025-03-01\"", data)
	}
	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got != d {
		t.Errorf("round trip = %v, want %v", got, d)
	}
}

func TestDate_zeroValue(t *testing.T) {
	var d Date
	if !d.IsZero() {
		t.Error("zero Date must report IsZero")
	}
	if Today().IsZero() {
		t.Error("Today() must not be zero")
	}
}
