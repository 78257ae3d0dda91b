package triage

import "testing"

func TestExtractWeek(t *testing.T) {
	tests := []struct {
		name  string
		input string
		week  int
		found bool
	}{
		{"weeks plural", "I am 6 weeks pregnant", 6, true},
		{"week singular", "currently 20 week along", 20, true},
		{"no number", "no weeks mentioned", 0, false},
		{"no week word", "I am 6 months along", 0, false},
		{"uppercase", "I am 14 WEEKS pregnant", 14, true},
		{"no whitespace", "32weeks and counting", 32, true},
		{"week zero", "0 weeks since conception", 0, true},
		{"first match wins", "was 6 weeks, now 9 weeks", 6, true},
		{"no upper bound check", "99 weeks", 99, true},
		{"empty input", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week, found := ExtractWeek(tt.input)
			if found != tt.found {
				t.Fatalf("ExtractWeek(%q) found = %v, want %v", tt.input, found, tt.found)
			}
			if week != tt.week {
				t.Errorf("ExtractWeek(%q) = %d, want %d", tt.input, week, tt.week)
			}
		})
	}
}

func TestExtractWeek_ZeroDistinguishedFromAbsent(t *testing.T) {
	week, found := ExtractWeek("0 weeks")
	if !found || week != 0 {
		t.Fatalf("expected week 0 to be found, got (%d, %v)", week, found)
	}

	_, found = ExtractWeek("pregnant")
	if found {
		t.Fatal("expected no week for input without a week mention")
	}
}
