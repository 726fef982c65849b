package course

import (
	"encoding/json"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestBaseCode(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"CS 246 A", "CS 246"},
		{"CMU-CS 246", "CMU-CS"},
		{"CS246", "CS246"},
		{"", ""},
		{"CS 246 ", "CS 246"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := BaseCode(tt.code); got != tt.want {
				t.Errorf("BaseCode(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestClassSchedule_MatchesCode(t *testing.T) {
	class := ClassSchedule{CourseCode: "CMU-CS 246 AIS"}

	tests := []struct {
		code string
		want bool
	}{
		{"CMU-CS 246 AIS", true},
		{"cmu-cs 246 ais", true},
		{"CS 246", true},
		{"CS 247", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := class.MatchesCode(tt.code); got != tt.want {
				t.Errorf("MatchesCode(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestSearchResult_Linked(t *testing.T) {
	tests := []struct {
		name   string
		result SearchResult
		want   bool
	}{
		{"both ids", SearchResult{CourseID: strPtr("10"), SemesterID: strPtr("80")}, true},
		{"missing course id", SearchResult{SemesterID: strPtr("80")}, false},
		{"missing semester id", SearchResult{CourseID: strPtr("10")}, false},
		{"empty course id", SearchResult{CourseID: strPtr(""), SemesterID: strPtr("80")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Linked(); got != tt.want {
				t.Errorf("Linked() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSearchResult_JSONNulls(t *testing.T) {
	data, err := json.Marshal(SearchResult{Code: "CS 246", Name: "Intro"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	want := `{"code":"CS 246","name":"Intro","courseId":null,"semesterId":null}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestNewRegistrationPeriod(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantNil  bool
		wantJSON string
	}{
		{
			name:     "two dates",
			raw:      "01/08/2026 15/08/2026",
			wantJSON: `{"start":"01/08/2026","end":"15/08/2026"}`,
		},
		{
			name:     "single token stays unsplit",
			raw:      "15/08/2026",
			wantJSON: `"15/08/2026"`,
		},
		{
			name:     "end is the second token",
			raw:      "01/08/2026 - 15/08/2026",
			wantJSON: `{"start":"01/08/2026","end":"-"}`,
		},
		{
			name:     "extra tokens dropped",
			raw:      "01/08/2026  15/08/2026 17:00",
			wantJSON: `{"start":"01/08/2026","end":"15/08/2026"}`,
		},
		{
			name:    "empty cell",
			raw:     "  ",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewRegistrationPeriod(tt.raw)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("NewRegistrationPeriod(%q) = %+v, want nil", tt.raw, got)
				}
				return
			}

			data, err := json.Marshal(got)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			if string(data) != tt.wantJSON {
				t.Errorf("Marshal() = %s, want %s", data, tt.wantJSON)
			}

			var decoded RegistrationPeriod
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			if decoded.Split != got.Split || decoded.Period != got.Period {
				t.Errorf("Unmarshal() = %+v, want %+v", decoded, *got)
			}
		})
	}
}

func TestClassSchedule_NilRegistrationPeriod(t *testing.T) {
	data, err := json.Marshal(ClassSchedule{})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	for _, key := range []string{"registrationPeriod", "schedule", "canceledWeeks"} {
		if string(fields[key]) != "null" {
			t.Errorf("%s = %s, want null", key, fields[key])
		}
	}
}

func TestPlaceholderStudyPeriod(t *testing.T) {
	// 06:30 in Ho Chi Minh City is still the previous day in UTC.
	now := time.Date(2026, 3, 2, 6, 30, 0, 0, time.FixedZone("ICT", 7*60*60))

	got := PlaceholderStudyPeriod(now)

	if got.Start != "2026-03-01" || got.End != "2026-03-02" {
		t.Errorf("PlaceholderStudyPeriod() = %+v, want 2026-03-01..2026-03-02", got)
	}
}
