package schedule

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/unicode/norm"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Schedule
	}{
		{
			name: "empty input",
			raw:  "",
			want: Schedule{Times: map[Day]TimeRange{}, CancelWeeks: map[Day][]int{}},
		},
		{
			name: "no day tokens",
			raw:  "Chưa xếp lịch",
			want: Schedule{Times: map[Day]TimeRange{}, CancelWeeks: map[Day][]int{}},
		},
		{
			name: "single day",
			raw:  "T2: 07:00-09:30",
			want: Schedule{
				Times:       map[Day]TimeRange{Monday: {Start: "07:00", End: "09:30"}},
				CancelWeeks: map[Day][]int{},
			},
		},
		{
			name: "two days with cancellations",
			raw:  "T2: 07:00-09:30 T5: 13:00-15:30 Tuần hủy: T2: Hủy 3,5,7",
			want: Schedule{
				Times: map[Day]TimeRange{
					Monday:   {Start: "07:00", End: "09:30"},
					Thursday: {Start: "13:00", End: "15:30"},
				},
				CancelWeeks: map[Day][]int{Monday: {3, 5, 7}},
			},
		},
		{
			name: "repeated day keeps last occurrence",
			raw:  "T3: 07:00-09:00 T3: 09:15-11:15",
			want: Schedule{
				Times:       map[Day]TimeRange{Tuesday: {Start: "09:15", End: "11:15"}},
				CancelWeeks: map[Day][]int{},
			},
		},
		{
			name: "spaces around dash",
			raw:  "T7:07:00 - 11:15",
			want: Schedule{
				Times:       map[Day]TimeRange{Saturday: {Start: "07:00", End: "11:15"}},
				CancelWeeks: map[Day][]int{},
			},
		},
		{
			name: "sunday token ignored",
			raw:  "CN: 07:00-09:00 T6: 15:15-17:15",
			want: Schedule{
				Times:       map[Day]TimeRange{Friday: {Start: "15:15", End: "17:15"}},
				CancelWeeks: map[Day][]int{},
			},
		},
		{
			name: "cancellations for several days keep order and duplicates",
			raw:  "T2: 07:00-09:30 T4: 07:00-09:30 Tuần hủy: T2: Hủy 9, 4, 4 T4: Hủy 12",
			want: Schedule{
				Times: map[Day]TimeRange{
					Monday:    {Start: "07:00", End: "09:30"},
					Wednesday: {Start: "07:00", End: "09:30"},
				},
				CancelWeeks: map[Day][]int{Monday: {9, 4, 4}, Wednesday: {12}},
			},
		},
		{
			name: "day tokens after marker are not meeting times",
			raw:  "T2: 07:00-09:30 Tuần hủy: T3: 07:00-09:30",
			want: Schedule{
				Times:       map[Day]TimeRange{Monday: {Start: "07:00", End: "09:30"}},
				CancelWeeks: map[Day][]int{},
			},
		},
		{
			name: "trailing comma dropped",
			raw:  "T5: 13:00-15:30 Tuần hủy: T5: Hủy 2,",
			want: Schedule{
				Times:       map[Day]TimeRange{Thursday: {Start: "13:00", End: "15:30"}},
				CancelWeeks: map[Day][]int{Thursday: {2}},
			},
		},
		{
			name: "decomposed diacritics",
			raw:  norm.NFD.String("T2: 07:00-09:30 Tuần hủy: T2: Hủy 1"),
			want: Schedule{
				Times:       map[Day]TimeRange{Monday: {Start: "07:00", End: "09:30"}},
				CancelWeeks: map[Day][]int{Monday: {1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestParse_MapsNeverNil(t *testing.T) {
	got := Parse("garbage")
	if got.Times == nil || got.CancelWeeks == nil {
		t.Fatalf("Parse() returned nil maps: %+v", got)
	}
}

func TestDay_Weekday(t *testing.T) {
	tests := []struct {
		day     Day
		want    time.Weekday
		offset  int
		isValid bool
	}{
		{Monday, time.Monday, 0, true},
		{Tuesday, time.Tuesday, 1, true},
		{Wednesday, time.Wednesday, 2, true},
		{Thursday, time.Thursday, 3, true},
		{Friday, time.Friday, 4, true},
		{Saturday, time.Saturday, 5, true},
		{Day("CN"), time.Sunday, -1, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.day), func(t *testing.T) {
			if got := tt.day.Valid(); got != tt.isValid {
				t.Errorf("Valid() = %v, want %v", got, tt.isValid)
			}
			if got := tt.day.Weekday(); got != tt.want {
				t.Errorf("Weekday() = %v, want %v", got, tt.want)
			}
			if got := tt.day.Offset(); got != tt.offset {
				t.Errorf("Offset() = %d, want %d", got, tt.offset)
			}
		})
	}
}

func TestSchedule_IsCancelled(t *testing.T) {
	s := Parse("T2: 07:00-09:30 Tuần hủy: T2: Hủy 3,5")

	if !s.IsCancelled(Monday, 5) {
		t.Error("IsCancelled(T2, 5) = false, want true")
	}
	if s.IsCancelled(Monday, 4) {
		t.Error("IsCancelled(T2, 4) = true, want false")
	}
	if s.IsCancelled(Tuesday, 3) {
		t.Error("IsCancelled(T3, 3) = true, want false")
	}
}
