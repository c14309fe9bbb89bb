package ledger

import (
	"testing"
	"time"
)

// 2025-06-01 is a Sunday.
func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 30, 0, 0, time.UTC)
}

func TestIsCollectionDay(t *testing.T) {
	tests := []struct {
		day  time.Time
		want bool
	}{
		{date(2025, time.June, 1), false}, // Sunday
		{date(2025, time.June, 2), false}, // Monday
		{date(2025, time.June, 3), true},  // Tuesday
		{date(2025, time.June, 4), true},  // Wednesday
		{date(2025, time.June, 5), true},  // Thursday
		{date(2025, time.June, 6), true},  // Friday
		{date(2025, time.June, 7), true},  // Saturday
	}

	for _, tt := range tests {
		t.Run(tt.day.Weekday().String(), func(t *testing.T) {
			if got := IsCollectionDay(tt.day); got != tt.want {
				t.Errorf("IsCollectionDay(%s) = %v, want %v", tt.day.Weekday(), got, tt.want)
			}
		})
	}
}

func TestIsReportDay(t *testing.T) {
	if !IsReportDay(date(2025, time.June, 1)) {
		t.Error("IsReportDay(Sunday) = false, want true")
	}
	for d := 2; d <= 7; d++ {
		day := date(2025, time.June, d)
		if IsReportDay(day) {
			t.Errorf("IsReportDay(%s) = true, want false", day.Weekday())
		}
	}
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name         string
		now          time.Time
		wantTuesday  string
		wantSaturday string
	}{
		{
			name:         "Sunday reports the finished week",
			now:          date(2025, time.June, 8),
			wantTuesday:  "2025-06-03",
			wantSaturday: "2025-06-07",
		},
		{
			name:         "Monday backs up to the finished week",
			now:          date(2025, time.June, 9),
			wantTuesday:  "2025-06-03",
			wantSaturday: "2025-06-07",
		},
		{
			name:         "Tuesday starts its own week",
			now:          date(2025, time.June, 3),
			wantTuesday:  "2025-06-03",
			wantSaturday: "2025-06-07",
		},
		{
			name:         "Wednesday backs up one day",
			now:          date(2025, time.June, 4),
			wantTuesday:  "2025-06-03",
			wantSaturday: "2025-06-07",
		},
		{
			name:         "Saturday ends its own week",
			now:          date(2025, time.June, 7),
			wantTuesday:  "2025-06-03",
			wantSaturday: "2025-06-07",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuesday, saturday := WeekRange(tt.now)
			if got := tuesday.Format(DateFormat); got != tt.wantTuesday {
				t.Errorf("tuesday = %s, want %s", got, tt.wantTuesday)
			}
			if got := saturday.Format(DateFormat); got != tt.wantSaturday {
				t.Errorf("saturday = %s, want %s", got, tt.wantSaturday)
			}
			if tuesday.Weekday() != time.Tuesday {
				t.Errorf("tuesday falls on %s", tuesday.Weekday())
			}
			if saturday.Weekday() != time.Saturday {
				t.Errorf("saturday falls on %s", saturday.Weekday())
			}
		})
	}
}
