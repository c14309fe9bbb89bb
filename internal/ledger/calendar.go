package ledger

import "time"

// DateFormat is the calendar-date key used for payment bucketing.
const DateFormat = "2006-01-02"

// TimeFormat is the time-of-day stamp on a payment record.
const TimeFormat = "15:04:05"

// IsCollectionDay reports whether payments may be recorded: Tuesday through
// Saturday. Monday is the rest day, Sunday is report day.
func IsCollectionDay(now time.Time) bool {
	switch now.Weekday() {
	case time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday:
		return true
	}
	return false
}

// IsReportDay reports whether the weekly report is due (Sunday).
func IsReportDay(now time.Time) bool {
	return now.Weekday() == time.Sunday
}

// WeekRange returns the Tuesday and Saturday of the active reporting week.
// On Sunday that is the week that just finished. On Monday, the rest day, the
// range backs up six days to the same finished week.
func WeekRange(now time.Time) (tuesday, saturday time.Time) {
	var back int
	switch wd := now.Weekday(); {
	case wd == time.Sunday:
		back = 5
	case wd == time.Monday:
		back = 6
	default:
		back = int(wd - time.Tuesday)
	}

	t := now.AddDate(0, 0, -back)
	tuesday = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	saturday = tuesday.AddDate(0, 0, 4)
	return tuesday, saturday
}
