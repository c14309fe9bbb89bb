package ledger

import (
	"strings"
	"testing"
	"time"
)

func TestWeeklyReportEmptyWeek(t *testing.T) {
	led := &Ledger{Members: []string{"john", "mary"}}
	now := date(2025, time.June, 8) // Sunday

	report := WeeklyReport(led, now)

	if got := strings.Count(report, "No payments recorded"); got != 5 {
		t.Errorf("empty-day markers = %d, want 5 (Tue through Sat)", got)
	}
	if !strings.Contains(report, "💰 WEEKLY TOTAL: $0.00") {
		t.Error("missing zero weekly total")
	}
	if !strings.Contains(report, "❌ @john: $0.00 (Days: None)") {
		t.Error("john should show unpaid at zero")
	}
	if !strings.Contains(report, "❌ @mary: $0.00 (Days: None)") {
		t.Error("mary should show unpaid at zero")
	}
	if !strings.Contains(report, "📆 June 03 - June 07, 2025") {
		t.Errorf("wrong date header in report:\n%s", report)
	}
}

func TestWeeklyReportTotals(t *testing.T) {
	led := &Ledger{
		Members: []string{"john", "mary"},
		Payments: []Payment{
			{Member: "john", Amount: 50, Date: "2025-06-03", Day: "Tuesday"},
			{Member: "john", Amount: 25, Date: "2025-06-05", Day: "Thursday"},
			{Member: "mary", Amount: 100, Date: "2025-06-03", Day: "Tuesday"},
			// Out of range, must not count.
			{Member: "mary", Amount: 999, Date: "2025-05-27", Day: "Tuesday"},
		},
	}
	report := WeeklyReport(led, date(2025, time.June, 8))

	if !strings.Contains(report, "💰 WEEKLY TOTAL: $175.00") {
		t.Errorf("weekly total wrong:\n%s", report)
	}
	if !strings.Contains(report, "✅ @john: $75.00 (Days: Tue, Thu)") {
		t.Errorf("john summary wrong:\n%s", report)
	}
	if !strings.Contains(report, "✅ @mary: $100.00 (Days: Tue)") {
		t.Errorf("mary summary wrong:\n%s", report)
	}
	if !strings.Contains(report, "   Daily Total: $150.00") {
		t.Error("missing Tuesday daily total")
	}
}

func TestWeeklyReportRemovedMember(t *testing.T) {
	// ghost paid and was then removed from the roster: the payment stays in
	// the daily listing but leaves the member summary and its totals alone.
	led := &Ledger{
		Members: []string{"john"},
		Payments: []Payment{
			{Member: "ghost", Amount: 40, Date: "2025-06-04", Day: "Wednesday"},
		},
	}
	report := WeeklyReport(led, date(2025, time.June, 8))

	if !strings.Contains(report, "• @ghost: $40.00") {
		t.Error("removed member's payment missing from daily listing")
	}
	if strings.Contains(report, "@ghost: $40.00 (Days:") {
		t.Error("removed member must not appear in the member summary")
	}
	if !strings.Contains(report, "💰 WEEKLY TOTAL: $40.00") {
		t.Error("week total should still include the payment")
	}
}

func TestWeeklyReportDeterministic(t *testing.T) {
	led := &Ledger{
		Members: []string{"john", "mary"},
		Payments: []Payment{
			{Member: "mary", Amount: 10, Date: "2025-06-06", Day: "Friday"},
		},
	}
	now := date(2025, time.June, 8)

	if WeeklyReport(led, now) != WeeklyReport(led, now) {
		t.Error("same ledger and now must render byte-identical reports")
	}
}

func TestTodaySummary(t *testing.T) {
	now := date(2025, time.June, 4) // Wednesday
	led := &Ledger{
		Members: []string{"john", "mary", "pete"},
		Payments: []Payment{
			{Member: "john", Amount: 50, Date: "2025-06-04"},
			{Member: "mary", Amount: 20, Date: "2025-06-03"},
		},
	}

	got := TodaySummary(led, now)
	if !strings.Contains(got, "Today's Summary (Wednesday, 2025-06-04)") {
		t.Errorf("header wrong:\n%s", got)
	}
	if !strings.Contains(got, "• @john: $50.00") {
		t.Errorf("missing john's payment:\n%s", got)
	}
	if !strings.Contains(got, "**Today's Total: $50.00**") {
		t.Errorf("total wrong:\n%s", got)
	}
	if !strings.Contains(got, "⏳ **Pending:** @mary, @pete") {
		t.Errorf("pending list wrong:\n%s", got)
	}
}

func TestTodaySummaryNoPayments(t *testing.T) {
	led := &Ledger{Members: []string{"john"}}
	got := TodaySummary(led, date(2025, time.June, 4))

	if !strings.Contains(got, "No payments recorded today.") {
		t.Errorf("missing empty marker:\n%s", got)
	}
	if !strings.Contains(got, "⏳ **Pending:** @john") {
		t.Errorf("pending list wrong:\n%s", got)
	}
}
