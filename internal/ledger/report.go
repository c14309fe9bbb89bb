package ledger

import (
	"fmt"
	"strings"
	"time"
)

// WeeklyReport renders the Tuesday-to-Saturday breakdown for the active week:
// a daily listing, a per-member summary in roster order and the week total.
// Output is deterministic for a given ledger and now.
func WeeklyReport(l *Ledger, now time.Time) string {
	tuesday, saturday := WeekRange(now)

	var b strings.Builder
	b.WriteString("```\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	b.WriteString("📊 WEEKLY MONEY COLLECTION REPORT\n")
	fmt.Fprintf(&b, "📆 %s - %s\n", tuesday.Format("January 02"), saturday.Format("January 02, 2006"))
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	b.WriteString("📋 DAILY BREAKDOWN:\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")

	var weekTotal float64
	memberTotals := make(map[string]float64, len(l.Members))
	memberDays := make(map[string][]string, len(l.Members))
	for _, m := range l.Members {
		memberTotals[m] = 0
		memberDays[m] = nil
	}

	for d := tuesday; !d.After(saturday); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(DateFormat)
		dayName := d.Weekday().String()
		dayPayments := l.PaymentsOn(dateStr)

		fmt.Fprintf(&b, "\n📅 %s (%s):\n", dayName, dateStr)

		if len(dayPayments) == 0 {
			b.WriteString("   No payments recorded\n")
			continue
		}

		var dailyTotal float64
		for _, p := range dayPayments {
			fmt.Fprintf(&b, "   • @%s: $%.2f\n", p.Member, p.Amount)
			dailyTotal += p.Amount
			weekTotal += p.Amount
			// Payments by since-removed members show in the listing
			// but stay out of the member summary.
			if _, ok := memberTotals[p.Member]; ok {
				memberTotals[p.Member] += p.Amount
				memberDays[p.Member] = append(memberDays[p.Member], dayName[:3])
			}
		}
		fmt.Fprintf(&b, "   Daily Total: $%.2f\n", dailyTotal)
	}

	b.WriteString("\n" + strings.Repeat("-", 40) + "\n")
	b.WriteString("👥 MEMBER SUMMARY:\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")

	for _, m := range l.Members {
		status := "❌"
		if memberTotals[m] > 0 {
			status = "✅"
		}
		days := "None"
		if len(memberDays[m]) > 0 {
			days = strings.Join(memberDays[m], ", ")
		}
		fmt.Fprintf(&b, "%s @%s: $%.2f (Days: %s)\n", status, m, memberTotals[m], days)
	}

	b.WriteString("\n" + strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "💰 WEEKLY TOTAL: $%.2f\n", weekTotal)
	b.WriteString(strings.Repeat("=", 50) + "\n")
	b.WriteString("```")

	return b.String()
}

// TodaySummary renders the current day's payments, total and pending members.
func TodaySummary(l *Ledger, now time.Time) string {
	dateStr := now.Format(DateFormat)
	dayName := now.Weekday().String()

	var b strings.Builder
	fmt.Fprintf(&b, "📊 **Today's Summary (%s, %s)**\n", dayName, dateStr)
	b.WriteString(strings.Repeat("-", 30) + "\n")

	todayPayments := l.PaymentsOn(dateStr)
	if len(todayPayments) == 0 {
		b.WriteString("No payments recorded today.\n")
	} else {
		var total float64
		for _, p := range todayPayments {
			fmt.Fprintf(&b, "• @%s: $%.2f\n", p.Member, p.Amount)
			total += p.Amount
		}
		b.WriteString(strings.Repeat("-", 30) + "\n")
		fmt.Fprintf(&b, "**Today's Total: $%.2f**\n", total)
	}

	if pending := l.Pending(dateStr); len(pending) > 0 {
		fmt.Fprintf(&b, "\n⏳ **Pending:** %s", joinMentions(pending))
	}

	return b.String()
}

func joinMentions(names []string) string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = "@" + n
	}
	return strings.Join(out, ", ")
}
