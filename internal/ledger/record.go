package ledger

import (
	"strings"
	"time"
)

// BatchResult is the outcome of recording one submitted block of text.
type BatchResult struct {
	Recorded []Payment
	// Unknown holds candidate names that parsed as payments but matched no
	// roster member. They are warnings, not failures; the rest of the batch
	// still records.
	Unknown []string
}

// RecordBatch parses every line of a submitted message, appends a payment
// record for each line that names a roster member, and collects the unmatched
// names. Lines that do not look like payments are skipped silently. All
// records in the batch carry the same timestamp and attribution. The caller
// persists the ledger once afterwards if anything was recorded.
func (l *Ledger) RecordBatch(content, recordedBy string, now time.Time) BatchResult {
	var res BatchResult

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "@") {
			continue
		}

		name, amount, ok := ParsePaymentLine(line, l.Members)
		if !ok {
			continue
		}

		member, ok := l.Canonical(name)
		if !ok {
			res.Unknown = append(res.Unknown, name)
			continue
		}

		p := Payment{
			Member:     member,
			Amount:     amount,
			Date:       now.Format(DateFormat),
			Time:       now.Format(TimeFormat),
			Day:        now.Weekday().String(),
			RecordedBy: recordedBy,
		}
		l.Payments = append(l.Payments, p)
		res.Recorded = append(res.Recorded, p)
	}

	return res
}
