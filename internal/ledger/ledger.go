package ledger

import (
	"errors"
	"strings"
)

var (
	ErrDuplicateMember = errors.New("member already registered")
	ErrMemberNotFound  = errors.New("member not found")
)

// Payment is one recorded contribution. Records are append-only; the only
// removal is the bulk clear of the whole collection.
type Payment struct {
	Member     string  `json:"member"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Day        string  `json:"day"`
	RecordedBy string  `json:"recorded_by"`
}

// Ledger is the in-memory collection state. Callers load it from storage,
// mutate it through the methods here and persist it back; the ledger itself
// does no I/O and no locking.
type Ledger struct {
	Payments      []Payment `json:"payments"`
	Members       []string  `json:"members"`
	ReportChannel string    `json:"report_channel"`
}

// NormalizeName lowercases a member name and strips the leading @ sigil.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.TrimPrefix(name, "@")
}

// Canonical resolves a name against the roster case-insensitively and returns
// the roster's casing.
func (l *Ledger) Canonical(name string) (string, bool) {
	for _, m := range l.Members {
		if strings.EqualFold(m, name) {
			return m, true
		}
	}
	return "", false
}

// AddMember appends a member to the roster, preserving insertion order.
// Returns the normalized name that was stored.
func (l *Ledger) AddMember(name string) (string, error) {
	name = NormalizeName(name)
	if _, ok := l.Canonical(name); ok {
		return name, ErrDuplicateMember
	}
	l.Members = append(l.Members, name)
	return name, nil
}

// RemoveMember drops a member from the roster. Historical payments by the
// member stay in the ledger.
func (l *Ledger) RemoveMember(name string) (string, error) {
	name = NormalizeName(name)
	for i, m := range l.Members {
		if strings.EqualFold(m, name) {
			l.Members = append(l.Members[:i], l.Members[i+1:]...)
			return name, nil
		}
	}
	return name, ErrMemberNotFound
}

// Setup replaces the entire roster with the given names and sets the report
// destination. This is an unconditional overwrite with no dedup check.
func (l *Ledger) Setup(names []string, reportChannel string) []string {
	members := make([]string, 0, len(names))
	for _, n := range names {
		members = append(members, NormalizeName(n))
	}
	l.Members = members
	l.ReportChannel = reportChannel
	return members
}

// ClearPayments empties the payment collection for a new week.
func (l *Ledger) ClearPayments() {
	l.Payments = nil
}

// PaymentsOn returns the payments recorded on the given date (2006-01-02).
func (l *Ledger) PaymentsOn(date string) []Payment {
	var out []Payment
	for _, p := range l.Payments {
		if p.Date == date {
			out = append(out, p)
		}
	}
	return out
}

// Pending returns the roster members without a payment on the given date,
// in roster order.
func (l *Ledger) Pending(date string) []string {
	paid := make(map[string]struct{})
	for _, p := range l.PaymentsOn(date) {
		paid[p.Member] = struct{}{}
	}
	var out []string
	for _, m := range l.Members {
		if _, ok := paid[m]; !ok {
			out = append(out, m)
		}
	}
	return out
}
