package ledger

import (
	"errors"
	"testing"
	"time"
)

func TestRecordBatch(t *testing.T) {
	led := &Ledger{Members: []string{"john", "mary"}}
	now := time.Date(2025, time.June, 4, 14, 5, 6, 0, time.UTC) // Wednesday

	content := "@john 50 paid\n@stranger 20 paid\n@mary 30\nnot a payment line"
	res := led.RecordBatch(content, "treasurer#1", now)

	if len(res.Recorded) != 2 {
		t.Fatalf("recorded %d payments, want 2", len(res.Recorded))
	}
	if len(res.Unknown) != 1 || res.Unknown[0] != "stranger" {
		t.Fatalf("unknown = %v, want [stranger]", res.Unknown)
	}
	if len(led.Payments) != 2 {
		t.Fatalf("ledger holds %d payments, want 2", len(led.Payments))
	}

	p := led.Payments[0]
	if p.Member != "john" || p.Amount != 50 {
		t.Errorf("first record = %+v", p)
	}
	if p.Date != "2025-06-04" || p.Time != "14:05:06" || p.Day != "Wednesday" {
		t.Errorf("timestamp fields = %q %q %q", p.Date, p.Time, p.Day)
	}
	if p.RecordedBy != "treasurer#1" {
		t.Errorf("recorded_by = %q", p.RecordedBy)
	}
	if led.Payments[1].RecordedBy != "treasurer#1" {
		t.Error("attribution should be constant across the batch")
	}
}

func TestRecordBatchNothingParseable(t *testing.T) {
	led := &Ledger{Members: []string{"john"}}
	res := led.RecordBatch("hello\n@john paid\njust chatting", "x", time.Now())

	if len(res.Recorded) != 0 || len(res.Unknown) != 0 {
		t.Fatalf("res = %+v, want empty", res)
	}
	if len(led.Payments) != 0 {
		t.Fatalf("ledger holds %d payments, want 0", len(led.Payments))
	}
}

func TestAddMember(t *testing.T) {
	led := &Ledger{}

	if _, err := led.AddMember("@John"); err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if len(led.Members) != 1 || led.Members[0] != "john" {
		t.Fatalf("members = %v, want [john]", led.Members)
	}

	// Duplicate in any casing fails and leaves the roster unchanged.
	if _, err := led.AddMember("JOHN"); !errors.Is(err, ErrDuplicateMember) {
		t.Fatalf("duplicate add: err = %v, want ErrDuplicateMember", err)
	}
	if len(led.Members) != 1 {
		t.Fatalf("members = %v after failed add", led.Members)
	}
}

func TestRemoveMember(t *testing.T) {
	led := &Ledger{Members: []string{"john", "mary"}}

	if _, err := led.RemoveMember("@Mary"); err != nil {
		t.Fatalf("RemoveMember: %v", err)
	}
	if len(led.Members) != 1 || led.Members[0] != "john" {
		t.Fatalf("members = %v, want [john]", led.Members)
	}

	if _, err := led.RemoveMember("mary"); !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("missing remove: err = %v, want ErrMemberNotFound", err)
	}
}

func TestSetupOverwritesRoster(t *testing.T) {
	led := &Ledger{Members: []string{"old1", "old2"}}

	members := led.Setup([]string{"@Alice", "Bob", "carol", "Dave"}, "chan-42")
	want := []string{"alice", "bob", "carol", "dave"}
	for i, m := range want {
		if members[i] != m {
			t.Fatalf("members = %v, want %v", members, want)
		}
	}
	if len(led.Members) != 4 {
		t.Fatalf("roster = %v, want 4 entries", led.Members)
	}
	if led.ReportChannel != "chan-42" {
		t.Errorf("report channel = %q", led.ReportChannel)
	}
}

func TestClearPayments(t *testing.T) {
	led := &Ledger{
		Members:  []string{"john"},
		Payments: []Payment{{Member: "john", Amount: 5, Date: "2025-06-03"}},
	}
	led.ClearPayments()
	if len(led.Payments) != 0 {
		t.Fatalf("payments = %v, want empty", led.Payments)
	}
	if len(led.Members) != 1 {
		t.Fatal("clear should not touch the roster")
	}
}
