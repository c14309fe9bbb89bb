package api

import (
	"encoding/json"
	"net/http"

	"github.com/ktsuji/shorekeeper/internal/ledger"
)

func (a *API) handleMembers(w http.ResponseWriter, r *http.Request) {
	led, err := a.store.LoadLedger(r.Context())
	if err != nil {
		http.Error(w, "failed to load ledger", http.StatusInternalServerError)
		return
	}

	members := led.Members
	if members == nil {
		members = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(members)
}

// handlePayments lists payment records, optionally filtered to one calendar
// date via ?date=2006-01-02.
func (a *API) handlePayments(w http.ResponseWriter, r *http.Request) {
	led, err := a.store.LoadLedger(r.Context())
	if err != nil {
		http.Error(w, "failed to load ledger", http.StatusInternalServerError)
		return
	}

	payments := led.Payments
	if date := r.URL.Query().Get("date"); date != "" {
		payments = led.PaymentsOn(date)
	}
	if payments == nil {
		payments = []ledger.Payment{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payments)
}

func (a *API) handleReport(w http.ResponseWriter, r *http.Request) {
	led, err := a.store.LoadLedger(r.Context())
	if err != nil {
		http.Error(w, "failed to load ledger", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"report": ledger.WeeklyReport(led, a.now()),
	})
}

func (a *API) handleToday(w http.ResponseWriter, r *http.Request) {
	led, err := a.store.LoadLedger(r.Context())
	if err != nil {
		http.Error(w, "failed to load ledger", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"summary": ledger.TodaySummary(led, a.now()),
	})
}
