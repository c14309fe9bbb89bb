package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ktsuji/shorekeeper/internal/ledger"
)

// LoadLedger reads the full collection document: payments in insertion order,
// the roster in position order and the report destination.
func (db *DB) LoadLedger(ctx context.Context) (*ledger.Ledger, error) {
	led := &ledger.Ledger{}

	rows, err := db.pool.Query(ctx,
		"SELECT member, amount, date, time, day, recorded_by FROM payments ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p ledger.Payment
		if err := rows.Scan(&p.Member, &p.Amount, &p.Date, &p.Time, &p.Day, &p.RecordedBy); err != nil {
			return nil, err
		}
		led.Payments = append(led.Payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	memberRows, err := db.pool.Query(ctx, "SELECT name FROM members ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var name string
		if err := memberRows.Scan(&name); err != nil {
			return nil, err
		}
		led.Members = append(led.Members, name)
	}
	if err := memberRows.Err(); err != nil {
		return nil, err
	}

	err = db.pool.QueryRow(ctx, "SELECT report_channel FROM settings WHERE id = 1").
		Scan(&led.ReportChannel)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return led, nil
}

// SaveLedger writes the whole document back in one transaction. The ledger is
// a small replace-on-save document (a handful of members, one week of
// payments), so a delete-and-reinsert keeps the save boundary atomic without
// tracking per-row dirtiness.
func (db *DB) SaveLedger(ctx context.Context, led *ledger.Ledger) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM payments"); err != nil {
		return err
	}
	for _, p := range led.Payments {
		_, err := tx.Exec(ctx,
			"INSERT INTO payments (member, amount, date, time, day, recorded_by) VALUES ($1, $2, $3, $4, $5, $6)",
			p.Member, p.Amount, p.Date, p.Time, p.Day, p.RecordedBy,
		)
		if err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, "DELETE FROM members"); err != nil {
		return err
	}
	for i, name := range led.Members {
		_, err := tx.Exec(ctx,
			"INSERT INTO members (position, name) VALUES ($1, $2)",
			i, name,
		)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO settings (id, report_channel) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET report_channel = EXCLUDED.report_channel`,
		led.ReportChannel,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}
