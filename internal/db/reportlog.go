package db

import (
	"context"
	"time"
)

// ReportSent reports whether the weekly report for the week starting at
// weekStart (2006-01-02, a Tuesday) has already been delivered. The log
// survives restarts so the scheduler never posts the same week twice.
func (db *DB) ReportSent(ctx context.Context, weekStart string) (bool, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM report_log WHERE week_start = $1",
		weekStart,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// MarkReportSent records a delivered weekly report.
func (db *DB) MarkReportSent(ctx context.Context, weekStart string, sentAt time.Time) error {
	_, err := db.pool.Exec(ctx,
		"INSERT INTO report_log (week_start, sent_at) VALUES ($1, $2) ON CONFLICT (week_start) DO NOTHING",
		weekStart, sentAt,
	)
	return err
}
