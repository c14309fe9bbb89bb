package bot

import (
	"context"
	"log"
	"math/rand"
	"net"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/ktsuji/shorekeeper/internal/config"
	"github.com/ktsuji/shorekeeper/internal/ledger"
)

// reportHour is the local hour on Sunday the weekly report goes out.
const reportHour = 9

// reportWorker posts the weekly collection report every Sunday morning. It
// ticks hourly; the report log in the database makes the post idempotent per
// week, so neither the hourly re-check nor a restart causes a duplicate.
type reportWorker struct {
	store    reportStore
	cfg      *config.Config
	session  reportSession
	now      func() time.Time
	stopChan chan struct{}
	ticker   *time.Ticker
	interval time.Duration
}

// Minimal session interface for sending channel messages.
type reportSession interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// reportStore is the ledger read plus the per-week delivery log.
type reportStore interface {
	LoadLedger(ctx context.Context) (*ledger.Ledger, error)
	ReportSent(ctx context.Context, weekStart string) (bool, error)
	MarkReportSent(ctx context.Context, weekStart string, sentAt time.Time) error
}

func newReportWorker(session reportSession, store reportStore, cfg *config.Config, now func() time.Time) *reportWorker {
	return &reportWorker{
		store:    store,
		cfg:      cfg,
		session:  session,
		now:      now,
		stopChan: make(chan struct{}),
		interval: time.Hour,
	}
}

func (w *reportWorker) start() {
	if w == nil {
		return
	}
	w.ticker = time.NewTicker(w.interval)
	go w.loop()
}

func (w *reportWorker) stop() {
	if w == nil {
		return
	}
	close(w.stopChan)
	if w.ticker != nil {
		w.ticker.Stop()
	}
}

func (w *reportWorker) loop() {
	ctx := context.Background()
	for {
		select {
		case <-w.ticker.C:
			w.tick(ctx)
		case <-w.stopChan:
			return
		}
	}
}

func (w *reportWorker) tick(ctx context.Context) {
	now := w.now()
	if !ledger.IsReportDay(now) || now.Hour() != reportHour {
		return
	}

	led, err := w.store.LoadLedger(ctx)
	if err != nil {
		log.Printf("report: failed to load ledger: %v", err)
		return
	}

	channelID := led.ReportChannel
	if channelID == "" {
		channelID = w.cfg.ReportChannelID
	}
	if channelID == "" {
		log.Println("report: no report channel configured, skipping")
		return
	}

	tuesday, _ := ledger.WeekRange(now)
	weekStart := tuesday.Format(ledger.DateFormat)

	sent, err := w.store.ReportSent(ctx, weekStart)
	if err != nil {
		log.Printf("report: failed to check report log: %v", err)
		return
	}
	if sent {
		return
	}

	report := ledger.WeeklyReport(led, now)
	if err := w.sendWithRetry(ctx, channelID, "📢 **WEEKLY REPORT - Sunday Update**"); err != nil {
		log.Printf("report: failed to send report header to channel %s: %v", channelID, err)
		return
	}
	if err := w.sendWithRetry(ctx, channelID, report); err != nil {
		log.Printf("report: failed to send report to channel %s: %v", channelID, err)
		return
	}

	if err := w.store.MarkReportSent(ctx, weekStart, now); err != nil {
		log.Printf("report: failed to mark report sent for week %s: %v", weekStart, err)
		return
	}
	log.Printf("report: weekly report for week of %s posted to channel %s", weekStart, channelID)
}

func (w *reportWorker) sendWithRetry(ctx context.Context, channelID, content string) error {
	const attemptTimeout = 12 * time.Second
	const maxAttempts = 2

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		sendCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		_, err := w.session.ChannelMessageSend(channelID, content, discordgo.WithContext(sendCtx))
		cancel()
		if err == nil {
			return nil
		}
		lastErr = err
		if !isTemporaryOrTimeout(err) {
			return err
		}
		time.Sleep(time.Duration(300+rand.Intn(500)) * time.Millisecond)
	}
	return lastErr
}

func isTemporaryOrTimeout(err error) bool {
	if err == nil {
		return false
	}
	if ne, ok := err.(net.Error); ok {
		return ne.Timeout() || ne.Temporary()
	}
	return false
}
