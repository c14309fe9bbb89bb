package commands

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/ktsuji/shorekeeper/internal/db"
	"github.com/ktsuji/shorekeeper/internal/ledger"
)

func HandleToday(s *discordgo.Session, i *discordgo.InteractionCreate, store *db.DB, now time.Time) {
	led, err := store.LoadLedger(context.Background())
	if err != nil {
		respond(s, i, "❌ Failed to load collection data.")
		return
	}
	respond(s, i, ledger.TodaySummary(led, now))
}

func HandleReport(s *discordgo.Session, i *discordgo.InteractionCreate, store *db.DB, now time.Time) {
	led, err := store.LoadLedger(context.Background())
	if err != nil {
		respond(s, i, "❌ Failed to load collection data.")
		return
	}
	respond(s, i, ledger.WeeklyReport(led, now))
}

func HandleClear(s *discordgo.Session, i *discordgo.InteractionCreate, store *db.DB) {
	ctx := context.Background()
	led, err := store.LoadLedger(ctx)
	if err != nil {
		respond(s, i, "❌ Failed to load collection data.")
		return
	}

	led.ClearPayments()
	if err := store.SaveLedger(ctx, led); err != nil {
		respond(s, i, "❌ Failed to save collection data.")
		return
	}
	respond(s, i, "✅ All payment data cleared! Ready for new week.")
}

func HandleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	respond(s, i, helpText)
}

const helpText = `**💰 Money Collection Bot - Help**

**Recording Payments (Tue-Sat only):**
Just type in chat: ` + "`@username amount paid`" + `
Example: ` + "`@john 50 paid`" + ` or ` + "`@mary 100`" + `

**Commands:**
• ` + "`/setup`" + ` - Set up 4 members
• ` + "`/addmember`" + ` - Add a member
• ` + "`/removemember`" + ` - Remove a member
• ` + "`/members`" + ` - Show all members
• ` + "`/today`" + ` - Today's summary
• ` + "`/report`" + ` - Weekly report
• ` + "`/clear`" + ` - Clear data for new week
• ` + "`/help`" + ` - This help message

**Schedule:**
• **Tuesday-Saturday:** Collection days
• **Sunday 9 AM:** Automatic weekly report
• **Monday:** Rest day`
