package bot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/ktsuji/shorekeeper/internal/commands"
	"github.com/ktsuji/shorekeeper/internal/ledger"
)

// ledgerStore is the load/save boundary the message flow works against.
type ledgerStore interface {
	LoadLedger(ctx context.Context) (*ledger.Ledger, error)
	SaveLedger(ctx context.Context, led *ledger.Ledger) error
}

func (b *Bot) onReady(s *discordgo.Session, event *discordgo.Ready) {
	log.Printf("%s is connected!", event.User.Username)
	log.Printf("Today is %s", b.now().Weekday())

	// Register commands for all guilds
	for _, guild := range event.Guilds {
		if err := b.registerGuildCommands(guild.ID); err != nil {
			log.Printf("Failed to register commands for guild %s: %v", guild.ID, err)
		}
	}
}

func (b *Bot) onGuildCreate(s *discordgo.Session, event *discordgo.GuildCreate) {
	log.Printf("Guild available/joined: %s (id=%s) — ensuring commands", event.Name, event.ID)
	if err := b.registerGuildCommands(event.ID); err != nil {
		log.Printf("Failed to register commands for guild %s: %v", event.ID, err)
	}
}

func (b *Bot) registerGuildCommands(guildID string) error {
	cmds := commands.GetCommands()
	// Delete existing commands and register new ones
	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, guildID, cmds)
	if err != nil {
		return err
	}

	log.Printf("Registered application commands for guild %s", guildID)
	return nil
}

// onMessageCreate listens for free-text payment lines like "@john 50 paid".
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore bot messages
	if m.Author.Bot {
		return
	}

	content := strings.TrimSpace(m.Content)
	if !looksLikePayment(content) {
		return
	}

	now := b.now()
	if !ledger.IsCollectionDay(now) {
		s.ChannelMessageSend(m.ChannelID,
			fmt.Sprintf("❌ Today is %s. Collection is only **Tuesday to Saturday**!", now.Weekday()))
		return
	}

	reply, err := processPaymentMessage(context.Background(), b.db, content, authorTag(m.Author), now)
	if err != nil {
		log.Printf("Failed to process payment message: %v", err)
		return
	}
	if reply != "" {
		s.ChannelMessageSend(m.ChannelID, reply)
	}
}

// looksLikePayment is a cheap pre-filter: a mention plus a digit somewhere.
func looksLikePayment(content string) bool {
	return strings.Contains(content, "@") && strings.ContainsAny(content, "0123456789")
}

func authorTag(u *discordgo.User) string {
	if u.Discriminator != "" && u.Discriminator != "0" {
		return u.Username + "#" + u.Discriminator
	}
	return u.Username
}

// processPaymentMessage runs one load-record-save cycle for a submitted block
// of text and builds the confirmation reply. The ledger is saved exactly once,
// and only when at least one payment was recorded; unmatched names become
// warnings appended to the reply.
func processPaymentMessage(ctx context.Context, store ledgerStore, content, recordedBy string, now time.Time) (string, error) {
	led, err := store.LoadLedger(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load ledger: %w", err)
	}

	res := led.RecordBatch(content, recordedBy, now)

	warnings := make([]string, 0, len(res.Unknown))
	for _, name := range res.Unknown {
		warnings = append(warnings, fmt.Sprintf("⚠️ **@%s** not in member list", name))
	}

	if len(res.Recorded) == 0 {
		if len(warnings) > 0 {
			return strings.Join(warnings, "\n") + "\n\nUse `/addmember name` to add members.", nil
		}
		return "", nil
	}

	if err := store.SaveLedger(ctx, led); err != nil {
		return "", fmt.Errorf("failed to save ledger: %w", err)
	}

	return confirmation(led, res.Recorded, warnings, now), nil
}

// confirmation renders the recorded payments, today's running total and the
// members still pending today.
func confirmation(led *ledger.Ledger, recorded []ledger.Payment, warnings []string, now time.Time) string {
	var b strings.Builder

	if len(recorded) == 1 {
		p := recorded[0]
		fmt.Fprintf(&b, "✅ **Payment Recorded!**\n👤 Member: **@%s**\n💵 Amount: **$%.2f**\n📅 %s, %s\n\n",
			p.Member, p.Amount, p.Day, p.Date)
	} else {
		fmt.Fprintf(&b, "✅ **%d Payments Recorded!**\n", len(recorded))
		for _, p := range recorded {
			fmt.Fprintf(&b, "• @%s: $%.2f\n", p.Member, p.Amount)
		}
		b.WriteString("\n")
	}

	today := now.Format(ledger.DateFormat)
	var todayTotal float64
	for _, p := range led.PaymentsOn(today) {
		todayTotal += p.Amount
	}
	fmt.Fprintf(&b, "📊 **Today's Total: $%.2f**\n", todayTotal)

	if pending := led.Pending(today); len(pending) > 0 {
		mentions := make([]string, len(pending))
		for i, n := range pending {
			mentions[i] = "@" + n
		}
		fmt.Fprintf(&b, "⏳ Pending: %s", strings.Join(mentions, ", "))
	} else {
		b.WriteString("🎉 All members have paid today!")
	}

	if len(warnings) > 0 {
		b.WriteString("\n\n" + strings.Join(warnings, "\n"))
	}

	return b.String()
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	switch data.Name {
	case "setup":
		commands.HandleSetup(s, i, b.db)
	case "addmember":
		commands.HandleAddMember(s, i, b.db)
	case "removemember":
		commands.HandleRemoveMember(s, i, b.db)
	case "members":
		commands.HandleMembers(s, i, b.db)
	case "today":
		commands.HandleToday(s, i, b.db, b.now())
	case "report":
		commands.HandleReport(s, i, b.db, b.now())
	case "clear":
		commands.HandleClear(s, i, b.db)
	case "help":
		commands.HandleHelp(s, i)
	}
}
